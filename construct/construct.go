// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package construct

import (
	"github.com/wdamron/algoj/ast"
	"github.com/wdamron/algoj/types"
)

// Types

// Create a new type-variable with the given id and binding-level.
func TVar(id, level int) *types.Var {
	return types.NewVar(id, level)
}

// Unit type: `()`
func TUnit() *types.Unit {
	return types.UnitType
}

// Function type: `'a -> 'b`
func TArrow(param, ret types.Type) *types.Arrow {
	return &types.Arrow{Param: param, Return: ret}
}

// Curried function type: `'a -> 'b -> 'c`
func TArrowN(params []types.Type, ret types.Type) types.Type {
	t := ret
	for i := len(params) - 1; i >= 0; i-- {
		t = &types.Arrow{Param: params[i], Return: t}
	}
	return t
}

// Expressions:

// Unit literal: `()`
func Unit() *ast.Unit {
	return &ast.Unit{}
}

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Application: `f x`
func Call(f ast.Expr, arg ast.Expr) *ast.Call {
	return &ast.Call{Func: f, Arg: arg}
}

// Curried application: `f x y`
func CallN(f ast.Expr, args ...ast.Expr) ast.Expr {
	e := f
	for _, arg := range args {
		e = &ast.Call{Func: e, Arg: arg}
	}
	return e
}

// Abstraction: `fun x -> x`
func Func(arg string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgName: arg, Body: body}
}

// Curried abstraction: `fun x -> fun y -> x`
func FuncN(args []string, body ast.Expr) ast.Expr {
	e := body
	for i := len(args) - 1; i >= 0; i-- {
		e = &ast.Func{ArgName: args[i], Body: e}
	}
	return e
}

// Let-binding: `let a = () in e`
func Let(varName string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Var: varName, Value: value, Body: body}
}
