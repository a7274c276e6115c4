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

package algoj

import (
	"errors"

	"github.com/wdamron/algoj/ast"
	"github.com/wdamron/algoj/internal/typeutil"
	"github.com/wdamron/algoj/types"
)

func (ti *InferenceContext) infer(env *TypeEnv, e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.Unit:
		return types.UnitType, nil

	case *ast.Var:
		s, ok := env.Lookup(e.Name)
		if !ok {
			ti.invalid, ti.err = e, &types.UnboundVariableError{Name: e.Name}
			return nil, ti.err
		}
		return ti.common.Instantiate(s), nil

	case *ast.Func:
		// Parameters are not generalized within the body:
		tv := ti.common.NewVar()
		ret, err := ti.infer(env.Extend(e.ArgName, typeutil.DontGeneralize(tv)), e.Body)
		if err != nil {
			return nil, err
		}
		return types.NewArrow(tv, ret), nil

	case *ast.Call:
		ft, err := ti.infer(env, e.Func)
		if err != nil {
			return nil, err
		}
		at, err := ti.infer(env, e.Arg)
		if err != nil {
			return nil, err
		}
		ret := ti.common.NewVar()
		if err := ti.common.Unify(ft, types.NewArrow(at, ret)); err != nil {
			ti.invalid, ti.err = e, &types.ApplicationError{Func: ft, Arg: at, Err: err}
			return nil, ti.err
		}
		return ret, nil

	case *ast.Let:
		ti.common.EnterLevel()
		t, err := ti.infer(env, e.Value)
		ti.common.ExitLevel()
		if err != nil {
			return nil, err
		}
		return ti.infer(env.Extend(e.Var, ti.common.Generalize(t)), e.Body)
	}

	var exprName string
	if e != nil {
		exprName = "(" + e.ExprName() + ")"
	} else {
		exprName = "(nil)"
	}
	ti.invalid, ti.err = e, errors.New("Unhandled expression "+exprName)
	return nil, ti.err
}
