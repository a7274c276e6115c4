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

package types

import "fmt"

// UnboundVariableError indicates an identifier was not found in the type-environment.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return "Variable " + e.Name + " not found"
}

// OccursCheckError indicates a type-variable would be bound to a type containing itself.
type OccursCheckError struct {
	Var  *Var
	Type Type
}

func (e *OccursCheckError) Error() string {
	strs := TypeStrings(e.Var, e.Type)
	return "Implicitly recursive types are not supported: " + strs[0] + " occurs in " + strs[1]
}

// TypeMismatchError indicates two types with incompatible shapes were unified.
type TypeMismatchError struct {
	Left, Right Type
}

func (e *TypeMismatchError) Error() string {
	strs := TypeStrings(e.Left, e.Right)
	return "Failed to unify " + strs[0] + " with " + strs[1]
}

// ApplicationError indicates a called expression could not be unified with the shape of its call.
// Err is the underlying *TypeMismatchError or *OccursCheckError.
type ApplicationError struct {
	Func, Arg Type
	Err       error
}

func (e *ApplicationError) Error() string {
	strs := TypeStrings(e.Func, e.Arg)
	return fmt.Sprintf("Invalid application of %s to %s: %v", strs[0], strs[1], e.Err)
}

func (e *ApplicationError) Unwrap() error { return e.Err }
