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

// TopLevel is the binding-level outside of any inference run. Type-variables created during
// inference always have a level greater than TopLevel.
const TopLevel = 0

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

var (
	_ Type = (*Unit)(nil)
	_ Type = (*Var)(nil)
	_ Type = (*Arrow)(nil)
)

func (t *Unit) TypeName() string  { return "Unit" }
func (t *Var) TypeName() string   { return "Var" }
func (t *Arrow) TypeName() string { return "Arrow" }

// Unit type: `()`
type Unit struct{}

// UnitType may be shared by all unit-typed expressions.
var UnitType = &Unit{}

// Function type: `'a -> ()`
type Arrow struct {
	Param  Type
	Return Type
}

// NewArrow creates a function type from param to ret.
func NewArrow(param, ret Type) *Arrow { return &Arrow{Param: param, Return: ret} }

// Get the underlying type for a chain of linked type-variables, when applicable.
func RealType(t Type) Type {
	for {
		tv, ok := t.(*Var)
		if !ok || !tv.IsLinkVar() {
			return t
		}
		t = tv.Link()
	}
}
