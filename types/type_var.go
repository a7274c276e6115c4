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

// Type-variable. A Var is the mutable cell shared by every occurrence of the variable;
// binding the cell (linking it to another type) is visible through all occurrences.
//
// A Var is either unbound, with an id and an adjusted binding-level, or linked to a type.
// Once linked, a Var is never unbound or re-linked.
type Var struct {
	link  Type
	id    int
	level int
}

// Create a new unbound type-variable with the given id and binding-level.
func NewVar(id, level int) *Var {
	tv := &Var{}
	tv.Init(id, level)
	return tv
}

// Init resets tv in place to an unbound type-variable with the given id and binding-level.
func (tv *Var) Init(id, level int) { tv.link, tv.id, tv.level = nil, id, level }

// Id returns the unique identifier of the type-variable.
func (tv *Var) Id() int { return tv.id }

// Level returns the adjusted binding-level of the type-variable.
func (tv *Var) Level() int { return tv.level }

// Link returns the type which the type-variable is bound to, if the type-variable is bound.
func (tv *Var) Link() Type { return tv.link }

func (tv *Var) IsUnboundVar() bool { return tv.link == nil }
func (tv *Var) IsLinkVar() bool    { return tv.link != nil }

// Set the type which the type-variable is bound to. Linking a bound type-variable will panic.
func (tv *Var) SetLink(t Type) {
	if tv.link != nil {
		panic("type-variable is already bound")
	}
	if t == nil {
		panic("type-variable cannot be bound to nil")
	}
	tv.link = t
}

// Lower the binding-level of the type-variable. Levels are never raised.
func (tv *Var) SetLevel(level int) {
	if level < tv.level {
		tv.level = level
	}
}
