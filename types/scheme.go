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

// Scheme is a polymorphic type: for all type-variables with ids in Vars, Type.
//
// Vars is sorted in ascending order.
type Scheme struct {
	Vars []int
	Type Type
}

// Create a scheme which quantifies no type-variables.
func Monotype(t Type) *Scheme { return &Scheme{Type: t} }

// IsGeneric returns true if the scheme quantifies at least one type-variable.
func (s *Scheme) IsGeneric() bool { return len(s.Vars) > 0 }

// Quantifies returns true if the type-variable with the given id is quantified by the scheme.
func (s *Scheme) Quantifies(id int) bool {
	for _, v := range s.Vars {
		if v == id {
			return true
		}
	}
	return false
}
