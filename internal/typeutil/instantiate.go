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

package typeutil

import (
	"github.com/wdamron/algoj/types"
)

// Substitute replaces each unbound type-variable in t whose id is a key in lookup with the mapped type.
// Linked type-variables are followed. Cells are never modified; subtrees without replacements are shared.
func Substitute(lookup map[int]types.Type, t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Var:
		if t.IsLinkVar() {
			return Substitute(lookup, t.Link())
		}
		if next, ok := lookup[t.Id()]; ok {
			return next
		}
		return t

	case *types.Arrow:
		param, ret := Substitute(lookup, t.Param), Substitute(lookup, t.Return)
		if param == t.Param && ret == t.Return {
			return t
		}
		return &types.Arrow{Param: param, Return: ret}
	}
	return t
}

// Instantiate replaces each quantified type-variable of s with a fresh type-variable at the current
// binding-level. Type-variables which are not quantified by s are shared with the result.
func (ctx *CommonContext) Instantiate(s *types.Scheme) types.Type {
	// Non-generic types can be shared:
	if !s.IsGeneric() {
		return s.Type
	}
	for _, id := range s.Vars {
		ctx.InstLookup[id] = ctx.VarTracker.New()
	}
	t := Substitute(ctx.InstLookup, s.Type)
	ctx.ClearInstantiationLookup()
	return t
}
