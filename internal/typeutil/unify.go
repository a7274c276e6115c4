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

// See "Efficient Generalization with Levels" (Oleg Kiselyov)
// http://okmij.org/ftp/ML/generalization.html#levels
//
// This implementation follows the sound_eager algorithm: the level of each unbound
// type-variable in t is lowered to the given level while checking whether tv occurs in t.
// Occurrence is cell identity, not id equality.
func occursAdjustLevels(tv *types.Var, level int, t types.Type) bool {
	switch t := t.(type) {
	case *types.Var:
		if t.IsLinkVar() {
			return occursAdjustLevels(tv, level, t.Link())
		}
		t.SetLevel(level)
		return t == tv

	case *types.Arrow:
		return occursAdjustLevels(tv, level, t.Param) || occursAdjustLevels(tv, level, t.Return)
	}
	return false
}

// Unify a pair of types. Unbound type-variables are linked in place, so partial progress is
// not undone when unification fails.
func (ctx *CommonContext) Unify(a, b types.Type) error {
	if _, ok := a.(*types.Unit); ok {
		if _, ok := b.(*types.Unit); ok {
			return nil
		}
	}
	if tv, ok := a.(*types.Var); ok && tv.IsLinkVar() {
		return ctx.Unify(tv.Link(), b)
	}
	if tv, ok := b.(*types.Var); ok && tv.IsLinkVar() {
		return ctx.Unify(a, tv.Link())
	}
	if tv, ok := a.(*types.Var); ok {
		if b == types.Type(tv) {
			return nil
		}
		return bind(tv, b)
	}
	if tv, ok := b.(*types.Var); ok {
		return bind(tv, a)
	}
	if a, ok := a.(*types.Arrow); ok {
		if b, ok := b.(*types.Arrow); ok {
			if err := ctx.Unify(a.Param, b.Param); err != nil {
				return err
			}
			return ctx.Unify(a.Return, b.Return)
		}
	}
	return &types.TypeMismatchError{Left: a, Right: b}
}

func bind(tv *types.Var, t types.Type) error {
	if occursAdjustLevels(tv, tv.Level(), t) {
		return &types.OccursCheckError{Var: tv, Type: t}
	}
	tv.SetLink(t)
	return nil
}
