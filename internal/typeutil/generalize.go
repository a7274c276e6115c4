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
	"sort"

	"github.com/wdamron/algoj/types"
)

// Generalize quantifies the type-variables in t which are local to the current binding-level.
func (ctx *CommonContext) Generalize(t types.Type) *types.Scheme {
	return GeneralizeAtLevel(ctx.VarTracker.Level(), t)
}

// GeneralizeAtLevel quantifies each unbound type-variable in t with a level greater than the given level.
//
// See "Efficient Generalization with Levels" (Oleg Kiselyov) -- http://okmij.org/ftp/ML/generalization.html#levels
//
// If the given level is less than the type-variable's level, the type-variable was created (or last
// unified) while inferring the value of a let-binding which is being generalized.
func GeneralizeAtLevel(level int, t types.Type) *types.Scheme {
	var ids []int
	visitTypeVars(level, t, &ids)
	if len(ids) > 1 {
		sort.Ints(ids)
		n := 1
		for _, id := range ids[1:] {
			if id != ids[n-1] {
				ids[n] = id
				n++
			}
		}
		ids = ids[:n]
	}
	return &types.Scheme{Vars: ids, Type: t}
}

// DontGeneralize creates a scheme which quantifies no type-variables.
func DontGeneralize(t types.Type) *types.Scheme { return types.Monotype(t) }

func visitTypeVars(level int, t types.Type, ids *[]int) {
	switch t := t.(type) {
	case *types.Var:
		switch {
		case t.IsLinkVar():
			visitTypeVars(level, t.Link(), ids)
		case t.Level() > level:
			*ids = append(*ids, t.Id())
		}

	case *types.Arrow:
		visitTypeVars(level, t.Param, ids)
		visitTypeVars(level, t.Return, ids)
	}
}
