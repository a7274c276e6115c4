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

// CommonContext holds the state of a single inference run: fresh type-variable ids, the
// current binding-level, and scratch space for instantiation.
//
// A context cannot be used concurrently.
type CommonContext struct {
	VarTracker VarTracker
	InstLookup map[int]types.Type // instantiation lookup for generic type-variables
}

func (ctx *CommonContext) Init() {
	ctx.InstLookup = make(map[int]types.Type, 16)
	ctx.VarTracker.Reset(0)
}

// Reset the context for a new inference run. Fresh type-variable ids will start at firstId.
func (ctx *CommonContext) Reset(firstId int) {
	if ctx.InstLookup == nil {
		ctx.InstLookup = make(map[int]types.Type, 16)
	}
	ctx.VarTracker.Reset(firstId)
	ctx.ClearInstantiationLookup()
}

func (ctx *CommonContext) ClearInstantiationLookup() {
	for k := range ctx.InstLookup {
		delete(ctx.InstLookup, k)
	}
}

// NewVar allocates an unbound type-variable at the current binding-level.
func (ctx *CommonContext) NewVar() *types.Var { return ctx.VarTracker.New() }

func (ctx *CommonContext) EnterLevel() { ctx.VarTracker.EnterLevel() }
func (ctx *CommonContext) ExitLevel()  { ctx.VarTracker.ExitLevel() }
