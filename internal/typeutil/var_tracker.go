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

// VarTracker allocates type-variables and tracks the current binding-level.
//
// Type-variables are allocated in blocks; a block is never reused after Reset, so
// type-variables from a previous run remain valid for callers which still hold them.
type VarTracker struct {
	NextId int
	level  int
	count  int
	block  []types.Var
}

// Reset the tracker for a new inference run. The first allocated type-variable will have the given id.
func (vt *VarTracker) Reset(firstId int) {
	vt.NextId, vt.level, vt.count, vt.block = firstId, types.TopLevel+1, 0, nil
}

// Level returns the current binding-level.
func (vt *VarTracker) Level() int { return vt.level }

// Count returns the number of type-variables allocated since the last reset.
func (vt *VarTracker) Count() int { return vt.count }

// EnterLevel should be called before inferring the value of a let-binding.
func (vt *VarTracker) EnterLevel() { vt.level++ }

// ExitLevel should be called after inferring the value of a let-binding.
func (vt *VarTracker) ExitLevel() {
	if vt.level <= types.TopLevel+1 {
		panic("unbalanced binding-level")
	}
	vt.level--
}

// New allocates an unbound type-variable with a fresh id at the current binding-level.
func (vt *VarTracker) New() *types.Var {
	if len(vt.block) == 0 {
		vt.block = make([]types.Var, 16)
	}
	tv := &vt.block[0]
	vt.block = vt.block[1:]
	tv.Init(vt.NextId, vt.level)
	vt.NextId, vt.count = vt.NextId+1, vt.count+1
	return tv
}
