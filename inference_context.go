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

// InferenceContext is a reusable context for type inference.
//
// An inference context cannot be used concurrently.
type InferenceContext struct {
	common     typeutil.CommonContext
	err        error
	invalid    ast.Expr
	needsReset bool
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext {
	ti := &InferenceContext{}
	ti.common.Init()
	return ti
}

func (ti *InferenceContext) reset(firstId int) {
	ti.common.Reset(firstId)
	ti.err, ti.invalid, ti.needsReset = nil, nil, false
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset(0)
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Infer the type of expr within env. The inferred type is not generalized; unbound type-variables
// in the result are free.
//
// Type-variables allocated during inference take ids starting at env.NextVarId, and env.NextVarId
// is advanced past them, so cells linked into env by one run never share an id with cells of a later run.
//
// When inference fails, the returned type is nil and type-variables reachable from env may have
// been partially linked.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	return ti.run(expr, env, false)
}

// Infer the type-scheme of expr within env. Unbound type-variables in the inferred type are generalized,
// except for those shared with env.
func (ti *InferenceContext) InferScheme(expr ast.Expr, env *TypeEnv) (*types.Scheme, error) {
	t, err := ti.run(expr, env, true)
	if err != nil {
		return nil, err
	}
	return ti.common.Generalize(t), nil
}

// When nested is set, expr is inferred one level below the type-variables of env, so the result
// may be generalized at the outer level.
func (ti *InferenceContext) run(expr ast.Expr, env *TypeEnv, nested bool) (types.Type, error) {
	if expr == nil {
		return nil, errors.New("Empty expression")
	}
	if env == nil {
		env = NewTypeEnv()
	}
	ti.reset(env.NextVarId)
	if nested {
		ti.common.EnterLevel()
	}
	t, err := ti.infer(env, expr)
	if nested {
		ti.common.ExitLevel()
	}
	env.NextVarId = ti.common.VarTracker.NextId
	ti.needsReset = true
	if err != nil {
		return nil, err
	}
	return t, nil
}
