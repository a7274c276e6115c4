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
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/algoj/internal/typeutil"
	"github.com/wdamron/algoj/types"
)

var emptyBindings = immutable.NewSortedMap(nil)

// TypeEnv is a type-environment containing mappings from identifiers to declared type-schemes.
//
// Bindings are persistent: extending a type-environment creates a new type-environment and
// never modifies the existing one. Inference advances NextVarId and may link invariant
// type-variables, so a type-environment must not be used by concurrent inference runs.
type TypeEnv struct {
	// Next unused type-variable id, shared by declarations and inference runs
	NextVarId int

	bindings *immutable.SortedMap
}

// Create an empty type-environment.
func NewTypeEnv() *TypeEnv {
	return &TypeEnv{bindings: emptyBindings}
}

func (e *TypeEnv) freshId() int {
	id := e.NextVarId
	e.NextVarId++
	return id
}

// Create an unbound type-variable with a unique id, for use in declared types.
func (e *TypeEnv) NewVar() *types.Var { return types.NewVar(e.freshId(), types.TopLevel+1) }

// Declare a type for an identifier within the type-environment. All unbound type-variables in t will be generalized.
func (e *TypeEnv) Declare(name string, t types.Type) {
	e.DeclareScheme(name, typeutil.GeneralizeAtLevel(types.TopLevel, t))
}

// Declare a type-scheme for an identifier within the type-environment.
func (e *TypeEnv) DeclareScheme(name string, s *types.Scheme) {
	e.bindings = e.bindings.Set(name, s)
}

// Declare a type for an identifier within the type-environment. Type-variables will not be generalized,
// and unbound type-variables in t may be linked during inference.
func (e *TypeEnv) DeclareInvariant(name string, t types.Type) {
	e.DeclareScheme(name, typeutil.DontGeneralize(t))
}

// Extend returns a new type-environment which binds name to s. The existing type-environment is not modified.
func (e *TypeEnv) Extend(name string, s *types.Scheme) *TypeEnv {
	return &TypeEnv{NextVarId: e.NextVarId, bindings: e.bindings.Set(name, s)}
}

// Lookup the type-scheme for an identifier in the environment.
func (e *TypeEnv) Lookup(name string) (*types.Scheme, bool) {
	if e == nil {
		return nil, false
	}
	s, ok := e.bindings.Get(name)
	if !ok {
		return nil, false
	}
	return s.(*types.Scheme), true
}

// Len returns the number of bound identifiers.
func (e *TypeEnv) Len() int {
	if e == nil {
		return 0
	}
	return e.bindings.Len()
}

// Names returns the bound identifiers in sorted order.
func (e *TypeEnv) Names() []string {
	names := make([]string, 0, e.Len())
	e.Range(func(name string, _ *types.Scheme) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Iterate over bindings in sorted order of identifiers.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) Range(f func(string, *types.Scheme) bool) {
	if e == nil {
		return
	}
	iter := e.bindings.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(*types.Scheme)) {
			return
		}
	}
}
