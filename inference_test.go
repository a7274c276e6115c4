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
	"testing"

	"github.com/wdamron/algoj/ast"
	"github.com/wdamron/algoj/types"
)

func TestIdentity(t *testing.T) {
	ctx := NewContext()
	expr := &ast.Func{ArgName: "x", Body: &ast.Var{Name: "x"}}

	ty, err := ctx.Infer(expr, nil)
	if err != nil {
		t.Fatal(err)
	}
	typeString := types.TypeString(ty)
	if typeString != "'a -> 'a" {
		t.Fatalf("type: %s", typeString)
	}
	arrow := ty.(*types.Arrow)
	if types.RealType(arrow.Param) != types.RealType(arrow.Return) {
		t.Fatalf("expected the parameter and result to share a type-variable")
	}
}

func TestInfer(t *testing.T) {
	unit := &ast.Unit{}
	id := &ast.Func{ArgName: "x", Body: &ast.Var{Name: "x"}}
	v := func(name string) *ast.Var { return &ast.Var{Name: name} }
	call := func(f, arg ast.Expr) *ast.Call { return &ast.Call{Func: f, Arg: arg} }
	fn := func(arg string, body ast.Expr) *ast.Func { return &ast.Func{ArgName: arg, Body: body} }
	let := func(name string, value, body ast.Expr) *ast.Let { return &ast.Let{Var: name, Value: value, Body: body} }

	cases := []struct {
		expr ast.Expr
		want string
	}{
		{unit, "()"},
		{let("id", id, v("id")), "'a -> 'a"},
		{let("id", id, call(v("id"), v("id"))), "'a -> 'a"},
		{let("id", id, call(call(v("id"), v("id")), unit)), "()"},
		{let("x", unit, fn("y", v("y"))), "'a -> 'a"},
		{fn("f", let("g", v("f"), call(v("g"), unit))), "(() -> 'a) -> 'a"},
		{fn("x", let("y", fn("z", v("x")), v("y"))), "'a -> 'b -> 'a"},
		{fn("x", let("f", fn("y", call(v("x"), v("y"))), v("f"))), "('a -> 'b) -> 'a -> 'b"},
		{let("k", fn("x", fn("y", v("x"))), call(call(v("k"), unit), call(call(v("k"), unit), unit))), "()"},
		{fn("f", fn("x", call(v("f"), call(v("f"), v("x"))))), "('a -> 'a) -> 'a -> 'a"},
		{let("compose", fn("f", fn("g", fn("x", call(v("f"), call(v("g"), v("x")))))), v("compose")),
			"('a -> 'b) -> ('c -> 'a) -> 'c -> 'b"},
	}

	ctx := NewContext()
	for _, c := range cases {
		ty, err := ctx.Infer(c.expr, nil)
		if err != nil {
			t.Fatalf("%s: %v", ast.ExprString(c.expr), err)
		}
		typeString := types.TypeString(ty)
		if typeString != c.want {
			t.Fatalf("%s: expected %s, found %s", ast.ExprString(c.expr), c.want, typeString)
		}
		t.Logf("%s : %s", ast.ExprString(c.expr), typeString)
	}
}

func TestApplyUnit(t *testing.T) {
	ctx := NewContext()
	expr := &ast.Call{Func: &ast.Unit{}, Arg: &ast.Unit{}}

	ty, err := ctx.Infer(expr, nil)
	if ty != nil {
		t.Fatalf("expected no type for a failed inference")
	}
	var mismatch *types.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected type mismatch, found %v", err)
	}
	var app *types.ApplicationError
	if !errors.As(err, &app) {
		t.Fatalf("expected application error, found %v", err)
	}
	if ctx.InvalidExpr() != ast.Expr(expr) || ctx.Error() != err {
		t.Fatalf("expected the failed call to be reported")
	}
	t.Logf("Passed check for application error: %v", err)
}

func TestSelfApplication(t *testing.T) {
	ctx := NewContext()
	expr := &ast.Func{ArgName: "x", Body: &ast.Call{Func: &ast.Var{Name: "x"}, Arg: &ast.Var{Name: "x"}}}

	_, err := ctx.Infer(expr, nil)
	var occurs *types.OccursCheckError
	if !errors.As(err, &occurs) {
		t.Fatalf("expected occurs-check error, found %v", err)
	}
	t.Logf("Passed check for occurs-check error: %v", err)
}

func TestUnboundVariable(t *testing.T) {
	ctx := NewContext()
	missing := &ast.Var{Name: "missing"}
	expr := &ast.Let{Var: "u", Value: &ast.Unit{}, Body: &ast.Call{Func: missing, Arg: &ast.Var{Name: "u"}}}

	_, err := ctx.Infer(expr, NewTypeEnv())
	var unbound *types.UnboundVariableError
	if !errors.As(err, &unbound) || unbound.Name != "missing" {
		t.Fatalf("expected unbound variable error, found %v", err)
	}
	if ctx.InvalidExpr() != ast.Expr(missing) {
		t.Fatalf("expected the missing variable to be reported")
	}
}

func TestFirstFailureReported(t *testing.T) {
	ctx := NewContext()
	// The function is inferred before the argument:
	expr := &ast.Call{
		Func: &ast.Call{Func: &ast.Unit{}, Arg: &ast.Unit{}},
		Arg:  &ast.Var{Name: "missing"},
	}
	_, err := ctx.Infer(expr, nil)
	var mismatch *types.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected type mismatch, found %v", err)
	}
}

func TestLambdaParameterMonomorphic(t *testing.T) {
	ctx := NewContext()
	// fun f -> let g = f in let a = g () in g (fun z -> z)
	expr := &ast.Func{
		ArgName: "f",
		Body: &ast.Let{
			Var:   "g",
			Value: &ast.Var{Name: "f"},
			Body: &ast.Let{
				Var:   "a",
				Value: &ast.Call{Func: &ast.Var{Name: "g"}, Arg: &ast.Unit{}},
				Body: &ast.Call{
					Func: &ast.Var{Name: "g"},
					Arg:  &ast.Func{ArgName: "z", Body: &ast.Var{Name: "z"}},
				},
			},
		},
	}

	_, err := ctx.Infer(expr, nil)
	var mismatch *types.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected type mismatch for a monomorphic parameter, found %v", err)
	}

	// With a let-bound identity instead of a parameter, both uses are independent:
	poly := &ast.Let{
		Var:   "g",
		Value: &ast.Func{ArgName: "x", Body: &ast.Var{Name: "x"}},
		Body: &ast.Let{
			Var:   "a",
			Value: &ast.Call{Func: &ast.Var{Name: "g"}, Arg: &ast.Unit{}},
			Body: &ast.Call{
				Func: &ast.Var{Name: "g"},
				Arg:  &ast.Func{ArgName: "z", Body: &ast.Var{Name: "z"}},
			},
		},
	}
	ty, err := ctx.Infer(poly, nil)
	if err != nil {
		t.Fatal(err)
	}
	if typeString := types.TypeString(ty); typeString != "'a -> 'a" {
		t.Fatalf("type: %s", typeString)
	}
}

func TestScopesDoNotLeak(t *testing.T) {
	ctx := NewContext()
	env := NewTypeEnv()
	env.Declare("u", types.UnitType)
	envCount := env.Len()

	// (let z = () in z) z
	leak := &ast.Call{
		Func: &ast.Let{Var: "z", Value: &ast.Unit{}, Body: &ast.Var{Name: "z"}},
		Arg:  &ast.Var{Name: "z"},
	}
	_, err := ctx.Infer(leak, env)
	var unbound *types.UnboundVariableError
	if !errors.As(err, &unbound) || unbound.Name != "z" {
		t.Fatalf("expected unbound variable error, found %v", err)
	}

	// (fun u -> u) u, where the inner u shadows the declared u:
	shadow := &ast.Call{
		Func: &ast.Func{ArgName: "u", Body: &ast.Var{Name: "u"}},
		Arg:  &ast.Var{Name: "u"},
	}
	ty, err := ctx.Infer(shadow, env)
	if err != nil {
		t.Fatal(err)
	}
	if typeString := types.TypeString(ty); typeString != "()" {
		t.Fatalf("type: %s", typeString)
	}

	if env.Len() != envCount {
		t.Fatalf("expected unmodified type environment after inference")
	}
}

func TestDeclaredTypes(t *testing.T) {
	env := NewTypeEnv()
	ctx := NewContext()

	A, B := env.NewVar(), env.NewVar()
	env.Declare("const", &types.Arrow{Param: A, Return: &types.Arrow{Param: B, Return: A}})
	env.Declare("unit", types.UnitType)
	if names := env.Names(); len(names) != 2 || names[0] != "const" || names[1] != "unit" {
		t.Fatalf("names: %v", names)
	}
	s, ok := env.Lookup("const")
	if !ok || len(s.Vars) != 2 {
		t.Fatalf("expected declared type to be generalized")
	}

	expr := &ast.Call{Func: &ast.Var{Name: "const"}, Arg: &ast.Var{Name: "unit"}}

	// Infer twice to ensure state is properly reset between calls:
	ty, err := ctx.Infer(expr, env)
	if err != nil {
		t.Fatal(err)
	}
	count, firstId := ctx.common.VarTracker.Count(), env.NextVarId
	if firstId != 2+count {
		t.Fatalf("expected inference to advance the next type-variable id, found %d", firstId)
	}
	ty, err = ctx.Infer(expr, env)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.common.VarTracker.Count() != count || env.NextVarId != firstId+count {
		t.Fatalf("expected identical allocations for repeated inference")
	}
	typeString := types.TypeString(ty)
	if typeString != "'a -> ()" {
		t.Fatalf("type: %s", typeString)
	}
	if A.IsLinkVar() || B.IsLinkVar() {
		t.Fatalf("declared type-variables should not be linked during inference")
	}
}

func TestDeclareInvariant(t *testing.T) {
	env := NewTypeEnv()
	ctx := NewContext()

	M := env.NewVar()
	env.DeclareInvariant("m", M)

	// let a = m () in m
	expr := &ast.Let{
		Var:   "a",
		Value: &ast.Call{Func: &ast.Var{Name: "m"}, Arg: &ast.Unit{}},
		Body:  &ast.Var{Name: "m"},
	}
	ty, err := ctx.Infer(expr, env)
	if err != nil {
		t.Fatal(err)
	}
	if typeString := types.TypeString(ty); typeString != "() -> 'a" {
		t.Fatalf("type: %s", typeString)
	}
	if !M.IsLinkVar() {
		t.Fatalf("expected invariant type-variable to be linked")
	}
}

func TestReuseEnvWithLinkedInvariant(t *testing.T) {
	env := NewTypeEnv()
	ctx := NewContext()
	F := env.NewVar()
	env.DeclareInvariant("f", F)

	// f () links the declared type-variable to () -> 'a:
	ty, err := ctx.Infer(&ast.Call{Func: &ast.Var{Name: "f"}, Arg: &ast.Unit{}}, env)
	if err != nil {
		t.Fatal(err)
	}
	if !F.IsLinkVar() {
		t.Fatalf("expected invariant type-variable to be linked")
	}
	if result := types.RealType(ty).(*types.Var); result.Id() >= env.NextVarId {
		t.Fatalf("expected the next type-variable id to advance past %d, found %d", result.Id(), env.NextVarId)
	}

	// (fun x -> x) f, where type-variables of the previous run are reachable from f:
	expr := &ast.Call{
		Func: &ast.Func{ArgName: "x", Body: &ast.Var{Name: "x"}},
		Arg:  &ast.Var{Name: "f"},
	}
	ty, err = ctx.Infer(expr, env)
	if err != nil {
		t.Fatalf("inference on a reused type-environment: %v", err)
	}
	if typeString := types.TypeString(ty); typeString != "() -> 'a" {
		t.Fatalf("type: %s", typeString)
	}

	// A fresh context sharing the type-environment continues from its ids:
	other := NewContext()
	if _, err := other.Infer(expr, env); err != nil {
		t.Fatalf("inference with a second context: %v", err)
	}
}

func TestInferScheme(t *testing.T) {
	ctx := NewContext()
	expr := &ast.Func{ArgName: "x", Body: &ast.Func{ArgName: "y", Body: &ast.Var{Name: "x"}}}
	s, err := ctx.InferScheme(expr, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Vars) != 2 {
		t.Fatalf("expected 2 quantified type-variables, found %v", s.Vars)
	}
	if str := types.SchemeString(s); str != "'a -> 'b -> 'a" {
		t.Fatalf("scheme: %s", str)
	}

	if _, err := ctx.InferScheme(&ast.Var{Name: "x"}, nil); err == nil {
		t.Fatalf("expected unbound variable error")
	}
}

func TestInferSchemeKeepsEnvVarsFree(t *testing.T) {
	env := NewTypeEnv()
	ctx := NewContext()
	M := env.NewVar()
	env.DeclareInvariant("m", M)

	s, err := ctx.InferScheme(&ast.Var{Name: "m"}, env)
	if err != nil {
		t.Fatal(err)
	}
	if s.IsGeneric() || s.Quantifies(M.Id()) {
		t.Fatalf("type-variable of the type-environment was generalized: %v", s.Vars)
	}

	// fun x -> m
	s, err = ctx.InferScheme(&ast.Func{ArgName: "x", Body: &ast.Var{Name: "m"}}, env)
	if err != nil {
		t.Fatal(err)
	}
	if str := types.SchemeString(s); str != "'a -> '_a" || s.Quantifies(M.Id()) {
		t.Fatalf("scheme: %s %v", str, s.Vars)
	}

	// fun x -> m x links m to a type containing x; nothing can be generalized:
	s, err = ctx.InferScheme(&ast.Func{ArgName: "x", Body: &ast.Call{Func: &ast.Var{Name: "m"}, Arg: &ast.Var{Name: "x"}}}, env)
	if err != nil {
		t.Fatal(err)
	}
	if s.IsGeneric() {
		t.Fatalf("expected no generalized type-variables, found %s %v", types.SchemeString(s), s.Vars)
	}
}

func TestInvalidExpressions(t *testing.T) {
	ctx := NewContext()
	if _, err := ctx.Infer(nil, nil); err == nil {
		t.Fatalf("expected error for empty expression")
	}
	if _, err := ctx.Infer(&ast.Func{ArgName: "x"}, nil); err == nil {
		t.Fatalf("expected error for missing body")
	}
	ctx.Reset()
	if ctx.Error() != nil || ctx.InvalidExpr() != nil {
		t.Fatalf("expected reset context")
	}
}
