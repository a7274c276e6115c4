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

package ast

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLExpr decodes an expression from a YAML document:
//
//   ()                                  unit literal
//   x                                   variable
//   {fun: {arg: x, body: <expr>}}       abstraction
//   {call: {func: <expr>, arg: <expr>}} application
//   {call: [<expr>, <expr>, ...]}       curried application, left-associative
//   {let: {var: x, value: <expr>, body: <expr>}}
type YAMLExpr struct {
	Expr Expr
}

// Decode a YAML document into an expression.
func DecodeYAML(data []byte) (Expr, error) {
	var doc YAMLExpr
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Expr == nil {
		return nil, fmt.Errorf("ast: empty expression document")
	}
	return doc.Expr, nil
}

func (y *YAMLExpr) UnmarshalYAML(n *yaml.Node) error {
	var d decoder
	e, err := d.decode(n)
	if err != nil {
		return err
	}
	y.Expr = e
	return nil
}

// decoder tracks the anchored nodes being expanded, so a self-referential alias is
// reported instead of recursing forever.
type decoder struct {
	expanding map[*yaml.Node]bool
}

func (d *decoder) decode(n *yaml.Node) (Expr, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) != 1 {
			return nil, nodeErr(n, "expected a single expression")
		}
		return d.decode(n.Content[0])

	case yaml.AliasNode:
		if d.expanding[n.Alias] {
			return nil, nodeErr(n, "recursive alias "+n.Value)
		}
		if d.expanding == nil {
			d.expanding = make(map[*yaml.Node]bool)
		}
		d.expanding[n.Alias] = true
		e, err := d.decode(n.Alias)
		delete(d.expanding, n.Alias)
		return e, err

	case yaml.ScalarNode:
		switch n.Value {
		case "()":
			return &Unit{}, nil
		case "":
			return nil, nodeErr(n, "empty variable name")
		}
		return &Var{Name: n.Value}, nil

	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, nodeErr(n, "expected exactly one of fun, call, let")
		}
		key, value := n.Content[0], n.Content[1]
		switch key.Value {
		case "fun":
			fields, err := decodeFields(value, "arg", "body")
			if err != nil {
				return nil, err
			}
			arg, err := decodeName(fields["arg"])
			if err != nil {
				return nil, err
			}
			body, err := d.decode(fields["body"])
			if err != nil {
				return nil, err
			}
			return &Func{ArgName: arg, Body: body}, nil

		case "call":
			if value.Kind == yaml.SequenceNode {
				return d.decodeCallChain(value)
			}
			fields, err := decodeFields(value, "func", "arg")
			if err != nil {
				return nil, err
			}
			fn, err := d.decode(fields["func"])
			if err != nil {
				return nil, err
			}
			arg, err := d.decode(fields["arg"])
			if err != nil {
				return nil, err
			}
			return &Call{Func: fn, Arg: arg}, nil

		case "let":
			fields, err := decodeFields(value, "var", "value", "body")
			if err != nil {
				return nil, err
			}
			name, err := decodeName(fields["var"])
			if err != nil {
				return nil, err
			}
			bound, err := d.decode(fields["value"])
			if err != nil {
				return nil, err
			}
			body, err := d.decode(fields["body"])
			if err != nil {
				return nil, err
			}
			return &Let{Var: name, Value: bound, Body: body}, nil
		}
		return nil, nodeErr(key, "unknown expression "+key.Value)
	}
	return nil, nodeErr(n, "unexpected YAML node")
}

func (d *decoder) decodeCallChain(n *yaml.Node) (Expr, error) {
	if len(n.Content) < 2 {
		return nil, nodeErr(n, "call requires a function and at least one argument")
	}
	e, err := d.decode(n.Content[0])
	if err != nil {
		return nil, err
	}
	for _, argNode := range n.Content[1:] {
		arg, err := d.decode(argNode)
		if err != nil {
			return nil, err
		}
		e = &Call{Func: e, Arg: arg}
	}
	return e, nil
}

func decodeName(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode || n.Value == "" || n.Value == "()" {
		return "", nodeErr(n, "expected an identifier")
	}
	return n.Value, nil
}

// decodeFields requires n to be a mapping containing exactly the given keys.
func decodeFields(n *yaml.Node, keys ...string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, nodeErr(n, "expected a mapping")
	}
	fields := make(map[string]*yaml.Node, len(keys))
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		known := false
		for _, k := range keys {
			if k == key {
				known = true
				break
			}
		}
		if !known {
			return nil, nodeErr(n.Content[i], "unexpected field "+key)
		}
		if _, dup := fields[key]; dup {
			return nil, nodeErr(n.Content[i], "duplicate field "+key)
		}
		fields[key] = n.Content[i+1]
	}
	for _, k := range keys {
		if _, ok := fields[k]; !ok {
			return nil, nodeErr(n, "missing field "+k)
		}
	}
	return fields, nil
}

func nodeErr(n *yaml.Node, msg string) error {
	return fmt.Errorf("ast: line %d: %s", n.Line, msg)
}
