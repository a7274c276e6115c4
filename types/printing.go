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

import (
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{
			idNames: make(map[int]string, 16),
		}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	p.scheme, p.generic, p.free = nil, 0, 0
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a string representation of a Type. Unbound type-variables are named
// in order of their first appearance: 'a, 'b, ...
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// TypeStrings returns string representations of several types, naming type-variables consistently across all of them.
func TypeStrings(ts ...Type) []string {
	p := newTypePrinter()
	strs := make([]string, len(ts))
	for i, t := range ts {
		typeString(p, false, t)
		strs[i] = p.sb.String()
		p.sb.Reset()
	}
	p.Release()
	return strs
}

// SchemeString returns a string representation of a Scheme. Quantified type-variables are
// named 'a, 'b, ... and type-variables which are not quantified are named '_a, '_b, ...
func SchemeString(s *Scheme) string {
	p := newTypePrinter()
	p.scheme = s
	typeString(p, false, s.Type)
	str := p.sb.String()
	p.Release()
	return str
}

type typePrinter struct {
	idNames map[int]string
	scheme  *Scheme
	generic int
	free    int
	sb      strings.Builder
}

func varName(i int) string {
	name := string(rune('a' + i%26))
	if i >= 26 {
		name += strconv.Itoa(i / 26)
	}
	return name
}

func (p *typePrinter) nameOf(tv *Var) string {
	if name, ok := p.idNames[tv.Id()]; ok {
		return name
	}
	var name string
	if p.scheme == nil || p.scheme.Quantifies(tv.Id()) {
		name = "'" + varName(p.generic)
		p.generic++
	} else {
		name = "'_" + varName(p.free)
		p.free++
	}
	p.idNames[tv.Id()] = name
	return name
}

func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Unit:
		p.sb.WriteString("()")

	case *Var:
		if t.IsLinkVar() {
			typeString(p, simple, t.Link())
			return
		}
		p.sb.WriteString(p.nameOf(t))

	case *Arrow:
		if simple {
			p.sb.WriteByte('(')
		}
		typeString(p, true, t.Param)
		p.sb.WriteString(" -> ")
		typeString(p, false, t.Return)
		if simple {
			p.sb.WriteByte(')')
		}

	case nil:
		p.sb.WriteString("<nil>")
	}
}
