// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package surface

import (
	"fmt"
	"strconv"
	"strings"

	"kontlang"
)

// Lower interprets a parsed Node tree as a kontlang.Term, recognizing
// the fixed set of special forms by the leading atom of a list: let,
// letrec, lambda (or λ), reset, shift, if, the unary ! and ? prefixes,
// and any symbol beginning with the op: prefix, which routes to
// kontlang.Op rather than kontlang.Apply. Every other list is an
// Apply. A bare atom is a number, a boolean, or a Symbol.
func Lower(n *Node) (kontlang.Term, error) {
	if n.List == nil {
		return lowerAtom(*n.Atom)
	}
	items := n.List.Items
	if len(items) == 0 {
		return nil, fmt.Errorf("surface: empty list at %s", n.List.Pos)
	}
	if head := items[0].Atom; head != nil {
		switch *head {
		case "let":
			return lowerLet(n.List)
		case "letrec":
			return lowerLetrec(n.List)
		case "lambda", "λ":
			return lowerAbstract(n.List)
		case "reset":
			return lowerReset(n.List)
		case "shift":
			return lowerShift(n.List)
		case "if":
			return lowerIf(n.List)
		case "!":
			return lowerUnary(n.List, func(inner kontlang.Term) kontlang.Term { return kontlang.Suspend{Inner: inner} })
		case "?":
			return lowerUnary(n.List, func(inner kontlang.Term) kontlang.Term { return kontlang.Resume{Inner: inner} })
		default:
			if strings.HasPrefix(*head, "op:") {
				return lowerOp(n.List, *head)
			}
		}
	}
	return lowerApply(n.List)
}

func lowerAtom(atom string) (kontlang.Term, error) {
	switch atom {
	case "true":
		return kontlang.Literal{Payload: true}, nil
	case "false":
		return kontlang.Literal{Payload: false}, nil
	}
	if f, err := strconv.ParseFloat(atom, 64); err == nil {
		return kontlang.Literal{Payload: f}, nil
	}
	return kontlang.Symbol{Name: atom}, nil
}

func lowerUnary(l *List, wrap func(kontlang.Term) kontlang.Term) (kontlang.Term, error) {
	if len(l.Items) != 2 {
		return nil, fmt.Errorf("surface: %s wants exactly one operand at %s", *l.Items[0].Atom, l.Pos)
	}
	inner, err := Lower(l.Items[1])
	if err != nil {
		return nil, err
	}
	return wrap(inner), nil
}

func lowerOp(l *List, name string) (kontlang.Term, error) {
	operands := make([]kontlang.Term, 0, len(l.Items)-1)
	for _, item := range l.Items[1:] {
		t, err := Lower(item)
		if err != nil {
			return nil, err
		}
		operands = append(operands, t)
	}
	return kontlang.Op{Name: name, Operands: operands}, nil
}

func lowerApply(l *List) (kontlang.Term, error) {
	operator, err := Lower(l.Items[0])
	if err != nil {
		return nil, err
	}
	operands := make([]kontlang.Term, 0, len(l.Items)-1)
	for _, item := range l.Items[1:] {
		t, err := Lower(item)
		if err != nil {
			return nil, err
		}
		operands = append(operands, t)
	}
	return kontlang.Apply{Operator: operator, Operands: operands}, nil
}

// lowerLet expects (let name bound body); the surface grammar exposes
// only the single-binder shape, per the core's Let term.
func lowerLet(l *List) (kontlang.Term, error) {
	if len(l.Items) != 4 {
		return nil, fmt.Errorf("surface: let wants (let name bound body) at %s", l.Pos)
	}
	name, err := symbolName(l.Items[1])
	if err != nil {
		return nil, err
	}
	bound, err := Lower(l.Items[2])
	if err != nil {
		return nil, err
	}
	body, err := Lower(l.Items[3])
	if err != nil {
		return nil, err
	}
	return kontlang.Let{Name: name, Bound: bound, Body: body}, nil
}

// lowerLetrec expects (letrec ((name term) ...) body).
func lowerLetrec(l *List) (kontlang.Term, error) {
	if len(l.Items) != 3 {
		return nil, fmt.Errorf("surface: letrec wants (letrec (bindings) body) at %s", l.Pos)
	}
	bindingsList := l.Items[1].List
	if bindingsList == nil {
		return nil, fmt.Errorf("surface: letrec bindings must be a list at %s", l.Items[1].Pos)
	}
	bindings := make([]kontlang.LetrecBinding, 0, len(bindingsList.Items))
	for _, b := range bindingsList.Items {
		bl := b.List
		if bl == nil || len(bl.Items) != 2 {
			return nil, fmt.Errorf("surface: letrec binding must be (name term) at %s", b.Pos)
		}
		name, err := symbolName(bl.Items[0])
		if err != nil {
			return nil, err
		}
		term, err := Lower(bl.Items[1])
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, kontlang.LetrecBinding{Name: name, Term: term})
	}
	body, err := Lower(l.Items[2])
	if err != nil {
		return nil, err
	}
	return kontlang.Letrec{Bindings: bindings, Body: body}, nil
}

// lowerAbstract expects (lambda (params...) body) or the λ spelling.
func lowerAbstract(l *List) (kontlang.Term, error) {
	if len(l.Items) != 3 {
		return nil, fmt.Errorf("surface: lambda wants (lambda (params) body) at %s", l.Pos)
	}
	paramsList := l.Items[1].List
	if paramsList == nil {
		return nil, fmt.Errorf("surface: lambda params must be a list at %s", l.Items[1].Pos)
	}
	params := make([]string, 0, len(paramsList.Items))
	for _, p := range paramsList.Items {
		name, err := symbolName(p)
		if err != nil {
			return nil, err
		}
		params = append(params, name)
	}
	body, err := Lower(l.Items[2])
	if err != nil {
		return nil, err
	}
	return kontlang.Abstract{Params: params, Body: body}, nil
}

func lowerReset(l *List) (kontlang.Term, error) {
	if len(l.Items) != 2 {
		return nil, fmt.Errorf("surface: reset wants exactly one body term at %s", l.Pos)
	}
	body, err := Lower(l.Items[1])
	if err != nil {
		return nil, err
	}
	return kontlang.Reset{Body: body}, nil
}

func lowerShift(l *List) (kontlang.Term, error) {
	if len(l.Items) != 3 {
		return nil, fmt.Errorf("surface: shift wants (shift name body) at %s", l.Pos)
	}
	name, err := symbolName(l.Items[1])
	if err != nil {
		return nil, err
	}
	body, err := Lower(l.Items[2])
	if err != nil {
		return nil, err
	}
	return kontlang.Shift{Name: name, Body: body}, nil
}

func lowerIf(l *List) (kontlang.Term, error) {
	if len(l.Items) != 4 {
		return nil, fmt.Errorf("surface: if wants (if cond then else) at %s", l.Pos)
	}
	cond, err := Lower(l.Items[1])
	if err != nil {
		return nil, err
	}
	then, err := Lower(l.Items[2])
	if err != nil {
		return nil, err
	}
	els, err := Lower(l.Items[3])
	if err != nil {
		return nil, err
	}
	return kontlang.If{Cond: cond, Then: then, Else: els}, nil
}

// symbolName requires n to be a bare (non-numeric, non-boolean) atom,
// rejecting list binders and literal binders per the surface grammar's
// "let forms with non-symbol binders" and "shift forms with a
// non-symbol continuation name" rejection rule.
func symbolName(n *Node) (string, error) {
	if n.Atom == nil {
		return "", fmt.Errorf("surface: expected a symbol at %s", n.Pos)
	}
	switch *n.Atom {
	case "true", "false":
		return "", fmt.Errorf("surface: expected a symbol, got boolean literal at %s", n.Pos)
	}
	if _, err := strconv.ParseFloat(*n.Atom, 64); err == nil {
		return "", fmt.Errorf("surface: expected a symbol, got number literal at %s", n.Pos)
	}
	return *n.Atom, nil
}
