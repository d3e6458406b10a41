// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ops provides a ready-to-use kontlang.Host over the
// number | boolean payload domain used throughout the scenario corpus:
// op:add, op:mul, op:sub, op:eq, op:lt, op:and, op:not, op:mod.
package ops

import (
	"fmt"

	"kontlang"
)

// NumericHost implements kontlang.Host over float64 numbers and bool
// scalars. It embeds kontlang.BaseHost but overrides both hooks:
// Literal fails BadLiteral for payloads it doesn't recognize (they are
// not wrapped unchanged), and any op name it doesn't define fails
// UnknownOp.
type NumericHost struct {
	kontlang.BaseHost
}

// New returns a NumericHost ready to pass to kontlang.New or kontlang.Run.
func New() NumericHost { return NumericHost{} }

// Literal accepts int, float64, and bool payloads, normalizing int to
// float64 so every arithmetic op has one numeric representation to
// work against.
func (NumericHost) Literal(payload any) (kontlang.Value, error) {
	switch p := payload.(type) {
	case int:
		return kontlang.Scalar{Payload: float64(p)}, nil
	case float64:
		return kontlang.Scalar{Payload: p}, nil
	case bool:
		return kontlang.Scalar{Payload: p}, nil
	default:
		return nil, &kontlang.MachineError{Kind: kontlang.BadLiteral, Detail: fmt.Sprintf("%T", payload)}
	}
}

// Op implements the eight arithmetic/comparison/boolean primitives the
// scenario corpus exercises. All but op:not are strictly binary (op:and
// included); op:not is unary.
func (NumericHost) Op(name string, args []kontlang.Value) (kontlang.Value, error) {
	switch name {
	case "op:add":
		return numBinary(name, args, func(a, b float64) float64 { return a + b })
	case "op:sub":
		return numBinary(name, args, func(a, b float64) float64 { return a - b })
	case "op:mul":
		return numBinary(name, args, func(a, b float64) float64 { return a * b })
	case "op:mod":
		return numBinary(name, args, func(a, b float64) float64 {
			return float64(int64(a) % int64(b))
		})
	case "op:eq":
		return cmpBinary(name, args, func(a, b float64) bool { return a == b })
	case "op:lt":
		return cmpBinary(name, args, func(a, b float64) bool { return a < b })
	case "op:and":
		if len(args) != 2 {
			return nil, arityErr(name, 2, len(args))
		}
		a, ok1 := boolArg(args[0])
		b, ok2 := boolArg(args[1])
		if !ok1 || !ok2 {
			return nil, badOperand(name)
		}
		return kontlang.Scalar{Payload: a && b}, nil
	case "op:not":
		if len(args) != 1 {
			return nil, arityErr(name, 1, len(args))
		}
		a, ok := boolArg(args[0])
		if !ok {
			return nil, badOperand(name)
		}
		return kontlang.Scalar{Payload: !a}, nil
	default:
		return nil, &kontlang.MachineError{Kind: kontlang.UnknownOp, Detail: name}
	}
}

func numBinary(name string, args []kontlang.Value, f func(a, b float64) float64) (kontlang.Value, error) {
	a, b, err := numPair(name, args)
	if err != nil {
		return nil, err
	}
	return kontlang.Scalar{Payload: f(a, b)}, nil
}

func cmpBinary(name string, args []kontlang.Value, f func(a, b float64) bool) (kontlang.Value, error) {
	a, b, err := numPair(name, args)
	if err != nil {
		return nil, err
	}
	return kontlang.Scalar{Payload: f(a, b)}, nil
}

func numPair(name string, args []kontlang.Value) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, arityErr(name, 2, len(args))
	}
	a, ok1 := numArg(args[0])
	b, ok2 := numArg(args[1])
	if !ok1 || !ok2 {
		return 0, 0, badOperand(name)
	}
	return a, b, nil
}

func numArg(v kontlang.Value) (float64, bool) {
	s, ok := v.(kontlang.Scalar)
	if !ok {
		return 0, false
	}
	f, ok := s.Payload.(float64)
	return f, ok
}

func boolArg(v kontlang.Value) (bool, bool) {
	return kontlang.Bool(v)
}

func arityErr(name string, want, got int) error {
	return &kontlang.MachineError{Kind: kontlang.UnknownOp, Detail: fmt.Sprintf("%s: want %d operands, got %d", name, want, got)}
}

func badOperand(name string) error {
	return &kontlang.MachineError{Kind: kontlang.BadLiteral, Detail: name + ": operand type mismatch"}
}
