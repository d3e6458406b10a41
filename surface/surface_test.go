// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package surface_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontlang"
	"kontlang/ops"
	"kontlang/surface"
)

func lower(t *testing.T, src string) kontlang.Term {
	t.Helper()
	node, err := surface.ParseString("test", src)
	require.NoError(t, err)
	term, err := surface.Lower(node)
	require.NoError(t, err)
	return term
}

func TestLowerLiteralAndSymbol(t *testing.T) {
	assert.Equal(t, kontlang.Literal{Payload: 42.0}, lower(t, "42"))
	assert.Equal(t, kontlang.Literal{Payload: true}, lower(t, "true"))
	assert.Equal(t, kontlang.Symbol{Name: "x"}, lower(t, "x"))
}

func TestLowerOp(t *testing.T) {
	got := lower(t, "(op:add 1 2)")
	want := kontlang.Op{Name: "op:add", Operands: []kontlang.Term{
		kontlang.Literal{Payload: 1.0},
		kontlang.Literal{Payload: 2.0},
	}}
	assert.Equal(t, want, got)
}

func TestLowerLet(t *testing.T) {
	got := lower(t, "(let n (op:add 1 2) (op:mul n 2))")
	want := kontlang.Let{
		Name:  "n",
		Bound: kontlang.Op{Name: "op:add", Operands: []kontlang.Term{kontlang.Literal{Payload: 1.0}, kontlang.Literal{Payload: 2.0}}},
		Body:  kontlang.Op{Name: "op:mul", Operands: []kontlang.Term{kontlang.Symbol{Name: "n"}, kontlang.Literal{Payload: 2.0}}},
	}
	assert.Equal(t, want, got)
}

func TestLowerLambdaAndSuspendResume(t *testing.T) {
	got := lower(t, "(! (lambda (n) (op:mul n n)))")
	want := kontlang.Suspend{Inner: kontlang.Abstract{
		Params: []string{"n"},
		Body:   kontlang.Op{Name: "op:mul", Operands: []kontlang.Term{kontlang.Symbol{Name: "n"}, kontlang.Symbol{Name: "n"}}},
	}}
	assert.Equal(t, want, got)

	got = lower(t, "(? sqr)")
	assert.Equal(t, kontlang.Resume{Inner: kontlang.Symbol{Name: "sqr"}}, got)
}

func TestLowerShiftReset(t *testing.T) {
	got := lower(t, "(reset (shift k k))")
	want := kontlang.Reset{Body: kontlang.Shift{Name: "k", Body: kontlang.Symbol{Name: "k"}}}
	assert.Equal(t, want, got)
}

func TestLowerIf(t *testing.T) {
	got := lower(t, "(if (op:eq n 2) total n)")
	want := kontlang.If{
		Cond: kontlang.Op{Name: "op:eq", Operands: []kontlang.Term{kontlang.Symbol{Name: "n"}, kontlang.Literal{Payload: 2.0}}},
		Then: kontlang.Symbol{Name: "total"},
		Else: kontlang.Symbol{Name: "n"},
	}
	assert.Equal(t, want, got)
}

func TestLowerLetrec(t *testing.T) {
	got := lower(t, "(letrec ((sqr (lambda (n) (op:mul n n)))) ((? sqr) 69))")
	want := kontlang.Letrec{
		Bindings: []kontlang.LetrecBinding{
			{Name: "sqr", Term: kontlang.Abstract{
				Params: []string{"n"},
				Body:   kontlang.Op{Name: "op:mul", Operands: []kontlang.Term{kontlang.Symbol{Name: "n"}, kontlang.Symbol{Name: "n"}}},
			}},
		},
		Body: kontlang.Apply{
			Operator: kontlang.Resume{Inner: kontlang.Symbol{Name: "sqr"}},
			Operands: []kontlang.Term{kontlang.Literal{Payload: 69.0}},
		},
	}
	assert.Equal(t, want, got)
}

func TestLowerRejectsNonSymbolLetBinder(t *testing.T) {
	node, err := surface.ParseString("test", "(let 1 2 3)")
	require.NoError(t, err)
	_, err = surface.Lower(node)
	require.Error(t, err)
}

// End-to-end: parse, lower, and run the squaring scenario through the
// numeric host, confirming the surface syntax and the core evaluator
// agree on the same program the core's own scenario test builds by hand.
func TestParseLowerRunSquareScenario(t *testing.T) {
	term := lower(t, "(letrec ((sqr (lambda (n) (op:mul n n)))) ((? sqr) 69))")
	v, err := kontlang.Run(ops.New(), term)
	require.NoError(t, err)
	assert.Equal(t, 4761.0, v.(kontlang.Scalar).Payload)
}
