// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontlang_test

import (
	"testing"

	"kontlang"
)

func TestStringRendersApply(t *testing.T) {
	term := kontlang.Apply{
		Operator: kontlang.Symbol{Name: "f"},
		Operands: []kontlang.Term{kontlang.Literal{Payload: 1.0}},
	}
	got := kontlang.String(term)
	want := "(f 1)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStringRendersLet(t *testing.T) {
	term := kontlang.Let{
		Name:  "x",
		Bound: kontlang.Literal{Payload: 1.0},
		Body:  kontlang.Symbol{Name: "x"},
	}
	got := kontlang.String(term)
	want := "(let x 1 x)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
