// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontlang_test

import (
	"errors"
	"testing"

	"kontlang"
)

func TestMachineErrorIsSentinel(t *testing.T) {
	err := &kontlang.MachineError{Kind: kontlang.UnknownOp, Detail: "op:frobnicate"}
	if !errors.Is(err, kontlang.ErrUnknownOp) {
		t.Fatal("expected errors.Is to match on Kind regardless of Detail")
	}
	if errors.Is(err, kontlang.ErrBadLiteral) {
		t.Fatal("expected errors.Is to reject a different Kind")
	}
}

func TestMachineErrorMessage(t *testing.T) {
	err := &kontlang.MachineError{Kind: kontlang.UnboundSymbol, Detail: "x"}
	want := "kontlang: UnboundSymbol: x"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestKindString(t *testing.T) {
	if kontlang.ArityOrContext.String() != "ArityOrContext" {
		t.Fatalf("got %q", kontlang.ArityOrContext.String())
	}
}
