// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontlang_test

import (
	"testing"

	"kontlang"
)

func TestEnvLookupMiss(t *testing.T) {
	env := kontlang.NewEnv()
	if _, ok := env.Lookup("x"); ok {
		t.Fatal("expected miss on empty environment")
	}
}

func TestEnvExtendShadows(t *testing.T) {
	env := kontlang.NewEnv().ExtendAddr("x", "a1")
	env2 := env.ExtendAddr("x", "a2")

	b, ok := env2.Lookup("x")
	if !ok {
		t.Fatal("expected hit")
	}
	if !b.HasAddr() || b.Addr() != "a2" {
		t.Fatalf("got %+v, want addr a2", b)
	}

	// The original frame is untouched: extending never mutates.
	b1, ok := env.Lookup("x")
	if !ok || !b1.HasAddr() || b1.Addr() != "a1" {
		t.Fatalf("original env frame was mutated: %+v", b1)
	}
}

func TestEnvExtendTermForLetrec(t *testing.T) {
	term := kontlang.Literal{Payload: "body"}
	env := kontlang.NewEnv().ExtendTerm("f", term)

	b, ok := env.Lookup("f")
	if !ok {
		t.Fatal("expected hit")
	}
	if b.HasAddr() {
		t.Fatal("expected a term binding, not an address binding")
	}
	if b.Def() != term {
		t.Fatalf("got %#v, want %#v", b.Def(), term)
	}
}
