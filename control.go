// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontlang

// Continuation is the reified "rest of the computation". There are
// three variants: Top sits at the bottom of the stack, ArgK is the
// frame Apply pushes and Abstract consumes, and LetK is the frame Let
// pushes and whose body resumes once the bound term yields a value.
type Continuation interface {
	isContinuation()
}

// Top halts the machine when the meta-stack is empty, or pops the next
// continuation off the meta-stack otherwise.
type Top struct{}

func (Top) isContinuation() {}

// ArgK holds the already-evaluated operand values of an Apply, waiting
// for its operator to resolve to something that can consume them: an
// Abstract (direct function call, handled structurally by step) or a
// reified continuation value (handled by continueK's Arg rule in
// eval.go).
type ArgK struct {
	Vals []Value
	Next Continuation
}

func (*ArgK) isContinuation() {}

// LetK holds the body and captured environment of a Let (or a closure,
// when Names is empty), waiting for the bound term to produce a value.
type LetK struct {
	Names []string
	Body  Term
	Env   *Env
	Next  Continuation
}

func (*LetK) isContinuation() {}
