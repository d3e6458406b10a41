// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontlang

// Value is the result type the machine produces. There are exactly two
// variants: Scalar wraps an opaque host payload, and KontVal wraps a
// Continuation. A "closure" is not a third variant — it is a KontVal
// whose Continuation happens to be a zero-binder Let frame (see
// control.go), which unifies thunks, closures, and reified
// continuations into one representation.
type Value interface {
	isValue()
}

// Scalar wraps a host-defined payload produced by the literal hook or a
// primitive operation.
type Scalar struct {
	Payload any
}

func (Scalar) isValue() {}

// KontVal wraps a reified continuation. Applying it via Apply resumes
// the wrapped continuation with the first supplied value. Resume on a
// KontVal that is not in closure shape does not resume it: the KontVal
// itself is delivered to the current continuation.
type KontVal struct {
	Kont Continuation
}

func (KontVal) isValue() {}

// Closure builds the value representation of a closure: a Let frame
// with no binders, whose body is the term to run and whose successor is
// Top. Resuming it (see Resume in eval.go) jumps directly into Body
// under Env, leaving whatever continuation is already in force intact —
// this is what lets a multi-parameter Abstract pick up its Arg frame
// after a closure is forced.
func Closure(body Term, env *Env) Value {
	return KontVal{Kont: &LetK{Body: body, Env: env, Next: Top{}}}
}

// AsClosure reports whether v is a closure in the sense of Closure
// above (a KontVal wrapping a zero-binder Let frame) and returns its
// body and environment.
func AsClosure(v Value) (body Term, env *Env, ok bool) {
	kv, ok := v.(KontVal)
	if !ok {
		return nil, nil, false
	}
	lk, ok := kv.Kont.(*LetK)
	if !ok || len(lk.Names) != 0 {
		return nil, nil, false
	}
	return lk.Body, lk.Env, true
}

// Bool reports whether v is a Scalar wrapping a bool, and its value.
func Bool(v Value) (bool, bool) {
	s, ok := v.(Scalar)
	if !ok {
		return false, false
	}
	b, ok := s.Payload.(bool)
	return b, ok
}
