// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontlang

// Env maps names to either a store address or a local term definition
// (the latter used by Letrec, where the name's value is the term
// itself, re-closed on every lookup).
//
// Env is persistent: Extend never mutates the receiver, it returns a
// new frame chained in front of it. This is what lets a continuation
// captured by Shift, or a closure built over some Env, keep observing
// the bindings that were in force at capture time even as sibling
// branches of the computation go on extending their own copies.
type Env struct {
	name   string
	bind   binding
	parent *Env
}

// binding is either a store address (hasAddr) or a raw term definition.
type binding struct {
	addr    Address
	hasAddr bool
	def     Term
}

// HasAddr reports whether b is a store-address binding rather than a
// raw term definition (the latter only arises from Letrec).
func (b binding) HasAddr() bool { return b.hasAddr }

// Addr returns the bound store address. Only meaningful if HasAddr.
func (b binding) Addr() Address { return b.addr }

// Def returns the bound term definition. Only meaningful if !HasAddr.
func (b binding) Def() Term { return b.def }

// NewEnv returns the empty environment.
func NewEnv() *Env { return nil }

// Extend returns a new environment that shadows name in e (e itself is
// unaffected) with the given binding.
func (e *Env) Extend(name string, b binding) *Env {
	return &Env{name: name, bind: b, parent: e}
}

// ExtendAddr is a convenience for the common case of binding a name
// directly to a store address.
func (e *Env) ExtendAddr(name string, addr Address) *Env {
	return e.Extend(name, binding{addr: addr, hasAddr: true})
}

// ExtendTerm is a convenience for binding a name directly to a term
// definition, as Letrec does.
func (e *Env) ExtendTerm(name string, t Term) *Env {
	return e.Extend(name, binding{def: t})
}

// Lookup walks the chain from e outward, returning the nearest binding
// for name.
func (e *Env) Lookup(name string) (binding, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur.bind, true
		}
	}
	return binding{}, false
}

// bindMany extends env with names bound pairwise to vals, each getting
// a fresh store address. Used by Abstract application and by LetK's
// multi-binder case.
func bindMany(env *Env, names []string, vals []Value, store *Store) *Env {
	for i, name := range names {
		addr := store.Alloc(vals[i])
		env = env.ExtendAddr(name, addr)
	}
	return env
}
