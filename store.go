// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontlang

import (
	"fmt"

	"github.com/google/uuid"
)

// Address is a fresh, opaque identifier for a store slot. Format is
// irrelevant to semantics; only uniqueness within a run matters.
type Address string

// AddrGen mints a fresh Address on every call. NewStore uses a
// monotonic counter by default, which keeps the machine's address
// trace deterministic and is cheap enough for the single-threaded
// evaluator loop; NewUUIDStore swaps in a UUID generator for hosts that
// want addresses indistinguishable from a distributed identifier space
// (e.g. when a store is later backed by shared external state).
type AddrGen func() Address

func counterAddrGen() AddrGen {
	var n uint64
	return func() Address {
		n++
		return Address(fmt.Sprintf("a%d", n))
	}
}

func uuidAddrGen() AddrGen {
	return func() Address {
		return Address(uuid.NewString())
	}
}

// Store is an address -> Value mapping. Writes are never mutated after
// binding: the store only grows during a run, so unlike Env it is safe
// to share by reference across every branch of a computation, including
// ones reached through a reified continuation.
type Store struct {
	slots map[Address]Value
	gen   AddrGen
}

// NewStore returns an empty store with deterministic, counter-based
// addresses.
func NewStore() *Store {
	return NewStoreWithGen(counterAddrGen())
}

// NewUUIDStore returns an empty store whose addresses are UUIDs.
func NewUUIDStore() *Store {
	return NewStoreWithGen(uuidAddrGen())
}

// NewStoreWithGen returns an empty store using the given address
// generator.
func NewStoreWithGen(gen AddrGen) *Store {
	return &Store{slots: make(map[Address]Value), gen: gen}
}

// Alloc writes v to a fresh address and returns it.
func (s *Store) Alloc(v Value) Address {
	addr := s.gen()
	s.slots[addr] = v
	return addr
}

// Get reads the value at addr, failing UnboundAddress if it was never
// allocated.
func (s *Store) Get(addr Address) (Value, error) {
	v, ok := s.slots[addr]
	if !ok {
		return nil, &MachineError{Kind: UnboundAddress, Detail: string(addr)}
	}
	return v, nil
}

// Len reports how many addresses have been allocated so far. Exposed
// for hosts that want to watch store growth (spec ships no garbage
// collection; a long-running host may use this to decide when to
// restart the machine with a fresh store).
func (s *Store) Len() int { return len(s.slots) }
