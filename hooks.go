// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontlang

// Host is the extension seam a host application implements to give the
// otherwise-opaque Literal and Op term payloads meaning. The core never
// inspects a payload except by calling through this interface.
//
// This re-expresses the subclassing extension point of the source
// system as a plain interface: a host embeds BaseHost for the default
// behavior and overrides only the methods it needs.
type Host interface {
	// Literal maps a raw literal payload into a Value. Fails BadLiteral
	// if the payload is outside the host's accepted set.
	Literal(payload any) (Value, error)

	// Op applies a primitive operation by name to already-evaluated
	// operand values. Primitive ops are not first-class: they only ever
	// appear inside Op terms. Fails UnknownOp for unrecognized names.
	Op(name string, args []Value) (Value, error)
}

// BaseHost is the default Host implementation: every literal becomes a
// Scalar wrapping its payload unchanged, and every Op fails UnknownOp.
// Embed it in a host-defined type to pick up both defaults and override
// only what the host actually handles.
type BaseHost struct{}

// Literal wraps payload in a Scalar.
func (BaseHost) Literal(payload any) (Value, error) {
	return Scalar{Payload: payload}, nil
}

// Op always fails UnknownOp; hosts override this to implement
// arithmetic, strings, records, arrays, I/O, and so on.
func (BaseHost) Op(name string, _ []Value) (Value, error) {
	return nil, &MachineError{Kind: UnknownOp, Detail: name}
}
