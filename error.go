// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontlang

import "fmt"

// Kind identifies one of the fatal error conditions the machine can
// raise. All errors are fatal to the current run and propagate out of
// Step; the machine does not catch or retry internally. A host that
// wants to recover restarts by calling Inject on a fresh State.
type Kind int

const (
	// UnboundSymbol: Symbol resolution found no binding for the name.
	UnboundSymbol Kind = iota
	// UnboundAddress: an address present in an environment binding was
	// never allocated in the store.
	UnboundAddress
	// InvalidPositive: positive was handed a negative term.
	InvalidPositive
	// IfRequiresBool: an If condition did not evaluate to a scalar bool.
	IfRequiresBool
	// ExpectedContinuation: continueK's Arg rule was handed a value that
	// was not a KontVal.
	ExpectedContinuation
	// ArityOrContext: Abstract stepped with a current continuation that
	// was not an ArgK, or whose arity did not match the parameter list.
	ArityOrContext
	// UnknownOp: the host's Op hook did not recognize the operation name.
	UnknownOp
	// BadLiteral: the host's Literal hook rejected a payload.
	BadLiteral
)

func (k Kind) String() string {
	switch k {
	case UnboundSymbol:
		return "UnboundSymbol"
	case UnboundAddress:
		return "UnboundAddress"
	case InvalidPositive:
		return "InvalidPositive"
	case IfRequiresBool:
		return "IfRequiresBool"
	case ExpectedContinuation:
		return "ExpectedContinuation"
	case ArityOrContext:
		return "ArityOrContext"
	case UnknownOp:
		return "UnknownOp"
	case BadLiteral:
		return "BadLiteral"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MachineError is the single error type every core operation returns.
// Detail carries whatever context is useful for the specific Kind (the
// unbound name, the offending op name, and so on).
type MachineError struct {
	Kind   Kind
	Detail string
}

func (e *MachineError) Error() string {
	if e.Detail == "" {
		return "kontlang: " + e.Kind.String()
	}
	return "kontlang: " + e.Kind.String() + ": " + e.Detail
}

// Is supports errors.Is(err, kontlang.ErrUnboundSymbol) style
// comparisons: it matches any other *MachineError with the same Kind,
// whatever either Detail says.
func (e *MachineError) Is(target error) bool {
	other, ok := target.(*MachineError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// errKind builds a sentinel *MachineError carrying no detail, suitable
// for errors.Is comparisons.
func errKind(k Kind) *MachineError { return &MachineError{Kind: k} }

// ErrUnboundSymbol, etc. are sentinel errors for errors.Is comparisons
// against the Kind alone, e.g. errors.Is(err, kontlang.ErrUnknownOp).
var (
	ErrUnboundSymbol        = errKind(UnboundSymbol)
	ErrUnboundAddress       = errKind(UnboundAddress)
	ErrInvalidPositive      = errKind(InvalidPositive)
	ErrIfRequiresBool       = errKind(IfRequiresBool)
	ErrExpectedContinuation = errKind(ExpectedContinuation)
	ErrArityOrContext       = errKind(ArityOrContext)
	ErrUnknownOp            = errKind(UnknownOp)
	ErrBadLiteral           = errKind(BadLiteral)
)
