// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kontlang is a small-step abstract machine for a call-by-push-value
// intermediate language with delimited control.
//
// # Design Philosophy
//
// kontlang provides:
//   - A total, single-step transition function ([Evaluator.Step]) rather
//     than a recursive interpreter, so a host can drive, inspect, and
//     modify evaluation between every machine step
//   - Persistent environments and an append-only store, so a captured
//     continuation always observes the bindings in force when it was
//     captured, no matter how many times it is later resumed
//   - A two-value result domain ([Scalar], [KontVal]) in which closures,
//     thunks, and reified continuations are all one representation
//
// # Intermediate Representation
//
// [Term] is the tagged-variant tree the machine steps. Terms split into
// two polarities: positive terms ([Literal], [Symbol], [Op], [Suspend])
// reduce to a [Value] without a machine step; negative terms ([Resume],
// [Abstract], [Apply], [Let], [Letrec], [Reset], [Shift], [If]) require
// a machine step. [Apply], [Let] and [Letrec] fold into the continuation
// within the step that reaches them rather than yielding a state of
// their own; each other negative term yields exactly one new state.
// [IsPositive] reports which polarity a term has.
//
// # State and Stepping
//
//   - [Inject]: Build the initial [State] for a term
//   - [Evaluator.Step]: Advance a [State] by one step
//   - [StepResult]: Either Done with a final [Value], or Next with a
//     [State] to keep stepping
//   - [Run], [RunWith]: Convenience drivers that loop Step to completion
//
// # Delimited Control
//
// [Reset] pushes the current continuation onto the state's meta-stack
// and installs [Top] as the active one. [Shift] captures everything
// between the active continuation and the nearest such delimiter,
// reifies it as a [KontVal], binds it, and runs its body with [Top]
// active, leaving the meta-stack as it is. When a value reaches [Top],
// exactly one saved continuation is popped off the meta-stack (the
// stack is never cleared), so nested resets compose.
//
// # Extension Hooks
//
// A host gives meaning to the two opaque term variants by implementing
// [Host]:
//
//   - [Host.Literal]: Maps a raw literal payload to a [Value]
//   - [Host.Op]: Applies a primitive operation name to evaluated operands
//   - [BaseHost]: Default Host — literals pass through as [Scalar],
//     every op fails [UnknownOp]
//
// # Errors
//
// Every fatal condition the machine can raise is a [*MachineError]
// wrapping a [Kind], comparable with errors.Is against the [ErrUnboundSymbol]
// family of sentinels.
package kontlang
