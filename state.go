// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontlang

// State is the full machine state threaded through Step: the current
// control term, the environment and store in force, the current
// continuation, and the meta-stack of continuations saved by Reset.
type State struct {
	Control Term
	Env     *Env
	Store   *Store
	Kont    Continuation
	Meta    []Continuation
}

// StepResult is the outcome of one Step call: either the machine halted
// with a final Value (Done), or it produced a new State to keep
// stepping (Next is non-nil).
type StepResult struct {
	Done  bool
	Value Value
	Next  *State
}

// Inject builds the initial state for term: empty environment, empty
// store, Top continuation, empty meta-stack.
func Inject(term Term) *State {
	return &State{
		Control: term,
		Env:     NewEnv(),
		Store:   NewStore(),
		Kont:    Top{},
		Meta:    nil,
	}
}
