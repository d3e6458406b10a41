// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontlang

// Evaluator drives the small-step transition function over a Host's
// literal and op hooks. It carries no other state; all machine state
// lives in the State value threaded through Step.
type Evaluator struct {
	Host Host
}

// New returns an Evaluator using host, or BaseHost{} if host is nil.
func New(host Host) *Evaluator {
	if host == nil {
		host = BaseHost{}
	}
	return &Evaluator{Host: host}
}

// positive reduces a positive term to a Value without producing a new
// State. It loops rather than recurses on Suspend because !!x and !x
// must evaluate identically: a Suspend wrapping an already-positive
// term just peels off.
func (e *Evaluator) positive(expr Term, env *Env, store *Store) (Value, error) {
	for {
		switch t := expr.(type) {
		case Literal:
			return e.Host.Literal(t.Payload)

		case Symbol:
			if t.Name == DiscardSymbol {
				return KontVal{Kont: Top{}}, nil
			}
			b, ok := env.Lookup(t.Name)
			if !ok {
				return nil, &MachineError{Kind: UnboundSymbol, Detail: t.Name}
			}
			if b.hasAddr {
				return store.Get(b.addr)
			}
			return Closure(b.def, env), nil

		case Op:
			vals := make([]Value, len(t.Operands))
			for i, operand := range t.Operands {
				v, err := e.positive(operand, env, store)
				if err != nil {
					return nil, err
				}
				vals[i] = v
			}
			return e.Host.Op(t.Name, vals)

		case Suspend:
			if !IsPositive(t.Inner) {
				return Closure(t.Inner, env), nil
			}
			expr = t.Inner
			continue

		default:
			return nil, &MachineError{Kind: InvalidPositive}
		}
	}
}

// continueK delivers val to kont, looping until it either produces a
// new State or the machine halts.
func (e *Evaluator) continueK(val Value, kont Continuation, store *Store, meta []Continuation) (StepResult, error) {
	for {
		switch k := kont.(type) {
		case Top:
			if len(meta) == 0 {
				return StepResult{Done: true, Value: val}, nil
			}
			kont, meta = meta[len(meta)-1], meta[:len(meta)-1]
			continue

		case *ArgK:
			kv, ok := val.(KontVal)
			if !ok {
				return StepResult{}, &MachineError{Kind: ExpectedContinuation}
			}
			meta = append(meta, k.Next)
			arg := Value(Scalar{Payload: nil})
			if len(k.Vals) > 0 {
				arg = k.Vals[0]
			}
			val, kont = arg, kv.Kont
			continue

		case *LetK:
			switch len(k.Names) {
			case 0:
				return StepResult{Next: &State{Control: k.Body, Env: k.Env, Store: store, Kont: k.Next, Meta: meta}}, nil
			case 1:
				addr := store.Alloc(val)
				newEnv := k.Env.ExtendAddr(k.Names[0], addr)
				return StepResult{Next: &State{Control: k.Body, Env: newEnv, Store: store, Kont: k.Next, Meta: meta}}, nil
			default:
				kv, ok := val.(KontVal)
				if !ok {
					return StepResult{}, &MachineError{Kind: ExpectedContinuation}
				}
				argK, ok := kv.Kont.(*ArgK)
				if !ok || len(argK.Vals) != len(k.Names) {
					return StepResult{}, &MachineError{Kind: ArityOrContext}
				}
				newEnv := bindMany(k.Env, k.Names, argK.Vals, store)
				return StepResult{Next: &State{Control: k.Body, Env: newEnv, Store: store, Kont: k.Next, Meta: meta}}, nil
			}

		default:
			panic("kontlang: unknown continuation variant")
		}
	}
}

// Step advances state by exactly one small step: Apply, Let, and
// Letrec fold into the continuation and loop inside this call without
// yielding; every other negative term produces exactly one new State;
// positive terms reduce via positive and are delivered to the current
// continuation via continueK.
func (e *Evaluator) Step(s *State) (StepResult, error) {
	control, env, store, kont, meta := s.Control, s.Env, s.Store, s.Kont, s.Meta

	for {
		switch t := control.(type) {
		case Apply:
			vals := make([]Value, len(t.Operands))
			for i, operand := range t.Operands {
				v, err := e.positive(operand, env, store)
				if err != nil {
					return StepResult{}, err
				}
				vals[i] = v
			}
			kont = &ArgK{Vals: vals, Next: kont}
			control = t.Operator
			continue

		case Let:
			kont = &LetK{Names: []string{t.Name}, Body: t.Body, Env: env, Next: kont}
			control = t.Bound
			continue

		case Letrec:
			for _, b := range t.Bindings {
				env = env.ExtendTerm(b.Name, b.Term)
			}
			control = t.Body
			continue

		case Shift:
			addr := store.Alloc(KontVal{Kont: kont})
			env = env.ExtendAddr(t.Name, addr)
			return StepResult{Next: &State{Control: t.Body, Env: env, Store: store, Kont: Top{}, Meta: meta}}, nil

		case Reset:
			meta = append(meta, kont)
			return StepResult{Next: &State{Control: t.Body, Env: env, Store: store, Kont: Top{}, Meta: meta}}, nil

		case If:
			cv, err := e.positive(t.Cond, env, store)
			if err != nil {
				return StepResult{}, err
			}
			bv, ok := Bool(cv)
			if !ok {
				return StepResult{}, &MachineError{Kind: IfRequiresBool}
			}
			branch := t.Else
			if bv {
				branch = t.Then
			}
			return StepResult{Next: &State{Control: branch, Env: env, Store: store, Kont: kont, Meta: meta}}, nil

		case Resume:
			v, err := e.positive(t.Inner, env, store)
			if err != nil {
				return StepResult{}, err
			}
			if body, clEnv, ok := AsClosure(v); ok {
				return StepResult{Next: &State{Control: body, Env: clEnv, Store: store, Kont: kont, Meta: meta}}, nil
			}
			return e.continueK(v, kont, store, meta)

		case Abstract:
			argK, ok := kont.(*ArgK)
			if !ok || len(argK.Vals) != len(t.Params) {
				return StepResult{}, &MachineError{Kind: ArityOrContext}
			}
			newEnv := bindMany(env, t.Params, argK.Vals, store)
			return StepResult{Next: &State{Control: t.Body, Env: newEnv, Store: store, Kont: argK.Next, Meta: meta}}, nil

		default: // positive term: Literal, Symbol, Op, Suspend
			v, err := e.positive(control, env, store)
			if err != nil {
				return StepResult{}, err
			}
			return e.continueK(v, kont, store, meta)
		}
	}
}
