// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontlang

// Run injects term and drives Step to completion against host,
// returning the final Value. It is a convenience for callers that
// don't need to interleave anything between steps (inspect state,
// service I/O, apply a timeout); those callers should call Inject and
// Step directly instead.
func Run(host Host, term Term) (Value, error) {
	ev := New(host)
	state := Inject(term)
	for {
		res, err := ev.Step(state)
		if err != nil {
			return nil, err
		}
		if res.Done {
			return res.Value, nil
		}
		state = res.Next
	}
}

// RunWith is like Run but reuses an already-constructed Evaluator,
// letting the caller drive several runs against one Host without
// reconstructing it each time.
func RunWith(ev *Evaluator, term Term) (Value, error) {
	state := Inject(term)
	for {
		res, err := ev.Step(state)
		if err != nil {
			return nil, err
		}
		if res.Done {
			return res.Value, nil
		}
		state = res.Next
	}
}
