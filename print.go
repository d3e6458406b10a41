// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kontlang

import (
	"fmt"
	"strings"
)

// String renders t back as the s-expression surface syntax it was
// presumably parsed from. This is a debugging aid, not a parser — the
// core never reads its own output back in.
func String(t Term) string {
	var b strings.Builder
	writeTerm(&b, t)
	return b.String()
}

func writeTerm(b *strings.Builder, t Term) {
	switch t := t.(type) {
	case Literal:
		fmt.Fprintf(b, "%v", t.Payload)
	case Symbol:
		b.WriteString(t.Name)
	case Op:
		fmt.Fprintf(b, "(%s", t.Name)
		for _, o := range t.Operands {
			b.WriteByte(' ')
			writeTerm(b, o)
		}
		b.WriteByte(')')
	case Suspend:
		b.WriteString("(! ")
		writeTerm(b, t.Inner)
		b.WriteByte(')')
	case Resume:
		b.WriteString("(? ")
		writeTerm(b, t.Inner)
		b.WriteByte(')')
	case Abstract:
		b.WriteString("(λ (")
		b.WriteString(strings.Join(t.Params, " "))
		b.WriteString(") ")
		writeTerm(b, t.Body)
		b.WriteByte(')')
	case Apply:
		b.WriteByte('(')
		writeTerm(b, t.Operator)
		for _, o := range t.Operands {
			b.WriteByte(' ')
			writeTerm(b, o)
		}
		b.WriteByte(')')
	case Let:
		fmt.Fprintf(b, "(let %s ", t.Name)
		writeTerm(b, t.Bound)
		b.WriteByte(' ')
		writeTerm(b, t.Body)
		b.WriteByte(')')
	case Letrec:
		b.WriteString("(letrec (")
		for i, bind := range t.Bindings {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "(%s ", bind.Name)
			writeTerm(b, bind.Term)
			b.WriteByte(')')
		}
		b.WriteString(") ")
		writeTerm(b, t.Body)
		b.WriteByte(')')
	case Reset:
		b.WriteString("(reset ")
		writeTerm(b, t.Body)
		b.WriteByte(')')
	case Shift:
		fmt.Fprintf(b, "(shift %s ", t.Name)
		writeTerm(b, t.Body)
		b.WriteByte(')')
	case If:
		b.WriteString("(if ")
		writeTerm(b, t.Cond)
		b.WriteByte(' ')
		writeTerm(b, t.Then)
		b.WriteByte(' ')
		writeTerm(b, t.Else)
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "<unknown term %T>", t)
	}
}
