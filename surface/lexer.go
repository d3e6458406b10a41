// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package surface parses the s-expression concrete syntax into
// kontlang terms: a generic reader produces an untyped Node tree, and
// Lower interprets that tree against the fixed set of special forms
// (let, letrec, lambda/λ, reset, shift, if, !, ?, op: names).
package surface

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes s-expression source. Atom covers numbers, booleans,
// symbols, and the standalone "!" and "?" prefix operators; Paren
// covers the two grouping punctuation marks. Comments run to end of
// line.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `;[^\n]*`, nil},
		{"Atom", `-?[0-9]+(?:\.[0-9]+)?|[a-zA-Zλ_][a-zA-Z0-9_:!?+\-*/<>=]*|[!?]`, nil},
		{"Paren", `[()]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
