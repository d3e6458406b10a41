// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package surface

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/fatih/color"
)

// Node is one parsed s-expression: either a bare Atom token or a
// parenthesized List of further Nodes. Exactly one of the two is set.
type Node struct {
	Pos  lexer.Position
	List *List  `  @@`
	Atom *string `| @Atom`
}

// List is a parenthesized sequence of Nodes, the sole compound form
// the surface grammar knows about; everything else (let, if, lambda,
// and so on) is recovered from a List's leading Atom by Lower.
type List struct {
	Pos   lexer.Position
	Items []*Node `"(" @@* ")"`
}

var sexprParser = participle.MustBuild[Node](
	participle.Lexer(Lexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// ParseString parses a single top-level s-expression out of src.
// filename is used only for error positions.
func ParseString(filename, src string) (*Node, error) {
	node, err := sexprParser.ParseString(filename, src)
	if err != nil {
		reportParseError(src, err)
		return nil, err
	}
	return node, nil
}

// ParseFile reads path and parses its single top-level s-expression.
func ParseFile(path string) (*Node, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("surface: read %s: %w", path, err)
	}
	return ParseString(path, string(source))
}

func reportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("surface: unexpected error: %s", err)
		return
	}
	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("surface: syntax error at unknown location: %s", err)
		return
	}
	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(0, pos.Column-1)) + "^"
	color.Red("surface: syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
