package lexer

import (
	"fmt"
	"strconv"

	"reckon/internal/diag"
	"reckon/internal/token"
)

// scanNumber consumes a decimal literal: a digit run with at most one
// '.', a leading '.' allowed (".5"). A second '.' simply terminates the
// token; it is not an error here ("1.2.3" lexes as Number(1.2) then
// Number(.3)).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	dotSeen := false

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isDec(b):
			lx.cursor.Bump()
		case b == '.':
			if dotSeen {
				goto emit
			}
			dotSeen = true
			lx.cursor.Bump()
		default:
			goto emit
		}
	}

emit:
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	// Defensive: the digit/dot scan admits "." alone, which is not a
	// number.
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		lx.report(diag.LexBadNumber, sp, fmt.Sprintf("malformed number: %q", text))
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	lx.expectUnary = false
	return token.Token{Kind: token.Number, Span: sp, Text: text, Value: value}
}
