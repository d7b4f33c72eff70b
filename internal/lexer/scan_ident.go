package lexer

import (
	"reckon/internal/token"
)

// scanIdent consumes an identifier: an ASCII letter followed by any run
// of letters, digits, or underscores. Identifiers are function-name
// candidates; the converter resolves them when their argument list
// closes.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.expectUnary = false
	return token.Token{
		Kind: token.Ident,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
