package lexer

import (
	"fmt"

	"reckon/internal/diag"
	"reckon/internal/token"
)

// scanOperatorOrParen consumes a single operator or parenthesis byte.
// Anything unrecognized is a fatal lex error naming the character.
func (lx *Lexer) scanOperatorOrParen() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	switch ch {
	case '+':
		// A leading '+' is still binary Add; "+5" fails later with
		// insufficient operands.
		lx.expectUnary = true
		return token.Token{Kind: token.Plus, Span: sp, Text: text}
	case '-':
		if lx.expectUnary {
			// Unary minus: expand to 0 - x. UMinus binds tighter than
			// Caret so the expansion negates only the next operand.
			minus := token.Token{Kind: token.UMinus, Span: sp, Text: text}
			lx.pending = &minus
			return token.Token{Kind: token.Number, Span: sp, Text: "0", Value: 0}
		}
		lx.expectUnary = true
		return token.Token{Kind: token.Minus, Span: sp, Text: text}
	case '*':
		lx.expectUnary = true
		return token.Token{Kind: token.Star, Span: sp, Text: text}
	case '/':
		lx.expectUnary = true
		return token.Token{Kind: token.Slash, Span: sp, Text: text}
	case '^':
		lx.expectUnary = true
		return token.Token{Kind: token.Caret, Span: sp, Text: text}
	case '(':
		lx.expectUnary = true
		return token.Token{Kind: token.LParen, Span: sp, Text: text}
	case ')':
		lx.expectUnary = false
		return token.Token{Kind: token.RParen, Span: sp, Text: text}
	default:
		lx.report(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character: %q", ch))
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
}
