// Package shunt rewrites infix token sequences into postfix (RPN)
// order with the shunting-yard algorithm.
package shunt

import (
	"reckon/internal/diag"
	"reckon/internal/source"
	"reckon/internal/token"
)

// Convert rewrites toks into postfix order. On failure it reports into
// r and returns ok=false; the partial output must be discarded.
//
// The operator stack holds Operator, Ident, and LParen entries. An
// Ident is a pending function name: when the matching RightParen
// drains the stack down to its LParen and finds the Ident beneath, the
// Ident moves to output as a resolved Func marker. That is how
// sqrt(x) becomes the postfix pair x sqrt.
func Convert(toks []token.Token, r diag.Reporter) ([]token.Token, bool) {
	output := make([]token.Token, 0, len(toks))
	ops := make([]token.Token, 0, 8)

	for _, tok := range toks {
		switch tok.Kind {
		case token.Number:
			output = append(output, tok)

		case token.Func:
			// Not produced by the lexer, but pass through defensively.
			output = append(output, tok)

		case token.Ident:
			ops = append(ops, tok)

		case token.Plus, token.Minus, token.UMinus, token.Star, token.Slash, token.Caret:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if !top.IsOperator() {
					break
				}
				p1, p2 := tok.Kind.Precedence(), top.Kind.Precedence()
				// Equal precedence pops only for left-associative
				// operators; that keeps ^ grouping right to left.
				if p1 < p2 || (p1 == p2 && !tok.Kind.IsRightAssociative()) {
					output = append(output, top)
					ops = ops[:len(ops)-1]
					continue
				}
				break
			}
			ops = append(ops, tok)

		case token.LParen:
			ops = append(ops, tok)

		case token.RParen:
			matched := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == token.LParen {
					matched = true
					// Function name pending beneath the paren resolves now.
					if len(ops) > 0 && ops[len(ops)-1].Kind == token.Ident {
						ident := ops[len(ops)-1]
						ops = ops[:len(ops)-1]
						output = append(output, token.Token{
							Kind: token.Func,
							Span: ident.Span.Cover(tok.Span),
							Text: ident.Text,
						})
					}
					break
				}
				output = append(output, top)
			}
			if !matched {
				report(r, tok.Span)
				return nil, false
			}

		default:
			// Invalid and EOF never reach the converter; the driver
			// stops on lex errors.
			report(r, tok.Span)
			return nil, false
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Kind == token.LParen || top.Kind == token.RParen {
			report(r, top.Span)
			return nil, false
		}
		output = append(output, top)
	}

	return output, true
}

func report(r diag.Reporter, sp source.Span) {
	if r != nil {
		r.Report(diag.SynMismatchedParen, diag.SevError, sp, "mismatched parentheses")
	}
}
