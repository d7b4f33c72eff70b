// Package rpn executes postfix token sequences on a value stack.
package rpn

import (
	"fmt"
	"math"

	"reckon/internal/diag"
	"reckon/internal/source"
	"reckon/internal/token"
)

// Eval runs the postfix sequence and returns the single final value.
// Failures are reported into r; ok=false means the value is unusable.
func Eval(seq []token.Token, r diag.Reporter) (float64, bool) {
	stack := make([]float64, 0, 8)

	pop := func() (float64, bool) {
		if len(stack) == 0 {
			return 0, false
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, true
	}

	for _, tok := range seq {
		switch tok.Kind {
		case token.Number:
			stack = append(stack, tok.Value)

		case token.Func:
			x, ok := pop()
			if !ok {
				report(r, diag.EvalInsufficientOperands, tok.Span, "insufficient operands")
				return 0, false
			}
			v, ok := apply(tok, x, r)
			if !ok {
				return 0, false
			}
			// Only function results are checked for finiteness;
			// operator results flow through unchecked.
			if math.IsNaN(v) || math.IsInf(v, 0) {
				report(r, diag.EvalNotFinite, tok.Span, "invalid result")
				return 0, false
			}
			stack = append(stack, v)

		case token.Plus, token.Minus, token.UMinus, token.Star, token.Slash, token.Caret:
			// b pops first: it is the right-hand operand.
			b, okB := pop()
			a, okA := pop()
			if !okB || !okA {
				report(r, diag.EvalInsufficientOperands, tok.Span, "insufficient operands")
				return 0, false
			}
			var v float64
			switch tok.Kind {
			case token.Plus:
				v = a + b
			case token.Minus, token.UMinus:
				v = a - b
			case token.Star:
				v = a * b
			case token.Slash:
				if b == 0 {
					report(r, diag.EvalDivisionByZero, tok.Span, "division by zero")
					return 0, false
				}
				v = a / b
			case token.Caret:
				// Ordinary IEEE power, no extra validation.
				v = math.Pow(a, b)
			}
			stack = append(stack, v)

		default:
			// Parens and bare identifiers must not survive conversion;
			// reaching here is a converter defect, not a user error.
			report(r, diag.InternalBadToken, tok.Span,
				fmt.Sprintf("internal: %v token in postfix stream", tok.Kind))
			return 0, false
		}
	}

	if len(stack) != 1 {
		report(r, diag.EvalMalformed, endSpan(seq), "malformed expression")
		return 0, false
	}
	return stack[0], true
}

func report(r diag.Reporter, code diag.Code, sp source.Span, msg string) {
	if r != nil {
		r.Report(code, diag.SevError, sp, msg)
	}
}

func endSpan(seq []token.Token) source.Span {
	if len(seq) == 0 {
		return source.Span{}
	}
	sp := seq[len(seq)-1].Span
	sp.Start = sp.End
	return sp
}
