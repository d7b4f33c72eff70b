package rpn

import (
	"fmt"
	"math"

	"reckon/internal/diag"
	"reckon/internal/token"
)

// apply dispatches a one-argument function call by name.
// Arguments to the trigonometric functions are radians.
func apply(tok token.Token, x float64, r diag.Reporter) (float64, bool) {
	switch tok.Text {
	case "sqrt":
		if x < 0 {
			report(r, diag.EvalDomain, tok.Span,
				fmt.Sprintf("domain error: sqrt of negative number %v", x))
			return 0, false
		}
		return math.Sqrt(x), true
	case "sin":
		return math.Sin(x), true
	case "cos":
		return math.Cos(x), true
	case "tan":
		return math.Tan(x), true
	default:
		report(r, diag.EvalUnknownFunction, tok.Span,
			fmt.Sprintf("unknown function: %s", tok.Text))
		return 0, false
	}
}
