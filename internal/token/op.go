package token

// Precedence levels for binary operators. Higher binds tighter.
const (
	precAdditive       = 1 // + -
	precMultiplicative = 2 // * /
	precPower          = 3 // ^
	precUnary          = 4 // unary-minus expansion
)

// IsOperator reports whether the kind is a binary arithmetic operator.
func (k Kind) IsOperator() bool {
	switch k {
	case Plus, Minus, UMinus, Star, Slash, Caret:
		return true
	default:
		return false
	}
}

// Precedence returns the binding strength of a binary operator kind,
// or -1 for non-operators.
func (k Kind) Precedence() int {
	switch k {
	case Plus, Minus:
		return precAdditive
	case Star, Slash:
		return precMultiplicative
	case Caret:
		return precPower
	case UMinus:
		return precUnary
	default:
		return -1
	}
}

// IsRightAssociative reports whether equal-precedence chains of the
// operator group right to left. Power does: 2^3^2 is 2^(3^2). The
// unary-minus expansion does too, so --2 nests as 0-(0-2).
func (k Kind) IsRightAssociative() bool {
	return k == Caret || k == UMinus
}
