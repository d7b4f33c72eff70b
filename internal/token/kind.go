package token

// Kind represents the category of an expression token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the expression input.
	EOF

	// Number represents a numeric literal token.
	Number
	// Ident represents a bare identifier. Idents only live on the
	// converter's operator stack; they never reach final postfix output.
	Ident
	// Func represents a resolved one-argument call marker in postfix output.
	Func

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// UMinus represents the subtraction half of a unary-minus
	// expansion. The lexer rewrites a unary '-' into Number(0)
	// followed by UMinus; it evaluates exactly like Minus but binds
	// tighter than Caret so that -2^2 means (0-2)^2.
	UMinus // - (unary expansion)
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Caret represents the power operator token.
	Caret // ^

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Number:
		return "Number"
	case Ident:
		return "Ident"
	case Func:
		return "Func"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case UMinus:
		return "UMinus"
	case Star:
		return "Star"
	case Slash:
		return "Slash"
	case Caret:
		return "Caret"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	}
	return "Unknown"
}
