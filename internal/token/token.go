package token

import (
	"reckon/internal/source"
)

// Token represents a single expression token with its location.
// Value is meaningful only for Number tokens; Text carries the raw
// slice of input (the name, for Ident and Func).
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string
	Value float64
}

// IsOperator reports whether the token is a binary arithmetic operator.
func (t Token) IsOperator() bool {
	return t.Kind.IsOperator()
}

// IsLiteral reports whether the token is a numeric literal.
func (t Token) IsLiteral() bool {
	return t.Kind == Number
}
