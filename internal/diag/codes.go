package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Ranges partition by pipeline stage:
// 1xxx lexical, 2xxx syntactic, 3xxx evaluation, 9xxx internal.
type Code uint16

const (
	// UnknownCode is the fallback for unclassified diagnostics.
	UnknownCode Code = 0

	// Лексические
	LexUnknownChar Code = 1001
	LexBadNumber   Code = 1002

	// Синтаксические
	SynMismatchedParen Code = 2001

	// Вычислительные
	EvalInsufficientOperands Code = 3001
	EvalDivisionByZero       Code = 3002
	EvalDomain               Code = 3003
	EvalUnknownFunction      Code = 3004
	EvalNotFinite            Code = 3005
	EvalMalformed            Code = 3006

	// Internal-consistency defects: tokens that must not survive the
	// converter reached the evaluator. Indicates a converter bug, not
	// a user error.
	InternalBadToken Code = 9001
)

var codeDescription = map[Code]string{
	UnknownCode:              "unknown error",
	LexUnknownChar:           "unknown character",
	LexBadNumber:             "malformed number",
	SynMismatchedParen:       "mismatched parentheses",
	EvalInsufficientOperands: "insufficient operands",
	EvalDivisionByZero:       "division by zero",
	EvalDomain:               "domain error",
	EvalUnknownFunction:      "unknown function",
	EvalNotFinite:            "invalid result",
	EvalMalformed:            "malformed expression",
	InternalBadToken:         "internal token error",
}

// ID returns the stable printable identifier, e.g. "LEX1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVAL%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("INT%04d", ic)
	}
	return "E0000"
}

// Title returns the short human description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

// IsInternal reports whether the code marks a pipeline defect rather
// than a user-facing expression error.
func (c Code) IsInternal() bool {
	return c >= 9000
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
