package lexer

import (
	"reckon/internal/source"
	"reckon/internal/token"
)

// Lexer scans one expression buffer into tokens.
//
// It keeps a single piece of state beyond the cursor: expectUnary,
// true whenever the next '-' would sit in operand position (start of
// input, right after an operator, right after '('). A '-' seen there
// lexes as the pair Number(0), Minus so the later stages only ever see
// binary subtraction. Note the consequence: -2^2 parses as (0-2)^2 = 4.
// This is the contracted behavior, not a defect.
type Lexer struct {
	file        *source.File
	cursor      Cursor
	opts        Options
	pending     *token.Token // second half of an expanded unary minus
	expectUnary bool
}

// New creates a lexer over file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:        file,
		cursor:      NewCursor(file),
		opts:        opts,
		expectUnary: true,
	}
}

// Next returns the next significant token. After EOF it always
// returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.pending != nil {
		tok := *lx.pending
		lx.pending = nil
		return tok
	}

	lx.skipSpace()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isDec(ch) || ch == '.':
		return lx.scanNumber()
	case isAlpha(ch):
		return lx.scanIdent()
	default:
		return lx.scanOperatorOrParen()
	}
}

// Tokenize drains the lexer, returning every significant token up to
// and excluding EOF.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	toks := make([]token.Token, 0, 8)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func (lx *Lexer) skipSpace() {
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
