package lexer

import (
	"reckon/internal/diag"
	"reckon/internal/source"
)

// Options configures a Lexer. A nil Reporter drops diagnostics but the
// lexer still marks the offending token Invalid.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg)
	}
}
