package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"reckon/internal/source"
	"reckon/internal/token"
)

// TokenOutput is the JSON shape of one dumped token.
type TokenOutput struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Value float64     `json:"value,omitempty"`
	Span  source.Span `json:"span"`
}

// FormatTokensPretty dumps a token sequence one per line.
func FormatTokensPretty(w io.Writer, toks []token.Token) error {
	for i, tok := range toks {
		fmt.Fprintf(w, "%3d: %-8s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		if tok.Kind == token.Number {
			fmt.Fprintf(w, " = %v", tok.Value)
		}
		fmt.Fprintf(w, " at %d-%d", tok.Span.Start, tok.Span.End)
		fmt.Fprintln(w)
	}
	return nil
}

// FormatTokensJSON dumps a token sequence as indented JSON.
func FormatTokensJSON(w io.Writer, toks []token.Token) error {
	output := make([]TokenOutput, 0, len(toks))
	for _, tok := range toks {
		output = append(output, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Value: tok.Value,
			Span:  tok.Span,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// FormatPostfixPretty dumps a postfix sequence on one line, operands
// and operators space-separated in execution order.
func FormatPostfixPretty(w io.Writer, seq []token.Token) error {
	for i, tok := range seq {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, tok.Text)
	}
	fmt.Fprintln(w)
	return nil
}
