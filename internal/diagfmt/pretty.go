// Package diagfmt renders diagnostics and pipeline artifacts for the
// CLI: caret-underlined error context, token dumps, postfix dumps.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"reckon/internal/diag"
	"reckon/internal/source"
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
}

// Pretty formats each diagnostic as
//
//	<SEV> <CODE>: <message>
//	  <expression>
//	  <caret underline over the primary span>
//
// Expressions are single lines, so no line/column resolution is needed;
// the caret sits directly under the offending bytes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	sevColor := map[diag.Severity]*color.Color{
		diag.SevInfo:    color.New(color.FgCyan),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevError:   color.New(color.FgRed, color.Bold),
	}

	for _, d := range bag.Items() {
		head := fmt.Sprintf("%s %s", d.Severity, d.Code.ID())
		if opts.Color {
			if c, ok := sevColor[d.Severity]; ok {
				head = c.Sprint(head)
			}
		}
		fmt.Fprintf(w, "%s: %s\n", head, d.Message)

		file := fs.Get(d.Primary.File)
		if file == nil || len(file.Content) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s\n", file.Content)
		fmt.Fprintf(w, "  %s\n", underline(d.Primary, len(file.Content)))

		for _, n := range d.Notes {
			fmt.Fprintf(w, "  note: %s\n", n.Msg)
		}
	}
}

// underline builds the ^~~~ marker row for a span.
func underline(sp source.Span, width int) string {
	start, end := int(sp.Start), int(sp.End)
	if start > width {
		start = width
	}
	if end > width {
		end = width
	}
	if end <= start {
		end = start + 1
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", start))
	b.WriteString("^")
	if end-start > 1 {
		b.WriteString(strings.Repeat("~", end-start-1))
	}
	return b.String()
}
