package diagfmt_test

import (
	"strings"
	"testing"

	"reckon/internal/diag"
	"reckon/internal/diagfmt"
	"reckon/internal/driver"
	"reckon/internal/source"
)

func TestPretty_CaretUnderOffendingChar(t *testing.T) {
	res := driver.Run("2 @ 3")
	if res.Err() == nil {
		t.Fatal("expected a lex error")
	}

	var sb strings.Builder
	diagfmt.Pretty(&sb, res.Bag, res.FileSet, diagfmt.PrettyOpts{})
	out := sb.String()

	if !strings.Contains(out, "LEX1001") {
		t.Errorf("output should carry the code ID:\n%s", out)
	}
	if !strings.Contains(out, "unknown character") {
		t.Errorf("output should carry the message:\n%s", out)
	}
	if !strings.Contains(out, "2 @ 3") {
		t.Errorf("output should echo the expression:\n%s", out)
	}
	// '@' стоит на смещении 2; каретка должна стоять под ним
	if !strings.Contains(out, "\n    ^") {
		t.Errorf("caret misplaced:\n%s", out)
	}
}

func TestPretty_MultiByteSpanUnderline(t *testing.T) {
	bag := diag.NewBag(4)
	fs := source.NewFileSet()
	fs.AddVirtual("expr", []byte("sqrt(-1)"))
	bag.Add(diag.NewError(diag.EvalDomain, source.Span{File: 0, Start: 0, End: 4}, "domain error"))

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	if !strings.Contains(sb.String(), "^~~~") {
		t.Errorf("expected a 4-wide underline:\n%s", sb.String())
	}
}

func TestFormatTokens(t *testing.T) {
	res := driver.Run("1 + 2")

	var pretty strings.Builder
	if err := diagfmt.FormatTokensPretty(&pretty, res.Tokens); err != nil {
		t.Fatalf("FormatTokensPretty error: %v", err)
	}
	for _, want := range []string{"Number", "Plus"} {
		if !strings.Contains(pretty.String(), want) {
			t.Errorf("pretty dump missing %q:\n%s", want, pretty.String())
		}
	}

	var js strings.Builder
	if err := diagfmt.FormatTokensJSON(&js, res.Tokens); err != nil {
		t.Fatalf("FormatTokensJSON error: %v", err)
	}
	if !strings.Contains(js.String(), `"kind": "Plus"`) {
		t.Errorf("JSON dump missing Plus kind:\n%s", js.String())
	}
}

func TestFormatPostfix(t *testing.T) {
	res := driver.Run("2 + 3 * 4")

	var sb strings.Builder
	if err := diagfmt.FormatPostfixPretty(&sb, res.Postfix); err != nil {
		t.Fatalf("FormatPostfixPretty error: %v", err)
	}
	if got := strings.TrimSpace(sb.String()); got != "2 3 4 * +" {
		t.Errorf("postfix dump = %q, want \"2 3 4 * +\"", got)
	}
}
