package diag_test

import (
	"testing"

	"reckon/internal/diag"
	"reckon/internal/source"
)

func TestBagCap(t *testing.T) {
	bag := diag.NewBag(2)

	if !bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{}, "one")) {
		t.Fatal("first Add should succeed")
	}
	if !bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{}, "two")) {
		t.Fatal("second Add should succeed")
	}
	if bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{}, "three")) {
		t.Error("third Add should be dropped at cap")
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
}

func TestBagFirstError(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevInfo, diag.UnknownCode, source.Span{}, "note"))
	bag.Add(diag.NewError(diag.EvalDivisionByZero, source.Span{}, "division by zero"))
	bag.Add(diag.NewError(diag.EvalMalformed, source.Span{}, "malformed expression"))

	d, ok := bag.FirstError()
	if !ok {
		t.Fatal("expected an error diagnostic")
	}
	if d.Code != diag.EvalDivisionByZero {
		t.Errorf("FirstError code = %v, want EvalDivisionByZero", d.Code)
	}
	if !bag.HasErrors() {
		t.Error("HasErrors should be true")
	}
}

func TestBagNoErrors(t *testing.T) {
	bag := diag.NewBag(4)
	if bag.HasErrors() {
		t.Error("empty bag should have no errors")
	}
	if _, ok := bag.FirstError(); ok {
		t.Error("empty bag should return no first error")
	}
}

func TestCodeIDs(t *testing.T) {
	tests := []struct {
		code diag.Code
		id   string
	}{
		{diag.LexUnknownChar, "LEX1001"},
		{diag.SynMismatchedParen, "SYN2001"},
		{diag.EvalDivisionByZero, "EVAL3002"},
		{diag.InternalBadToken, "INT9001"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("ID(%d) = %q, want %q", tt.code, got, tt.id)
		}
	}
	if !diag.InternalBadToken.IsInternal() {
		t.Error("InternalBadToken should be internal")
	}
	if diag.EvalMalformed.IsInternal() {
		t.Error("EvalMalformed should not be internal")
	}
}
