package lexer_test

import (
	"testing"

	"reckon/internal/lexer"
	"reckon/internal/source"
)

func makeCursor(input string) lexer.Cursor {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test", []byte(input)))
	return lexer.NewCursor(file)
}

func TestCursor_PeekBump(t *testing.T) {
	c := makeCursor("ab")

	if b := c.Peek(); b != 'a' {
		t.Errorf("Peek = %q, want 'a'", b)
	}
	if b := c.Bump(); b != 'a' {
		t.Errorf("Bump = %q, want 'a'", b)
	}
	if b := c.Bump(); b != 'b' {
		t.Errorf("Bump = %q, want 'b'", b)
	}
	if !c.EOF() {
		t.Error("cursor should be at EOF")
	}
	if b := c.Bump(); b != 0 {
		t.Errorf("Bump at EOF = %q, want 0", b)
	}
}

func TestCursor_Peek2(t *testing.T) {
	c := makeCursor("xy")
	b0, b1, ok := c.Peek2()
	if !ok || b0 != 'x' || b1 != 'y' {
		t.Errorf("Peek2 = %q,%q,%v; want 'x','y',true", b0, b1, ok)
	}

	c.Bump()
	if _, _, ok := c.Peek2(); ok {
		t.Error("Peek2 with one byte left should report !ok")
	}
}

func TestCursor_SpanFrom(t *testing.T) {
	c := makeCursor("abc")
	m := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Errorf("SpanFrom = %v, want 0-2", sp)
	}
	if sp.Len() != 2 {
		t.Errorf("Len = %d, want 2", sp.Len())
	}
}
