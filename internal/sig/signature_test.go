package sig

import (
	"errors"
	"testing"
)

func TestNewValidatesOnce(t *testing.T) {
	s, err := New("a{sv}")
	if err != nil {
		t.Fatalf("New(a{sv}) = %v", err)
	}
	if s.Text() != "a{sv}" {
		t.Errorf("Text() = %q, want a{sv}", s.Text())
	}
	if s.VariantLevel() != 0 {
		t.Errorf("VariantLevel() = %d, want 0", s.VariantLevel())
	}
	if s.String() != s.Text() {
		t.Errorf("String() = %q, want %q", s.String(), s.Text())
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	_, err := New("a{vs}")
	var inv *InvalidSignatureError
	if !errors.As(err, &inv) {
		t.Fatalf("New(a{vs}) = %v, want *InvalidSignatureError", err)
	}
	if inv.Pos != 2 {
		t.Errorf("error position = %d, want 2", inv.Pos)
	}
}

func TestNewAtLevel(t *testing.T) {
	s, err := NewAtLevel("g", 2)
	if err != nil {
		t.Fatalf("NewAtLevel(g, 2) = %v", err)
	}
	if s.VariantLevel() != 2 {
		t.Errorf("VariantLevel() = %d, want 2", s.VariantLevel())
	}

	if _, err := NewAtLevel("(", 1); err == nil {
		t.Error("NewAtLevel(() = nil, want error")
	}
}

func TestEmptySignature(t *testing.T) {
	s, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") = %v, want nil", err)
	}
	if !s.Empty() {
		t.Error("Empty() = false for empty signature")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestFromPassthrough(t *testing.T) {
	orig, err := NewAtLevel("ai", 3)
	if err != nil {
		t.Fatal(err)
	}

	got, err := From(orig)
	if err != nil {
		t.Fatalf("From(Signature) = %v", err)
	}
	if got.Text() != orig.Text() || got.VariantLevel() != orig.VariantLevel() {
		t.Errorf("From(Signature) = %q/%d, want %q/%d",
			got.Text(), got.VariantLevel(), orig.Text(), orig.VariantLevel())
	}

	got, err = From(&orig)
	if err != nil {
		t.Fatalf("From(*Signature) = %v", err)
	}
	if !got.Equal(orig) || got.VariantLevel() != 3 {
		t.Error("From(*Signature) did not pass through unchanged")
	}
}

func TestFromCoercesStrings(t *testing.T) {
	got, err := From("a{sv}")
	if err != nil {
		t.Fatalf("From(string) = %v", err)
	}
	if got.Text() != "a{sv}" {
		t.Errorf("From(string).Text() = %q", got.Text())
	}

	got, err = From([]byte("(ii)"))
	if err != nil {
		t.Fatalf("From([]byte) = %v", err)
	}
	if got.Text() != "(ii)" {
		t.Errorf("From([]byte).Text() = %q", got.Text())
	}

	if _, err := From("()"); err == nil {
		t.Error("From(\"()\") = nil, want error: the string path must re-validate")
	}
	if _, err := From(42); err == nil {
		t.Error("From(42) = nil, want error")
	}
}

func TestFromOrNil(t *testing.T) {
	p, err := FromOrNil(nil)
	if err != nil || p != nil {
		t.Errorf("FromOrNil(nil) = %v, %v, want nil, nil", p, err)
	}

	var null *Signature
	p, err = FromOrNil(null)
	if err != nil || p != nil {
		t.Errorf("FromOrNil((*Signature)(nil)) = %v, %v, want nil, nil", p, err)
	}

	p, err = FromOrNil("v")
	if err != nil {
		t.Fatalf("FromOrNil(v) = %v", err)
	}
	if p == nil || p.Text() != "v" {
		t.Errorf("FromOrNil(v) = %v, want signature v", p)
	}
}

func TestEqualIgnoresVariantLevel(t *testing.T) {
	a, _ := New("ai")
	b, _ := NewAtLevel("ai", 5)
	c, _ := New("ax")

	if !a.Equal(b) {
		t.Error("signatures with same text must be equal regardless of variant level")
	}
	if a.Equal(c) {
		t.Error("signatures with different text must not be equal")
	}
}
