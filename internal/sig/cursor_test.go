package sig

import (
	"testing"
)

func TestCursorWalksCompleteTypes(t *testing.T) {
	cases := []struct {
		text  string
		parts []string
	}{
		{"i", []string{"i"}},
		{"iii", []string{"i", "i", "i"}},
		{"ai", []string{"ai"}},
		{"aai", []string{"aai"}},
		{"(ii)", []string{"(ii)"}},
		{"a{si}", []string{"a{si}"}},
		{"ia{s(uu)}v(so)", []string{"i", "a{s(uu)}", "v", "(so)"}},
		{"a(ii)x", []string{"a(ii)", "x"}},
		{"a{sa{sv}}ai", []string{"a{sa{sv}}", "ai"}},
	}
	for _, tc := range cases {
		c := NewCursor(tc.text)
		var got []string
		for {
			part := c.Current()
			if part == "" {
				t.Fatalf("NewCursor(%q): Current returned empty mid-walk", tc.text)
			}
			got = append(got, part)
			if !c.Advance() {
				break
			}
		}
		if len(got) != len(tc.parts) {
			t.Fatalf("NewCursor(%q): got %d parts %v, want %v", tc.text, len(got), got, tc.parts)
		}
		for i := range got {
			if got[i] != tc.parts[i] {
				t.Errorf("NewCursor(%q): part %d = %q, want %q", tc.text, i, got[i], tc.parts[i])
			}
		}
	}
}

func TestCursorEmptyTextStartsExhausted(t *testing.T) {
	c := NewCursor("")
	if !c.EOF() {
		t.Error("cursor over empty text should start exhausted")
	}
	if got := c.Current(); got != "" {
		t.Errorf("Current() on exhausted cursor = %q, want empty", got)
	}
	if c.Advance() {
		t.Error("Advance() on exhausted cursor = true, want false")
	}
}

func TestCursorExhaustionIsTerminal(t *testing.T) {
	c := NewCursor("ii")
	if !c.Advance() {
		t.Fatal("Advance() after first type = false, want true")
	}
	if c.Advance() {
		t.Fatal("Advance() past last type = true, want false")
	}
	// The cursor must stay exhausted no matter how often it is poked.
	for range 3 {
		if c.Advance() {
			t.Fatal("Advance() on exhausted cursor = true, want false")
		}
		if got := c.Current(); got != "" {
			t.Fatalf("Current() on exhausted cursor = %q, want empty", got)
		}
	}
	if !c.EOF() {
		t.Error("EOF() on exhausted cursor = false, want true")
	}
}

func TestCursorPanicsOnMalformedInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Current() over unvalidated garbage should panic")
		}
	}()
	NewCursor("a").Current()
}
