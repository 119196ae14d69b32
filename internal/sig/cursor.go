package sig

import (
	"fmt"

	"fortio.org/safecast"
)

// Cursor walks the top-level complete types of already-validated signature
// text. The offset always rests where a complete type begins, or at end of
// text. A Cursor trusts its input: feeding it an unvalidated string is a
// programming error and will panic on malformed content.
type Cursor struct {
	text string
	off  uint32
	done bool
}

// NewCursor positions a cursor at the first complete type of validated text.
// For empty text the cursor starts out exhausted.
func NewCursor(text string) *Cursor {
	c := &Cursor{text: text}
	if text == "" {
		c.done = true
	}
	return c
}

// Current returns the complete type starting at the cursor's offset: for an
// array this includes the element type, for a struct or dict entry the
// brackets and everything nested inside. Returns "" once exhausted.
func (c *Cursor) Current() string {
	if c.done {
		return ""
	}
	end := completeEnd(c.text, c.off)
	return c.text[c.off:end]
}

// Advance moves past the complete type at the current offset and reports
// whether another one follows. Once it returns false the cursor is
// permanently exhausted; a new iteration needs a new cursor.
func (c *Cursor) Advance() bool {
	if c.done {
		return false
	}
	c.off = completeEnd(c.text, c.off)
	n, err := safecast.Conv[uint32](len(c.text))
	if err != nil {
		panic(fmt.Errorf("signature length overflow: %w", err))
	}
	if c.off >= n {
		c.done = true
		return false
	}
	return true
}

// EOF reports whether the cursor is exhausted.
func (c *Cursor) EOF() bool {
	return c.done
}
