package sig

import (
	"iter"
)

// Iter produces the top-level complete types of a Signature, each wrapped
// as a fresh Signature with variant level 0. Exhaustion is terminal: once
// Next returns false it keeps returning false, and restarting means asking
// the Signature for a new Iter.
type Iter struct {
	// cursor is nil once the iteration is finished; dropping it also drops
	// the iterator's reference to the source text.
	cursor *Cursor
}

// Iter begins a fresh, independent iteration over the signature's complete
// types. An empty signature yields an already-exhausted iterator rather
// than one positioned at offset 0 of nothing.
func (s Signature) Iter() *Iter {
	if s.text == "" {
		return &Iter{}
	}
	return &Iter{cursor: NewCursor(s.text)}
}

// Next returns the next complete type and true, or the zero Signature and
// false when the iteration is over.
func (it *Iter) Next() (Signature, bool) {
	if it.cursor == nil {
		return Signature{}, false
	}
	part := Signature{text: it.cursor.Current()}
	if !it.cursor.Advance() {
		it.cursor = nil
	}
	return part, true
}

// All adapts the iteration to a range-over-func sequence. Each call starts
// from the beginning with its own cursor.
func (s Signature) All() iter.Seq[Signature] {
	return func(yield func(Signature) bool) {
		it := s.Iter()
		for part, ok := it.Next(); ok; part, ok = it.Next() {
			if !yield(part) {
				return
			}
		}
	}
}

// Split validates text and returns its top-level complete types in order.
// Concatenating the result reproduces text exactly.
func Split(text string) ([]string, error) {
	s, err := New(text)
	if err != nil {
		return nil, err
	}
	var parts []string
	for part := range s.All() {
		parts = append(parts, part.Text())
	}
	return parts, nil
}
