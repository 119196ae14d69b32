package sig

import (
	"fmt"
)

// Signature is an immutable, validated D-Bus type signature: zero or more
// single complete types, plus a variant level counting how many nested
// variant containers the value it describes is wrapped in. The variant
// level is descriptive metadata only; it takes no part in validation or
// equality. Code that needs string-keyed identity (maps, sorting) should
// key on Text().
type Signature struct {
	text         string
	variantLevel uint32
}

// New validates text and wraps it as a Signature with variant level 0.
// Validation runs exactly once, here; the value is immutable afterwards.
func New(text string) (Signature, error) {
	if err := validate(text); err != nil {
		return Signature{}, err
	}
	return Signature{text: text}, nil
}

// NewAtLevel is New with an explicit variant level.
func NewAtLevel(text string, variantLevel uint32) (Signature, error) {
	s, err := New(text)
	if err != nil {
		return Signature{}, err
	}
	s.variantLevel = variantLevel
	return s, nil
}

// From coerces v into a Signature. A value that already is a Signature
// passes through untouched, with no re-validation and no copy. Strings,
// byte slices and fmt.Stringer implementations are validated, since their
// provenance is untrusted.
func From(v any) (Signature, error) {
	switch x := v.(type) {
	case Signature:
		return x, nil
	case *Signature:
		if x != nil {
			return *x, nil
		}
		return Signature{}, fmt.Errorf("cannot derive a signature from a nil *Signature")
	case string:
		return New(x)
	case []byte:
		return New(string(x))
	case fmt.Stringer:
		return New(x.String())
	}
	return Signature{}, fmt.Errorf("cannot derive a signature from %T", v)
}

// FromOrNil is From with a nil passthrough: a nil value stays nil instead
// of being an error, for callers where "no signature" is meaningful.
func FromOrNil(v any) (*Signature, error) {
	if v == nil {
		return nil, nil
	}
	if p, ok := v.(*Signature); ok && p == nil {
		return nil, nil
	}
	s, err := From(v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Text returns the raw signature text.
func (s Signature) Text() string {
	return s.text
}

// VariantLevel returns how many nested variant containers the described
// value is wrapped in.
func (s Signature) VariantLevel() uint32 {
	return s.variantLevel
}

func (s Signature) String() string {
	return s.text
}

// Len returns the signature length in bytes.
func (s Signature) Len() int {
	return len(s.text)
}

// Empty reports whether the signature holds zero complete types.
func (s Signature) Empty() bool {
	return s.text == ""
}

// Equal compares signature text only; variant levels are metadata and do
// not participate.
func (s Signature) Equal(other Signature) bool {
	return s.text == other.text
}
