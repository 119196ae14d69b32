package sig

import (
	"fmt"

	"fortio.org/safecast"

	"dsig/internal/diag"
)

// InvalidSignatureError reports a grammar violation with the byte offset of
// the offending character and a machine-readable code.
type InvalidSignatureError struct {
	Pos    uint32
	Code   diag.Code
	Reason string
}

func (e *InvalidSignatureError) Error() string {
	return fmt.Sprintf("invalid signature at offset %d: %s", e.Pos, e.Reason)
}

func invalidAt(pos uint32, code diag.Code, reason string) *InvalidSignatureError {
	return &InvalidSignatureError{Pos: pos, Code: code, Reason: reason}
}

// Validate decides whether text is a well-formed sequence of zero or more
// single complete types. The empty string is valid. On failure the returned
// error is an *InvalidSignatureError carrying position and reason.
//
// Every character is touched exactly once; validation is linear in the
// length of the input.
func Validate(text string) error {
	if err := validate(text); err != nil {
		return err
	}
	return nil
}

func validate(text string) *InvalidSignatureError {
	// Length is checked before any parsing so oversized input fails fast.
	if len(text) > MaxLength {
		return invalidAt(0, diag.SigTooLong,
			fmt.Sprintf("signature is %d bytes, maximum is %d", len(text), MaxLength))
	}
	n, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("signature length overflow: %w", err))
	}

	var off uint32
	for off < n {
		end, merr := matchComplete(text, off, nesting{}, false)
		if merr != nil {
			return merr
		}
		off = end
	}
	return nil
}
