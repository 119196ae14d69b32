package driver

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"dsig/internal/diag"
	"dsig/internal/sig"
	"dsig/internal/source"
)

// CheckResult holds everything needed to report on one signature: the
// virtual buffer the text lives in, any grammar diagnostics against it, and
// the validated value when the text was accepted.
type CheckResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Bag     *diag.Bag
	Sig     *sig.Signature // nil when the text was rejected
}

// Check validates a single signature string. name labels the buffer in
// diagnostics ("<arg1>", "<stdin>", ...).
func Check(name, text string, maxDiagnostics int) *CheckResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(text))
	bag := diag.NewBag(maxDiagnostics)

	res := &CheckResult{FileSet: fs, FileID: id, Bag: bag}
	s, err := sig.New(text)
	if err != nil {
		bag.Add(signatureDiagnostic(id, 0, err))
		return res
	}
	res.Sig = &s
	return res
}

// signatureDiagnostic converts a sig validation error into a positioned
// diagnostic. base rebases the error offset when the signature text sits
// inside a larger buffer (a corpus line, for example).
func signatureDiagnostic(id source.FileID, base uint32, err error) diag.Diagnostic {
	var inv *sig.InvalidSignatureError
	if !errors.As(err, &inv) {
		return diag.NewError(diag.UnknownCode, source.Span{File: id}, err.Error())
	}
	span := source.Span{File: id, Start: inv.Pos, End: inv.Pos + 1}.ShiftRight(base)
	return diag.NewError(inv.Code, span, inv.Reason)
}

// wholeSpan covers an entire buffer of the given length.
func wholeSpan(id source.FileID, length int) source.Span {
	n, err := safecast.Conv[uint32](length)
	if err != nil {
		panic(fmt.Errorf("buffer length overflow: %w", err))
	}
	return source.Span{File: id, Start: 0, End: n}
}
