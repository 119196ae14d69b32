package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
}

// TreeOpts configures the structural tree rendering of a signature.
type TreeOpts struct {
	Color bool
}
