package source

type (
	// FileID uniquely identifies a buffer within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a buffer.
	FileFlags uint8
)

const (
	// FileVirtual indicates the buffer was added from memory (a signature
	// passed on the command line, stdin, or a test) rather than from disk.
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single buffer: either a corpus
// file loaded from disk or a bare signature held in memory.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Flags   FileFlags
}

// LineCol represents a human-readable position in a buffer.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
