package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("<arg1>", []byte("a{sv}"))

	f := fs.Get(id)
	if f.Path != "<arg1>" {
		t.Errorf("Path = %q", f.Path)
	}
	if string(f.Content) != "a{sv}" {
		t.Errorf("Content = %q", f.Content)
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("FileVirtual flag not set")
	}

	got, ok := fs.GetByPath("<arg1>")
	if !ok || got.ID != id {
		t.Error("GetByPath did not find the buffer")
	}
}

func TestAddAlwaysCreatesNewID(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("same", []byte("i"))
	b := fs.AddVirtual("same", []byte("u"))
	if a == b {
		t.Error("re-adding a path must mint a fresh FileID")
	}
	latest, ok := fs.GetByPath("same")
	if !ok || latest.ID != b {
		t.Error("GetByPath must return the latest buffer")
	}
	if fs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fs.Len())
	}
}

func TestLoadNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.toml")
	content := []byte{0xEF, 0xBB, 0xBF}
	content = append(content, []byte("a = 1\r\nb = 2\n")...)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a = 1\nb = 2\n" {
		t.Errorf("Content = %q, want normalized text", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("Flags = %b, want BOM and CRLF flags", f.Flags)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("buf", []byte("ab\ncde\nf"))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // the newline ends line 1
		{3, LineCol{2, 1}},
		{5, LineCol{2, 3}},
		{7, LineCol{3, 1}},
	}
	for _, tc := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off + 1})
		if start != tc.want {
			t.Errorf("Resolve(%d) = %v, want %v", tc.off, start, tc.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("buf", []byte("ab\ncde\nf"))
	f := fs.Get(id)

	cases := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "ab"},
		{2, "cde"},
		{3, "f"},
		{4, ""},
	}
	for _, tc := range cases {
		if got := f.GetLine(tc.line); got != tc.want {
			t.Errorf("GetLine(%d) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestSingleLineBuffer(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("sig", []byte("a{sv}"))
	start, end := fs.Resolve(Span{File: id, Start: 2, End: 3})
	if start.Line != 1 || start.Col != 3 {
		t.Errorf("start = %v, want 1:3", start)
	}
	if end.Line != 1 || end.Col != 4 {
		t.Errorf("end = %v, want 1:4", end)
	}
}
