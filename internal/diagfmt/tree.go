package diagfmt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"dsig/internal/sig"
)

type treeStyles struct {
	kind   lipgloss.Style
	code   lipgloss.Style
	branch lipgloss.Style
}

func newTreeStyles(colorOn bool) treeStyles {
	if !colorOn {
		// Zero styles render text unchanged.
		return treeStyles{}
	}
	return treeStyles{
		kind:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		code:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		branch: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Tree renders the structural breakdown of a signature: one node per type
// constructor, with array elements, struct members and dict entry key/value
// pairs as children.
func Tree(w io.Writer, s sig.Signature, opts TreeOpts) {
	st := newTreeStyles(opts.Color)

	header := fmt.Sprintf("%q", s.Text())
	if s.Empty() {
		header = `"" (empty)`
	}
	if lvl := s.VariantLevel(); lvl > 0 {
		header += fmt.Sprintf(" (variant level %d)", lvl)
	}
	fmt.Fprintf(w, "%s %s\n", st.kind.Render("signature"), st.code.Render(header))
	if s.Empty() {
		return
	}

	var parts []string
	for part := range s.All() {
		parts = append(parts, part.Text())
	}
	for i, part := range parts {
		writeTreeNode(w, part, "", i == len(parts)-1, st)
	}
}

func writeTreeNode(w io.Writer, text, prefix string, last bool, st treeStyles) {
	branch := "├─ "
	childPrefix := prefix + "│  "
	if last {
		branch = "└─ "
		childPrefix = prefix + "   "
	}

	code := sig.TypeCode(text[0])
	fmt.Fprintf(w, "%s%s %s\n",
		st.branch.Render(prefix+branch),
		st.kind.Render(code.String()),
		st.code.Render(text))

	switch code {
	case sig.CodeArray:
		writeTreeNode(w, text[1:], childPrefix, true, st)
	case sig.CodeStructBegin:
		members := structMembers(text)
		for i, member := range members {
			writeTreeNode(w, member, childPrefix, i == len(members)-1, st)
		}
	case sig.CodeDictBegin:
		writeTreeNode(w, text[1:2], childPrefix, false, st)
		writeTreeNode(w, text[2:len(text)-1], childPrefix, true, st)
	}
}

// structMembers splits the inside of a validated struct type into its
// member complete types.
func structMembers(text string) []string {
	inner := text[1 : len(text)-1]
	var members []string
	c := sig.NewCursor(inner)
	for !c.EOF() {
		members = append(members, c.Current())
		c.Advance()
	}
	return members
}
