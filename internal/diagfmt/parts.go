package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"dsig/internal/sig"
)

// Current schema version - increment when SplitOutput format changes
const splitSchemaVersion uint16 = 1

// PartOutput describes one top-level complete type of a decomposed signature.
type PartOutput struct {
	Index int    `json:"index" msgpack:"index"`
	Type  string `json:"type" msgpack:"type"`
	Kind  string `json:"kind" msgpack:"kind"`
}

// SplitOutput is the machine-readable result of a decomposition.
type SplitOutput struct {
	Schema    uint16       `json:"schema" msgpack:"schema"`
	Signature string       `json:"signature" msgpack:"signature"`
	Parts     []PartOutput `json:"parts" msgpack:"parts"`
}

func buildSplitOutput(signature string, parts []string) SplitOutput {
	out := SplitOutput{
		Schema:    splitSchemaVersion,
		Signature: signature,
		Parts:     make([]PartOutput, 0, len(parts)),
	}
	for i, part := range parts {
		out.Parts = append(out.Parts, PartOutput{
			Index: i,
			Type:  part,
			Kind:  sig.TypeCode(part[0]).String(),
		})
	}
	return out
}

// FormatPartsPretty writes one complete type per line with its index and
// the category of its leading type code.
func FormatPartsPretty(w io.Writer, parts []string) error {
	for i, part := range parts {
		if _, err := fmt.Fprintf(w, "%3d: %-12s %s\n", i+1, sig.TypeCode(part[0]).String(), part); err != nil {
			return err
		}
	}
	return nil
}

// FormatPartsJSON writes the decomposition as indented JSON.
func FormatPartsJSON(w io.Writer, signature string, parts []string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildSplitOutput(signature, parts))
}

// FormatPartsMsgpack writes the decomposition as a msgpack payload for
// piping into other tools.
func FormatPartsMsgpack(w io.Writer, signature string, parts []string) error {
	return msgpack.NewEncoder(w).Encode(buildSplitOutput(signature, parts))
}
