package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestFormatPartsPretty(t *testing.T) {
	var sb strings.Builder
	if err := FormatPartsPretty(&sb, []string{"i", "a{sv}", "(so)"}); err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	for _, want := range []string{"int32", "array", "struct begin", "a{sv}", "(so)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if len(strings.Split(strings.TrimRight(out, "\n"), "\n")) != 3 {
		t.Errorf("want one line per part:\n%s", out)
	}
}

func TestFormatPartsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatPartsJSON(&buf, "ia{sv}", []string{"i", "a{sv}"}); err != nil {
		t.Fatal(err)
	}

	var out SplitOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Schema != splitSchemaVersion {
		t.Errorf("schema = %d, want %d", out.Schema, splitSchemaVersion)
	}
	if out.Signature != "ia{sv}" || len(out.Parts) != 2 {
		t.Fatalf("unexpected payload: %+v", out)
	}
	if out.Parts[1].Type != "a{sv}" || out.Parts[1].Kind != "array" {
		t.Errorf("part 1 = %+v, want a{sv}/array", out.Parts[1])
	}
}

func TestFormatPartsMsgpackRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatPartsMsgpack(&buf, "v(ii)", []string{"v", "(ii)"}); err != nil {
		t.Fatal(err)
	}

	var out SplitOutput
	if err := msgpack.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid msgpack: %v", err)
	}
	if out.Signature != "v(ii)" || len(out.Parts) != 2 {
		t.Fatalf("unexpected payload: %+v", out)
	}
	if out.Parts[0].Kind != "variant" {
		t.Errorf("part 0 kind = %q, want variant", out.Parts[0].Kind)
	}
}
