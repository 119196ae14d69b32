package sig

import (
	"fmt"

	"fortio.org/safecast"

	"dsig/internal/diag"
)

// nesting carries the two recursion counters of the grammar. Arrays nest on
// their own counter; structs and dict entries share the second one. The
// struct is passed by value so each recursive branch sees its own depths.
type nesting struct {
	array     uint8
	container uint8
}

// matchComplete consumes exactly one complete type starting at off and
// returns the offset one past its end. dictOK permits a dict entry at this
// position, which is true only for the element type of an array.
//
// This is the single grammar implementation: both Validate and Cursor are
// built on it, so the two can never disagree about where a type ends.
func matchComplete(text string, off uint32, nest nesting, dictOK bool) (uint32, *InvalidSignatureError) {
	n, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("signature length overflow: %w", err))
	}

	c := TypeCode(text[off])
	switch {
	case c.IsBasic() || c == CodeVariant:
		return off + 1, nil

	case c == CodeArray:
		nest.array++
		if nest.array > MaxDepth {
			return 0, invalidAt(off, diag.SigNestingTooDeep,
				fmt.Sprintf("array nesting exceeds %d levels", MaxDepth))
		}
		if off+1 >= n {
			return 0, invalidAt(off, diag.SigTruncatedArray,
				"array type code with no element type")
		}
		return matchComplete(text, off+1, nest, true)

	case c == CodeStructBegin:
		nest.container++
		if nest.container > MaxDepth {
			return 0, invalidAt(off, diag.SigNestingTooDeep,
				fmt.Sprintf("struct nesting exceeds %d levels", MaxDepth))
		}
		pos := off + 1
		members := 0
		for {
			if pos >= n {
				return 0, invalidAt(off, diag.SigUnterminatedStruct,
					"struct is missing its closing ')'")
			}
			if TypeCode(text[pos]) == CodeStructEnd {
				if members == 0 {
					return 0, invalidAt(pos, diag.SigEmptyStruct,
						"struct must contain at least one complete type")
				}
				return pos + 1, nil
			}
			end, merr := matchComplete(text, pos, nest, false)
			if merr != nil {
				return 0, merr
			}
			pos = end
			members++
		}

	case c == CodeDictBegin:
		if !dictOK {
			return 0, invalidAt(off, diag.SigDictOutsideArray,
				"dict entry is only valid as the element type of an array")
		}
		nest.container++
		if nest.container > MaxDepth {
			return 0, invalidAt(off, diag.SigNestingTooDeep,
				fmt.Sprintf("dict entry nesting exceeds %d levels", MaxDepth))
		}
		pos := off + 1
		if pos >= n {
			return 0, invalidAt(off, diag.SigDictUnterminated,
				"dict entry is missing its closing '}'")
		}
		key := TypeCode(text[pos])
		switch {
		case key == CodeDictEnd:
			return 0, invalidAt(pos, diag.SigDictMissingKey,
				"dict entry must have a key type")
		case !key.IsValid():
			return 0, invalidAt(pos, diag.SigUnknownTypeCode,
				fmt.Sprintf("unknown type code %q", text[pos]))
		case !key.IsBasic():
			return 0, invalidAt(pos, diag.SigDictKeyNotBasic,
				fmt.Sprintf("dict entry key must be a basic type, got %s", key))
		}
		pos++
		if pos >= n {
			return 0, invalidAt(off, diag.SigDictUnterminated,
				"dict entry is missing its closing '}'")
		}
		if TypeCode(text[pos]) == CodeDictEnd {
			return 0, invalidAt(pos, diag.SigDictUnterminated,
				"dict entry must have a value type")
		}
		end, merr := matchComplete(text, pos, nest, false)
		if merr != nil {
			return 0, merr
		}
		pos = end
		if pos >= n {
			return 0, invalidAt(off, diag.SigDictUnterminated,
				"dict entry is missing its closing '}'")
		}
		if TypeCode(text[pos]) != CodeDictEnd {
			return 0, invalidAt(pos, diag.SigDictExtraValue,
				"dict entry must have exactly one value type")
		}
		return pos + 1, nil

	case c == CodeStructEnd || c == CodeDictEnd:
		return 0, invalidAt(off, diag.SigUnexpectedClose,
			fmt.Sprintf("unexpected %q with no matching opening bracket", text[off]))

	default:
		return 0, invalidAt(off, diag.SigUnknownTypeCode,
			fmt.Sprintf("unknown type code %q", text[off]))
	}
}

// completeEnd is the trusted-path wrapper around matchComplete used by the
// Cursor. The text has already been validated, so any error here means the
// walker and the validator diverged; that is a bug, not user input.
func completeEnd(text string, off uint32) uint32 {
	end, err := matchComplete(text, off, nesting{}, false)
	if err != nil {
		panic(fmt.Errorf("cursor desynchronized on validated signature %q at offset %d: %w", text, off, err))
	}
	return end
}
