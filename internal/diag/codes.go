package diag

import (
	"fmt"
)

type Code uint16

const (
	// Fallback for diagnostics without a concrete code.
	UnknownCode Code = 0

	// Signature grammar (1000-1999)
	SigInfo               Code = 1000
	SigUnknownTypeCode    Code = 1001
	SigTruncatedArray     Code = 1002
	SigUnterminatedStruct Code = 1003
	SigEmptyStruct        Code = 1004
	SigUnexpectedClose    Code = 1005
	SigDictMissingKey     Code = 1006
	SigDictKeyNotBasic    Code = 1007
	SigDictExtraValue     Code = 1008
	SigDictUnterminated   Code = 1009
	SigDictOutsideArray   Code = 1010
	SigNestingTooDeep     Code = 1011
	SigTooLong            Code = 1012

	// Tooling I/O (4000-4999)
	IOInfo            Code = 4000
	IOReadFailed      Code = 4001
	IOBadVariantLevel Code = 4002

	// Corpus files (5000-5999)
	CorpusInfo             Code = 5000
	CorpusBadFile          Code = 5001
	CorpusMissingSignature Code = 5002
	CorpusUnexpectedPass   Code = 5003
	CorpusUnexpectedFail   Code = 5004
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown diagnostic",

	SigInfo:               "Signature info",
	SigUnknownTypeCode:    "Unknown type code",
	SigTruncatedArray:     "Truncated array type",
	SigUnterminatedStruct: "Unterminated struct",
	SigEmptyStruct:        "Empty struct body not permitted",
	SigUnexpectedClose:    "Unexpected closing bracket",
	SigDictMissingKey:     "Dict entry without key type",
	SigDictKeyNotBasic:    "Dict entry key type is not basic",
	SigDictExtraValue:     "Dict entry with more than one value type",
	SigDictUnterminated:   "Unterminated dict entry",
	SigDictOutsideArray:   "Dict entry outside array element position",
	SigNestingTooDeep:     "Nesting too deep",
	SigTooLong:            "Signature too long",

	IOInfo:            "I/O info",
	IOReadFailed:      "Failed to read input",
	IOBadVariantLevel: "Invalid variant level",

	CorpusInfo:             "Corpus info",
	CorpusBadFile:          "Malformed corpus file",
	CorpusMissingSignature: "Corpus case without signature",
	CorpusUnexpectedPass:   "Expected invalid signature was accepted",
	CorpusUnexpectedFail:   "Expected valid signature was rejected",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SIG%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CRP%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
