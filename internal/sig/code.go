package sig

// TypeCode is a single character of the D-Bus signature alphabet.
type TypeCode byte

const (
	// CodeByte represents an 8-bit unsigned integer.
	CodeByte TypeCode = 'y'
	// CodeBool represents a boolean value.
	CodeBool TypeCode = 'b'
	// CodeInt16 represents a 16-bit signed integer.
	CodeInt16 TypeCode = 'n'
	// CodeUint16 represents a 16-bit unsigned integer.
	CodeUint16 TypeCode = 'q'
	// CodeInt32 represents a 32-bit signed integer.
	CodeInt32 TypeCode = 'i'
	// CodeUint32 represents a 32-bit unsigned integer.
	CodeUint32 TypeCode = 'u'
	// CodeInt64 represents a 64-bit signed integer.
	CodeInt64 TypeCode = 'x'
	// CodeUint64 represents a 64-bit unsigned integer.
	CodeUint64 TypeCode = 't'
	// CodeDouble represents an IEEE 754 double.
	CodeDouble TypeCode = 'd'
	// CodeString represents a UTF-8 string.
	CodeString TypeCode = 's'
	// CodeObjectPath represents a D-Bus object path.
	CodeObjectPath TypeCode = 'o'
	// CodeSignature represents a nested type signature.
	CodeSignature TypeCode = 'g'
	// CodeUnixFD represents a Unix file descriptor index.
	CodeUnixFD TypeCode = 'h'
	// CodeVariant represents a variant; its contents are typed at the
	// value level, so the code is atomic in the grammar.
	CodeVariant TypeCode = 'v'
	// CodeArray prefixes exactly one element type.
	CodeArray TypeCode = 'a'
	// CodeStructBegin opens a struct of one or more complete types.
	CodeStructBegin TypeCode = '('
	// CodeStructEnd closes a struct.
	CodeStructEnd TypeCode = ')'
	// CodeDictBegin opens a dict entry; legal only as an array element type.
	CodeDictBegin TypeCode = '{'
	// CodeDictEnd closes a dict entry.
	CodeDictEnd TypeCode = '}'
)

const (
	// MaxLength is the maximum total length of a signature in bytes.
	MaxLength = 255
	// MaxDepth caps array nesting and struct/dict nesting, counted
	// independently.
	MaxDepth = 32
)

// IsBasic reports whether the code is a fixed, non-recursive scalar type.
func (c TypeCode) IsBasic() bool {
	switch c {
	case CodeByte, CodeBool, CodeInt16, CodeUint16, CodeInt32, CodeUint32,
		CodeInt64, CodeUint64, CodeDouble, CodeString, CodeObjectPath,
		CodeSignature, CodeUnixFD:
		return true
	}
	return false
}

// IsValid reports whether the byte belongs to the signature alphabet at all.
func (c TypeCode) IsValid() bool {
	switch c {
	case CodeVariant, CodeArray, CodeStructBegin, CodeStructEnd,
		CodeDictBegin, CodeDictEnd:
		return true
	}
	return c.IsBasic()
}

func (c TypeCode) String() string {
	switch c {
	case CodeByte:
		return "byte"
	case CodeBool:
		return "boolean"
	case CodeInt16:
		return "int16"
	case CodeUint16:
		return "uint16"
	case CodeInt32:
		return "int32"
	case CodeUint32:
		return "uint32"
	case CodeInt64:
		return "int64"
	case CodeUint64:
		return "uint64"
	case CodeDouble:
		return "double"
	case CodeString:
		return "string"
	case CodeObjectPath:
		return "object path"
	case CodeSignature:
		return "signature"
	case CodeUnixFD:
		return "unix fd"
	case CodeVariant:
		return "variant"
	case CodeArray:
		return "array"
	case CodeStructBegin:
		return "struct begin"
	case CodeStructEnd:
		return "struct end"
	case CodeDictBegin:
		return "dict entry begin"
	case CodeDictEnd:
		return "dict entry end"
	}
	return "invalid"
}
