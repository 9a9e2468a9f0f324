package schema

import (
	"fmt"
	"strings"

	"github.com/neonimp/neoncore/errs"
)

type (
	// Endianness selects the byte order used to interpret multi-byte values.
	Endianness uint8

	// PrimitiveType identifies a fixed-width primitive field type.
	PrimitiveType uint8

	// FieldKind discriminates the field variants.
	FieldKind uint8
)

const (
	// EndianUnset defers to the enclosing default: the document default for a
	// structure, little-endian for a document.
	EndianUnset Endianness = 0
	// EndianLittle is little-endian byte order, the engine default.
	EndianLittle Endianness = 0x1
	// EndianBig is big-endian byte order.
	EndianBig Endianness = 0x2
)

const (
	U8 PrimitiveType = iota + 1
	U16
	U32
	U64
	U128
	I8
	I16
	I32
	I64
	I128
	F32
	F64
)

const (
	KindPrimitive FieldKind = 0x1 // fixed-width numeric field
	KindBuffer    FieldKind = 0x2 // raw byte run, sized by literal or reference
	KindString    FieldKind = 0x3 // UTF-8 validated byte run, sized like a buffer
)

func (e Endianness) String() string {
	switch e {
	case EndianLittle:
		return "little"
	case EndianBig:
		return "big"
	default:
		return "unset"
	}
}

// ParseEndianness parses the case-insensitive endianness keywords
// "little" and "big".
func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(s) {
	case "little":
		return EndianLittle, nil
	case "big":
		return EndianBig, nil
	default:
		return EndianUnset, fmt.Errorf("%w: %q", errs.ErrInvalidEndianness, s)
	}
}

var primitiveNames = map[PrimitiveType]string{
	U8:   "u8",
	U16:  "u16",
	U32:  "u32",
	U64:  "u64",
	U128: "u128",
	I8:   "i8",
	I16:  "i16",
	I32:  "i32",
	I64:  "i64",
	I128: "i128",
	F32:  "f32",
	F64:  "f64",
}

func (p PrimitiveType) String() string {
	if name, ok := primitiveNames[p]; ok {
		return name
	}

	return "unknown"
}

// ParsePrimitiveType parses a primitive type name such as "u16" or "f64".
func ParsePrimitiveType(s string) (PrimitiveType, error) {
	for p, name := range primitiveNames {
		if name == s {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrInvalidPrimitiveType, s)
}

// Width returns the number of stream bytes the primitive occupies.
func (p PrimitiveType) Width() int {
	switch p {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	case U32, I32, F32:
		return 4
	case U64, I64, F64:
		return 8
	case U128, I128:
		return 16
	default:
		return 0
	}
}

// IsInteger reports whether the primitive decodes to an integer value.
func (p PrimitiveType) IsInteger() bool {
	switch p {
	case U8, U16, U32, U64, U128, I8, I16, I32, I64, I128:
		return true
	default:
		return false
	}
}

// IsSigned reports whether the primitive is a signed integer type.
func (p PrimitiveType) IsSigned() bool {
	switch p {
	case I8, I16, I32, I64, I128:
		return true
	default:
		return false
	}
}

// IsFloat reports whether the primitive is an IEEE-754 float type.
func (p PrimitiveType) IsFloat() bool {
	return p == F32 || p == F64
}

// Referenceable reports whether a size reference may target this primitive:
// integer types of at most 64 bits.
func (p PrimitiveType) Referenceable() bool {
	return p.IsInteger() && p.Width() <= 8
}

func (k FieldKind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindBuffer:
		return "buffer"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}
