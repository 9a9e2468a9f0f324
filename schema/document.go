package schema

// Document is the parsed form of a query document: an optional global
// endianness and the structure definitions in declaration order.
//
// Declaration order is semantically significant. Structures are scanned in
// this order, and foreign references may only point at structures that appear
// earlier in it.
type Document struct {
	// Endianness is the document-wide default byte order.
	// EndianUnset means little-endian.
	Endianness Endianness
	// Structures holds the structure definitions in declaration order.
	Structures []Structure
}

// Structure describes one record layout to locate and decode: a mandatory
// byte signature, an ordered field list, and optional endianness and hint
// overrides.
type Structure struct {
	// Name uniquely identifies the structure within its document.
	Name string
	// Signature is the fixed byte pattern that anchors matches. Mandatory.
	Signature Signature
	// Endianness overrides the document default when not EndianUnset.
	Endianness Endianness
	// Hint narrows where the signature search starts.
	Hint Hint
	// Fields holds the field definitions in decode order. May be empty.
	Fields []Field
}

// Field is a tagged variant over primitive, buffer, and string fields.
//
// Offset and Align adjust the decode cursor before the field is read: the
// signed Offset displacement first, then Align rounds the cursor up to the
// next multiple of the alignment boundary. A zero value for either means no
// adjustment.
type Field struct {
	// Name uniquely identifies the field within its structure.
	Name string
	// Kind selects the variant.
	Kind FieldKind
	// Type is the primitive type. Only meaningful for KindPrimitive.
	Type PrimitiveType
	// Size is the byte count operand. Only meaningful for buffers and strings.
	Size SizeOperand
	// Offset is a signed byte displacement from the current cursor.
	Offset int64
	// Align is a power-of-two byte boundary, 0 for none.
	Align uint64
}

// SizeOperand is either a literal byte count or a reference to an
// already-decoded integer field. Ref nil means literal.
type SizeOperand struct {
	Literal uint64
	Ref     *Reference
}

// Reference names a previously decoded field whose integer value supplies a
// byte count. An empty Structure resolves against the enclosing structure's
// fields in the current match; otherwise against the most recently decoded
// record of the named foreign structure.
type Reference struct {
	Field     string
	Structure string
}

func (r Reference) String() string {
	if r.Structure == "" {
		return "&" + r.Field
	}

	return "&" + r.Field + "::" + r.Structure
}

// LiteralSize returns a literal size operand.
func LiteralSize(n uint64) SizeOperand {
	return SizeOperand{Literal: n}
}

// RefSize returns a size operand referencing a sibling field.
func RefSize(field string) SizeOperand {
	return SizeOperand{Ref: &Reference{Field: field}}
}

// ForeignRefSize returns a size operand referencing a field of another
// structure's most recent match.
func ForeignRefSize(field, structure string) SizeOperand {
	return SizeOperand{Ref: &Reference{Field: field, Structure: structure}}
}

// Primitive returns a primitive field definition.
func Primitive(name string, typ PrimitiveType) Field {
	return Field{Name: name, Kind: KindPrimitive, Type: typ}
}

// Buffer returns a raw byte field definition.
func Buffer(name string, size SizeOperand) Field {
	return Field{Name: name, Kind: KindBuffer, Size: size}
}

// String returns a UTF-8 string field definition.
func String(name string, size SizeOperand) Field {
	return Field{Name: name, Kind: KindString, Size: size}
}

type (
	// HintKind discriminates the hint variants.
	HintKind uint8
	// NearTarget identifies what a NEAR hint anchors to.
	NearTarget uint8
)

const (
	// HintNone scans the whole stream from the beginning.
	HintNone HintKind = 0
	// HintSkip starts the search at an absolute offset.
	HintSkip HintKind = 0x1
	// HintNear starts the search a little before an approximate anchor.
	HintNear HintKind = 0x2
)

const (
	// NearOffset anchors near an absolute stream offset.
	NearOffset NearTarget = 0
	// NearStart anchors at the start of the stream.
	NearStart NearTarget = 0x1
	// NearEnd anchors at the end of the stream.
	NearEnd NearTarget = 0x2
)

// Hint is a SKIP or NEAR directive guiding where the signature search begins.
// The zero value is no hint.
type Hint struct {
	Kind   HintKind
	Target NearTarget
	// Offset is the absolute byte offset for HintSkip, or the anchor offset
	// for HintNear with NearOffset.
	Offset uint64
}

// SkipHint starts the signature search at absolute offset off.
func SkipHint(off uint64) Hint {
	return Hint{Kind: HintSkip, Offset: off}
}

// NearHint starts the search shortly before the approximate offset off.
func NearHint(off uint64) Hint {
	return Hint{Kind: HintNear, Target: NearOffset, Offset: off}
}

// NearStartHint anchors the search at the start of the stream.
func NearStartHint() Hint {
	return Hint{Kind: HintNear, Target: NearStart}
}

// NearEndHint anchors the search near the end of the stream.
func NearEndHint() Hint {
	return Hint{Kind: HintNear, Target: NearEnd}
}
