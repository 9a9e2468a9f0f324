package query

// FieldValue pairs a field identifier with its decoded value, preserving the
// structure's declared field order.
type FieldValue struct {
	Name  string
	Value Value
}

// Record is one decoded structure instance.
//
// Offset is the byte offset where the signature match begins and DataOffset
// the offset immediately past the signature, so for every emitted record
// stream[DataOffset-sigLen:DataOffset] equals the structure signature.
// EndOffset is the cursor position after the last field, including alignment
// padding, so EndOffset-DataOffset is the total field byte consumption.
//
// Records are owned by the caller once emitted; the scanner only retains the
// most recent record per structure for the duration of the scan, to resolve
// foreign size references.
type Record struct {
	// Structure is the owning structure's identifier.
	Structure string
	// StructureID is the 64-bit hash ID of the owning structure.
	StructureID uint64
	// Offset is the byte offset of the signature match.
	Offset uint64
	// DataOffset is the byte offset just past the signature.
	DataOffset uint64
	// EndOffset is the byte offset just past the last decoded field.
	EndOffset uint64

	fields []FieldValue
	byName map[string]int
}

func newRecord(ps *PlanStructure, sigOffset, dataOffset int) *Record {
	return &Record{
		Structure:   ps.Name,
		StructureID: ps.ID,
		Offset:      uint64(sigOffset),
		DataOffset:  uint64(dataOffset),
		fields:      make([]FieldValue, 0, len(ps.fields)),
		byName:      make(map[string]int, len(ps.fields)),
	}
}

func (r *Record) addField(name string, v Value) {
	r.byName[name] = len(r.fields)
	r.fields = append(r.fields, FieldValue{Name: name, Value: v})
}

// Get returns the decoded value of the named field.
func (r *Record) Get(name string) (Value, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Value{}, false
	}

	return r.fields[i].Value, true
}

// Fields returns the decoded fields in declaration order. The slice is owned
// by the record and must not be modified.
func (r *Record) Fields() []FieldValue {
	return r.fields
}

// Len returns the number of decoded fields.
func (r *Record) Len() int {
	return len(r.fields)
}
