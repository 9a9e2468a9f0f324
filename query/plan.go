package query

import (
	"fmt"

	"github.com/neonimp/neoncore/endian"
	"github.com/neonimp/neoncore/errs"
	"github.com/neonimp/neoncore/internal/hash"
	"github.com/neonimp/neoncore/schema"
)

// Plan is a compiled query document: the structures in declaration order,
// each with resolved endianness, rendered signature bytes, and validated
// fields. A plan is immutable once built and may back any number of scans,
// concurrently, each against its own Scanner.
type Plan struct {
	structures []*PlanStructure
	byID       map[uint64]*PlanStructure
}

// PlanStructure is one compiled structure definition.
type PlanStructure struct {
	// Name is the structure identifier from the document.
	Name string
	// ID is the 64-bit hash identifier derived from Name.
	ID uint64
	// Endianness is the effective byte order: the structure override if set,
	// else the document default, else little-endian.
	Endianness schema.Endianness
	// Signature holds the stream-order signature bytes, rendered from the
	// declared hex value using the effective endianness.
	Signature []byte
	// Hint is the declared search hint, if any.
	Hint schema.Hint

	engine endian.EndianEngine
	fields []planField
}

type planField struct {
	name   string
	kind   schema.FieldKind
	typ    schema.PrimitiveType
	offset int64
	align  uint64
	size   sizeOperand
}

// sizeOperand is a compiled buffer/string size: a literal byte count when
// ref is nil, otherwise a back-reference.
type sizeOperand struct {
	literal uint64
	ref     *planRef
}

// planRef is a compiled size reference. structID is zero for self
// references, which resolve against the candidate being decoded.
type planRef struct {
	field      string
	structName string
	structID   uint64
}

// Build compiles a parsed document into an executable plan.
//
// Validation is fatal to the whole document: duplicate structure or field
// identifiers, invalid signatures or alignments, and references that could
// never resolve (unknown targets, non-integer targets, or targets declared
// after the referencing field in decode order) all abort the build.
func Build(doc *schema.Document) (*Plan, error) {
	if doc == nil {
		return nil, fmt.Errorf("cannot build plan from nil document")
	}

	plan := &Plan{
		byID: make(map[uint64]*PlanStructure, len(doc.Structures)),
	}

	declared := make(map[string]*schema.Structure, len(doc.Structures))
	for i := range doc.Structures {
		st := &doc.Structures[i]

		ps, err := compileStructure(st, doc, declared)
		if err != nil {
			return nil, fmt.Errorf("structure %q: %w", st.Name, err)
		}

		if prev, ok := plan.byID[ps.ID]; ok {
			// Distinct names on the same ID; duplicate names are caught in
			// compileStructure via the declared map.
			return nil, fmt.Errorf("%w: %q and %q", errs.ErrStructureIDCollision, prev.Name, ps.Name)
		}

		plan.structures = append(plan.structures, ps)
		plan.byID[ps.ID] = ps
		declared[st.Name] = st
	}

	return plan, nil
}

func compileStructure(st *schema.Structure, doc *schema.Document, declared map[string]*schema.Structure) (*PlanStructure, error) {
	if !schema.ValidIdentifier(st.Name) {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidIdentifier, st.Name)
	}
	if _, ok := declared[st.Name]; ok {
		return nil, errs.ErrDuplicateStructure
	}
	if st.Signature.IsZero() || st.Signature.Width() > schema.MaxSignatureBytes {
		return nil, errs.ErrInvalidSignature
	}

	effective := st.Endianness
	if effective == schema.EndianUnset {
		effective = doc.Endianness
	}
	if effective == schema.EndianUnset {
		effective = schema.EndianLittle
	}

	ps := &PlanStructure{
		Name:       st.Name,
		ID:         hash.ID(st.Name),
		Endianness: effective,
		Signature:  st.Signature.Bytes(effective),
		Hint:       st.Hint,
		engine:     endian.Of(effective),
		fields:     make([]planField, 0, len(st.Fields)),
	}

	seen := make(map[string]schema.PrimitiveType, len(st.Fields))
	for i := range st.Fields {
		f := &st.Fields[i]

		pf, err := compileField(f, seen, declared)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}

		ps.fields = append(ps.fields, pf)
		if f.Kind == schema.KindPrimitive {
			seen[f.Name] = f.Type
		} else {
			seen[f.Name] = 0
		}
	}

	return ps, nil
}

func compileField(f *schema.Field, seen map[string]schema.PrimitiveType, declared map[string]*schema.Structure) (planField, error) {
	if !schema.ValidIdentifier(f.Name) {
		return planField{}, fmt.Errorf("%w: %q", errs.ErrInvalidIdentifier, f.Name)
	}
	if _, ok := seen[f.Name]; ok {
		return planField{}, errs.ErrDuplicateField
	}
	if f.Align != 0 && f.Align&(f.Align-1) != 0 {
		return planField{}, fmt.Errorf("%w: 0x%x", errs.ErrInvalidAlignment, f.Align)
	}

	pf := planField{
		name:   f.Name,
		kind:   f.Kind,
		typ:    f.Type,
		offset: f.Offset,
		align:  f.Align,
	}

	switch f.Kind {
	case schema.KindPrimitive:
		if f.Type.Width() == 0 {
			return planField{}, fmt.Errorf("%w: %v", errs.ErrInvalidPrimitiveType, f.Type)
		}
	case schema.KindBuffer, schema.KindString:
		size, err := compileSize(f.Size, seen, declared)
		if err != nil {
			return planField{}, err
		}
		pf.size = size
	default:
		return planField{}, fmt.Errorf("%w: field kind %v", errs.ErrInvalidPrimitiveType, f.Kind)
	}

	return pf, nil
}

func compileSize(size schema.SizeOperand, seen map[string]schema.PrimitiveType, declared map[string]*schema.Structure) (sizeOperand, error) {
	if size.Ref == nil {
		return sizeOperand{literal: size.Literal}, nil
	}

	ref := *size.Ref
	if ref.Structure == "" {
		typ, ok := seen[ref.Field]
		if !ok {
			// Could be a later field of the same structure, but decode order
			// makes that indistinguishable from undeclared here; either way
			// the reference cannot resolve.
			return sizeOperand{}, fmt.Errorf("%w: %v", errs.ErrUnknownReference, ref)
		}
		if !typ.Referenceable() {
			return sizeOperand{}, fmt.Errorf("%w: %v", errs.ErrReferenceNotInteger, ref)
		}

		return sizeOperand{ref: &planRef{field: ref.Field}}, nil
	}

	st, ok := declared[ref.Structure]
	if !ok {
		// Structures are scanned in declaration order; a structure declared
		// later (or not at all) has no decoded record to consult.
		return sizeOperand{}, fmt.Errorf("%w: %v", errs.ErrForwardReference, ref)
	}

	for i := range st.Fields {
		target := &st.Fields[i]
		if target.Name != ref.Field {
			continue
		}
		if target.Kind != schema.KindPrimitive || !target.Type.Referenceable() {
			return sizeOperand{}, fmt.Errorf("%w: %v", errs.ErrReferenceNotInteger, ref)
		}

		return sizeOperand{
			ref: &planRef{field: ref.Field, structName: ref.Structure, structID: hash.ID(ref.Structure)},
		}, nil
	}

	return sizeOperand{}, fmt.Errorf("%w: %v", errs.ErrUnknownReference, ref)
}

// Structures returns the compiled structures in declaration order. The slice
// is owned by the plan and must not be modified.
func (p *Plan) Structures() []*PlanStructure {
	return p.structures
}

// Lookup returns the compiled structure with the given name.
func (p *Plan) Lookup(name string) (*PlanStructure, bool) {
	ps, ok := p.byID[hash.ID(name)]
	if !ok || ps.Name != name {
		return nil, false
	}

	return ps, true
}

// NumFields returns the number of compiled fields of the structure.
func (ps *PlanStructure) NumFields() int {
	return len(ps.fields)
}
