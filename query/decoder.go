package query

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/neonimp/neoncore/errs"
	"github.com/neonimp/neoncore/schema"
)

// decodeCandidate decodes the full field list of a signature occurrence at
// sigOffset. Any error discards only this candidate; the caller resumes the
// signature search.
func (s *Scanner) decodeCandidate(ps *PlanStructure, sigOffset int) (*Record, error) {
	cursor := sigOffset + len(ps.Signature)
	rec := newRecord(ps, sigOffset, cursor)

	for i := range ps.fields {
		f := &ps.fields[i]

		val, next, err := s.decodeField(ps, f, cursor, rec)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.name, err)
		}

		rec.addField(f.name, val)
		cursor = next
	}

	rec.EndOffset = uint64(cursor)

	return rec, nil
}

// decodeField decodes one field at the given cursor, returning the value and
// the cursor position past the field. The offset displacement is applied
// first, then alignment rounds the cursor up to the field's boundary.
func (s *Scanner) decodeField(ps *PlanStructure, f *planField, cursor int, rec *Record) (Value, int, error) {
	c := int64(cursor) + f.offset
	if f.align != 0 {
		c = alignUp(c, int64(f.align))
	}
	if c < 0 || c > int64(len(s.data)) {
		return Value{}, 0, fmt.Errorf("%w: cursor %d", errs.ErrCursorOutOfRange, c)
	}

	if f.kind == schema.KindPrimitive {
		return s.decodePrimitive(ps, f, int(c))
	}

	size, err := s.resolveSize(f, rec)
	if err != nil {
		return Value{}, 0, err
	}
	if int(c)+size > len(s.data) {
		return Value{}, 0, fmt.Errorf("%w: need %d bytes at offset %d", errs.ErrUnexpectedEof, size, c)
	}

	// Copy out of the stream so records stay valid independently of the
	// caller's buffer.
	raw := bytes.Clone(s.data[int(c) : int(c)+size])
	next := int(c) + size

	if f.kind == schema.KindString {
		if !utf8.Valid(raw) {
			return Value{}, 0, errs.ErrInvalidUtf8
		}

		return stringValue(string(raw)), next, nil
	}

	return bytesValue(raw), next, nil
}

func (s *Scanner) decodePrimitive(ps *PlanStructure, f *planField, cursor int) (Value, int, error) {
	width := f.typ.Width()
	if cursor+width > len(s.data) {
		return Value{}, 0, fmt.Errorf("%w: need %d bytes at offset %d", errs.ErrUnexpectedEof, width, cursor)
	}

	buf := s.data[cursor : cursor+width]
	engine := ps.engine
	next := cursor + width

	switch f.typ {
	case schema.U8, schema.I8:
		raw := uint64(buf[0])
		if f.typ == schema.I8 {
			return intValue(1, int64(int8(buf[0]))), next, nil
		}

		return uintValue(1, raw), next, nil

	case schema.U16, schema.I16:
		raw := engine.Uint16(buf)
		if f.typ == schema.I16 {
			return intValue(2, int64(int16(raw))), next, nil
		}

		return uintValue(2, uint64(raw)), next, nil

	case schema.U32, schema.I32:
		raw := engine.Uint32(buf)
		if f.typ == schema.I32 {
			return intValue(4, int64(int32(raw))), next, nil
		}

		return uintValue(4, uint64(raw)), next, nil

	case schema.U64, schema.I64:
		raw := engine.Uint64(buf)
		if f.typ == schema.I64 {
			return intValue(8, int64(raw)), next, nil
		}

		return uintValue(8, raw), next, nil

	case schema.U128, schema.I128:
		var hi, lo uint64
		if ps.Endianness == schema.EndianBig {
			hi = engine.Uint64(buf[0:8])
			lo = engine.Uint64(buf[8:16])
		} else {
			lo = engine.Uint64(buf[0:8])
			hi = engine.Uint64(buf[8:16])
		}
		if f.typ == schema.I128 {
			return int128Value(hi, lo), next, nil
		}

		return uint128Value(hi, lo), next, nil

	case schema.F32:
		raw := engine.Uint32(buf)

		return Value{Kind: ValueFloat32, Width: 4, lo: uint64(raw)}, next, nil

	case schema.F64:
		raw := engine.Uint64(buf)

		return Value{Kind: ValueFloat64, Width: 8, lo: raw}, next, nil

	default:
		return Value{}, 0, fmt.Errorf("%w: %v", errs.ErrInvalidPrimitiveType, f.typ)
	}
}

// resolveSize resolves a buffer/string size operand to a concrete byte
// count. References look up already-decoded values: self references in the
// candidate being decoded, foreign references in the most recent record of
// the referenced structure.
func (s *Scanner) resolveSize(f *planField, rec *Record) (int, error) {
	op := f.size

	if op.ref == nil {
		if op.literal > s.maxFieldSize {
			return 0, fmt.Errorf("%w: %d bytes", errs.ErrSizeOverflow, op.literal)
		}

		return int(op.literal), nil
	}

	var (
		val Value
		ok  bool
	)
	if op.ref.structName == "" {
		val, ok = rec.Get(op.ref.field)
	} else {
		prev := s.latest[op.ref.structID]
		if prev == nil {
			return 0, fmt.Errorf("%w: no %q match yet", errs.ErrUnresolvedReference, op.ref.structName)
		}
		val, ok = prev.Get(op.ref.field)
	}
	if !ok {
		return 0, fmt.Errorf("%w: &%s", errs.ErrUnresolvedReference, op.ref.field)
	}

	size, ok := val.sizeValue()
	if !ok || size > s.maxFieldSize {
		return 0, fmt.Errorf("%w: &%s = %v", errs.ErrSizeOverflow, op.ref.field, val)
	}

	return int(size), nil
}

// alignUp rounds c up to the next multiple of the power-of-two boundary a.
func alignUp(c, a int64) int64 {
	return (c + a - 1) &^ (a - 1)
}
