package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/neonimp/neoncore/errs"
)

// YAML document form. The textual query grammar is handled by an external
// front-end; this loader is an alternative front-end that deserializes the
// same AST from YAML, using the shared literal formats: hex "0x…" literals
// for numbers and "&field::Structure" tokens for references.
//
// Example:
//
//	endianness: little
//	structures:
//	  - name: EOCD
//	    signature: "0x06054b50"
//	    hint:
//	      near: end
//	    fields:
//	      - name: disk_number
//	        type: u16
//	      - name: comment_length
//	        type: u16
//	      - name: comment
//	        type: buffer
//	        size: "&comment_length"

type yamlDocument struct {
	Endianness string          `yaml:"endianness,omitempty"`
	Structures []yamlStructure `yaml:"structures"`
}

type yamlStructure struct {
	Name       string      `yaml:"name"`
	Signature  string      `yaml:"signature"`
	Endianness string      `yaml:"endianness,omitempty"`
	Hint       *yamlHint   `yaml:"hint,omitempty"`
	Fields     []yamlField `yaml:"fields,omitempty"`
}

type yamlHint struct {
	Skip string `yaml:"skip,omitempty"`
	Near string `yaml:"near,omitempty"`
}

type yamlField struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Size   string `yaml:"size,omitempty"`
	Align  string `yaml:"align,omitempty"`
	Offset string `yaml:"offset,omitempty"`
}

// LoadYAML parses a YAML query document into a Document.
//
// Only literal formats are validated here; structural rules (duplicate
// identifiers, reference order, signature width) are enforced by the plan
// builder.
func LoadYAML(data []byte) (*Document, error) {
	var raw yamlDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse query document: %w", err)
	}

	doc := &Document{}
	if raw.Endianness != "" {
		e, err := ParseEndianness(raw.Endianness)
		if err != nil {
			return nil, err
		}
		doc.Endianness = e
	}

	for _, rs := range raw.Structures {
		s, err := loadStructure(rs)
		if err != nil {
			return nil, fmt.Errorf("structure %q: %w", rs.Name, err)
		}
		doc.Structures = append(doc.Structures, s)
	}

	return doc, nil
}

func loadStructure(raw yamlStructure) (Structure, error) {
	s := Structure{Name: raw.Name}

	sig, err := SignatureFromHex(raw.Signature)
	if err != nil {
		return Structure{}, err
	}
	s.Signature = sig

	if raw.Endianness != "" {
		if s.Endianness, err = ParseEndianness(raw.Endianness); err != nil {
			return Structure{}, err
		}
	}

	if raw.Hint != nil {
		if s.Hint, err = loadHint(*raw.Hint); err != nil {
			return Structure{}, err
		}
	}

	for _, rf := range raw.Fields {
		f, err := loadField(rf)
		if err != nil {
			return Structure{}, fmt.Errorf("field %q: %w", rf.Name, err)
		}
		s.Fields = append(s.Fields, f)
	}

	return s, nil
}

func loadHint(raw yamlHint) (Hint, error) {
	switch {
	case raw.Skip != "" && raw.Near != "":
		return Hint{}, fmt.Errorf("%w: both skip and near given", errs.ErrInvalidHint)
	case raw.Skip != "":
		off, err := ParseHexUint(raw.Skip)
		if err != nil {
			return Hint{}, err
		}

		return SkipHint(off), nil
	case raw.Near == "start":
		return NearStartHint(), nil
	case raw.Near == "end":
		return NearEndHint(), nil
	case raw.Near != "":
		off, err := ParseHexUint(raw.Near)
		if err != nil {
			return Hint{}, err
		}

		return NearHint(off), nil
	default:
		return Hint{}, fmt.Errorf("%w: empty hint", errs.ErrInvalidHint)
	}
}

func loadField(raw yamlField) (Field, error) {
	var f Field

	switch raw.Type {
	case "buffer":
		f = Buffer(raw.Name, SizeOperand{})
	case "string":
		f = String(raw.Name, SizeOperand{})
	default:
		typ, err := ParsePrimitiveType(raw.Type)
		if err != nil {
			return Field{}, err
		}
		f = Primitive(raw.Name, typ)
	}

	if f.Kind != KindPrimitive {
		size, err := loadSize(raw.Size)
		if err != nil {
			return Field{}, err
		}
		f.Size = size
	}

	if raw.Align != "" {
		align, err := ParseHexUint(raw.Align)
		if err != nil {
			return Field{}, err
		}
		f.Align = align
	}

	if raw.Offset != "" {
		off, err := ParseHexInt(raw.Offset)
		if err != nil {
			return Field{}, err
		}
		f.Offset = off
	}

	return f, nil
}

func loadSize(raw string) (SizeOperand, error) {
	if raw == "" {
		return SizeOperand{}, fmt.Errorf("%w: missing size operand", errs.ErrInvalidHexLiteral)
	}

	if raw[0] == '&' {
		ref, err := ParseReference(raw)
		if err != nil {
			return SizeOperand{}, err
		}

		return SizeOperand{Ref: &ref}, nil
	}

	n, err := ParseHexUint(raw)
	if err != nil {
		return SizeOperand{}, err
	}

	return LiteralSize(n), nil
}
