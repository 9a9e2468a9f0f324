package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neonimp/neoncore/errs"
	"github.com/neonimp/neoncore/schema"
)

func mustSig(t *testing.T, lit string) schema.Signature {
	t.Helper()
	sig, err := schema.SignatureFromHex(lit)
	require.NoError(t, err)

	return sig
}

func TestBuild(t *testing.T) {
	doc := &schema.Document{
		Endianness: schema.EndianBig,
		Structures: []schema.Structure{
			{
				Name:      "header",
				Signature: mustSig(t, "0x06054b50"),
				Fields: []schema.Field{
					schema.Primitive("count", schema.U16),
					schema.Buffer("body", schema.RefSize("count")),
				},
			},
			{
				Name:       "entry",
				Signature:  mustSig(t, "0x02014b50"),
				Endianness: schema.EndianLittle,
				Fields: []schema.Field{
					schema.Buffer("data", schema.ForeignRefSize("count", "header")),
				},
			},
		},
	}

	plan, err := Build(doc)
	require.NoError(t, err)
	require.Len(t, plan.Structures(), 2)

	header, ok := plan.Lookup("header")
	require.True(t, ok)
	require.Equal(t, schema.EndianBig, header.Endianness)
	require.Equal(t, []byte{0x06, 0x05, 0x4b, 0x50}, header.Signature)
	require.Equal(t, 2, header.NumFields())

	entry, ok := plan.Lookup("entry")
	require.True(t, ok)
	require.Equal(t, schema.EndianLittle, entry.Endianness)
	require.Equal(t, []byte{0x50, 0x4b, 0x01, 0x02}, entry.Signature)

	_, ok = plan.Lookup("missing")
	require.False(t, ok)
}

func TestBuild_DefaultEndianness(t *testing.T) {
	doc := &schema.Document{
		Structures: []schema.Structure{
			{Name: "s", Signature: mustSig(t, "0xCAFE")},
		},
	}

	plan, err := Build(doc)
	require.NoError(t, err)

	ps := plan.Structures()[0]
	require.Equal(t, schema.EndianLittle, ps.Endianness)
	require.Equal(t, []byte{0xfe, 0xca}, ps.Signature)
}

func TestBuild_Errors(t *testing.T) {
	sig := "0x01"

	tests := []struct {
		name string
		doc  *schema.Document
		want error
	}{
		{
			name: "duplicate structure",
			doc: &schema.Document{Structures: []schema.Structure{
				{Name: "s", Signature: mustSig(t, sig)},
				{Name: "s", Signature: mustSig(t, sig)},
			}},
			want: errs.ErrDuplicateStructure,
		},
		{
			name: "duplicate field",
			doc: &schema.Document{Structures: []schema.Structure{
				{Name: "s", Signature: mustSig(t, sig), Fields: []schema.Field{
					schema.Primitive("f", schema.U8),
					schema.Primitive("f", schema.U16),
				}},
			}},
			want: errs.ErrDuplicateField,
		},
		{
			name: "missing signature",
			doc: &schema.Document{Structures: []schema.Structure{
				{Name: "s"},
			}},
			want: errs.ErrInvalidSignature,
		},
		{
			name: "bad structure identifier",
			doc: &schema.Document{Structures: []schema.Structure{
				{Name: "1bad", Signature: mustSig(t, sig)},
			}},
			want: errs.ErrInvalidIdentifier,
		},
		{
			name: "bad field identifier",
			doc: &schema.Document{Structures: []schema.Structure{
				{Name: "s", Signature: mustSig(t, sig), Fields: []schema.Field{
					schema.Primitive("-bad", schema.U8),
				}},
			}},
			want: errs.ErrInvalidIdentifier,
		},
		{
			name: "alignment not power of two",
			doc: &schema.Document{Structures: []schema.Structure{
				{Name: "s", Signature: mustSig(t, sig), Fields: []schema.Field{
					{Name: "f", Kind: schema.KindPrimitive, Type: schema.U8, Align: 3},
				}},
			}},
			want: errs.ErrInvalidAlignment,
		},
		{
			name: "reference to later sibling",
			doc: &schema.Document{Structures: []schema.Structure{
				{Name: "s", Signature: mustSig(t, sig), Fields: []schema.Field{
					schema.Buffer("body", schema.RefSize("size")),
					schema.Primitive("size", schema.U16),
				}},
			}},
			want: errs.ErrUnknownReference,
		},
		{
			name: "reference to undeclared sibling",
			doc: &schema.Document{Structures: []schema.Structure{
				{Name: "s", Signature: mustSig(t, sig), Fields: []schema.Field{
					schema.Buffer("body", schema.RefSize("nope")),
				}},
			}},
			want: errs.ErrUnknownReference,
		},
		{
			name: "reference to float field",
			doc: &schema.Document{Structures: []schema.Structure{
				{Name: "s", Signature: mustSig(t, sig), Fields: []schema.Field{
					schema.Primitive("size", schema.F64),
					schema.Buffer("body", schema.RefSize("size")),
				}},
			}},
			want: errs.ErrReferenceNotInteger,
		},
		{
			name: "reference to 128-bit field",
			doc: &schema.Document{Structures: []schema.Structure{
				{Name: "s", Signature: mustSig(t, sig), Fields: []schema.Field{
					schema.Primitive("size", schema.U128),
					schema.Buffer("body", schema.RefSize("size")),
				}},
			}},
			want: errs.ErrReferenceNotInteger,
		},
		{
			name: "reference to buffer field",
			doc: &schema.Document{Structures: []schema.Structure{
				{Name: "s", Signature: mustSig(t, sig), Fields: []schema.Field{
					schema.Buffer("head", schema.LiteralSize(2)),
					schema.Buffer("body", schema.RefSize("head")),
				}},
			}},
			want: errs.ErrReferenceNotInteger,
		},
		{
			name: "foreign reference to later structure",
			doc: &schema.Document{Structures: []schema.Structure{
				{Name: "first", Signature: mustSig(t, sig), Fields: []schema.Field{
					schema.Buffer("body", schema.ForeignRefSize("count", "second")),
				}},
				{Name: "second", Signature: mustSig(t, "0x02"), Fields: []schema.Field{
					schema.Primitive("count", schema.U16),
				}},
			}},
			want: errs.ErrForwardReference,
		},
		{
			name: "foreign reference to missing field",
			doc: &schema.Document{Structures: []schema.Structure{
				{Name: "first", Signature: mustSig(t, sig), Fields: []schema.Field{
					schema.Primitive("count", schema.U16),
				}},
				{Name: "second", Signature: mustSig(t, "0x02"), Fields: []schema.Field{
					schema.Buffer("body", schema.ForeignRefSize("nope", "first")),
				}},
			}},
			want: errs.ErrUnknownReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.doc)
			require.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("nil document", func(t *testing.T) {
		_, err := Build(nil)
		require.Error(t, err)
	})
}

func TestBuild_EmptyStructureAllowed(t *testing.T) {
	doc := &schema.Document{Structures: []schema.Structure{
		{Name: "marker", Signature: mustSig(t, "0x4d5a")},
	}}

	plan, err := Build(doc)
	require.NoError(t, err)
	require.Equal(t, 0, plan.Structures()[0].NumFields())
}
