package schema

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neonimp/neoncore/errs"
)

func TestParseHexUint(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"0x0", 0},
		{"0x10", 16},
		{"0xFFFF", 65535},
		{"0Xff", 255},
		{"0xffffffffffffffff", math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexUint(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("Errors", func(t *testing.T) {
		for _, s := range []string{"", "10", "0x", "0xg1", "0x10000000000000000"} {
			_, err := ParseHexUint(s)
			require.ErrorIs(t, err, errs.ErrInvalidHexLiteral, "literal %q", s)
		}
	})
}

func TestParseHexInt(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0x0", 0},
		{"-0x0", 0},
		{"0x10", 16},
		{"-0x10", -16},
		{"-0x8000000000000000", math.MinInt64},
		{"0x7fffffffffffffff", math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexInt(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("Out of range", func(t *testing.T) {
		_, err := ParseHexInt("0x8000000000000000")
		require.ErrorIs(t, err, errs.ErrInvalidHexLiteral)

		_, err = ParseHexInt("-0x8000000000000001")
		require.ErrorIs(t, err, errs.ErrInvalidHexLiteral)
	})
}

func TestValidIdentifier(t *testing.T) {
	valid := []string{"a", "EOCD", "disk_number", "x-y", "_hidden", "a1b2"}
	for _, s := range valid {
		require.True(t, ValidIdentifier(s), "%q should be valid", s)
	}

	invalid := []string{"", "1abc", "-abc", "a b", "a.b", "ünïcode"}
	for _, s := range invalid {
		require.False(t, ValidIdentifier(s), "%q should be invalid", s)
	}
}

func TestParseReference(t *testing.T) {
	t.Run("Sibling field", func(t *testing.T) {
		ref, err := ParseReference("&comment_length")
		require.NoError(t, err)
		require.Equal(t, Reference{Field: "comment_length"}, ref)
		require.Equal(t, "&comment_length", ref.String())
	})

	t.Run("Foreign structure field", func(t *testing.T) {
		ref, err := ParseReference("&disk_entries::EOCD")
		require.NoError(t, err)
		require.Equal(t, Reference{Field: "disk_entries", Structure: "EOCD"}, ref)
		require.Equal(t, "&disk_entries::EOCD", ref.String())
	})

	t.Run("Malformed tokens", func(t *testing.T) {
		for _, s := range []string{"comment_length", "&", "&1abc", "&f::", "&f::1x"} {
			_, err := ParseReference(s)
			require.ErrorIs(t, err, errs.ErrInvalidIdentifier, "token %q", s)
		}
	})
}
