package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPayload() []byte {
	// Repetitive enough that every codec actually shrinks it.
	return bytes.Repeat([]byte("PK\x05\x06 end of central directory "), 64)
}

func TestCodec_RoundTrip(t *testing.T) {
	formats := []Format{FormatRaw, FormatZstd, FormatS2, FormatLZ4}
	payload := testPayload()

	for _, format := range formats {
		t.Run(format.String(), func(t *testing.T) {
			codec, err := GetCodec(format)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			out, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, out)

			if format != FormatRaw {
				require.Less(t, len(compressed), len(payload))
			}
		})
	}
}

func TestDetect(t *testing.T) {
	payload := testPayload()

	for _, format := range []Format{FormatZstd, FormatS2, FormatLZ4} {
		t.Run(format.String(), func(t *testing.T) {
			codec, err := GetCodec(format)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Equal(t, format, Detect(compressed))
		})
	}

	// s2.NewWriter emits the S2 stream identifier, not the Snappy-compat
	// one; both must classify as S2.
	t.Run("s2 stream identifiers", func(t *testing.T) {
		compressed, err := NewS2Codec().Compress(payload)
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(compressed, magicS2))
		require.Equal(t, FormatS2, Detect(compressed))
		require.Equal(t, FormatS2, Detect(magicSnappy))
	})

	t.Run("raw", func(t *testing.T) {
		require.Equal(t, FormatRaw, Detect([]byte{0x50, 0x4b, 0x05, 0x06}))
		require.Equal(t, FormatRaw, Detect(nil))
		require.Equal(t, FormatRaw, Detect([]byte{0x28}))
	})
}

func TestUnwrap(t *testing.T) {
	payload := testPayload()

	for _, format := range []Format{FormatZstd, FormatS2, FormatLZ4} {
		t.Run(format.String(), func(t *testing.T) {
			codec, err := GetCodec(format)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			out, detected, err := Unwrap(compressed)
			require.NoError(t, err)
			require.Equal(t, format, detected)
			require.Equal(t, payload, out)
		})
	}

	t.Run("raw passthrough", func(t *testing.T) {
		raw := []byte{0x50, 0x4b, 0x05, 0x06, 0x00}

		out, detected, err := Unwrap(raw)
		require.NoError(t, err)
		require.Equal(t, FormatRaw, detected)
		require.Equal(t, raw, out)
	})

	t.Run("corrupt frame", func(t *testing.T) {
		corrupt := append(bytes.Clone(magicZstd), 0xde, 0xad, 0xbe, 0xef)

		_, detected, err := Unwrap(corrupt)
		require.Error(t, err)
		require.Equal(t, FormatZstd, detected)
	})
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(Format(0x7f))
	require.Error(t, err)
}

func TestFormat_String(t *testing.T) {
	require.Equal(t, "Raw", FormatRaw.String())
	require.Equal(t, "Zstd", FormatZstd.String())
	require.Equal(t, "S2", FormatS2.String())
	require.Equal(t, "LZ4", FormatLZ4.String())
	require.Equal(t, "Unknown", Format(0x7f).String())
}
