package compress

import (
	"bytes"
	"fmt"
)

// Format identifies the container format of a stream buffer.
type Format uint8

const (
	FormatRaw  Format = 0x1 // FormatRaw is an uncompressed stream.
	FormatZstd Format = 0x2 // FormatZstd is a Zstandard frame.
	FormatS2   Format = 0x3 // FormatS2 is an S2/Snappy framed stream.
	FormatLZ4  Format = 0x4 // FormatLZ4 is an LZ4 frame.
)

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "Raw"
	case FormatZstd:
		return "Zstd"
	case FormatS2:
		return "S2"
	case FormatLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Codec compresses and decompresses whole stream buffers.
//
// Compression here is a container concern, not part of the record decode
// path: scan targets are sometimes stored compressed, and unwrapping them is
// the caller's first step before signature search. The Compress direction
// exists for writing such containers and for round-trip tests.
//
// Memory management for both directions: the returned slice is newly
// allocated and owned by the caller, and the input slice is never modified.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Frame magics of the supported container formats. Detection is signature
// matching, the same trick the query engine itself runs on record signatures.
// S2 streams carry either the S2 identifier (what s2.NewWriter emits) or the
// Snappy-compat identifier; s2.NewReader accepts both, so Detect does too.
var (
	magicZstd   = []byte{0x28, 0xB5, 0x2F, 0xFD}
	magicLZ4    = []byte{0x04, 0x22, 0x4D, 0x18}
	magicS2     = []byte{0xFF, 0x06, 0x00, 0x00, 'S', '2', 's', 'T', 'w', 'O'}
	magicSnappy = []byte{0xFF, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}
)

// Detect sniffs the container format of data from its leading magic bytes.
// Buffers without a known magic are reported as FormatRaw.
func Detect(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, magicZstd):
		return FormatZstd
	case bytes.HasPrefix(data, magicLZ4):
		return FormatLZ4
	case bytes.HasPrefix(data, magicS2), bytes.HasPrefix(data, magicSnappy):
		return FormatS2
	default:
		return FormatRaw
	}
}

var builtinCodecs = map[Format]Codec{
	FormatRaw:  NewNoOpCodec(),
	FormatZstd: NewZstdCodec(),
	FormatS2:   NewS2Codec(),
	FormatLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for the given format.
func GetCodec(format Format) (Codec, error) {
	if codec, ok := builtinCodecs[format]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported container format: %s", format)
}

// Unwrap detects the container format of data and returns the decompressed
// stream bytes along with the detected format. Raw data is returned as-is
// without copying.
func Unwrap(data []byte) ([]byte, Format, error) {
	format := Detect(data)

	codec, err := GetCodec(format)
	if err != nil {
		return nil, format, err
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, format, fmt.Errorf("failed to unwrap %s container: %w", format, err)
	}

	return out, format, nil
}
