package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Codec wraps stream buffers in the S2 framed format. The framed format
// (rather than raw S2 blocks) carries the sNaPpY stream identifier that
// Detect relies on.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates a new S2 framed codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Compress wraps data in an S2 framed stream.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := s2.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress unwraps an S2 framed stream.
func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return io.ReadAll(s2.NewReader(bytes.NewReader(data)))
}
