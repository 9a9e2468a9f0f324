//go:build cgo

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress wraps data in a Zstandard frame using libzstd.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress unwraps a Zstandard frame using libzstd.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
