package compress

// ZstdCodec wraps stream buffers in Zstandard frames.
//
// Two implementations exist behind build tags, mirroring the split between
// the cgo libzstd bindings and the pure-Go decoder: builds with cgo use
// valyala/gozstd, builds without fall back to klauspost/compress/zstd. Both
// produce and accept standard Zstandard frames.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
