package compress

// NoOpCodec passes stream buffers through unchanged. It backs FormatRaw and
// is handy as a baseline in benchmarks.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is, sharing its memory.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, sharing its memory.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
