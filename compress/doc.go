// Package compress handles compressed stream containers.
//
// Scan targets are often stored compressed (archived disk images, captured
// payloads). This package detects the container format from leading magic
// bytes and unwraps the buffer before it is handed to the query scanner:
//
//	raw, format, err := compress.Unwrap(fileBytes)
//	if err != nil {
//	    return err
//	}
//	scanner, err := query.NewScanner(plan, raw)
//
// Supported formats are Zstandard frames, LZ4 frames, and S2/Snappy framed
// streams, plus a pass-through for uncompressed buffers. Each codec also
// exposes the compress direction for writing containers and for round-trip
// tests; neither direction touches the record decode path, which stays
// strictly decode-only.
package compress
