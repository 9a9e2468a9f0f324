// Package scan implements signature-anchored search over a byte buffer.
package scan

import "bytes"

// Index searches one signature over one fully materialized stream buffer.
// The engine creates one Index per structure per scan pass; the search is a
// plain linear scan, which is fine for streams that are scanned once.
type Index struct {
	data []byte
	sig  []byte
}

// New creates an index for sig over data.
func New(data, sig []byte) *Index {
	return &Index{data: data, sig: sig}
}

// SigLen returns the signature length in bytes.
func (ix *Index) SigLen() int {
	return len(ix.sig)
}

// FindNext returns the lowest offset >= start at which the signature occurs
// as a contiguous byte match. A signature longer than the remaining buffer
// yields no match, not an error.
func (ix *Index) FindNext(start int) (int, bool) {
	if start < 0 {
		start = 0
	}
	if len(ix.sig) == 0 || start+len(ix.sig) > len(ix.data) {
		return 0, false
	}

	rel := bytes.Index(ix.data[start:], ix.sig)
	if rel < 0 {
		return 0, false
	}

	return start + rel, true
}
