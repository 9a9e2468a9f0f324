package schema

import (
	"encoding/binary"
	"fmt"

	"github.com/neonimp/neoncore/errs"
)

// MaxSignatureBytes is the widest supported signature: 128 bits.
const MaxSignatureBytes = 16

// Signature is a structure's fixed byte pattern, held as a 128-bit value plus
// a byte width. The stream-order bytes depend on the endianness the owning
// structure is decoded with, so they are rendered by Bytes at plan-build time
// rather than stored here.
type Signature struct {
	hi    uint64
	lo    uint64
	width uint8
}

// SignatureOfUint16 builds a 2-byte signature from a magic number.
func SignatureOfUint16(v uint16) Signature {
	return Signature{lo: uint64(v), width: 2}
}

// SignatureOfUint32 builds a 4-byte signature from a magic number.
func SignatureOfUint32(v uint32) Signature {
	return Signature{lo: uint64(v), width: 4}
}

// SignatureOfUint64 builds an 8-byte signature from a magic number.
func SignatureOfUint64(v uint64) Signature {
	return Signature{lo: v, width: 8}
}

// SignatureFromHex parses a hex literal of the form "0x" followed by 1-32 hex
// digits into a signature. The byte width is the number of digit pairs,
// rounded up.
func SignatureFromHex(s string) (Signature, error) {
	hi, lo, digits, err := parseHex(s)
	if err != nil {
		return Signature{}, err
	}

	return Signature{hi: hi, lo: lo, width: uint8((digits + 1) / 2)}, nil
}

// SignatureFromString builds a signature from 1-16 raw bytes, typically an
// ASCII magic tag such as "\x7fELF" or "PK\x05\x06". The bytes are folded
// little-endian, so rendering the signature with EndianLittle reproduces the
// input byte order.
func SignatureFromString(s string) (Signature, error) {
	if len(s) == 0 || len(s) > MaxSignatureBytes {
		return Signature{}, fmt.Errorf("%w: %d bytes", errs.ErrInvalidSignature, len(s))
	}

	var sig Signature
	sig.width = uint8(len(s))
	for i := 0; i < len(s); i++ {
		if i < 8 {
			sig.lo |= uint64(s[i]) << (8 * i)
		} else {
			sig.hi |= uint64(s[i]) << (8 * (i - 8))
		}
	}

	return sig, nil
}

// Width returns the signature length in bytes, 0 for the zero value.
func (s Signature) Width() int {
	return int(s.width)
}

// IsZero reports whether the signature is unset.
func (s Signature) IsZero() bool {
	return s.width == 0
}

// Bytes renders the stream-order byte pattern under the given endianness.
// EndianUnset renders little-endian.
func (s Signature) Bytes(e Endianness) []byte {
	full := make([]byte, MaxSignatureBytes)
	if e == EndianBig {
		binary.BigEndian.PutUint64(full[0:8], s.hi)
		binary.BigEndian.PutUint64(full[8:16], s.lo)

		return full[MaxSignatureBytes-int(s.width):]
	}

	binary.LittleEndian.PutUint64(full[0:8], s.lo)
	binary.LittleEndian.PutUint64(full[8:16], s.hi)

	return full[:s.width]
}

func (s Signature) String() string {
	switch {
	case s.width == 0:
		return "0x0"
	case s.hi != 0:
		return fmt.Sprintf("0x%x%016x", s.hi, s.lo)
	default:
		return fmt.Sprintf("0x%x", s.lo)
	}
}
