package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/neonimp/neoncore/errs"
)

// The textual literal formats shared by every front-end that produces a
// Document: hex integers "0x" plus 1-32 digits, identifiers that never start
// with a digit or hyphen, and "&field" / "&field::Structure" reference tokens.

// parseHex parses a "0x"-prefixed hex literal of up to 32 digits into a
// 128-bit value split across hi and lo, returning the digit count as well.
func parseHex(s string) (hi, lo uint64, digits int, err error) {
	body, ok := strings.CutPrefix(s, "0x")
	if !ok {
		body, ok = strings.CutPrefix(s, "0X")
	}
	if !ok || len(body) == 0 || len(body) > 32 {
		return 0, 0, 0, fmt.Errorf("%w: %q", errs.ErrInvalidHexLiteral, s)
	}

	digits = len(body)
	loPart := body
	if digits > 16 {
		hiPart := body[:digits-16]
		loPart = body[digits-16:]
		hi, err = strconv.ParseUint(hiPart, 16, 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", errs.ErrInvalidHexLiteral, s)
		}
	}

	lo, err = strconv.ParseUint(loPart, 16, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", errs.ErrInvalidHexLiteral, s)
	}

	return hi, lo, digits, nil
}

// ParseHexUint parses a hex literal that must fit in 64 bits, as used by
// size and alignment operands.
func ParseHexUint(s string) (uint64, error) {
	hi, lo, _, err := parseHex(s)
	if err != nil {
		return 0, err
	}
	if hi != 0 {
		return 0, fmt.Errorf("%w: %q exceeds 64 bits", errs.ErrInvalidHexLiteral, s)
	}

	return lo, nil
}

// ParseHexInt parses a hex literal with an optional leading minus sign, as
// used by signed offset operands.
func ParseHexInt(s string) (int64, error) {
	neg := strings.HasPrefix(s, "-")
	v, err := ParseHexUint(strings.TrimPrefix(s, "-"))
	if err != nil {
		return 0, err
	}
	if neg {
		if v > 1<<63 {
			return 0, fmt.Errorf("%w: %q exceeds 64 bits", errs.ErrInvalidHexLiteral, s)
		}

		return -int64(v - 1) - 1, nil
	}
	if v > 1<<63-1 {
		return 0, fmt.Errorf("%w: %q exceeds 64 bits", errs.ErrInvalidHexLiteral, s)
	}

	return int64(v), nil
}

// ValidIdentifier reports whether s is a well-formed identifier: it must not
// start with a digit or hyphen, and may contain only alphanumerics,
// underscores, and hyphens.
func ValidIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9', c == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// ParseReference parses a "&field" or "&field::Structure" reference token.
func ParseReference(s string) (Reference, error) {
	body, ok := strings.CutPrefix(s, "&")
	if !ok {
		return Reference{}, fmt.Errorf("%w: missing '&' in %q", errs.ErrInvalidIdentifier, s)
	}

	field, structure, foreign := strings.Cut(body, "::")
	if !ValidIdentifier(field) || (foreign && !ValidIdentifier(structure)) {
		return Reference{}, fmt.Errorf("%w: %q", errs.ErrInvalidIdentifier, s)
	}

	return Reference{Field: field, Structure: structure}, nil
}
