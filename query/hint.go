package query

import (
	"fmt"

	"github.com/neonimp/neoncore/errs"
	"github.com/neonimp/neoncore/schema"
)

// DefaultNearWindow is the lookback applied to NEAR hints, in bytes. A NEAR
// hint expresses approximate locality rather than an exact offset, so the
// search starts this many bytes before the anchor (clamped to the stream).
// Override per scanner with WithNearWindow.
const DefaultNearWindow = 512

// resolveHint translates a hint into the offset the signature search starts
// from. A SKIP offset beyond the stream is a configuration error in the
// query, reported as soon as the stream length is known, never silently
// clamped.
func resolveHint(h schema.Hint, streamLen, window int) (int, error) {
	switch h.Kind {
	case schema.HintSkip:
		if h.Offset > uint64(streamLen) {
			return 0, fmt.Errorf("%w: skip 0x%x, stream length %d", errs.ErrSkipBeyondStream, h.Offset, streamLen)
		}

		return int(h.Offset), nil

	case schema.HintNear:
		switch h.Target {
		case schema.NearStart:
			return 0, nil
		case schema.NearEnd:
			return clampStart(uint64(streamLen), window), nil
		default:
			anchor := h.Offset
			if anchor > uint64(streamLen) {
				anchor = uint64(streamLen)
			}

			return clampStart(anchor, window), nil
		}

	default:
		return 0, nil
	}
}

func clampStart(anchor uint64, window int) int {
	if anchor < uint64(window) {
		return 0
	}

	return int(anchor) - window
}
