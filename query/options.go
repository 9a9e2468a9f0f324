package query

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/neonimp/neoncore/internal/options"
)

// Option configures a Scanner.
type Option = options.Option[*Scanner]

func applyOptions(s *Scanner, opts ...Option) error {
	return options.Apply(s, opts...)
}

// WithNearWindow sets the lookback window applied to NEAR hints, in bytes.
// The search for a structure hinted NEAR offset x starts at max(0, x-window).
// Default is DefaultNearWindow (512 bytes).
func WithNearWindow(window int) Option {
	return options.New(func(s *Scanner) error {
		if window < 0 {
			return fmt.Errorf("near window must not be negative, got %d", window)
		}
		s.nearWindow = window

		return nil
	})
}

// WithMaxFieldSize sets the allocation bound for buffer and string fields,
// in bytes. A size operand resolving above the bound discards the candidate
// with ErrSizeOverflow. Default is 2^32-1.
func WithMaxFieldSize(limit uint64) Option {
	return options.New(func(s *Scanner) error {
		if limit == 0 {
			return fmt.Errorf("max field size must be positive")
		}
		s.maxFieldSize = limit

		return nil
	})
}

// WithLogger sets the logger used for per-candidate diagnostics. Discarded
// candidates are logged at debug level. Default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return options.New(func(s *Scanner) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		s.logger = logger

		return nil
	})
}
