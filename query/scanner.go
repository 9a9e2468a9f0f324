package query

import (
	"fmt"
	"iter"
	"math"

	"go.uber.org/zap"

	"github.com/neonimp/neoncore/internal/scan"
)

// Scanner executes a compiled plan against one byte stream.
//
// A scanner is single-threaded state for a single scan: it owns the map of
// most-recently-decoded record per structure that foreign references consult.
// Independent scans (other documents, other streams) use their own Scanner
// and never interfere; one Scanner must not be used from multiple goroutines.
type Scanner struct {
	plan *Plan
	data []byte

	nearWindow   int
	maxFieldSize uint64
	logger       *zap.Logger

	latest map[uint64]*Record
	stats  Stats
}

// Stats counts candidate outcomes during a scan. Discarded candidates are
// diagnostics, not failures: a signature collision with non-matching field
// content is expected in arbitrary binary data.
type Stats struct {
	// Candidates is the number of signature occurrences considered.
	Candidates uint64
	// Discarded is the number of candidates dropped by field decode failures.
	Discarded uint64
	// Matched is the number of records emitted.
	Matched uint64
}

// NewScanner binds a plan to a stream buffer.
//
// The buffer must stay immutable for the lifetime of the scanner. SKIP hints
// are validated against the stream length here, the earliest point it is
// known; a skip past the end of the stream fails construction rather than
// being clamped.
func NewScanner(plan *Plan, data []byte, opts ...Option) (*Scanner, error) {
	s := &Scanner{
		plan:         plan,
		data:         data,
		nearWindow:   DefaultNearWindow,
		maxFieldSize: math.MaxUint32,
		logger:       zap.NewNop(),
		latest:       make(map[uint64]*Record, len(plan.structures)),
	}

	if err := applyOptions(s, opts...); err != nil {
		return nil, err
	}

	for _, ps := range plan.structures {
		if _, err := resolveHint(ps.Hint, len(data), s.nearWindow); err != nil {
			return nil, fmt.Errorf("structure %q: %w", ps.Name, err)
		}
	}

	return s, nil
}

// Matches returns a lazy iterator over the structure's decoded records, in
// stream order.
//
// Each step resumes the signature search just past the previous match's
// signature. Candidates whose field decode fails are discarded and the
// search continues from the next byte, so an incidental signature occurrence
// never aborts the scan. Breaking out of the loop abandons the remaining
// matches; iterating again restarts from the hint position.
//
// Every emitted record is stored as the structure's most recent match, which
// later structures' foreign references resolve against. For documents with
// foreign references, use Scan, which processes structures in declaration
// order as those references require.
func (s *Scanner) Matches(ps *PlanStructure) iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		start, err := resolveHint(ps.Hint, len(s.data), s.nearWindow)
		if err != nil {
			// Already validated in NewScanner; kept as a guard.
			return
		}

		ix := scan.New(s.data, ps.Signature)
		for {
			offset, ok := ix.FindNext(start)
			if !ok {
				return
			}

			s.stats.Candidates++

			rec, err := s.decodeCandidate(ps, offset)
			if err != nil {
				s.stats.Discarded++
				s.logger.Debug("discarded candidate match",
					zap.String("structure", ps.Name),
					zap.Int("offset", offset),
					zap.Error(err),
				)
				start = offset + 1

				continue
			}

			s.stats.Matched++
			s.latest[ps.ID] = rec

			if !yield(rec) {
				return
			}

			start = offset + ix.SigLen()
		}
	}
}

// Scan matches every structure in document declaration order and collects
// the results. The declaration order is a hard requirement, not a
// convenience: later structures' foreign references resolve against earlier
// structures' most recent records.
//
// The record store is reinitialized at the start of each call, so scanning
// the same stream twice yields identical results.
func (s *Scanner) Scan() (*Result, error) {
	clear(s.latest)
	s.stats = Stats{}

	res := &Result{
		order:   s.plan.structures,
		matches: make(map[uint64][]*Record, len(s.plan.structures)),
	}

	for _, ps := range s.plan.structures {
		recs := make([]*Record, 0, 4)
		for rec := range s.Matches(ps) {
			recs = append(recs, rec)
		}
		res.matches[ps.ID] = recs
	}

	return res, nil
}

// Stats returns the candidate counters accumulated since the last Scan (or
// since construction, when using Matches directly).
func (s *Scanner) Stats() Stats {
	return s.stats
}

// Latest returns the most recently decoded record of the named structure in
// the current scan, if any.
func (s *Scanner) Latest(name string) (*Record, bool) {
	ps, ok := s.plan.Lookup(name)
	if !ok {
		return nil, false
	}

	rec, ok := s.latest[ps.ID]

	return rec, ok
}

// Result maps each structure to its decoded records, preserving document
// declaration order.
type Result struct {
	order   []*PlanStructure
	matches map[uint64][]*Record
}

// Of returns the records decoded for the named structure, in stream order.
func (r *Result) Of(name string) []*Record {
	for _, ps := range r.order {
		if ps.Name == name {
			return r.matches[ps.ID]
		}
	}

	return nil
}

// All iterates structures in declaration order with their records.
func (r *Result) All() iter.Seq2[string, []*Record] {
	return func(yield func(string, []*Record) bool) {
		for _, ps := range r.order {
			if !yield(ps.Name, r.matches[ps.ID]) {
				return
			}
		}
	}
}

// Total returns the number of records decoded across all structures.
func (r *Result) Total() int {
	n := 0
	for _, recs := range r.matches {
		n += len(recs)
	}

	return n
}
