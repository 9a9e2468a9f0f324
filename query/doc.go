// Package query compiles parsed query documents into executable plans and
// scans byte streams for the structures they describe.
//
// # Pipeline
//
// Build validates a schema.Document once and produces an immutable Plan:
// structures in declaration order, each with resolved endianness, rendered
// stream-order signature bytes, and compiled fields. NewScanner binds a plan
// to a concrete stream buffer; Scan locates signature occurrences, decodes
// the declared fields at each one, and collects the resulting records:
//
//	plan, err := query.Build(doc)
//	if err != nil {
//	    return err
//	}
//	scanner, err := query.NewScanner(plan, streamBytes)
//	if err != nil {
//	    return err
//	}
//	result, err := scanner.Scan()
//
// # Candidate matches
//
// A signature occurrence is only a candidate. Field decoding may fail on it —
// truncated data, invalid UTF-8 in a string field, an unresolvable size
// reference — because byte signatures also occur incidentally inside
// unrelated data. Such candidates are discarded and the search resumes from
// the next byte; they are visible in Scanner.Stats and through the optional
// debug logger, but never fail the scan.
//
// # Back-references
//
// Buffer and string sizes may reference an integer field decoded earlier in
// the same candidate ("&comment_length") or in the most recent record of a
// structure declared earlier in the document ("&entry_count::EOCD"). The
// plan builder rejects references that could never resolve under the
// engine's strict declaration-order scanning.
package query
