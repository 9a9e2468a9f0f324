// Package neoncore locates and decodes binary record structures embedded in
// arbitrary byte streams.
//
// A query document declares structures — a fixed byte signature, an ordered
// field list, optional endianness and search hints — and the engine compiles
// the document into a plan and executes it against a stream buffer, emitting
// a decoded record for every signature occurrence whose fields decode
// cleanly. Variable-length fields take their size from earlier decoded
// fields, which is how formats like ZIP express "comment of comment_length
// bytes".
//
// # Basic Usage
//
// Declaring and scanning a ZIP end-of-central-directory record:
//
//	import "github.com/neonimp/neoncore"
//	import "github.com/neonimp/neoncore/schema"
//
//	sig, _ := schema.SignatureFromHex("0x06054b50")
//	doc := &schema.Document{
//	    Structures: []schema.Structure{{
//	        Name:      "EOCD",
//	        Signature: sig,
//	        Hint:      schema.NearEndHint(),
//	        Fields: []schema.Field{
//	            schema.Primitive("disk_number", schema.U16),
//	            schema.Primitive("comment_length", schema.U16),
//	            schema.Buffer("comment", schema.RefSize("comment_length")),
//	        },
//	    }},
//	}
//
//	plan, _ := neoncore.Compile(doc)
//	result, _ := neoncore.Scan(plan, zipBytes)
//	for _, rec := range result.Of("EOCD") {
//	    comment, _ := rec.Get("comment")
//	    fmt.Printf("EOCD at 0x%x, comment=%q\n", rec.Offset, comment.Bytes())
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the query
// package, simplifying the most common use cases. For fine-grained control —
// lazy match iteration, scan options, diagnostics — use the query package
// directly. The schema package holds the document model, and compress
// unwraps compressed stream containers.
package neoncore

import (
	"github.com/neonimp/neoncore/compress"
	"github.com/neonimp/neoncore/internal/hash"
	"github.com/neonimp/neoncore/query"
	"github.com/neonimp/neoncore/schema"
)

// StructureID computes the 64-bit identifier the engine derives from a
// structure name. Record and result lookups by ID use this value.
func StructureID(name string) uint64 {
	return hash.ID(name)
}

// Compile builds an executable plan from a parsed query document.
//
// All document-level validation happens here, before any stream is touched:
// duplicate identifiers, malformed signatures and alignments, and size
// references that could never resolve under declaration-order scanning.
func Compile(doc *schema.Document) (*query.Plan, error) {
	return query.Build(doc)
}

// CompileYAML parses a YAML query document and builds its plan.
func CompileYAML(text []byte) (*query.Plan, error) {
	doc, err := schema.LoadYAML(text)
	if err != nil {
		return nil, err
	}

	return query.Build(doc)
}

// Scan executes a plan against a stream buffer and collects every match.
//
// The buffer must stay immutable while scanning. See the query package for
// scan options such as query.WithNearWindow and query.WithLogger.
func Scan(plan *query.Plan, data []byte, opts ...query.Option) (*query.Result, error) {
	scanner, err := query.NewScanner(plan, data, opts...)
	if err != nil {
		return nil, err
	}

	return scanner.Scan()
}

// ScanContainer unwraps a possibly compressed stream container (Zstandard,
// LZ4, or S2 frames, detected by magic bytes) and scans the decompressed
// bytes. Uncompressed buffers are scanned as-is.
func ScanContainer(plan *query.Plan, data []byte, opts ...query.Option) (*query.Result, error) {
	raw, _, err := compress.Unwrap(data)
	if err != nil {
		return nil, err
	}

	return Scan(plan, raw, opts...)
}
