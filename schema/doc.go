// Package schema defines the abstract syntax tree for neoncore query
// documents: the declarative description of binary record layouts embedded in
// a byte stream.
//
// A Document holds Structure definitions in declaration order. Each Structure
// carries a mandatory byte Signature that anchors matches, an ordered list of
// Field definitions (primitives, buffers, UTF-8 strings), and optional
// endianness and search-hint overrides. Buffer and string sizes are either
// literal byte counts or references to already-decoded integer fields, which
// is how formats like ZIP express "comment of comment_length bytes".
//
// The package is a pure data model. Front-ends (the textual grammar parser,
// the YAML loader in this package) produce Documents; the query package
// compiles them into executable plans. Schema values are treated as immutable
// once a plan has been built from them.
package schema
