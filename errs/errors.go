// Package errs defines the sentinel errors shared across neoncore packages.
//
// Errors fall into two groups that mirror the engine's error taxonomy:
//
//   - Build-time errors are fatal to the whole document plan and are returned
//     by query.Build before any scanning happens.
//   - Match-time errors are recoverable; the scanner discards the current
//     candidate match and resumes the signature search. They surface to callers
//     only through scan diagnostics, never as a scan failure.
//
// All errors are plain sentinel values so callers can test them with errors.Is
// even when call sites wrap them with additional context.
package errs

import "errors"

// Build-time errors. Any of these aborts plan construction.
var (
	// ErrDuplicateStructure is returned when two structures in one document
	// share an identifier.
	ErrDuplicateStructure = errors.New("duplicate structure identifier")

	// ErrDuplicateField is returned when two fields within one structure
	// share an identifier.
	ErrDuplicateField = errors.New("duplicate field identifier")

	// ErrInvalidSignature is returned when a structure signature is empty or
	// longer than 16 bytes.
	ErrInvalidSignature = errors.New("invalid structure signature")

	// ErrInvalidAlignment is returned when a field alignment is not a power
	// of two.
	ErrInvalidAlignment = errors.New("alignment must be a power of two")

	// ErrUnknownReference is returned when a size reference names a field or
	// structure that does not exist.
	ErrUnknownReference = errors.New("reference to undeclared field")

	// ErrForwardReference is returned when a reference targets a field
	// declared later in the same structure, or a structure declared later in
	// the document. Structures are scanned in declaration order, so such a
	// reference could never resolve.
	ErrForwardReference = errors.New("reference to not-yet-decoded field")

	// ErrReferenceNotInteger is returned when a size reference targets a
	// field that is not an integer primitive of at most 64 bits.
	ErrReferenceNotInteger = errors.New("reference target is not an integer field")

	// ErrStructureIDCollision is returned when two distinct structure names
	// hash to the same 64-bit structure ID.
	ErrStructureIDCollision = errors.New("structure identifier hash collision")

	// ErrInvalidPrimitiveType is returned for an unrecognized primitive type.
	ErrInvalidPrimitiveType = errors.New("invalid primitive type")

	// ErrInvalidHexLiteral is returned for a malformed hex literal.
	ErrInvalidHexLiteral = errors.New("invalid hex literal")

	// ErrInvalidIdentifier is returned for a malformed identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrInvalidEndianness is returned for an unrecognized endianness keyword.
	ErrInvalidEndianness = errors.New("invalid endianness")

	// ErrInvalidHint is returned for a malformed skip/near hint.
	ErrInvalidHint = errors.New("invalid hint")
)

// Scan-time errors. ErrSkipBeyondStream is fatal to the scan; the rest are
// per-candidate and cause the scanner to discard the candidate and continue.
var (
	// ErrSkipBeyondStream is returned when a SKIP hint points past the end of
	// the stream. This is a configuration error in the query document, not a
	// property of the candidate, so it fails the scan instead of being
	// silently clamped.
	ErrSkipBeyondStream = errors.New("skip hint beyond end of stream")

	// ErrUnexpectedEof is returned when a field read needs more bytes than
	// the stream holds past the cursor.
	ErrUnexpectedEof = errors.New("unexpected end of stream")

	// ErrInvalidUtf8 is returned when a string field holds malformed UTF-8.
	ErrInvalidUtf8 = errors.New("string field is not valid UTF-8")

	// ErrSizeOverflow is returned when a size reference resolves to a value
	// outside the sane allocation bound (negative or above the scanner's
	// maximum field size).
	ErrSizeOverflow = errors.New("field size exceeds allocation bound")

	// ErrUnresolvedReference is returned when a foreign reference names a
	// structure that has no decoded record yet in the current scan.
	ErrUnresolvedReference = errors.New("reference has no decoded value")

	// ErrCursorOutOfRange is returned when an offset or alignment adjustment
	// pushes the decode cursor before the start or past the end of the stream.
	ErrCursorOutOfRange = errors.New("cursor adjusted out of stream range")
)
