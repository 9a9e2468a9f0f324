package query

import (
	"fmt"
	"math"
)

// ValueKind discriminates the decoded value variants.
type ValueKind uint8

const (
	ValueUint    ValueKind = 0x1 // unsigned integer up to 64 bits
	ValueInt     ValueKind = 0x2 // signed integer up to 64 bits
	ValueUint128 ValueKind = 0x3 // unsigned 128-bit integer as hi/lo halves
	ValueInt128  ValueKind = 0x4 // signed 128-bit integer as hi/lo halves
	ValueFloat32 ValueKind = 0x5
	ValueFloat64 ValueKind = 0x6
	ValueBytes   ValueKind = 0x7
	ValueString  ValueKind = 0x8
)

func (k ValueKind) String() string {
	switch k {
	case ValueUint:
		return "uint"
	case ValueInt:
		return "int"
	case ValueUint128:
		return "uint128"
	case ValueInt128:
		return "int128"
	case ValueFloat32:
		return "float32"
	case ValueFloat64:
		return "float64"
	case ValueBytes:
		return "bytes"
	case ValueString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is one decoded field value. It is a tagged variant; use Kind to pick
// the matching accessor. Go has no native 128-bit integers, so the 128-bit
// kinds expose their value as two 64-bit halves.
type Value struct {
	// Kind selects the variant.
	Kind ValueKind
	// Width is the decoded byte width for numeric kinds, 0 otherwise.
	Width uint8

	lo  uint64
	hi  uint64
	buf []byte
	str string
}

func uintValue(width int, v uint64) Value {
	return Value{Kind: ValueUint, Width: uint8(width), lo: v}
}

func intValue(width int, v int64) Value {
	return Value{Kind: ValueInt, Width: uint8(width), lo: uint64(v)}
}

func uint128Value(hi, lo uint64) Value {
	return Value{Kind: ValueUint128, Width: 16, hi: hi, lo: lo}
}

func int128Value(hi, lo uint64) Value {
	return Value{Kind: ValueInt128, Width: 16, hi: hi, lo: lo}
}

func float32Value(v float32) Value {
	return Value{Kind: ValueFloat32, Width: 4, lo: uint64(math.Float32bits(v))}
}

func float64Value(v float64) Value {
	return Value{Kind: ValueFloat64, Width: 8, lo: math.Float64bits(v)}
}

func bytesValue(b []byte) Value {
	return Value{Kind: ValueBytes, buf: b}
}

func stringValue(s string) Value {
	return Value{Kind: ValueString, str: s}
}

// Uint returns the value of a ValueUint.
func (v Value) Uint() uint64 {
	return v.lo
}

// Int returns the value of a ValueInt.
func (v Value) Int() int64 {
	return int64(v.lo)
}

// Uint128 returns the high and low halves of a 128-bit integer value.
func (v Value) Uint128() (hi, lo uint64) {
	return v.hi, v.lo
}

// Float32 returns the value of a ValueFloat32.
func (v Value) Float32() float32 {
	return math.Float32frombits(uint32(v.lo))
}

// Float64 returns the value of a ValueFloat64.
func (v Value) Float64() float64 {
	return math.Float64frombits(v.lo)
}

// Bytes returns the byte run of a ValueBytes. The slice is owned by the
// record and must not be modified.
func (v Value) Bytes() []byte {
	return v.buf
}

// Text returns the decoded string of a ValueString.
func (v Value) Text() string {
	return v.str
}

// sizeValue interprets the value as a byte count for size references.
// Only integer values of at most 64 bits qualify; negative signed values do
// not. The plan builder already restricts reference targets to these types,
// so ok=false here means a negative value at decode time.
func (v Value) sizeValue() (uint64, bool) {
	switch v.Kind {
	case ValueUint:
		return v.lo, true
	case ValueInt:
		if int64(v.lo) < 0 {
			return 0, false
		}

		return v.lo, true
	default:
		return 0, false
	}
}

func (v Value) String() string {
	switch v.Kind {
	case ValueUint:
		return fmt.Sprintf("%d", v.lo)
	case ValueInt:
		return fmt.Sprintf("%d", int64(v.lo))
	case ValueUint128, ValueInt128:
		return fmt.Sprintf("0x%016x%016x", v.hi, v.lo)
	case ValueFloat32:
		return fmt.Sprintf("%g", v.Float32())
	case ValueFloat64:
		return fmt.Sprintf("%g", v.Float64())
	case ValueBytes:
		return fmt.Sprintf("%d bytes", len(v.buf))
	case ValueString:
		return v.str
	default:
		return "<invalid>"
	}
}
