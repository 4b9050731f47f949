package types

import (
	"strconv"
	"strings"
)

// ValueKind discriminates the scalar kinds a spreadsheet cell can hold.
type ValueKind int

const (
	StringValue ValueKind = iota
	IntValue
	FloatValue
)

// Value is a single spreadsheet cell scalar. The raw text is kept so that
// values that merely look numeric (leading zeros, padded IDs) survive
// formatting unchanged.
type Value struct {
	raw  string
	kind ValueKind
	f    float64
}

// ParseValue classifies a raw cell string into a scalar value. A cell is
// numeric only when the canonical textual form round-trips, so "007" stays a
// string.
func ParseValue(raw string) Value {
	s := strings.TrimSpace(raw)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(i, 10) == s {
		return Value{raw: raw, kind: IntValue, f: float64(i)}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && strings.ContainsAny(s, ".eE") {
		return Value{raw: raw, kind: FloatValue, f: f}
	}
	return Value{raw: raw, kind: StringValue}
}

// Kind returns the scalar kind of the value.
func (v Value) Kind() ValueKind { return v.kind }

// String returns the textual form used in generated names: whole floats are
// coerced to their integer form (3.0 -> "3"), everything else is the raw
// text with surrounding whitespace trimmed.
func (v Value) String() string {
	if v.kind == FloatValue && v.f == float64(int64(v.f)) {
		return strconv.FormatInt(int64(v.f), 10)
	}
	return strings.TrimSpace(v.raw)
}

// Float returns the numeric value for Int and Float kinds, 0 otherwise.
func (v Value) Float() float64 { return v.f }
