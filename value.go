package apl360

import (
	"math"
	"regexp"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/shopspring/decimal"
)

// tracer traces with key 'apl360'.
func tracer() tracing.Trace {
	return tracing.Select("apl360")
}

// ValueType represents the type of a value.
type ValueType int8

// Predefined value types. The grammar only ever produces scalars and flat
// vectors, but vectors of vectors are representable.
const (
	Undefined ValueType = iota
	NumericType
	VectorType
)

// Value is either a numeric scalar or an ordered sequence of values.
// Values are immutable; every primitive produces a new Value.
type Value interface {
	Type() ValueType // type of the value
	String() string  // rendering accepted back by the lexer
}

// --- Scalar ----------------------------------------------------------------

// Scalar is a single number. It is backed by a decimal so that the integer
// vs. fractional form of a literal survives arithmetic and printing.
type Scalar decimal.Decimal

// NewScalar wraps a decimal into a Scalar value.
func NewScalar(d decimal.Decimal) Scalar {
	return Scalar(d)
}

// FromInt creates a scalar from an integer.
func FromInt(n int64) Scalar {
	return Scalar(decimal.NewFromInt(n))
}

// FromFloat creates a scalar from a float. Non-finite floats are rejected
// with a domain error, as they have no decimal representation.
func FromFloat(f float64) (Scalar, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Scalar{}, Errorf(ErrDomain, "result is not a finite number")
	}
	return Scalar(decimal.NewFromFloat(f)), nil
}

var numberPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// ParseNumber parses a numeric literal: optional leading minus, digits and
// an optional fractional part. Anything else is a value error.
func ParseNumber(s string) (Scalar, error) {
	if !numberPattern.MatchString(s) {
		return Scalar{}, Errorf(ErrValue, "invalid number: %q", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Scalar{}, Errorf(ErrValue, "invalid number: %q", s)
	}
	return Scalar(d), nil
}

// Decimal is a type-cast to the underlying decimal.
func (s Scalar) Decimal() decimal.Decimal {
	return decimal.Decimal(s)
}

// Type of a scalar is NumericType.
func (s Scalar) Type() ValueType {
	return NumericType
}

func (s Scalar) String() string {
	return decimal.Decimal(s).String()
}

// IsInteger is a predicate: does the scalar hold an integral number?
func (s Scalar) IsInteger() bool {
	return decimal.Decimal(s).IsInteger()
}

// --- Vector ----------------------------------------------------------------

// Vector is an ordered, finite sequence of values. Literal parsing and iota
// never produce an empty vector.
type Vector []Value

// Type of a vector is VectorType.
func (v Vector) Type() ValueType {
	return VectorType
}

func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, el := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(el.String())
	}
	b.WriteByte(']')
	return b.String()
}
