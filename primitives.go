package apl360

import (
	"math"

	"github.com/shopspring/decimal"
)

// MaxNesting bounds the structural nesting of values during broadcasting.
// Input produced by the grammar never nests deeper than one level, but
// index substitution can splice vectors back into source text, so the
// recursion is guarded rather than trusted.
const MaxNesting = 64

type scalarUnary func(x decimal.Decimal) (decimal.Decimal, error)
type scalarBinary func(x, y decimal.Decimal) (decimal.Decimal, error)

// applyUnary applies fn to every scalar leaf of v, rebuilding the shape.
func applyUnary(fn scalarUnary, v Value, depth int) (Value, error) {
	if depth > MaxNesting {
		return nil, Errorf(ErrDepth, "value nesting exceeds %d levels", MaxNesting)
	}
	switch t := v.(type) {
	case Scalar:
		d, err := fn(t.Decimal())
		if err != nil {
			return nil, err
		}
		return NewScalar(d), nil
	case Vector:
		result := make(Vector, len(t))
		for i, el := range t {
			r, err := applyUnary(fn, el, depth+1)
			if err != nil {
				return nil, err
			}
			result[i] = r
		}
		return result, nil
	}
	return nil, Errorf(ErrValue, "cannot operate on %T", v)
}

// applyBinary applies fn elementwise to a and b with APL-like broadcasting:
// scalar⊙scalar, scalar⊙vector, vector⊙scalar, and pairwise vector⊙vector.
// Vector operands must agree in length at every nesting level.
func applyBinary(fn scalarBinary, a, b Value, depth int) (Value, error) {
	if depth > MaxNesting {
		return nil, Errorf(ErrDepth, "value nesting exceeds %d levels", MaxNesting)
	}
	sa, aScalar := a.(Scalar)
	sb, bScalar := b.(Scalar)
	switch {
	case aScalar && bScalar:
		d, err := fn(sa.Decimal(), sb.Decimal())
		if err != nil {
			return nil, err
		}
		return NewScalar(d), nil
	case aScalar:
		vb, ok := b.(Vector)
		if !ok {
			return nil, Errorf(ErrValue, "cannot operate on %T", b)
		}
		result := make(Vector, len(vb))
		for i, el := range vb {
			r, err := applyBinary(fn, a, el, depth+1)
			if err != nil {
				return nil, err
			}
			result[i] = r
		}
		return result, nil
	case bScalar:
		va, ok := a.(Vector)
		if !ok {
			return nil, Errorf(ErrValue, "cannot operate on %T", a)
		}
		result := make(Vector, len(va))
		for i, el := range va {
			r, err := applyBinary(fn, el, b, depth+1)
			if err != nil {
				return nil, err
			}
			result[i] = r
		}
		return result, nil
	default:
		va, aok := a.(Vector)
		vb, bok := b.(Vector)
		if !aok || !bok {
			return nil, Errorf(ErrValue, "cannot operate on %T and %T", a, b)
		}
		if len(va) != len(vb) {
			return nil, Errorf(ErrValue, "shape mismatch: %d vs %d elements", len(va), len(vb))
		}
		result := make(Vector, len(va))
		for i := range va {
			r, err := applyBinary(fn, va[i], vb[i], depth+1)
			if err != nil {
				return nil, err
			}
			result[i] = r
		}
		return result, nil
	}
}

// --- Dyadic primitives -----------------------------------------------------

// Plus is APL + : addition.
func Plus(a, b Value) (Value, error) {
	return applyBinary(func(x, y decimal.Decimal) (decimal.Decimal, error) {
		return x.Add(y), nil
	}, a, b, 0)
}

// Minus is APL - : subtraction.
func Minus(a, b Value) (Value, error) {
	return applyBinary(func(x, y decimal.Decimal) (decimal.Decimal, error) {
		return x.Sub(y), nil
	}, a, b, 0)
}

// Times is APL × : multiplication.
func Times(a, b Value) (Value, error) {
	return applyBinary(func(x, y decimal.Decimal) (decimal.Decimal, error) {
		return x.Mul(y), nil
	}, a, b, 0)
}

// Divide is APL ÷ : true division.
func Divide(a, b Value) (Value, error) {
	return applyBinary(func(x, y decimal.Decimal) (decimal.Decimal, error) {
		if y.IsZero() {
			return decimal.Decimal{}, Errorf(ErrDomain, "division by zero")
		}
		return x.Div(y), nil
	}, a, b, 0)
}

// powIntLimit bounds the exponent for the exact integer power path.
var powIntLimit = decimal.NewFromInt(100000)

// Power is APL * : exponentiation. Integral exponents of moderate size are
// computed exactly; everything else goes through float64.
func Power(a, b Value) (Value, error) {
	return applyBinary(powScalars, a, b, 0)
}

func powScalars(x, y decimal.Decimal) (decimal.Decimal, error) {
	if y.IsInteger() && y.Abs().Cmp(powIntLimit) <= 0 {
		if x.IsZero() && y.Sign() < 0 {
			return decimal.Decimal{}, Errorf(ErrDomain, "zero to a negative power")
		}
		return x.Pow(y), nil
	}
	xf, _ := x.Float64()
	yf, _ := y.Float64()
	// integral exponents beyond the exact-path limit keep their sign rules;
	// only a truly fractional exponent forbids a negative base
	if xf < 0 && !y.IsInteger() {
		return decimal.Decimal{}, Errorf(ErrDomain, "negative base with fractional exponent")
	}
	r := math.Pow(xf, yf)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return decimal.Decimal{}, Errorf(ErrDomain, "invalid power %s ** %s", x, y)
	}
	return decimal.NewFromFloat(r), nil
}

// Mod is APL | (dyadic): remainder, with the sign behavior of the decimal
// library's truncated division.
func Mod(a, b Value) (Value, error) {
	return applyBinary(func(x, y decimal.Decimal) (decimal.Decimal, error) {
		if y.IsZero() {
			return decimal.Decimal{}, Errorf(ErrDomain, "modulo by zero")
		}
		return x.Mod(y), nil
	}, a, b, 0)
}

// Min is APL ⌊ (dyadic): elementwise minimum.
func Min(a, b Value) (Value, error) {
	return applyBinary(func(x, y decimal.Decimal) (decimal.Decimal, error) {
		if x.Cmp(y) <= 0 {
			return x, nil
		}
		return y, nil
	}, a, b, 0)
}

// Max is APL ⌈ (dyadic): elementwise maximum.
func Max(a, b Value) (Value, error) {
	return applyBinary(func(x, y decimal.Decimal) (decimal.Decimal, error) {
		if x.Cmp(y) >= 0 {
			return x, nil
		}
		return y, nil
	}, a, b, 0)
}

// Equal compares elementwise, yielding 1 for equal and 0 otherwise.
func Equal(a, b Value) (Value, error) {
	return applyBinary(func(x, y decimal.Decimal) (decimal.Decimal, error) {
		if x.Cmp(y) == 0 {
			return decimal.NewFromInt(1), nil
		}
		return decimal.NewFromInt(0), nil
	}, a, b, 0)
}

// --- Monadic primitives ----------------------------------------------------

// Abs is APL | (monadic): absolute value.
func Abs(v Value) (Value, error) {
	return applyUnary(func(x decimal.Decimal) (decimal.Decimal, error) {
		return x.Abs(), nil
	}, v, 0)
}

// Signum yields -1, 0 or 1.
func Signum(v Value) (Value, error) {
	return applyUnary(func(x decimal.Decimal) (decimal.Decimal, error) {
		return decimal.NewFromInt(int64(x.Sign())), nil
	}, v, 0)
}

// Reciprocal is 1÷x.
func Reciprocal(v Value) (Value, error) {
	one := decimal.NewFromInt(1)
	return applyUnary(func(x decimal.Decimal) (decimal.Decimal, error) {
		if x.IsZero() {
			return decimal.Decimal{}, Errorf(ErrDomain, "reciprocal of zero")
		}
		return one.Div(x), nil
	}, v, 0)
}

// Floor is APL ⌊ (monadic).
func Floor(v Value) (Value, error) {
	return applyUnary(func(x decimal.Decimal) (decimal.Decimal, error) {
		return x.Floor(), nil
	}, v, 0)
}

// Ceiling is APL ⌈ (monadic).
func Ceiling(v Value) (Value, error) {
	return applyUnary(func(x decimal.Decimal) (decimal.Decimal, error) {
		return x.Ceil(), nil
	}, v, 0)
}

// Ln is APL ⍟ : natural logarithm.
func Ln(v Value) (Value, error) {
	return applyUnary(func(x decimal.Decimal) (decimal.Decimal, error) {
		if x.Sign() <= 0 {
			return decimal.Decimal{}, Errorf(ErrDomain, "logarithm of non-positive number %s", x)
		}
		// values outside float64 range collapse to 0 or +Inf in Float64
		xf, _ := x.Float64()
		r := math.Log(xf)
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return decimal.Decimal{}, Errorf(ErrDomain, "logarithm out of range for %s", x)
		}
		return decimal.NewFromFloat(r), nil
	}, v, 0)
}

// Exp is e**x.
func Exp(v Value) (Value, error) {
	return applyUnary(func(x decimal.Decimal) (decimal.Decimal, error) {
		xf, _ := x.Float64()
		r := math.Exp(xf)
		if math.IsInf(r, 0) {
			return decimal.Decimal{}, Errorf(ErrDomain, "exp overflow for %s", x)
		}
		return decimal.NewFromFloat(r), nil
	}, v, 0)
}

// Iota is APL ⍳ n : the vector 1..n. The argument must be a positive
// integral scalar.
func Iota(v Value) (Value, error) {
	s, ok := v.(Scalar)
	if !ok {
		return nil, Errorf(ErrValue, "iota of a non-scalar value")
	}
	if !s.IsInteger() || s.Decimal().Sign() <= 0 {
		return nil, Errorf(ErrValue, "iota of %s: argument must be a positive integer", s)
	}
	n := s.Decimal().IntPart()
	tracer().Debugf("iota %d", n)
	result := make(Vector, n)
	for i := int64(1); i <= n; i++ {
		result[i-1] = FromInt(i)
	}
	return result, nil
}
