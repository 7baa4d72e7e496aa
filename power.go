package bigfloat

import (
	"math"
	"math/big"

	"github.com/SunsetQuest/bigfloat/internal/bigint"
)

// powExactCutoff bounds how large an exponent Pow will evaluate with an
// exact big.Int.Exp before switching to PowMostSignificantBitsApprox,
// which only ever materializes the top bits of the result.
const powExactCutoff = 64

// Pow returns x raised to the integer power n. Negative n computes the
// positive power and inverts it, returning a DivideByZeroError if x is a
// strict zero. 0^0 is defined as 1, matching the usual convention for a
// value with no accumulated rounding behind it.
func (x BigFloat) Pow(n int64) (BigFloat, error) {
	switch {
	case n == 0:
		return OneWithAccuracy(x.Accuracy()), nil
	case n == 1:
		return x, nil
	case n < 0:
		if x.IsStrictZero() {
			return BigFloat{}, DivideByZeroError{Op: "Pow"}
		}
		p, err := x.Pow(-n)
		if err != nil {
			return BigFloat{}, err
		}
		return p.Inverse()
	}
	if x.IsStrictZero() {
		return x, nil
	}

	target := uint(GuardBits) + uint(x.Precision()) + 2
	sign := int64(1)
	if x.IsNegative() && n%2 != 0 {
		sign = -1
	}
	ax := new(big.Int).Abs(x.mantissa())

	if n <= powExactCutoff {
		m := new(big.Int).Exp(ax, big.NewInt(n), nil)
		scale := int64(x.scale)*n - int64(GuardBits)*(n-1)
		if uint(m.BitLen()) > target {
			rounded, shift := truncateToAndRound(m, target)
			m = rounded
			scale += int64(shift)
		}
		if sign < 0 {
			m.Neg(m)
		}
		if scale > math.MaxInt32 || scale < math.MinInt32 {
			return BigFloat{}, OverflowError{Op: "Pow", Detail: "resulting scale out of range"}
		}
		return of(m, int32(scale)), nil
	}

	approx, shifted := bigint.PowMostSignificantBitsApprox(ax, uint64(n), uint(x.size), target, false, false)
	scale := int64(x.scale)*n - int64(GuardBits)*(n-1) + int64(shifted)
	if scale > math.MaxInt32 || scale < math.MinInt32 {
		return BigFloat{}, OverflowError{Op: "Pow", Detail: "resulting scale out of range"}
	}
	if sign < 0 {
		approx.Neg(approx)
	}
	return of(approx, int32(scale)), nil
}

// Sqrt returns the square root of x, rounded to x's own precision (a
// minimum of one bit for values with none declared). It returns a
// DomainError if x is negative, following the convention that this
// package has no representation for a complex result.
func (x BigFloat) Sqrt() (BigFloat, error) {
	if x.IsNegative() {
		return BigFloat{}, DomainError{Op: "Sqrt", Detail: "negative operand"}
	}
	if x.IsStrictZero() {
		return ZeroWithAccuracy(x.Accuracy()), nil
	}

	prec := x.Precision()
	if prec == 0 {
		prec = 1
	}
	target := prec + 8

	three := NewFromInt64(3)
	oneHalf := CreateWithPrecisionFromValue(big.NewInt(1), -1)

	t := float64Seed(1 / math.Sqrt(approxFloat64(x)))
	cur := uint32(40)
	for cur < target {
		cur = cur*2 - 2
		if cur > target {
			cur = target
		}
		u := t.Mul(t)      // t**2
		u = x.Mul(u)       // x*t**2
		v := three.Sub(u)  // 3 - x*t**2
		u = t.Mul(v)       // t*(3 - x*t**2)
		t = u.Mul(oneHalf) // t/2 * (3 - x*t**2), the next Newton iterate
	}

	return x.Mul(t).SetPrecisionWithRound(prec), nil
}

// NthRoot returns x**(1/n) at x's own precision: the integer root is taken
// (truncated) at a boosted precision, then rounded to nearest.
// It returns a DomainError for a zero root index, or for an even root of
// a negative x.
func (x BigFloat) NthRoot(n uint) (BigFloat, error) {
	if n == 0 {
		return BigFloat{}, DomainError{Op: "NthRoot", Detail: "zero root index"}
	}
	if n == 1 {
		return x, nil
	}
	if x.IsStrictZero() {
		return ZeroWithAccuracy(x.Accuracy()), nil
	}
	if x.IsNegative() && n%2 == 0 {
		return BigFloat{}, DomainError{Op: "NthRoot", Detail: "even root of negative operand"}
	}

	nn := int64(n)
	extra := int64(GuardBits) + int64(x.Precision()) + 8
	num := int64(x.scale) - int64(GuardBits)
	q := num / nn
	rem := num % nn
	if rem < 0 {
		rem += nn
		q--
	}
	boostShift := rem + nn*extra
	boosted := new(big.Int).Lsh(x.mantissa(), uint(boostShift))
	r := bigint.NthRoot(boosted, n)
	scale := q - extra + int64(GuardBits)

	prec := x.Precision()
	if prec == 0 {
		prec = 1
	}
	return of(r, int32(scale)).SetPrecisionWithRound(prec), nil
}

// approxFloat64 returns a float64 approximation of x, good enough to
// seed a Newton iteration; it is not the public, fully rounded
// conversion (see ToFloat64).
func approxFloat64(x BigFloat) float64 {
	f := new(big.Float).SetPrec(64).SetInt(x.mantissa())
	f.SetMantExp(f, int(x.scale)-GuardBits)
	v, _ := f.Float64()
	return v
}

// float64Seed constructs an exact BigFloat from a float64, for use as a
// Newton-iteration starting point. Infinities and NaN are not expected
// here since callers only ever pass values derived from finite BigFloats.
func float64Seed(f float64) BigFloat {
	if f == 0 {
		return Zero()
	}
	bits := math.Float64bits(f)
	sign := bits >> 63
	rawExp := int32((bits >> 52) & 0x7FF)
	frac := bits & (1<<52 - 1)

	var mant uint64
	var e int32
	if rawExp == 0 {
		mant = frac
		e = -1074
	} else {
		mant = frac | (1 << 52)
		e = rawExp - 1075
	}
	m := new(big.Int).SetUint64(mant)
	if sign == 1 {
		m.Neg(m)
	}
	return CreateWithPrecisionFromValue(m, e)
}
