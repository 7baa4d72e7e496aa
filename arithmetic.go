package bigfloat

import (
	"math/big"

	"github.com/SunsetQuest/bigfloat/internal/bigint"
)

// alignedMantissa returns v's raw mantissa expressed at scale target
// (target must be >= v.Scale()), rounding away whatever bits fall below
// the new scale.
func alignedMantissa(v BigFloat, target int32) *big.Int {
	if v.scale == target {
		return new(big.Int).Set(v.mantissa())
	}
	shift := uint(target - v.scale)
	if shift > uint(v.size) {
		// Every bit of v lies below half a unit of the new scale, so it
		// rounds to 0.
		return new(big.Int)
	}
	return bigint.RoundingRightShift(v.mantissa(), shift)
}

// Add returns x + y. The result's scale is the larger of the two inputs'
// scales; the smaller-scale operand is rounded into that frame before the
// mantissas are added, so a tiny addend to a much larger value may vanish
// entirely, exactly as a fixed-precision hardware float would.
func (x BigFloat) Add(y BigFloat) BigFloat {
	if x.IsStrictZero() {
		return y
	}
	if y.IsStrictZero() {
		return x
	}
	target := x.scale
	if y.scale > target {
		target = y.scale
	}
	mx := alignedMantissa(x, target)
	my := alignedMantissa(y, target)
	return of(mx.Add(mx, my), target)
}

// Sub returns x - y.
func (x BigFloat) Sub(y BigFloat) BigFloat {
	return x.Add(y.Neg())
}

// Neg returns -x.
func (x BigFloat) Neg() BigFloat {
	if x.IsStrictZero() {
		return x
	}
	return of(new(big.Int).Neg(x.mantissa()), x.scale)
}

// Abs returns |x|.
func (x BigFloat) Abs() BigFloat {
	if x.IsNegative() {
		return x.Neg()
	}
	return x
}

// IsInteger reports whether x's value, at its own accuracy, is a whole
// number. Values whose magnitude is below one half (the mantissa's top
// bit lies below the first fractional bit) round to the integer 0 and
// are reported as integers; values whose
// fractional bits straddle the guard region are integers only if every
// one of those bits, guard region included, is zero. This is a resolved
// reading of an ambiguous case: a value known only to within a
// guard-sized margin of an integer is not distinguishable from one.
func (x BigFloat) IsInteger() bool {
	if x.IsStrictZero() {
		return true
	}
	_, rem, k, hasFrac := x.fractionalSplit()
	if !hasFrac {
		return true
	}
	if k > uint(x.size) {
		return true
	}
	return rem.Sign() == 0
}
