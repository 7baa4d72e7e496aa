package bigfloat

import (
	"math"
	"math/big"

	"github.com/SunsetQuest/bigfloat/internal/bigint"
)

// truncateToAndRound is the package-local bridge to the BigInt kernel's
// TruncateToAndRound, used wherever a mantissa must be reduced to a
// target bit count with round-to-nearest.
func truncateToAndRound(m *big.Int, bits uint) (*big.Int, uint) {
	return bigint.TruncateToAndRound(m, bits)
}

// AdjustScale returns x with its scale changed by delta, leaving the
// mantissa untouched: the numeric value is multiplied by 2**delta with
// every bit preserved exactly. It returns an OverflowError if the
// resulting scale would overflow int32.
func (x BigFloat) AdjustScale(delta int32) (BigFloat, error) {
	newScale := int64(x.scale) + int64(delta)
	if newScale > math.MaxInt32 || newScale < math.MinInt32 {
		return BigFloat{}, OverflowError{Op: "AdjustScale", Detail: "resulting scale out of range"}
	}
	return of(new(big.Int).Set(x.mantissa()), int32(newScale)), nil
}

// AdjustPrecision changes x's stored precision by delta bits. A positive
// delta extends the mantissa with delta zero bits (more precision,
// losslessly); a negative delta removes -delta bits via round-to-nearest
// (less precision). The scale is adjusted to keep the numeric value's
// guard-bit-relative position consistent: this is AdjustScale(-delta)
// combined with treating the result as having delta more or fewer
// precise bits. When removing bits rounds the kept bits up into one more
// bit (e.g. 0b111 to 0b1000), that trailing zero is dropped as well and
// the scale grows by one more than -delta.
func (x BigFloat) AdjustPrecision(delta int32) (BigFloat, error) {
	if delta == 0 {
		return x, nil
	}
	if delta > 0 {
		m := new(big.Int).Lsh(x.mantissa(), uint(delta))
		newScale := int64(x.scale) - int64(delta)
		if newScale > math.MaxInt32 || newScale < math.MinInt32 {
			return BigFloat{}, OverflowError{Op: "AdjustPrecision", Detail: "resulting scale out of range"}
		}
		return of(m, int32(newScale)), nil
	}
	// delta < 0: remove -delta bits with rounding.
	n := uint(-delta)
	if n >= uint(x.size) {
		// Dropping at least as many bits as the mantissa has: round the
		// whole mantissa against 2**n, which correctly collapses to 0
		// unless n is small enough that the dropped remainder is still at
		// least half of 2**n (only possible when n == x.size, giving +-1).
		rounded := bigint.RoundingRightShift(x.mantissa(), n)
		shift := n
		newScale := int64(x.scale) - int64(delta) + int64(shift) - int64(n)
		if newScale > math.MaxInt32 || newScale < math.MinInt32 {
			return BigFloat{}, OverflowError{Op: "AdjustPrecision", Detail: "resulting scale out of range"}
		}
		return of(rounded, int32(newScale)), nil
	}
	keep := uint(x.size) - n
	rounded, shift := truncateToAndRound(x.mantissa(), keep)
	newScale := int64(x.scale) - int64(delta) + int64(shift) - int64(n)
	if newScale > math.MaxInt32 || newScale < math.MinInt32 {
		return BigFloat{}, OverflowError{Op: "AdjustPrecision", Detail: "resulting scale out of range"}
	}
	return of(rounded, int32(newScale)), nil
}

// AdjustAccuracy is an alias for AdjustPrecision, provided because the
// accuracy and precision mental models differ for users even though the
// implementation is identical.
func (x BigFloat) AdjustAccuracy(delta int32) (BigFloat, error) {
	return x.AdjustPrecision(delta)
}

// SetPrecisionWithRound reduces x to p precise (guard-region-excluded)
// bits using round-to-nearest. Increasing p beyond x's current precision
// is a no-op; it never fabricates precision.
func (x BigFloat) SetPrecisionWithRound(p uint32) BigFloat {
	cur := x.Precision()
	if p >= cur {
		return x
	}
	delta := int32(p) - int32(cur)
	y, err := x.AdjustPrecision(delta)
	if err != nil {
		// Narrowing precision can only shrink the scale magnitude, so in
		// practice this cannot overflow; fall back to the input unchanged
		// rather than propagating an error from a never-failing operation.
		return x
	}
	return y
}

// SetAccuracy adds or removes low-order bits so that x's Accuracy becomes
// exactly a.
func (x BigFloat) SetAccuracy(a int32) BigFloat {
	delta := a - x.Accuracy()
	y, err := x.AdjustPrecision(delta)
	if err != nil {
		return x
	}
	if y.Accuracy() < a {
		// Rounding carried and AdjustPrecision dropped one extra bit;
		// restore it (a zero bit) so the accuracy is exactly a.
		y = of(new(big.Int).Lsh(y.mantissa(), 1), y.scale-1)
	}
	return y
}

// ExtendPrecision adds delta zero bits on the right, increasing Precision
// by delta without changing the numeric value. delta must be
// non-negative; a negative delta is treated as 0.
func (x BigFloat) ExtendPrecision(delta int32) BigFloat {
	if delta <= 0 {
		return x
	}
	y, err := x.AdjustPrecision(delta)
	if err != nil {
		return x
	}
	return y
}
