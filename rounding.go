package bigfloat

import (
	"math/big"

	"github.com/SunsetQuest/bigfloat/internal/bigint"
)

// fractionalSplit splits x at its radix point into an absolute integer
// part and a k-bit remainder (the fractional bits, including whatever
// part of them lies in the guard region). hasFrac is false when x has no
// fractional bits at all (scale >= GuardBits), in which case intAbs is
// already the full absolute value and k is 0.
func (x BigFloat) fractionalSplit() (intAbs, remainder *big.Int, k uint, hasFrac bool) {
	ax := new(big.Int).Abs(x.mantissa())
	if x.scale >= GuardBits {
		return new(big.Int).Lsh(ax, uint(x.scale-GuardBits)), big.NewInt(0), 0, false
	}
	k = uint(GuardBits - x.scale)
	if k >= uint(x.size) {
		return big.NewInt(0), ax, k, true
	}
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), k), big.NewInt(1))
	rem := new(big.Int).And(ax, mask)
	intAbs = new(big.Int).Rsh(ax, k)
	return intAbs, rem, k, true
}

// Truncate rounds x toward zero and returns a minimal-precision integer
// (scale == GuardBits). It never fails.
func (x BigFloat) Truncate() BigFloat {
	if x.IsStrictZero() {
		return Zero()
	}
	intAbs, _, _, _ := x.fractionalSplit()
	return signedInt(intAbs, x.mantissa().Sign(), GuardBits)
}

// TruncatePreservingAccuracy is Truncate, but the result keeps x's
// accuracy (scale) instead of collapsing to a minimal-precision integer.
func (x BigFloat) TruncatePreservingAccuracy() BigFloat {
	if x.IsStrictZero() {
		return BigFloat{mant: big.NewInt(0), scale: x.scale}
	}
	intAbs, _, k, hasFrac := x.fractionalSplit()
	if !hasFrac {
		return x
	}
	scaled := new(big.Int).Lsh(intAbs, k)
	return signedInt(scaled, x.mantissa().Sign(), x.scale)
}

// Floor rounds x toward negative infinity and returns a minimal-precision
// integer.
func (x BigFloat) Floor() BigFloat {
	return x.roundToInt(func(sign int, hasRemainder bool) bool {
		return sign < 0 && hasRemainder
	}, false)
}

// FloorPreservingAccuracy is Floor, keeping x's accuracy.
func (x BigFloat) FloorPreservingAccuracy() BigFloat {
	return x.roundToInt(func(sign int, hasRemainder bool) bool {
		return sign < 0 && hasRemainder
	}, true)
}

// Ceiling rounds x toward positive infinity and returns a
// minimal-precision integer.
func (x BigFloat) Ceiling() BigFloat {
	return x.roundToInt(func(sign int, hasRemainder bool) bool {
		return sign > 0 && hasRemainder
	}, false)
}

// CeilingPreservingAccuracy is Ceiling, keeping x's accuracy.
func (x BigFloat) CeilingPreservingAccuracy() BigFloat {
	return x.roundToInt(func(sign int, hasRemainder bool) bool {
		return sign > 0 && hasRemainder
	}, true)
}

// roundToInt implements Floor/Ceiling: truncate toward zero, then bump
// the absolute integer part away from zero by one when incrementUp
// reports true for the value's sign and whether it had a nonzero
// fractional remainder.
func (x BigFloat) roundToInt(incrementUp func(sign int, hasRemainder bool) bool, preserveAccuracy bool) BigFloat {
	if x.IsStrictZero() {
		if preserveAccuracy {
			return BigFloat{mant: big.NewInt(0), scale: x.scale}
		}
		return Zero()
	}
	intAbs, rem, k, hasFrac := x.fractionalSplit()
	sign := x.mantissa().Sign()
	if hasFrac && incrementUp(sign, rem.Sign() != 0) {
		intAbs.Add(intAbs, big.NewInt(1))
	}
	if preserveAccuracy {
		if !hasFrac {
			return x
		}
		scaled := new(big.Int).Lsh(intAbs, k)
		return signedInt(scaled, sign, x.scale)
	}
	return signedInt(intAbs, sign, GuardBits)
}

// Round rounds x to the nearest integer, ties away from zero, and
// returns a minimal-precision integer.
func (x BigFloat) Round() BigFloat {
	return x.round(false)
}

// RoundPreservingAccuracy is Round, keeping x's accuracy.
func (x BigFloat) RoundPreservingAccuracy() BigFloat {
	return x.round(true)
}

func (x BigFloat) round(preserveAccuracy bool) BigFloat {
	if x.IsStrictZero() {
		if preserveAccuracy {
			return BigFloat{mant: big.NewInt(0), scale: x.scale}
		}
		return Zero()
	}
	if x.scale >= GuardBits {
		if preserveAccuracy {
			return x
		}
		return x.Truncate()
	}
	k := uint(GuardBits - x.scale)
	rounded := bigint.RoundingRightShift(x.mantissa(), k)
	if preserveAccuracy {
		scaled := new(big.Int).Lsh(rounded, k)
		return of(scaled, x.scale)
	}
	return of(rounded, GuardBits)
}

func signedInt(abs *big.Int, sign int, scale int32) BigFloat {
	if abs.Sign() == 0 || sign == 0 {
		return BigFloat{mant: big.NewInt(0), scale: scale}
	}
	if sign < 0 {
		abs = new(big.Int).Neg(abs)
	}
	return of(abs, scale)
}

// LeftShift returns x * 2**k by increasing its scale; the mantissa is
// untouched.
func (x BigFloat) LeftShift(k uint32) BigFloat {
	return of(new(big.Int).Set(x.mantissa()), x.scale+int32(k))
}

// RightShift returns x / 2**k by decreasing its scale; the mantissa is
// untouched.
func (x BigFloat) RightShift(k uint32) BigFloat {
	return of(new(big.Int).Set(x.mantissa()), x.scale-int32(k))
}

// LeftShiftMantissa shifts the raw mantissa left by k bits directly,
// moving where the guard region sits without changing which bits are
// "visible" vs "guard" relative to the original scale; the scale is left
// unchanged, so the numeric value itself changes (unlike LeftShift).
func (x BigFloat) LeftShiftMantissa(k uint32) BigFloat {
	return of(new(big.Int).Lsh(x.mantissa(), uint(k)), x.scale)
}

// RightShiftMantissa shifts the raw mantissa right by k bits directly
// (with rounding), leaving the scale unchanged; like LeftShiftMantissa,
// this changes the numeric value rather than just how it is presented.
func (x BigFloat) RightShiftMantissa(k uint32) BigFloat {
	if k == 0 {
		return x
	}
	rounded := bigint.RoundingRightShift(x.mantissa(), uint(k))
	return of(rounded, x.scale)
}

// NextUp returns the next representable value above x at x's own
// precision: one guard-bit ulp added to the raw mantissa.
func (x BigFloat) NextUp() BigFloat {
	m := new(big.Int).Add(x.mantissa(), big.NewInt(1))
	return of(m, x.scale)
}

// NextDown returns the next representable value below x at x's own
// precision: one guard-bit ulp subtracted from the raw mantissa.
func (x BigFloat) NextDown() BigFloat {
	m := new(big.Int).Sub(x.mantissa(), big.NewInt(1))
	return of(m, x.scale)
}
