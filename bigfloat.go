package bigfloat

import (
	"math/big"
)

// BigFloat is an arbitrary-precision signed binary floating-point number.
// Its numeric value is
//
//	mant * 2**(scale - GuardBits)
//
// mant is never mutated after a BigFloat is constructed: every method
// that would change it allocates a fresh *big.Int instead, so BigFloat
// values are safe to share and compare by field regardless of how their
// backing storage originated (structural sharing between a value and
// any value derived from it is fine precisely because neither is ever
// written to).
//
// The zero value of BigFloat is a valid strict zero at scale 0 (so its
// Accuracy is GuardBits), equivalent to Zero().
type BigFloat struct {
	mant  *big.Int
	scale int32
	size  uint32 // cache of bit_length(|mant|)
}

func (x BigFloat) mantissa() *big.Int {
	if x.mant == nil {
		return big.NewInt(0)
	}
	return x.mant
}

// of constructs a BigFloat from a raw mantissa (already including its
// guard bits) and scale, recomputing the size cache. It never mutates m;
// it takes ownership of it, so callers must pass a *big.Int they will not
// mutate afterwards (typically the fresh result of a big.Int operation).
func of(m *big.Int, scale int32) BigFloat {
	if m == nil {
		m = big.NewInt(0)
	}
	return BigFloat{mant: m, scale: scale, size: uint32(m.BitLen())}
}

// Zero returns the strict zero at scale 0, whose Accuracy is GuardBits
// (the same as NewFromInt64(0)).
func Zero() BigFloat {
	return BigFloat{mant: big.NewInt(0)}
}

// One returns the exact value 1, with the same baseline accuracy
// (GuardBits) as any other exact integer constructed via NewFromBigInt.
func One() BigFloat {
	return NewFromBigInt(big.NewInt(1))
}

// ZeroWithAccuracy returns a zero mantissa carrying an accuracy budget of
// exactly a fractional bits (see Accuracy). Like any strict zero,
// Zero() included, adding it to a value returns that value unchanged.
func ZeroWithAccuracy(a int32) BigFloat {
	return BigFloat{mant: big.NewInt(0), scale: GuardBits - a}
}

// OneWithAccuracy returns the value 1 with Accuracy exactly a, which for
// small a carries less visible precision than One() since the mantissa is
// not given the usual GuardBits baseline beyond its accuracy budget.
func OneWithAccuracy(a int32) BigFloat {
	return IntWithAccuracy(1, a)
}

// IntWithAccuracy returns the exact integer n, stored so that Accuracy
// reports exactly a (a may be negative, in which case the low -a bits of
// n are shifted out arithmetically, rounding n toward negative infinity
// to a multiple of 2**-a).
func IntWithAccuracy(n int64, a int32) BigFloat {
	m := new(big.Int).SetInt64(n)
	scale := int32(GuardBits) - a
	if a >= 0 {
		m.Lsh(m, uint(a))
	} else {
		m = new(big.Int).Rsh(m, uint(-a))
	}
	return of(m, scale)
}

// CreateWithPrecisionFromValue constructs a BigFloat whose "value" bits
// (i.e. not yet including the guard region) are n at binary scaler
// scaler: the numeric value is n * 2**scaler, and the stored precision is
// exactly bit_length(|n|).
func CreateWithPrecisionFromValue(n *big.Int, scaler int32) BigFloat {
	m := new(big.Int).Lsh(n, uint(GuardBits))
	return of(m, scaler)
}

// NewFromRawMantissa constructs a BigFloat whose mantissa m already
// includes its guard bits (the "raw" form used internally by arithmetic).
func NewFromRawMantissa(m *big.Int, scale int32) BigFloat {
	return of(new(big.Int).Set(m), scale)
}

// NewFromValueMantissa constructs a BigFloat whose mantissa m does not
// yet include guard bits (the "value" form a caller typically has on
// hand): m is shifted left by GuardBits before storage.
func NewFromValueMantissa(m *big.Int, scale int32) BigFloat {
	shifted := new(big.Int).Lsh(m, uint(GuardBits))
	return of(shifted, scale)
}

// NewFromValueMantissaWithPrecision is like NewFromValueMantissa, but
// additionally reduces the stored precision to binaryPrecision bits when
// m carries more significant bits than that (used when a source format's
// precision is known to be narrower than m's own bit length, e.g. a
// float32's 24-bit mantissa packed into a wider integer). The discarded
// low bits are rounded away, not merely masked off.
func NewFromValueMantissaWithPrecision(m *big.Int, scale int32, binaryPrecision uint) BigFloat {
	v := new(big.Int).Set(m)
	if binaryPrecision > 0 && uint(v.BitLen()) > binaryPrecision {
		rounded, shift := truncateToAndRound(v, binaryPrecision)
		v = rounded
		scale += int32(shift)
	}
	return NewFromValueMantissa(v, scale)
}

// NewFromBigInt returns the exact value of n.
func NewFromBigInt(n *big.Int) BigFloat {
	return NewFromValueMantissa(new(big.Int).Set(n), 0)
}

// NewFromInt64 returns the exact value of n.
func NewFromInt64(n int64) BigFloat {
	return NewFromBigInt(big.NewInt(n))
}

// NewFromUint64 returns the exact value of n.
func NewFromUint64(n uint64) BigFloat {
	return NewFromBigInt(new(big.Int).SetUint64(n))
}

// RawMantissa returns the full internal mantissa, guard bits included.
// Callers that want the "visible" value bits should right-shift by
// GuardBits themselves, or use Lowest64Bits/Highest64Bits.
func (x BigFloat) RawMantissa() *big.Int {
	return new(big.Int).Set(x.mantissa())
}

// Scale returns the binary scale s such that the numeric value is
// mant * 2**(s - GuardBits).
func (x BigFloat) Scale() int32 {
	return x.scale
}

// Size returns bit_length(|RawMantissa|), including the guard region.
// Size is an alias kept for readers coming from the guard-bit-aware
// internals; see Precision for the visible (guard-excluded) size.
func (x BigFloat) Size() uint32 {
	return x.size
}

// SizeWithGuardBits is a synonym for Size, spelled out for call sites
// that want to make the inclusion of guard bits explicit.
func (x BigFloat) SizeWithGuardBits() uint32 {
	return x.size
}

// Precision returns the number of significant bits visible to a caller,
// excluding the guard region: max(0, Size()-GuardBits).
func (x BigFloat) Precision() uint32 {
	if x.size <= GuardBits {
		return 0
	}
	return x.size - GuardBits
}

// Accuracy returns the number of fractional bits of precision, including
// the guard region: GuardBits - Scale(). It can be negative for
// large-scale values.
func (x BigFloat) Accuracy() int32 {
	return int32(GuardBits) - x.scale
}

// Sign returns sign(RawMantissa) if x is not IsZero, and 0 otherwise. It
// is consistent with IsZero by construction: Sign() == 0 iff IsZero().
func (x BigFloat) Sign() int {
	if x.IsZero() {
		return 0
	}
	return x.mantissa().Sign()
}

// IsPositive reports whether x is strictly greater than zero.
func (x BigFloat) IsPositive() bool {
	return x.Sign() > 0
}

// IsNegative reports whether x is strictly less than zero.
func (x BigFloat) IsNegative() bool {
	return x.Sign() < 0
}

// IsStrictZero reports whether the raw mantissa is exactly 0, with no
// regard for accuracy.
func (x BigFloat) IsStrictZero() bool {
	return x.mantissa().Sign() == 0
}

// IsZero reports whether x is indistinguishable from zero at its
// declared accuracy: either the mantissa is exactly 0, or its entire bit
// length falls within the guard region (size < GuardBits), so that it
// carries no visible significant bits at all.
func (x BigFloat) IsZero() bool {
	if x.mantissa().Sign() == 0 {
		return true
	}
	n := x.size
	if n >= GuardBits {
		return false
	}
	// n < GuardBits: the most significant bit sits at position n-1,
	// which is within the guard region (< GuardBits-1) for every n in
	// this branch except n == GuardBits, already excluded above.
	return n-1 < GuardBits-1
}

// IsOutOfPrecision reports whether x carries no visible significant bits
// at all (Precision() == 0) while still being a nonzero raw mantissa —
// i.e. the value has decayed entirely into guard-region noise.
func (x BigFloat) IsOutOfPrecision() bool {
	return !x.IsStrictZero() && x.Precision() == 0
}

// IsOneBitFollowedByZeroBits reports whether |RawMantissa| is a power of
// two (including 1).
func (x BigFloat) IsOneBitFollowedByZeroBits() bool {
	m := x.mantissa()
	if m.Sign() == 0 {
		return false
	}
	ax := new(big.Int).Abs(m)
	return new(big.Int).And(ax, new(big.Int).Sub(ax, big.NewInt(1))).Sign() == 0
}

// exponent returns the position (relative to the binary point) of the
// most significant bit of x, or 0 for a strict zero. A value of exponent
// e satisfies 2**e <= |x| < 2**(e+1).
func (x BigFloat) exponent() int64 {
	if x.IsStrictZero() {
		return 0
	}
	return int64(x.size) - 1 + int64(x.scale) - int64(GuardBits)
}

// FitsInADouble reports whether x's magnitude is within the normal
// float64 range (it does not guarantee bit-exact representability at
// full precision — see ToFloat64 for rounding behavior).
func (x BigFloat) FitsInADouble() bool {
	if x.IsZero() {
		return true
	}
	e := x.exponent()
	return e >= -1022 && e <= 1023
}

// FitsInADoubleWithDenormalization is like FitsInADouble but also accepts
// magnitudes only representable as a subnormal float64.
func (x BigFloat) FitsInADoubleWithDenormalization() bool {
	if x.IsZero() {
		return true
	}
	e := x.exponent()
	return e >= -1074 && e <= 1023
}

// FitsInADecimal reports whether x can be converted to Decimal128
// (see ToDecimal128) without an OverflowError.
func (x BigFloat) FitsInADecimal() bool {
	_, err := x.ToDecimal128()
	return err == nil
}

// Lowest64Bits returns the low 64 visible bits of |RawMantissa| (i.e.
// with the guard region already shifted out), zero-extended if the
// visible mantissa is narrower than 64 bits.
func (x BigFloat) Lowest64Bits() uint64 {
	v := new(big.Int).Rsh(new(big.Int).Abs(x.mantissa()), uint(GuardBits))
	return lowest64(v)
}

// Lowest64BitsWithGuardBits returns the low 64 bits of |RawMantissa|,
// guard region included.
func (x BigFloat) Lowest64BitsWithGuardBits() uint64 {
	return lowest64(new(big.Int).Abs(x.mantissa()))
}

// Highest64Bits returns the top 64 bits of |RawMantissa| (guard region
// included, since it is simply the most significant bits of storage),
// zero-extended if the mantissa is narrower than 64 bits.
func (x BigFloat) Highest64Bits() uint64 {
	ax := new(big.Int).Abs(x.mantissa())
	n := ax.BitLen()
	if n <= 64 {
		return lowest64(ax)
	}
	return lowest64(new(big.Int).Rsh(ax, uint(n-64)))
}

func lowest64(v *big.Int) uint64 {
	words := v.Bits()
	if len(words) == 0 {
		return 0
	}
	const wordBits = 32 << (^uint(0) >> 63)
	if wordBits == 64 {
		return uint64(words[0])
	}
	var lo uint64 = uint64(words[0])
	if len(words) > 1 {
		lo |= uint64(words[1]) << 32
	}
	return lo
}
