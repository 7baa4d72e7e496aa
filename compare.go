package bigfloat

import (
	"encoding/binary"
	"hash/fnv"
	"math/big"
)

// CompareTo returns -1, 0, or +1 as x is numerically less than, equal to,
// or greater than y, regardless of how each value's precision or scale
// got there. A difference that lies within the guard region counts as
// equal: the result is the Sign of x-y taken at the larger of the two
// scales, which is 0 whenever that difference IsZero.
func (x BigFloat) CompareTo(y BigFloat) int {
	if x.IsStrictZero() && y.IsStrictZero() {
		return 0
	}
	return x.Sub(y).Sign()
}

// Cmp is a synonym for CompareTo.
func (x BigFloat) Cmp(y BigFloat) int {
	return x.CompareTo(y)
}

// Equals reports whether x and y agree down to the lesser of their two
// visible precisions, ignoring any extra guard-region or trailing-bit
// detail the more precise operand happens to carry.
func (x BigFloat) Equals(y BigFloat) bool {
	minPrec := x.Precision()
	if y.Precision() < minPrec {
		minPrec = y.Precision()
	}
	xr := x.SetPrecisionWithRound(minPrec)
	yr := y.SetPrecisionWithRound(minPrec)
	return xr.CompareTo(yr) == 0
}

// IsBitwiseEqual reports whether x and y have identical raw mantissas and
// scales: a much stricter test than Equals, with no tolerance for
// differing precision or guard-region noise.
func (x BigFloat) IsBitwiseEqual(y BigFloat) bool {
	return x.scale == y.scale && x.mantissa().Cmp(y.mantissa()) == 0
}

// CompareTotalPreorder is a deterministic total order over BigFloat
// values: it agrees with CompareTo wherever values differ numerically,
// and among numerically equal values, orders the coarser (lower
// precision) representation first. Zero values of any accuracy compare
// equal under this order, since they carry no distinguishing bits.
func (x BigFloat) CompareTotalPreorder(y BigFloat) int {
	if c := x.CompareTo(y); c != 0 {
		return c
	}
	if x.IsZero() && y.IsZero() {
		return 0
	}
	if x.Precision() != y.Precision() {
		if x.Precision() < y.Precision() {
			return -1
		}
		return 1
	}
	return 0
}

// ulpOf returns the value of one unit in the last place of x: the raw
// mantissa's own least-significant bit if includeGuardBits is true, or
// the least significant visible (non-guard) bit otherwise.
func ulpOf(x BigFloat, includeGuardBits bool) BigFloat {
	s := x.scale
	if !includeGuardBits {
		s += GuardBits
	}
	return of(big.NewInt(1), s)
}

// CompareUlp is CompareTo with a tolerance of u units in the last place:
// it returns 0 whenever |x-y| is within u ulps of x, and otherwise -1 or
// +1 as CompareTo would.
func (x BigFloat) CompareUlp(y BigFloat, u int64, includeGuardBits bool) int {
	diff := x.Sub(y)
	if diff.IsStrictZero() {
		return 0
	}
	tolerance := ulpOf(x, includeGuardBits).Mul(NewFromInt64(u))
	if diff.Abs().CompareTo(tolerance) <= 0 {
		return 0
	}
	if diff.IsNegative() {
		return -1
	}
	return 1
}

// EqualsUlp reports whether x and y are within u ulps of each other.
func (x BigFloat) EqualsUlp(y BigFloat, u int64, includeGuardBits bool) bool {
	return x.CompareUlp(y, u, includeGuardBits) == 0
}

// IsLessThanUlp reports whether x is less than y by more than u ulps.
func (x BigFloat) IsLessThanUlp(y BigFloat, u int64, includeGuardBits bool) bool {
	return x.CompareUlp(y, u, includeGuardBits) < 0
}

// IsGreaterThanUlp reports whether x is greater than y by more than u
// ulps.
func (x BigFloat) IsGreaterThanUlp(y BigFloat, u int64, includeGuardBits bool) bool {
	return x.CompareUlp(y, u, includeGuardBits) > 0
}

// Hash returns a hash code under which any two values representing the
// same number (regardless of how their precision, scale, or trailing
// zero bits got there) hash identically, and every IsZero value hashes
// to 0. This is achieved by hashing each value's canonical (odd
// mantissa, exponent) decomposition rather than its raw stored fields
// directly, since two representations of the same dyadic rational can
// disagree on scale and trailing zero bits while still being the same
// number (e.g. 1 stored with 40 bits of added accuracy and 1 stored with
// 50 bits of added accuracy are CompareTo-equal but have different raw
// mantissas and scales). Values that CompareTo reports equal only because
// their difference lies within the guard region (such as x and
// x.NextUp()) are different numbers and generally hash differently.
func (x BigFloat) Hash() uint64 {
	if x.IsZero() {
		return 0
	}
	m := new(big.Int).Abs(x.mantissa())
	tz := m.TrailingZeroBits()
	if tz > 0 {
		m = new(big.Int).Rsh(m, tz)
	}
	exp := int64(x.scale) - int64(GuardBits) + int64(tz)

	h := fnv.New64a()
	h.Write(m.Bytes())
	var expBuf [8]byte
	binary.BigEndian.PutUint64(expBuf[:], uint64(exp))
	h.Write(expBuf[:])
	sum := h.Sum64()
	if x.IsNegative() {
		sum = ^sum
	}
	return sum
}
