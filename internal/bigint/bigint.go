// Package bigint provides the arbitrary-precision integer primitives the
// bigfloat package builds its mantissa arithmetic on: rounding right shifts,
// truncate-and-round, most-significant-bits-only exponentiation, and exact
// integer roots.
//
// Ordinary add/sub/mul/div are *big.Int's own; this package only adds the
// operations *big.Int does not have. Divide-by-zero aside, none of these
// primitives can fail: there is no fixed-width overflow in an arbitrary
// precision representation.
package bigint

import (
	"math/big"
	"math/rand"
)

var bigOne = big.NewInt(1)

// BitLen returns bit_length(|x|), the convention used throughout the
// bigfloat package to track mantissa size.
func BitLen(x *big.Int) int {
	return x.BitLen()
}

// RoundingRightShift shifts x right by k bits, rounding to nearest with
// ties broken away from zero. See RoundingRightShiftWithCarry for the
// carry-reporting variant this is built on.
func RoundingRightShift(x *big.Int, k uint) *big.Int {
	y, _ := RoundingRightShiftWithCarry(x, k)
	return y
}

// RoundingRightShiftWithCarry shifts x right by k bits, rounding to nearest
// with ties away from zero, and reports whether the rounding carried the
// bit length up by one (e.g. …0111…1 rounding to 1000…0). Callers use
// carried to bump a scale that tracks where the shifted-out bits went.
func RoundingRightShiftWithCarry(x *big.Int, k uint) (y *big.Int, carried bool) {
	if k == 0 {
		return new(big.Int).Set(x), false
	}
	sign := x.Sign()
	if sign == 0 {
		return new(big.Int), false
	}

	ax := new(big.Int).Abs(x)
	q := new(big.Int).Rsh(ax, k)
	beforeLen := q.BitLen()

	mask := new(big.Int).Lsh(bigOne, k)
	mask.Sub(mask, bigOne)
	rem := new(big.Int).And(ax, mask)
	half := new(big.Int).Lsh(bigOne, k-1)

	if rem.Cmp(half) >= 0 {
		q.Add(q, bigOne)
	}
	carried = q.BitLen() != beforeLen

	if sign < 0 {
		q.Neg(q)
	}
	return q, carried
}

// RoundingRightShiftSize is the size-tracking variant of RoundingRightShift:
// it returns x shifted right by k bits as a new value (x itself is not
// modified) and writes the result's bit length into *size, for callers
// that maintain a size cache alongside their mantissa.
func RoundingRightShiftSize(x *big.Int, k uint, size *int) *big.Int {
	y := RoundingRightShift(x, k)
	*size = y.BitLen()
	return y
}

// TruncateToAndRound reduces x to at most bits significant bits using
// round-to-nearest, and reports the number of low-order bits that were
// discarded (which may be one more than bit_length(x)-bits if rounding
// carried the result up by a bit). When bits is 0 the result is +-1 (one
// bit, with shift bit_length(x)) if |x| rounds up to 1, and 0 otherwise.
func TruncateToAndRound(x *big.Int, bits uint) (result *big.Int, shift uint) {
	n := uint(x.BitLen())
	if bits == 0 {
		if x.Sign() == 0 {
			return new(big.Int), 0
		}
		// rounding everything away: report whether |x| rounds up to 1.
		half := new(big.Int).Lsh(bigOne, n-1)
		ax := new(big.Int).Abs(x)
		if n > 0 && ax.Cmp(half) >= 0 {
			return big.NewInt(int64(x.Sign())), n
		}
		return new(big.Int), n
	}
	if n <= bits {
		return new(big.Int).Set(x), 0
	}
	shift = n - bits
	result, carried := RoundingRightShiftWithCarry(x, shift)
	if carried {
		// result is +-2^bits; drop its trailing zero to stay within bits.
		result.Rsh(result, 1)
		shift++
	}
	return result, shift
}

// trimToBits reduces x to at most bits significant bits, returning the
// reduced value and the number of bits dropped. It is used internally to
// bound intermediate sizes during exponentiation: with roundDown it
// truncates, otherwise it rounds to nearest like TruncateToAndRound, so
// that PowMostSignificantBitsApprox controls rounding via roundDown.
func trimToBits(x *big.Int, bits uint, roundDown bool) (*big.Int, uint) {
	n := uint(x.BitLen())
	if n <= bits {
		return x, 0
	}
	drop := n - bits
	if roundDown {
		return new(big.Int).Rsh(x, drop), drop
	}
	y, carried := RoundingRightShiftWithCarry(x, drop)
	if carried {
		y.Rsh(y, 1)
		drop++
	}
	return y, drop
}

// PowMostSignificantBitsApprox computes only the top wantedBits bits of
// base^exp without ever forming the full product, and returns the number
// of low-order bits that were implicitly shifted away along the way (so
// that result * 2^shifted approximates base^exp).
//
// baseSize is bit_length(|base|) as the caller's size cache records it; the
// function does not read it and takes bit lengths from base itself.
//
// extraAccurate widens the rounding margin kept between squarings, trading
// speed for a tighter bound on the accumulated error: the two modes are
// required to agree to within one bit at the top of the result, and when
// they disagree, their reported shift differs by exactly one bit (the
// extra bit a rounding carry produced in one mode but not the other).
//
// roundDown forces truncation instead of round-to-nearest at each
// reduction step, guaranteeing result*2^shifted <= base^exp; it is used by
// callers (e.g. NthRoot's initial guess) that need a safe lower bound.
func PowMostSignificantBitsApprox(base *big.Int, exp uint64, baseSize uint, wantedBits uint, extraAccurate, roundDown bool) (result *big.Int, shifted uint64) {
	if exp == 0 {
		return new(big.Int).Set(bigOne), 0
	}
	if base.Sign() == 0 {
		return new(big.Int), 0
	}
	if wantedBits == 0 {
		wantedBits = 1
	}

	margin := wantedBits + 32
	if extraAccurate {
		margin = wantedBits*2 + 64
	}
	keep := wantedBits + margin

	b, bShift := trimToBits(base, keep, roundDown)
	var baseShift uint64 = uint64(bShift)

	accum := new(big.Int).Set(bigOne)
	var accumShift uint64
	haveAccum := false

	e := exp
	for e > 0 {
		if e&1 == 1 {
			if !haveAccum {
				accum.Set(b)
				accumShift = baseShift
				haveAccum = true
			} else {
				accum.Mul(accum, b)
				accumShift += baseShift
				if d := uint(accum.BitLen()); d > keep {
					drop := d - keep
					if roundDown {
						accum.Rsh(accum, drop)
					} else {
						var carried bool
						accum, carried = RoundingRightShiftWithCarry(accum, drop)
						if carried {
							accum.Rsh(accum, 1)
							drop++
						}
					}
					accumShift += uint64(drop)
				}
			}
		}
		e >>= 1
		if e == 0 {
			break
		}
		b = new(big.Int).Mul(b, b)
		baseShift *= 2
		if d := uint(b.BitLen()); d > keep {
			drop := d - keep
			if roundDown {
				b.Rsh(b, drop)
			} else {
				var carried bool
				b, carried = RoundingRightShiftWithCarry(b, drop)
				if carried {
					b.Rsh(b, 1)
					drop++
				}
			}
			baseShift += uint64(drop)
		}
	}

	if d := uint(accum.BitLen()); d > wantedBits {
		drop := d - wantedBits
		if roundDown {
			accum.Rsh(accum, drop)
		} else {
			var carried bool
			accum, carried = RoundingRightShiftWithCarry(accum, drop)
			if carried {
				accum.Rsh(accum, 1)
				drop++
			}
		}
		accumShift += uint64(drop)
	}

	return accum, accumShift
}

// NthRoot returns floor(x^(1/n)) for x >= 0, or the (unique, exact-sign)
// truncated root for x < 0 when n is odd. It panics if n == 0, or if x < 0
// and n is even — callers in the bigfloat package translate that into a
// DomainError before it can reach here.
func NthRoot(x *big.Int, n uint) *big.Int {
	if n == 0 {
		panic("bigint: NthRoot with n == 0")
	}
	if x.Sign() == 0 {
		return new(big.Int)
	}
	if x.Sign() < 0 {
		if n%2 == 0 {
			panic("bigint: NthRoot of negative with even n")
		}
		r := NthRoot(new(big.Int).Neg(x), n)
		return r.Neg(r)
	}
	if n == 1 {
		return new(big.Int).Set(x)
	}
	if n == 2 {
		return new(big.Int).Sqrt(x)
	}

	// Newton's method on the integers: y_{k+1} = ((n-1)y_k + x/y_k^(n-1)) / n
	nBig := new(big.Int).SetUint64(uint64(n))
	nMinus1 := new(big.Int).SetUint64(uint64(n - 1))

	// Initial guess: 2^(ceil(bitlen(x)/n)+1), an over-estimate.
	guessBits := (uint(x.BitLen()) + n - 1) / n
	y := new(big.Int).Lsh(bigOne, guessBits+1)

	for {
		yPow := new(big.Int).Exp(y, nMinus1, nil)
		div := new(big.Int).Div(x, yPow)
		next := new(big.Int).Mul(nMinus1, y)
		next.Add(next, div)
		next.Div(next, nBig)
		if next.Cmp(y) >= 0 {
			break
		}
		y = next
	}

	// y now satisfies y^n <= x < (y+1)^n modulo the rare off-by-one from
	// integer truncation in the iteration; correct it directly.
	for new(big.Int).Exp(y, nBig, nil).Cmp(x) > 0 {
		y.Sub(y, bigOne)
	}
	for {
		next := new(big.Int).Add(y, bigOne)
		if new(big.Int).Exp(next, nBig, nil).Cmp(x) > 0 {
			break
		}
		y = next
	}
	return y
}

// Random returns a uniformly distributed integer in [lo, hi]. It panics if
// hi < lo.
func Random(lo, hi *big.Int, rng *rand.Rand) *big.Int {
	if hi.Cmp(lo) < 0 {
		panic("bigint: Random: hi < lo")
	}
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, bigOne)
	if span.Sign() == 0 {
		return new(big.Int).Set(lo)
	}
	r := new(big.Int).Rand(rng, span)
	r.Add(r, lo)
	return r
}
