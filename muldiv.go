package bigfloat

import "math/big"

// Mul returns x * y. The product mantissa is computed exactly and then
// rounded down to whichever operand carries less precision, plus
// GuardBits of headroom, matching the rule that a product is never more
// precise than its least precise factor.
func (x BigFloat) Mul(y BigFloat) BigFloat {
	if x.IsStrictZero() || y.IsStrictZero() {
		return ZeroWithAccuracy(minAccuracy(x, y))
	}
	m := new(big.Int).Mul(x.mantissa(), y.mantissa())
	scale := x.scale + y.scale - GuardBits

	minPrec := x.Precision()
	if y.Precision() < minPrec {
		minPrec = y.Precision()
	}
	target := uint(GuardBits) + uint(minPrec)
	if uint(m.BitLen()) <= target {
		return of(m, scale)
	}
	rounded, shift := truncateToAndRound(m, target)
	return of(rounded, scale+int32(shift))
}

// Quo returns x / y, rounded to nearest with ties away from zero, carried
// to whichever operand's precision is smaller plus a small safety margin.
// It returns a DivideByZeroError if y is a strict zero.
func (x BigFloat) Quo(y BigFloat) (BigFloat, error) {
	if y.IsStrictZero() {
		return BigFloat{}, DivideByZeroError{Op: "Quo"}
	}
	if x.IsStrictZero() {
		return ZeroWithAccuracy(minAccuracy(x, y)), nil
	}
	minPrec := x.Precision()
	if y.Precision() < minPrec {
		minPrec = y.Precision()
	}
	target := int(GuardBits) + int(minPrec) + 2
	extra := target + int(y.size) - int(x.size)
	if extra < 0 {
		extra = 0
	}
	numerator := new(big.Int).Lsh(x.mantissa(), uint(extra))
	q, r := roundedQuoRem(numerator, y.mantissa())
	_ = r
	scale := int64(x.scale) - int64(y.scale) + int64(GuardBits) - int64(extra)
	return of(q, int32(scale)), nil
}

// Divide is a synonym for Quo.
func (x BigFloat) Divide(y BigFloat) (BigFloat, error) {
	return x.Quo(y)
}

// Inverse returns 1/x, carried to x's own precision plus a small safety
// margin. It returns a DivideByZeroError if x is a strict zero.
func (x BigFloat) Inverse() (BigFloat, error) {
	if x.IsStrictZero() {
		return BigFloat{}, DivideByZeroError{Op: "Inverse"}
	}
	target := int(GuardBits) + int(x.Precision()) + 2
	extra := target + int(x.size) + 2
	numerator := new(big.Int).Lsh(big.NewInt(1), uint(extra))
	q, _ := roundedQuoRem(numerator, x.mantissa())
	scale := 2*int64(GuardBits) - int64(x.scale) - int64(extra)
	return of(q, int32(scale)), nil
}

// Remainder returns x - y*Trunc(x/y): the remainder has the same sign as
// x (or zero), matching the stdlib math.Mod convention.
func (x BigFloat) Remainder(y BigFloat) (BigFloat, error) {
	if y.IsStrictZero() {
		return BigFloat{}, DivideByZeroError{Op: "Remainder"}
	}
	q, err := x.Quo(y)
	if err != nil {
		return BigFloat{}, err
	}
	return x.Sub(q.Truncate().Mul(y)), nil
}

// Mod returns x - y*Floor(x/y): the result has the same sign as y (or
// zero), matching Python's % convention, distinct from Remainder.
func (x BigFloat) Mod(y BigFloat) (BigFloat, error) {
	if y.IsStrictZero() {
		return BigFloat{}, DivideByZeroError{Op: "Mod"}
	}
	r, err := x.Remainder(y)
	if err != nil {
		return BigFloat{}, err
	}
	// Compare raw mantissa signs: a remainder can be small enough to sit
	// in the guard region, where Sign and IsNegative report 0.
	if !r.IsStrictZero() && (r.mantissa().Sign() < 0) != (y.mantissa().Sign() < 0) {
		r = r.Add(y)
	}
	return r, nil
}

// roundedQuoRem divides num by den, rounding the quotient to nearest with
// ties away from zero, and returns both the rounded quotient and the
// truncated remainder it rounded from.
func roundedQuoRem(num, den *big.Int) (q, r *big.Int) {
	q, r = new(big.Int).QuoRem(num, den, new(big.Int))
	twiceR := new(big.Int).Abs(r)
	twiceR.Lsh(twiceR, 1)
	if twiceR.CmpAbs(den) >= 0 {
		if (num.Sign() < 0) != (den.Sign() < 0) {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q, r
}

func minAccuracy(x, y BigFloat) int32 {
	a := x.Accuracy()
	if y.Accuracy() < a {
		a = y.Accuracy()
	}
	return a
}
