package bigfloat

import (
	"math"
	"math/big"
)

// ToBigInt truncates x toward zero and returns the result as a plain
// arbitrary-precision integer. Unlike ToInt64/ToUint64, this never fails:
// there is no fixed width to overflow.
func (x BigFloat) ToBigInt() *big.Int {
	t := x.Truncate()
	// Truncate stores its integer at scale GuardBits, where the raw
	// mantissa is the value itself.
	return new(big.Int).Set(t.mantissa())
}

// ToInt64 truncates x toward zero and returns the result as an int64. It
// returns an OverflowError if the truncated value does not fit.
func (x BigFloat) ToInt64() (int64, error) {
	b := x.ToBigInt()
	if !b.IsInt64() {
		return 0, OverflowError{Op: "ToInt64", Detail: "does not fit in int64"}
	}
	return b.Int64(), nil
}

// ToUint64 truncates x toward zero and returns the result as a uint64. It
// returns an OverflowError if x is negative or the truncated value does
// not fit.
func (x BigFloat) ToUint64() (uint64, error) {
	b := x.ToBigInt()
	if b.Sign() < 0 || !b.IsUint64() {
		return 0, OverflowError{Op: "ToUint64", Detail: "does not fit in uint64"}
	}
	return b.Uint64(), nil
}

// ToFloat64 converts x to the nearest float64, rounding to nearest with
// ties to even. It returns an OverflowError instead of ±Inf when x's
// magnitude exceeds float64's range.
func (x BigFloat) ToFloat64() (float64, error) {
	if x.IsStrictZero() {
		return 0, nil
	}
	f := new(big.Float).SetPrec(uint(x.size) + 8).SetInt(x.mantissa())
	f.SetMantExp(f, int(x.scale)-GuardBits)
	v, _ := f.Float64()
	if math.IsInf(v, 0) {
		return 0, OverflowError{Op: "ToFloat64", Detail: "magnitude exceeds float64 range"}
	}
	return v, nil
}

// ToFloat32 is ToFloat64, rounded to float32.
func (x BigFloat) ToFloat32() (float32, error) {
	if x.IsStrictZero() {
		return 0, nil
	}
	f := new(big.Float).SetPrec(uint(x.size) + 8).SetInt(x.mantissa())
	f.SetMantExp(f, int(x.scale)-GuardBits)
	v, _ := f.Float32()
	if math.IsInf(float64(v), 0) {
		return 0, OverflowError{Op: "ToFloat32", Detail: "magnitude exceeds float32 range"}
	}
	return v, nil
}

// FromFloat64 returns the exact value of f. It returns an OverflowError
// for NaN or an infinite f, since neither has a BigFloat representation.
func FromFloat64(f float64) (BigFloat, error) {
	if math.IsNaN(f) {
		return BigFloat{}, OverflowError{Op: "FromFloat64", Detail: "NaN has no BigFloat representation"}
	}
	if math.IsInf(f, 0) {
		return BigFloat{}, OverflowError{Op: "FromFloat64", Detail: "infinite"}
	}
	return float64Seed(f), nil
}

// FromFloat32 returns the exact value of f. It returns an OverflowError
// for NaN or an infinite f.
func FromFloat32(f float32) (BigFloat, error) {
	bits := math.Float32bits(f)
	sign := bits >> 31
	rawExp := int32((bits >> 23) & 0xFF)
	frac := bits & (1<<23 - 1)

	if rawExp == 0xFF {
		if frac != 0 {
			return BigFloat{}, OverflowError{Op: "FromFloat32", Detail: "NaN has no BigFloat representation"}
		}
		return BigFloat{}, OverflowError{Op: "FromFloat32", Detail: "infinite"}
	}
	if f == 0 {
		return Zero(), nil
	}

	var mant uint64
	var e int32
	if rawExp == 0 {
		mant = uint64(frac)
		e = -149
	} else {
		mant = uint64(frac) | (1 << 23)
		e = rawExp - 150
	}
	m := new(big.Int).SetUint64(mant)
	if sign == 1 {
		m.Neg(m)
	}
	return CreateWithPrecisionFromValue(m, e), nil
}
