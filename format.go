package bigfloat

import (
	"fmt"
	"math/big"
)

// ToHexString renders x as a signed hexadecimal mantissa and binary
// exponent, mant p exp, such that the value equals mant * 2**exp. When
// includeGuardBits is false, the guard region is shifted out first so
// only the visible mantissa is shown.
func (x BigFloat) ToHexString(includeGuardBits bool) string {
	return x.radixString(16, includeGuardBits)
}

// ToBinaryString is ToHexString with a base-2 mantissa instead of
// base-16.
func (x BigFloat) ToBinaryString(includeGuardBits bool) string {
	return x.radixString(2, includeGuardBits)
}

func (x BigFloat) radixString(base int, includeGuardBits bool) string {
	m := x.mantissa()
	if m.Sign() == 0 {
		return "0p+0"
	}
	sign := ""
	ax := new(big.Int).Abs(m)
	if m.Sign() < 0 {
		sign = "-"
	}
	exp := int64(x.scale) - int64(GuardBits)
	if !includeGuardBits {
		ax = new(big.Int).Rsh(ax, uint(GuardBits))
		exp = int64(x.scale)
	}
	return fmt.Sprintf("%s%sp%+d", sign, ax.Text(base), exp)
}

// ToScientificString renders x with its guard region set off by a '|'
// separator from its visible bits, along with the binary exponent of its
// most significant bit and its raw scale. This is a diagnostic format,
// not a parseable or locale-aware one.
func (x BigFloat) ToScientificString() string {
	if x.IsStrictZero() {
		return "0"
	}
	m := x.mantissa()
	sign := ""
	if m.Sign() < 0 {
		sign = "-"
	}
	bits := new(big.Int).Abs(m).Text(2)
	for len(bits) <= GuardBits {
		bits = "0" + bits
	}
	split := len(bits) - GuardBits
	visible, guard := bits[:split], bits[split:]
	return fmt.Sprintf("%s%s|%s p%+d (scale=%d)", sign, visible, guard, x.exponent(), x.scale)
}

// String implements fmt.Stringer using ToScientificString.
func (x BigFloat) String() string {
	return x.ToScientificString()
}
