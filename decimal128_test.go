package bigfloat

import (
	"math/big"
	"testing"
)

func TestDecimal128RoundTripInteger(t *testing.T) {
	x := NewFromInt64(12345)
	d, err := x.ToDecimal128()
	if err != nil {
		t.Fatalf("ToDecimal128 failed: %v", err)
	}
	back := FromDecimal128(d)
	if got := toF64(t, back); got != 12345 {
		t.Fatalf("round trip 12345 -> %v", got)
	}
}

func TestDecimal128RoundTripFraction(t *testing.T) {
	x, err := NewFromInt64(1).Quo(NewFromInt64(4)) // 0.25
	if err != nil {
		t.Fatalf("Quo failed: %v", err)
	}
	d, err := x.ToDecimal128()
	if err != nil {
		t.Fatalf("ToDecimal128 failed: %v", err)
	}
	back := FromDecimal128(d)
	if got := toF64(t, back); got != 0.25 {
		t.Fatalf("round trip 0.25 -> %v", got)
	}
}

func TestDecimal128NegativeSign(t *testing.T) {
	x := NewFromInt64(-7)
	d, err := x.ToDecimal128()
	if err != nil {
		t.Fatalf("ToDecimal128 failed: %v", err)
	}
	if !d.IsNegative() {
		t.Fatal("Decimal128 of -7 should carry the sign bit")
	}
	if got := toF64(t, FromDecimal128(d)); got != -7 {
		t.Fatalf("round trip -7 -> %v", got)
	}
}

func TestDecimal128OverflowsOnHugeMagnitude(t *testing.T) {
	huge := NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), 400))
	_, err := huge.ToDecimal128()
	if _, ok := err.(OverflowError); !ok {
		t.Fatalf("ToDecimal128(2**400) = %v, want OverflowError", err)
	}
}

func TestNewDecimal128RejectsOutOfRangeScale(t *testing.T) {
	_, err := NewDecimal128(big.NewInt(1), 29, false)
	if _, ok := err.(OverflowError); !ok {
		t.Fatalf("NewDecimal128 scale 29 = %v, want OverflowError", err)
	}
}

func TestNewDecimal128RejectsOversizedMantissa(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 200)
	_, err := NewDecimal128(huge, 0, false)
	if _, ok := err.(OverflowError); !ok {
		t.Fatalf("NewDecimal128 with 200-bit mantissa = %v, want OverflowError", err)
	}
}

func TestDecimal128CanonicalizesTrailingZeros(t *testing.T) {
	// 100 is an exact integer with no fractional digits; ToDecimal128
	// should report it at scale 0, not at some inflated scale with
	// trailing decimal zeros, so that a canonical Decimal128 constructed
	// directly at scale 0 round-trips bit-for-bit.
	d, err := NewFromInt64(100).ToDecimal128()
	if err != nil {
		t.Fatalf("ToDecimal128(100) failed: %v", err)
	}
	if d.Scale() != 0 {
		t.Fatalf("ToDecimal128(100).Scale() = %d, want 0", d.Scale())
	}
	if d.Unscaled().Cmp(big.NewInt(100)) != 0 {
		t.Fatalf("ToDecimal128(100).Unscaled() = %v, want 100", d.Unscaled())
	}
}

func TestDecimal128RoundTripsAtDecimal128Level(t *testing.T) {
	orig, err := NewDecimal128(big.NewInt(100), 0, false)
	if err != nil {
		t.Fatalf("NewDecimal128 failed: %v", err)
	}
	back, err := FromDecimal128(orig).ToDecimal128()
	if err != nil {
		t.Fatalf("ToDecimal128 failed: %v", err)
	}
	if back.Scale() != orig.Scale() || back.Unscaled().Cmp(orig.Unscaled()) != 0 || back.IsNegative() != orig.IsNegative() {
		t.Fatalf("Decimal128 round trip: got {%v, scale %d, neg %v}, want {%v, scale %d, neg %v}",
			back.Unscaled(), back.Scale(), back.IsNegative(), orig.Unscaled(), orig.Scale(), orig.IsNegative())
	}
}

func TestDecimal128ZeroRoundTrips(t *testing.T) {
	d, err := Zero().ToDecimal128()
	if err != nil {
		t.Fatalf("ToDecimal128(0) failed: %v", err)
	}
	back := FromDecimal128(d)
	if !back.IsStrictZero() {
		t.Fatal("FromDecimal128 of a zero Decimal128 should be zero")
	}
}
