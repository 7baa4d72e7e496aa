package bigfloat

import (
	"math/big"
	"testing"
)

func half(n int64) BigFloat {
	// n + 0.5, exact: mantissa n<<G | (1<<(G-1)), scale 0.
	m := new(big.Int).Lsh(big.NewInt(n), GuardBits)
	half := new(big.Int).Lsh(big.NewInt(1), GuardBits-1)
	if n < 0 {
		m.Sub(m, half)
	} else {
		m.Add(m, half)
	}
	return of(m, 0)
}

func TestTruncateTowardZero(t *testing.T) {
	cases := []struct {
		in   BigFloat
		want int64
	}{
		{half(3), 3},
		{half(-3), -3},
		{NewFromInt64(5), 5},
	}
	for _, c := range cases {
		got, err := c.in.Truncate().ToInt64()
		if err != nil || got != c.want {
			t.Fatalf("Truncate(%v) = %d (err %v), want %d", c.in, got, err, c.want)
		}
	}
}

func TestFloorAndCeiling(t *testing.T) {
	x := half(3) // 3.5
	f, err := x.Floor().ToInt64()
	if err != nil || f != 3 {
		t.Fatalf("Floor(3.5) = %d (err %v), want 3", f, err)
	}
	c, err := x.Ceiling().ToInt64()
	if err != nil || c != 4 {
		t.Fatalf("Ceiling(3.5) = %d (err %v), want 4", c, err)
	}
	y := half(-3) // -3.5
	f, err = y.Floor().ToInt64()
	if err != nil || f != -4 {
		t.Fatalf("Floor(-3.5) = %d (err %v), want -4", f, err)
	}
	c, err = y.Ceiling().ToInt64()
	if err != nil || c != -3 {
		t.Fatalf("Ceiling(-3.5) = %d (err %v), want -3", c, err)
	}
}

func TestRoundTiesAwayFromZero(t *testing.T) {
	cases := []struct {
		in   BigFloat
		want int64
	}{
		{half(3), 4},
		{half(-3), -4},
		{half(4), 5},
	}
	for _, c := range cases {
		got, err := c.in.Round().ToInt64()
		if err != nil || got != c.want {
			t.Fatalf("Round(%v) = %d (err %v), want %d", c.in, got, err, c.want)
		}
	}
}

func TestPreservingAccuracyKeepsScale(t *testing.T) {
	x := half(3)
	r := x.RoundPreservingAccuracy()
	if r.Scale() != x.Scale() {
		t.Fatalf("RoundPreservingAccuracy changed scale: got %d, want %d", r.Scale(), x.Scale())
	}
	got, err := r.ToFloat64()
	if err != nil || got != 4 {
		t.Fatalf("RoundPreservingAccuracy(3.5) = %v (err %v), want 4", got, err)
	}
}

func TestLeftRightShift(t *testing.T) {
	x := NewFromInt64(5)
	doubled := x.LeftShift(1)
	v, err := doubled.ToFloat64()
	if err != nil || v != 10 {
		t.Fatalf("LeftShift(1) on 5 = %v (err %v), want 10", v, err)
	}
	halved := x.RightShift(1)
	v, err = halved.ToFloat64()
	if err != nil || v != 2.5 {
		t.Fatalf("RightShift(1) on 5 = %v (err %v), want 2.5", v, err)
	}
}

func TestNextUpNextDown(t *testing.T) {
	x := NewFromInt64(1)
	up := x.NextUp()
	down := x.NextDown()
	// NextUp/NextDown move by one guard-bit unit, which CompareTo ignores,
	// so the step is checked on the raw mantissas (the scale is unchanged).
	if up.RawMantissa().Cmp(x.RawMantissa()) <= 0 {
		t.Fatal("NextUp did not increase x")
	}
	if down.RawMantissa().Cmp(x.RawMantissa()) >= 0 {
		t.Fatal("NextDown did not decrease x")
	}
	if up.NextDown().CompareTo(x) != 0 {
		t.Fatal("NextUp().NextDown() did not return to x")
	}
}
