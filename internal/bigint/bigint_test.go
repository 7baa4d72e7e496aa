package bigint

import (
	"math/big"
	"math/rand"
	"testing"
)

var rnd = rand.New(rand.NewSource(1))

func randBigInt(bits int) *big.Int {
	x := new(big.Int).Rand(rnd, new(big.Int).Lsh(bigOne, uint(bits)))
	if rnd.Intn(2) == 0 {
		x.Neg(x)
	}
	return x
}

func TestRoundingRightShiftExact(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := randBigInt(64)
		k := uint(rnd.Intn(10))
		shifted := new(big.Int).Lsh(x, k)
		y, carried := RoundingRightShiftWithCarry(shifted, k)
		if y.Cmp(x) != 0 {
			t.Fatalf("exact shift not recovered: x=%v k=%d got=%v", x, k, y)
		}
		if carried {
			t.Fatalf("exact shift reported spurious carry: x=%v k=%d", x, k)
		}
	}
}

func TestRoundingRightShiftTieAwayFromZero(t *testing.T) {
	cases := []struct {
		x    int64
		k    uint
		want int64
	}{
		{1, 1, 1},   // 0.5 -> 1
		{3, 1, 2},   // 1.5 -> 2
		{-1, 1, -1}, // -0.5 -> -1
		{-3, 1, -2}, // -1.5 -> -2
		{2, 1, 1},   // exact, no tie
		{4, 2, 1},   // exact
		{5, 2, 1},   // 1.25 -> 1
		{6, 2, 2},   // 1.5 -> 2
		{7, 2, 2},   // 1.75 -> 2
	}
	for _, c := range cases {
		got := RoundingRightShift(big.NewInt(c.x), c.k)
		if got.Int64() != c.want {
			t.Errorf("RoundingRightShift(%d, %d) = %d, want %d", c.x, c.k, got.Int64(), c.want)
		}
	}
}

func TestRoundingRightShiftCarry(t *testing.T) {
	// 0b111 >> 2 rounds 0b1.11 up to 0b10 (2): bit length grows from 1 to 2 -> carry
	y, carried := RoundingRightShiftWithCarry(big.NewInt(0b111), 2)
	if y.Int64() != 2 || !carried {
		t.Fatalf("got (%v, %v), want (2, true)", y, carried)
	}
	// 0b1111 >> 1 rounds to 0b1000 (8): bit length grows from 3 to 4 -> carry
	y, carried = RoundingRightShiftWithCarry(big.NewInt(0b1111), 1)
	if y.Int64() != 8 || !carried {
		t.Fatalf("got (%v, %v), want (8, true)", y, carried)
	}
}

func TestTruncateToAndRound(t *testing.T) {
	for i := 0; i < 500; i++ {
		bits := uint(1 + rnd.Intn(8))
		x := new(big.Int).Add(new(big.Int).Lsh(bigOne, bits+uint(rnd.Intn(20))), big.NewInt(int64(rnd.Intn(1<<20))))
		result, shift := TruncateToAndRound(x, bits)
		if uint(result.BitLen()) > bits {
			t.Fatalf("TruncateToAndRound(%v, %d) = %v (%d bits), exceeds requested bits", x, bits, result, result.BitLen())
		}
		// result shifted back by `shift` must be within half a ulp of x.
		back := new(big.Int).Lsh(result, shift)
		diff := new(big.Int).Sub(back, x)
		diff.Abs(diff)
		tolerance := new(big.Int).Lsh(bigOne, shift-1)
		if diff.Cmp(tolerance) > 0 {
			t.Fatalf("TruncateToAndRound(%v, %d) rounded too far: back=%v diff=%v", x, bits, back, diff)
		}
	}
}

func TestPowMostSignificantBitsApproxAgreesWithExact(t *testing.T) {
	for i := 0; i < 200; i++ {
		base := big.NewInt(int64(2 + rnd.Intn(97)))
		exp := uint64(1 + rnd.Intn(12))
		wanted := uint(20 + rnd.Intn(20))

		exact := new(big.Int).Exp(base, big.NewInt(int64(exp)), nil)
		exactTrunc, exactShift := TruncateToAndRound(exact, wanted)

		approx, approxShift := PowMostSignificantBitsApprox(base, exp, uint(base.BitLen()), wanted, false, false)
		extra, extraShift := PowMostSignificantBitsApprox(base, exp, uint(base.BitLen()), wanted, true, false)

		if approx.BitLen() > int(wanted)+1 || extra.BitLen() > int(wanted)+1 {
			t.Fatalf("result wider than requested: approx=%d extra=%d wanted=%d", approx.BitLen(), extra.BitLen(), wanted)
		}

		checkClose := func(name string, got *big.Int, gotShift uint64) {
			// reconstruct got*2^gotShift and compare to the exact value within a
			// handful of ulps at the requested precision.
			recon := new(big.Int).Lsh(got, uint(gotShift))
			diff := new(big.Int).Sub(recon, exact)
			diff.Abs(diff)
			ulp := new(big.Int).Lsh(bigOne, uint(exactShift)+2)
			if diff.Cmp(ulp) > 0 {
				t.Fatalf("%s: base=%v exp=%d wanted=%d: reconstructed %v too far from exact %v (diff=%v > ulp=%v)",
					name, base, exp, wanted, recon, exact, diff, ulp)
			}
		}
		checkClose("approx", approx, approxShift)
		checkClose("extraAccurate", extra, extraShift)
		_ = exactTrunc
	}
}

func TestNthRootExactPowers(t *testing.T) {
	for i := 0; i < 300; i++ {
		n := uint(1 + rnd.Intn(6))
		a := big.NewInt(int64(2 + rnd.Intn(500)))
		pow := new(big.Int).Exp(a, big.NewInt(int64(n)), nil)
		got := NthRoot(pow, n)
		if got.Cmp(a) != 0 {
			t.Fatalf("NthRoot(%d^%d, %d) = %v, want %v", a, n, n, got, a)
		}
	}
}

func TestNthRootTruncates(t *testing.T) {
	// 10^1 = 10, cube root of 1000+1 should truncate to 10.
	got := NthRoot(big.NewInt(1001), 3)
	if got.Int64() != 10 {
		t.Fatalf("NthRoot(1001, 3) = %v, want 10", got)
	}
}

func TestNthRootOddNegative(t *testing.T) {
	got := NthRoot(big.NewInt(-27), 3)
	if got.Int64() != -3 {
		t.Fatalf("NthRoot(-27, 3) = %v, want -3", got)
	}
}

func TestNthRootEvenNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for NthRoot of negative with even n")
		}
	}()
	NthRoot(big.NewInt(-4), 2)
}

func TestRandomRange(t *testing.T) {
	lo, hi := big.NewInt(10), big.NewInt(20)
	for i := 0; i < 1000; i++ {
		r := Random(lo, hi, rnd)
		if r.Cmp(lo) < 0 || r.Cmp(hi) > 0 {
			t.Fatalf("Random(%v, %v) = %v, out of range", lo, hi, r)
		}
	}
}
