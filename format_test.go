package bigfloat

import (
	"strings"
	"testing"
)

func TestToHexStringVisibleOnly(t *testing.T) {
	x := NewFromInt64(255) // 0xff
	s := x.ToHexString(false)
	if !strings.HasPrefix(s, "ff") {
		t.Fatalf("ToHexString(255) = %q, want prefix %q", s, "ff")
	}
}

func TestToBinaryStringVisibleOnly(t *testing.T) {
	x := NewFromInt64(5)
	s := x.ToBinaryString(false)
	if !strings.HasPrefix(s, "101") {
		t.Fatalf("ToBinaryString(5) = %q, want prefix %q", s, "101")
	}
}

func TestRadixStringNegativeSign(t *testing.T) {
	x := NewFromInt64(-5)
	s := x.ToHexString(false)
	if !strings.HasPrefix(s, "-") {
		t.Fatalf("ToHexString(-5) = %q, want a leading '-'", s)
	}
}

func TestToHexStringZero(t *testing.T) {
	if got := Zero().ToHexString(false); got != "0p+0" {
		t.Fatalf("ToHexString(0) = %q, want %q", got, "0p+0")
	}
}

func TestToScientificStringSeparatesGuardBits(t *testing.T) {
	s := NewFromInt64(5).ToScientificString()
	if !strings.Contains(s, "|") {
		t.Fatalf("ToScientificString(%v) = %q, want a guard-region separator", 5, s)
	}
}

func TestToScientificStringZero(t *testing.T) {
	if got := Zero().ToScientificString(); got != "0" {
		t.Fatalf("ToScientificString(0) = %q, want %q", got, "0")
	}
}

func TestStringDelegatesToScientific(t *testing.T) {
	x := NewFromInt64(42)
	if x.String() != x.ToScientificString() {
		t.Fatal("String() should delegate to ToScientificString()")
	}
}
