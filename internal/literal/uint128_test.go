package literal

import (
	"math"
	"testing"
)

func TestUint128_MulAdd(t *testing.T) {
	acc := Uint128{}
	for _, d := range []uint64{1, 2, 3} {
		var ok bool
		acc, ok = acc.MulAdd(10, d)
		if !ok {
			t.Fatal("unexpected overflow")
		}
	}
	if acc.Hi != 0 || acc.Lo != 123 {
		t.Fatalf("got %v, want 123", acc)
	}

	// Crossing 64 bits is fine.
	acc = Uint128{Lo: math.MaxUint64}
	acc, ok := acc.MulAdd(16, 15)
	if !ok {
		t.Fatal("unexpected overflow crossing 64 bits")
	}
	if acc.Hi != 15 || acc.Lo != math.MaxUint64 {
		t.Fatalf("got {%d %d}, want {15 %d}", acc.Hi, acc.Lo, uint64(math.MaxUint64))
	}

	// Crossing 128 bits is not.
	max := Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}
	if _, ok := max.MulAdd(10, 0); ok {
		t.Fatal("expected multiply overflow")
	}
	if _, ok := max.MulAdd(1, 1); ok {
		t.Fatal("expected add overflow")
	}
}

func TestUint128_FitsBits(t *testing.T) {
	tests := []struct {
		u    Uint128
		n    uint
		want bool
	}{
		{Uint128{Lo: 255}, 8, true},
		{Uint128{Lo: 256}, 8, false},
		{Uint128{Lo: math.MaxUint64}, 64, true},
		{Uint128{Hi: 1}, 64, false},
		{Uint128{Hi: 1}, 65, true},
		{Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}, 128, true},
		{Uint128{Hi: math.MaxUint64}, 127, false},
	}
	for _, tt := range tests {
		if got := tt.u.FitsBits(tt.n); got != tt.want {
			t.Errorf("FitsBits(%v, %d) = %v, want %v", tt.u, tt.n, got, tt.want)
		}
	}
}

func TestUint128_Cmp(t *testing.T) {
	a := Uint128{Hi: 1, Lo: 0}
	b := Uint128{Hi: 0, Lo: math.MaxUint64}
	if a.Cmp(b) != 1 || b.Cmp(a) != -1 || a.Cmp(a) != 0 {
		t.Fatal("Cmp ordering broken across the 64-bit boundary")
	}
	c := Uint128{Hi: 1, Lo: 5}
	if a.Cmp(c) != -1 || c.Cmp(a) != 1 {
		t.Fatal("Cmp ordering broken within equal Hi")
	}
}

func TestUint128_String(t *testing.T) {
	tests := []struct {
		u    Uint128
		want string
	}{
		{Uint128{}, "0"},
		{Uint128{Lo: 12345}, "12345"},
		{Uint128{Hi: 1}, "18446744073709551616"},
		{Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}, "340282366920938463463374607431768211455"},
		{Uint128{Hi: 0x7FFFFFFFFFFFFFFF, Lo: math.MaxUint64}, "170141183460469231731687303715884105727"},
	}
	for _, tt := range tests {
		if got := tt.u.String(); got != tt.want {
			t.Errorf("String(%+v) = %q, want %q", tt.u, got, tt.want)
		}
	}
}

func TestPow2(t *testing.T) {
	if p := pow2(7); p.Hi != 0 || p.Lo != 128 {
		t.Fatalf("pow2(7) = %v", p)
	}
	if p := pow2(64); p.Hi != 1 || p.Lo != 0 {
		t.Fatalf("pow2(64) = %v", p)
	}
	if p := pow2(127); p.Hi != 1<<63 || p.Lo != 0 {
		t.Fatalf("pow2(127) = %v", p)
	}
}
