package literal

import (
	"math/bits"
	"strconv"
)

// Uint128 is a fixed-width 128-bit unsigned magnitude.
//
// Canonical zero is the zero value. Unlike an arbitrary-precision
// integer, overflow is part of the contract: MulAdd reports it and the
// integer decoder turns it into a mismatch.
type Uint128 struct {
	Hi, Lo uint64
}

// IsZero reports whether the magnitude is zero.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// Cmp compares two magnitudes.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi != v.Hi:
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	case u.Lo == v.Lo:
		return 0
	case u.Lo < v.Lo:
		return -1
	}
	return 1
}

// MulAdd returns u*m + d, reporting false on overflow past 128 bits.
func (u Uint128) MulAdd(m, d uint64) (Uint128, bool) {
	carryHi, lo := bits.Mul64(u.Lo, m)
	overflow, hi := bits.Mul64(u.Hi, m)
	if overflow != 0 {
		return Uint128{}, false
	}
	hi, carry := bits.Add64(hi, carryHi, 0)
	if carry != 0 {
		return Uint128{}, false
	}
	lo, carry = bits.Add64(lo, d, 0)
	hi, carry = bits.Add64(hi, 0, carry)
	if carry != 0 {
		return Uint128{}, false
	}
	return Uint128{Hi: hi, Lo: lo}, true
}

// FitsBits reports whether the magnitude is representable in n bits.
func (u Uint128) FitsBits(n uint) bool {
	switch {
	case n >= 128:
		return true
	case n >= 64:
		return u.Hi>>(n-64) == 0
	default:
		return u.Hi == 0 && u.Lo>>n == 0
	}
}

// pow2 returns 2^n as a magnitude. n must be below 128.
func pow2(n uint) Uint128 {
	if n >= 64 {
		return Uint128{Hi: 1 << (n - 64)}
	}
	return Uint128{Lo: 1 << n}
}

// Uint64 converts the magnitude to uint64 if it fits.
func (u Uint128) Uint64() (uint64, bool) {
	if u.Hi != 0 {
		return 0, false
	}
	return u.Lo, true
}

func (u Uint128) divmod10() (Uint128, uint64) {
	qHi := u.Hi / 10
	rem := u.Hi % 10
	qLo, rem := bits.Div64(rem, u.Lo, 10)
	return Uint128{Hi: qHi, Lo: qLo}, rem
}

// String renders the magnitude in decimal.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 10)
	}
	// 2^128-1 has 39 decimal digits.
	var buf [39]byte
	i := len(buf)
	for !u.IsZero() {
		var d uint64
		u, d = u.divmod10()
		i--
		buf[i] = byte('0' + d)
	}
	return string(buf[i:])
}
