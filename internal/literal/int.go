package literal

import (
	"fmt"

	"fortio.org/safecast"
)

// IntValue is a decoded integer literal: an unsigned 128-bit magnitude
// plus the concrete type it was decoded at. Neg is never set by the
// decoder itself (a literal lexeme carries no sign); callers that fold
// a leading unary minus go through Negated.
type IntValue struct {
	Magnitude Uint128
	Type      IntType
	Neg       bool
}

// Uint64 converts the value to uint64 when non-negative and in range.
func (v IntValue) Uint64() (uint64, bool) {
	if v.Neg && !v.Magnitude.IsZero() {
		return 0, false
	}
	return v.Magnitude.Uint64()
}

// Int64 converts the value to int64 when in range.
func (v IntValue) Int64() (int64, bool) {
	lo, ok := v.Magnitude.Uint64()
	if !ok {
		return 0, false
	}
	if v.Neg {
		if lo > 1<<63 {
			return 0, false
		}
		// -lo computed in uint64 space so that -2^63 survives.
		return -int64(lo), true //nolint:gosec // G115: wraps exactly for |minInt64|.
	}
	n, err := safecast.Conv[int64](lo)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Negated applies a leading unary minus, re-checking the signed range.
// Unsigned types reject negation outright.
func (v IntValue) Negated() (IntValue, bool) {
	if !v.Type.Signed() {
		return IntValue{}, false
	}
	out := v
	out.Neg = !v.Neg
	if !fitsInt(out.Magnitude, out.Type, out.Neg) {
		return IntValue{}, false
	}
	return out, true
}

func (v IntValue) String() string {
	if v.Neg && !v.Magnitude.IsZero() {
		return "-" + v.Magnitude.String()
	}
	return v.Magnitude.String()
}

// fitsInt reports whether a magnitude with the given sign is
// representable at the type's width.
func fitsInt(mag Uint128, t IntType, neg bool) bool {
	bits := t.Bits()
	if !t.Signed() {
		return !neg && mag.FitsBits(bits)
	}
	if neg {
		// |min| is one past max: 2^(bits-1).
		return mag.Cmp(pow2(bits-1)) <= 0
	}
	return mag.FitsBits(bits - 1)
}

// decodeInt interprets a lexeme as an integer literal.
func decodeInt(s string, opts Options) (IntValue, error) {
	nl, ok := scanNumber(s)
	if !ok {
		return IntValue{}, fmt.Errorf("%w: %q is not a numeric literal", ErrMismatch, s)
	}
	if nl.hasDot || nl.hasExp {
		return IntValue{}, fmt.Errorf("%w: %q is a float literal", ErrMismatch, s)
	}
	typ, ok := ParseIntType(nl.suffix)
	if !ok {
		return IntValue{}, fmt.Errorf("%w: unknown integer suffix %q", ErrMismatch, nl.suffix)
	}
	if typ == IntNone {
		typ = opts.DefaultInt
	}
	if typ.Bits() == 128 && !opts.Wide128 {
		return IntValue{}, fmt.Errorf("%w: 128-bit literal types are disabled", ErrMismatch)
	}

	var mag Uint128
	for i := 0; i < len(nl.digits); i++ {
		d, _ := digitVal(nl.digits[i])
		mag, ok = mag.MulAdd(nl.base, d)
		if !ok {
			return IntValue{}, fmt.Errorf("%w: %q overflows 128 bits", ErrMismatch, s)
		}
	}
	if !fitsInt(mag, typ, false) {
		return IntValue{}, fmt.Errorf("%w: %q out of range for %s", ErrMismatch, s, typ)
	}
	return IntValue{Magnitude: mag, Type: typ}, nil
}
