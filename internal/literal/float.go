package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FloatValue is a decoded float literal. Val holds the nearest IEEE-754
// value at the decoded width; for F32 it is the float32 result widened
// back to float64, so round-tripping through float32 is lossless.
type FloatValue struct {
	Val  float64
	Type FloatType
}

// Float32 returns the value at 32-bit width.
func (v FloatValue) Float32() float32 { return float32(v.Val) }

func (v FloatValue) String() string {
	if v.Type == F32 {
		return strconv.FormatFloat(v.Val, 'g', -1, 32)
	}
	return strconv.FormatFloat(v.Val, 'g', -1, 64)
}

// decodeFloat interprets a lexeme as a float literal. A bare
// integer-looking lexeme without a float suffix is not a float, and
// only radix 10 is a supported float form.
func decodeFloat(s string, opts Options) (FloatValue, error) {
	nl, ok := scanNumber(s)
	if !ok {
		return FloatValue{}, fmt.Errorf("%w: %q is not a numeric literal", ErrMismatch, s)
	}
	if nl.base != 10 {
		return FloatValue{}, fmt.Errorf("%w: float literals are decimal only", ErrMismatch)
	}
	typ, ok := ParseFloatType(nl.suffix)
	if !ok {
		return FloatValue{}, fmt.Errorf("%w: unknown float suffix %q", ErrMismatch, nl.suffix)
	}
	if !nl.hasDot && !nl.hasExp && typ == FloatNone {
		return FloatValue{}, fmt.Errorf("%w: %q is an integer literal", ErrMismatch, s)
	}
	if typ == FloatNone {
		typ = opts.DefaultFloat
	}

	var text strings.Builder
	text.WriteString(nl.digits)
	if nl.hasDot {
		text.WriteByte('.')
		text.WriteString(nl.frac)
	}
	if nl.hasExp {
		text.WriteByte('e')
		text.WriteString(nl.exp)
	}

	val, err := strconv.ParseFloat(text.String(), int(typ.Bits()))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return FloatValue{}, fmt.Errorf("%w: %q: %v", ErrMismatch, s, err)
	}
	// ErrRange keeps the saturated ±Inf/0 result, like the source language.
	return FloatValue{Val: val, Type: typ}, nil
}
