package literal

import "errors"

var (
	// ErrMismatch reports that the lexeme does not encode the requested
	// literal kind, or that its value is out of the representable range.
	ErrMismatch = errors.New("literal kind mismatch")
	// ErrMalformed reports committed escaped content with an invalid
	// escape sequence or Unicode scalar value.
	ErrMalformed = errors.New("malformed literal")
)

// Options configures a Decoder. The zero value is ready to use.
type Options struct {
	// Wide128 enables the 128-bit integer types. Off, lexemes suffixed
	// i128/u128 decode as a mismatch, never as an error.
	Wide128 bool
	// DefaultInt types a suffix-less integer literal. IntNone means
	// ISize: the real type is inferred from surrounding context in the
	// source language, which a lexeme-only decoder cannot see, so the
	// default is fixed and explicit.
	DefaultInt IntType
	// DefaultFloat types a suffix-less float literal. FloatNone means F64.
	DefaultFloat FloatType
}

// Decoder decodes literal lexemes under a fixed set of options.
type Decoder struct {
	opts Options
}

// New creates a Decoder, resolving option defaults.
func New(opts Options) *Decoder {
	if opts.DefaultInt == IntNone {
		opts.DefaultInt = ISize
	}
	if opts.DefaultFloat == FloatNone {
		opts.DefaultFloat = F64
	}
	return &Decoder{opts: opts}
}

// Int decodes an integer literal (10, 0xFF, 0o17, 0b1010, 1_000u8).
func (d *Decoder) Int(lexeme string) (IntValue, error) {
	return decodeInt(lexeme, d.opts)
}

// Float decodes a float literal (1.5, 1e3, 1.5e2f64, 2f32).
func (d *Decoder) Float(lexeme string) (FloatValue, error) {
	return decodeFloat(lexeme, d.opts)
}

// String decodes a string literal, plain or raw.
func (d *Decoder) String(lexeme string) (string, error) {
	return decodeString(lexeme)
}

// Char decodes a char literal to its Unicode scalar value.
func (d *Decoder) Char(lexeme string) (rune, error) {
	return decodeChar(lexeme)
}

// Byte decodes a byte literal (b'a', b'\xFF').
func (d *Decoder) Byte(lexeme string) (byte, error) {
	return decodeByte(lexeme)
}

// ByteString decodes a byte-string literal, plain or raw.
func (d *Decoder) ByteString(lexeme string) ([]byte, error) {
	return decodeByteString(lexeme)
}

// InnerDoc decodes an inner doc comment (//!, /*!).
func (d *Decoder) InnerDoc(lexeme string) (string, error) {
	return decodeInnerDoc(lexeme)
}

// OuterDoc decodes an outer doc comment (///, /**).
func (d *Decoder) OuterDoc(lexeme string) (string, error) {
	return decodeOuterDoc(lexeme)
}
