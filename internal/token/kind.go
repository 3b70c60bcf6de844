package token

// Kind represents the category of a literal token.
type Kind uint8

const (
	// Invalid indicates a lexeme that matches no supported literal form.
	Invalid Kind = iota
	// Int represents an integer literal (10, 0xFF, 1_000u8).
	Int
	// Float represents a floating-point literal (1.5, 1e3, 2f32).
	Float
	// String represents a string literal, plain or raw ("...", r#"..."#).
	String
	// Char represents a character literal ('a', '\u{1F600}').
	Char
	// Byte represents a byte literal (b'a').
	Byte
	// ByteString represents a byte-string literal, plain or raw (b"...", br"...").
	ByteString
	// LineComment represents a // comment, doc or plain.
	LineComment
	// BlockComment represents a /* */ comment, doc or plain.
	BlockComment
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case Char:
		return "Char"
	case Byte:
		return "Byte"
	case ByteString:
		return "ByteString"
	case LineComment:
		return "LineComment"
	case BlockComment:
		return "BlockComment"
	default:
		return "Invalid"
	}
}

// IsNumeric reports whether the kind is an integer or float literal.
func (k Kind) IsNumeric() bool {
	return k == Int || k == Float
}

// IsQuoted reports whether the kind is a delimiter-quoted literal.
func (k Kind) IsQuoted() bool {
	switch k {
	case String, Char, Byte, ByteString:
		return true
	default:
		return false
	}
}

// IsComment reports whether the kind is a line or block comment.
func (k Kind) IsComment() bool {
	return k == LineComment || k == BlockComment
}
