package literal

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// escRules selects the escape dialect in effect.
type escRules struct {
	// bytes decodes to raw bytes: \xHH covers the full 0x00..0xFF range
	// and \u{...} is rejected. Off, \xHH is capped at ASCII and \u{...}
	// yields a Unicode scalar value.
	bytes bool
	// lineCont allows the backslash-newline continuation escape. Only
	// the multi-character forms (string, byte string) permit it.
	lineCont bool
}

// resolveEscape decodes one escape sequence. s starts just past the
// backslash. produced is false when the escape contributes nothing
// (line continuation). All failures here are hard errors: the content
// is committed to being escaped text and the escape is malformed.
func resolveEscape(s string, rules escRules) (ch rune, rest string, produced bool, err error) {
	if s == "" {
		return 0, "", false, fmt.Errorf("%w: lone backslash at end of literal", ErrMalformed)
	}
	switch b := s[0]; b {
	case 'n':
		return '\n', s[1:], true, nil
	case 'r':
		return '\r', s[1:], true, nil
	case 't':
		return '\t', s[1:], true, nil
	case '0':
		return 0, s[1:], true, nil
	case '\\':
		return '\\', s[1:], true, nil
	case '\'':
		return '\'', s[1:], true, nil
	case '"':
		return '"', s[1:], true, nil
	case 'x':
		return resolveHexEscape(s[1:], rules)
	case 'u':
		if rules.bytes {
			return 0, "", false, fmt.Errorf("%w: \\u escape in byte literal", ErrMalformed)
		}
		return resolveUnicodeEscape(s[1:])
	case '\n', '\r':
		if !rules.lineCont {
			return 0, "", false, fmt.Errorf("%w: line break after backslash", ErrMalformed)
		}
		// The continuation removes the break and all following
		// whitespace, splicing the next content directly.
		rest = s
		for rest != "" {
			r, sz := utf8.DecodeRuneInString(rest)
			if !unicode.IsSpace(r) {
				break
			}
			rest = rest[sz:]
		}
		return 0, rest, false, nil
	default:
		return 0, "", false, fmt.Errorf("%w: unknown escape \\%c", ErrMalformed, b)
	}
}

func resolveHexEscape(s string, rules escRules) (rune, string, bool, error) {
	if len(s) < 2 {
		return 0, "", false, fmt.Errorf("%w: truncated \\x escape", ErrMalformed)
	}
	hi, ok1 := digitVal(s[0])
	lo, ok2 := digitVal(s[1])
	if !ok1 || !ok2 {
		return 0, "", false, fmt.Errorf("%w: non-hex digit in \\x escape", ErrMalformed)
	}
	v := hi<<4 | lo
	if !rules.bytes && v > 0x7F {
		return 0, "", false, fmt.Errorf("%w: \\x%02X out of range in string literal", ErrMalformed, v)
	}
	return rune(v), s[2:], true, nil
}

func resolveUnicodeEscape(s string) (rune, string, bool, error) {
	if s == "" || s[0] != '{' {
		return 0, "", false, fmt.Errorf("%w: expected '{' after \\u", ErrMalformed)
	}
	s = s[1:]
	var code uint32
	digits := 0
	for digits < 6 && s != "" && s[0] != '}' {
		d, ok := digitVal(s[0])
		if !ok {
			return 0, "", false, fmt.Errorf("%w: non-hex digit in \\u escape", ErrMalformed)
		}
		code = code<<4 | uint32(d)
		digits++
		s = s[1:]
	}
	if digits == 0 || s == "" || s[0] != '}' {
		return 0, "", false, fmt.Errorf("%w: unterminated \\u escape", ErrMalformed)
	}
	s = s[1:]
	r := rune(code)
	if !utf8.ValidRune(r) {
		return 0, "", false, fmt.Errorf("%w: \\u{%X} is not a Unicode scalar value", ErrMalformed, code)
	}
	return r, s, true, nil
}

// unescapeString decodes the escaped content of a plain string literal.
// s is the content between the quotes; delimiter handling is the
// caller's job.
func unescapeString(s string) (string, error) {
	var out strings.Builder
	for s != "" {
		switch b := s[0]; b {
		case '\\':
			ch, rest, produced, err := resolveEscape(s[1:], escRules{lineCont: true})
			if err != nil {
				return "", err
			}
			s = rest
			if produced {
				out.WriteRune(ch)
			}
		case '\r':
			if len(s) < 2 || s[1] != '\n' {
				return "", fmt.Errorf("%w: bare CR in string literal", ErrMalformed)
			}
			out.WriteByte('\n')
			s = s[2:]
		default:
			r, sz := utf8.DecodeRuneInString(s)
			out.WriteRune(r)
			s = s[sz:]
		}
	}
	return out.String(), nil
}

// unescapeBytes decodes the escaped content of a byte-string literal.
// Raw content is restricted to ASCII; escaped \xHH may carry any byte.
func unescapeBytes(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for s != "" {
		switch b := s[0]; {
		case b == '\\':
			ch, rest, produced, err := resolveEscape(s[1:], escRules{bytes: true, lineCont: true})
			if err != nil {
				return nil, err
			}
			s = rest
			if produced {
				out = append(out, byte(ch))
			}
		case b == '\r':
			if len(s) < 2 || s[1] != '\n' {
				return nil, fmt.Errorf("%w: bare CR in byte-string literal", ErrMalformed)
			}
			out = append(out, '\n')
			s = s[2:]
		case b >= 0x80:
			return nil, fmt.Errorf("%w: non-ASCII byte 0x%02X in byte-string literal", ErrMalformed, b)
		default:
			out = append(out, b)
			s = s[1:]
		}
	}
	return out, nil
}
