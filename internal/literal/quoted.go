package literal

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// rawContent strips r#*"..."#* delimiters. The leading 'r' (or 'br')
// must already be consumed. Raw content is verbatim: no escapes, no
// CRLF normalization.
func rawContent(s string) (string, error) {
	hashes := 0
	for hashes < len(s) && s[hashes] == '#' {
		hashes++
	}
	if hashes >= len(s) || s[hashes] != '"' {
		return "", fmt.Errorf("%w: malformed raw literal delimiter", ErrMismatch)
	}
	body := s[hashes+1:]
	tail := `"` + strings.Repeat("#", hashes)
	if len(body) < len(tail) || !strings.HasSuffix(body, tail) {
		return "", fmt.Errorf("%w: unbalanced raw literal delimiter", ErrMismatch)
	}
	return body[:len(body)-len(tail)], nil
}

// decodeString interprets a lexeme as a string literal, plain or raw.
func decodeString(s string) (string, error) {
	switch {
	case strings.HasPrefix(s, `"`):
		if len(s) < 2 || !strings.HasSuffix(s, `"`) {
			return "", fmt.Errorf("%w: unterminated string literal", ErrMismatch)
		}
		return unescapeString(s[1 : len(s)-1])
	case strings.HasPrefix(s, "r"):
		return rawContent(s[1:])
	}
	return "", fmt.Errorf("%w: not a string literal", ErrMismatch)
}

// decodeByteString interprets a lexeme as a byte-string literal.
func decodeByteString(s string) ([]byte, error) {
	switch {
	case strings.HasPrefix(s, `b"`):
		if len(s) < 3 || !strings.HasSuffix(s, `"`) {
			return nil, fmt.Errorf("%w: unterminated byte-string literal", ErrMismatch)
		}
		return unescapeBytes(s[2 : len(s)-1])
	case strings.HasPrefix(s, "br"):
		content, err := rawContent(s[2:])
		if err != nil {
			return nil, err
		}
		return []byte(content), nil
	}
	return nil, fmt.Errorf("%w: not a byte-string literal", ErrMismatch)
}

// decodeChar interprets a lexeme as a char literal. The content must
// resolve to exactly one Unicode scalar value.
func decodeChar(s string) (rune, error) {
	if len(s) < 3 || s[0] != '\'' || s[len(s)-1] != '\'' {
		return 0, fmt.Errorf("%w: not a char literal", ErrMismatch)
	}
	content := s[1 : len(s)-1]
	if content[0] == '\\' {
		ch, rest, produced, err := resolveEscape(content[1:], escRules{})
		if err != nil {
			return 0, err
		}
		if !produced || rest != "" {
			return 0, fmt.Errorf("%w: char literal must hold one scalar value", ErrMismatch)
		}
		return ch, nil
	}
	r, sz := utf8.DecodeRuneInString(content)
	if sz != len(content) || r == utf8.RuneError && sz == 1 {
		return 0, fmt.Errorf("%w: char literal must hold one scalar value", ErrMismatch)
	}
	return r, nil
}

// decodeByte interprets a lexeme as a byte literal. The content must
// resolve to exactly one byte.
func decodeByte(s string) (byte, error) {
	if len(s) < 4 || s[0] != 'b' || s[1] != '\'' || s[len(s)-1] != '\'' {
		return 0, fmt.Errorf("%w: not a byte literal", ErrMismatch)
	}
	content := s[2 : len(s)-1]
	if content[0] == '\\' {
		ch, rest, produced, err := resolveEscape(content[1:], escRules{bytes: true})
		if err != nil {
			return 0, err
		}
		if !produced || rest != "" {
			return 0, fmt.Errorf("%w: byte literal must hold one byte", ErrMismatch)
		}
		return byte(ch), nil
	}
	r, sz := utf8.DecodeRuneInString(content)
	if sz != len(content) || r == utf8.RuneError && sz == 1 {
		return 0, fmt.Errorf("%w: byte literal must hold one byte", ErrMismatch)
	}
	if r >= 0x80 {
		return 0, fmt.Errorf("%w: non-ASCII char %q in byte literal", ErrMalformed, r)
	}
	return byte(r), nil
}
