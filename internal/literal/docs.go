package literal

import (
	"fmt"
	"strings"
)

// docBody strips a doc comment's delimiters and one optional leading
// space. Bodies are literal text: no escape processing happens in
// comments.
func docBody(s, line, block string) (string, error) {
	switch {
	case strings.HasPrefix(s, line):
		return strings.TrimPrefix(s[len(line):], " "), nil
	case strings.HasPrefix(s, block):
		body := s[len(block):]
		if len(body) < 2 || !strings.HasSuffix(body, "*/") {
			return "", fmt.Errorf("%w: unterminated block doc comment", ErrMismatch)
		}
		return strings.TrimPrefix(body[:len(body)-2], " "), nil
	}
	return "", fmt.Errorf("%w: comment is not %s-style", ErrMismatch, line)
}

// decodeOuterDoc interprets a lexeme as an outer doc comment (///, /**).
func decodeOuterDoc(s string) (string, error) {
	return docBody(s, "///", "/**")
}

// decodeInnerDoc interprets a lexeme as an inner doc comment (//!, /*!).
func decodeInnerDoc(s string) (string, error) {
	return docBody(s, "//!", "/*!")
}
