package literal

import "strings"

// numLex is a numeric lexeme split into its syntactic parts. Digit
// strings are stored with '_' separators already removed; the suffix is
// whatever trailed the last digit, unvalidated.
type numLex struct {
	base   uint64
	digits string // integer part
	frac   string // fractional part, meaningful only with hasDot
	exp    string // exponent digits with optional sign, meaningful only with hasExp
	suffix string
	hasDot bool
	hasExp bool
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHexLetter(b byte) bool {
	return (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func digitVal(b byte) (uint64, bool) {
	switch {
	case b >= '0' && b <= '9':
		return uint64(b - '0'), true
	case b >= 'a' && b <= 'f':
		return uint64(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return uint64(b-'A') + 10, true
	}
	return 0, false
}

// scanNumber splits a numeric lexeme into radix, digit bodies, and
// suffix. ok is false if the lexeme does not start with a digit, the
// digit body is empty, a decimal digit falls outside the radix, or an
// exponent marker has no digits after it.
//
// The fractional part and exponent are only recognized at radix 10;
// hex digits keep 'e'/'E' for themselves.
func scanNumber(s string) (numLex, bool) {
	nl := numLex{base: 10}
	if s == "" || !isDec(s[0]) {
		return numLex{}, false
	}
	i := 0
	if s[0] == '0' && len(s) > 1 {
		switch s[1] {
		case 'x', 'X':
			nl.base = 16
			i = 2
		case 'o', 'O':
			nl.base = 8
			i = 2
		case 'b', 'B':
			nl.base = 2
			i = 2
		}
	}

	var digits strings.Builder
body:
	for i < len(s) {
		b := s[i]
		switch {
		case b == '_':
		case isDec(b):
			if uint64(b-'0') >= nl.base {
				return numLex{}, false
			}
			digits.WriteByte(b)
		case nl.base == 16 && isHexLetter(b):
			digits.WriteByte(b)
		default:
			break body
		}
		i++
	}
	nl.digits = digits.String()
	if nl.digits == "" {
		return numLex{}, false
	}

	if nl.base == 10 && i < len(s) && s[i] == '.' {
		nl.hasDot = true
		i++
		var frac strings.Builder
		for i < len(s) && (isDec(s[i]) || s[i] == '_') {
			if s[i] != '_' {
				frac.WriteByte(s[i])
			}
			i++
		}
		nl.frac = frac.String()
	}
	if nl.base == 10 && i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		nl.hasExp = true
		i++
		var exp strings.Builder
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			exp.WriteByte(s[i])
			i++
		}
		seen := false
		for i < len(s) && (isDec(s[i]) || s[i] == '_') {
			if s[i] != '_' {
				exp.WriteByte(s[i])
				seen = true
			}
			i++
		}
		if !seen {
			return numLex{}, false
		}
		nl.exp = exp.String()
	}

	nl.suffix = s[i:]
	return nl, true
}
