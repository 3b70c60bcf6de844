package literal

import (
	"strings"

	"litval/internal/token"
)

// Classify infers the literal kind from the lexeme's own prefix, for
// hosts that do not pre-classify. It is a dispatch hint, not
// validation: the decoders re-check everything themselves.
func Classify(lexeme string) token.Kind {
	switch {
	case lexeme == "":
		return token.Invalid
	case strings.HasPrefix(lexeme, "//"):
		return token.LineComment
	case strings.HasPrefix(lexeme, "/*"):
		return token.BlockComment
	case lexeme[0] == '"', strings.HasPrefix(lexeme, `r"`), strings.HasPrefix(lexeme, "r#"):
		return token.String
	case strings.HasPrefix(lexeme, `b"`), strings.HasPrefix(lexeme, "br"):
		return token.ByteString
	case strings.HasPrefix(lexeme, "b'"):
		return token.Byte
	case lexeme[0] == '\'':
		return token.Char
	case isDec(lexeme[0]):
		return classifyNumber(lexeme)
	}
	return token.Invalid
}

func classifyNumber(lexeme string) token.Kind {
	nl, ok := scanNumber(lexeme)
	if !ok {
		return token.Invalid
	}
	if nl.hasDot || nl.hasExp {
		return token.Float
	}
	if ft, ok := ParseFloatType(nl.suffix); ok && ft != FloatNone {
		return token.Float
	}
	if _, ok := ParseIntType(nl.suffix); ok {
		return token.Int
	}
	return token.Invalid
}
