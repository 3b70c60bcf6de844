package literal_test

import (
	"testing"

	"litval/internal/literal"
	"litval/internal/token"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		lexeme string
		want   token.Kind
	}{
		{"5", token.Int},
		{"0xFF", token.Int},
		{"1_000u32", token.Int},
		{"5.5", token.Float},
		{"1e10", token.Float},
		{"1f32", token.Float},
		{"0x1f32", token.Int},
		{`"hi"`, token.String},
		{`r"hi"`, token.String},
		{`r#"hi"#`, token.String},
		{`b"hi"`, token.ByteString},
		{`br#"hi"#`, token.ByteString},
		{"b'a'", token.Byte},
		{"'a'", token.Char},
		{"// plain", token.LineComment},
		{"/// doc", token.LineComment},
		{"//! doc", token.LineComment},
		{"/* plain */", token.BlockComment},
		{"/** doc */", token.BlockComment},
		{"", token.Invalid},
		{"foo", token.Invalid},
		{"5q", token.Invalid},
		{"0b102", token.Invalid},
		{"1e", token.Invalid},
	}
	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			if got := literal.Classify(tt.lexeme); got != tt.want {
				t.Fatalf("Classify(%q) = %v, want %v", tt.lexeme, got, tt.want)
			}
		})
	}
}
