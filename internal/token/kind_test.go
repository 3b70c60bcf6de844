package token

import "testing"

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Invalid, "Invalid"},
		{Int, "Int"},
		{Float, "Float"},
		{String, "String"},
		{Char, "Char"},
		{Byte, "Byte"},
		{ByteString, "ByteString"},
		{LineComment, "LineComment"},
		{BlockComment, "BlockComment"},
		{Kind(200), "Invalid"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKind_Predicates(t *testing.T) {
	for _, k := range []Kind{Int, Float} {
		if !k.IsNumeric() || k.IsQuoted() || k.IsComment() {
			t.Errorf("%v: expected numeric only", k)
		}
	}
	for _, k := range []Kind{String, Char, Byte, ByteString} {
		if !k.IsQuoted() || k.IsNumeric() || k.IsComment() {
			t.Errorf("%v: expected quoted only", k)
		}
	}
	for _, k := range []Kind{LineComment, BlockComment} {
		if !k.IsComment() || k.IsNumeric() || k.IsQuoted() {
			t.Errorf("%v: expected comment only", k)
		}
	}
	if Invalid.IsNumeric() || Invalid.IsQuoted() || Invalid.IsComment() {
		t.Error("Invalid must satisfy no predicate")
	}
}

func TestToken_Lexeme(t *testing.T) {
	tok := Token{Kind: Int, Text: "42u8"}
	if tok.Lexeme() != "42u8" {
		t.Fatalf("Lexeme() = %q", tok.Lexeme())
	}
	var _ Source = tok
}
