package literal

import "testing"

func TestScanNumber(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		ok     bool
		base   uint64
		digits string
		frac   string
		exp    string
		suffix string
		hasDot bool
		hasExp bool
	}{
		{name: "plain decimal", input: "123", ok: true, base: 10, digits: "123"},
		{name: "zero", input: "0", ok: true, base: 10, digits: "0"},
		{name: "hex", input: "0xFF", ok: true, base: 16, digits: "FF"},
		{name: "hex lowercase", input: "0x7f", ok: true, base: 16, digits: "7f"},
		{name: "octal", input: "0o17", ok: true, base: 8, digits: "17"},
		{name: "binary", input: "0b1010", ok: true, base: 2, digits: "1010"},
		{name: "separators stripped", input: "1_000", ok: true, base: 10, digits: "1000"},
		{name: "separators everywhere", input: "0x__7___f_", ok: true, base: 16, digits: "7f"},
		{name: "suffix", input: "5u32", ok: true, base: 10, digits: "5", suffix: "u32"},
		{name: "hex suffix", input: "0x7Fu8", ok: true, base: 16, digits: "7F", suffix: "u8"},
		{name: "float suffix", input: "1f32", ok: true, base: 10, digits: "1", suffix: "f32"},
		{name: "fraction", input: "1.5", ok: true, base: 10, digits: "1", frac: "5", hasDot: true},
		{name: "trailing dot", input: "1.", ok: true, base: 10, digits: "1", hasDot: true},
		{name: "exponent", input: "1e3", ok: true, base: 10, digits: "1", exp: "3", hasExp: true},
		{name: "signed exponent", input: "1.03e+23", ok: true, base: 10, digits: "1", frac: "03", exp: "+23", hasDot: true, hasExp: true},
		{name: "exponent separators", input: "1e1_0", ok: true, base: 10, digits: "1", exp: "10", hasExp: true},
		{name: "full float", input: "1.5e2f64", ok: true, base: 10, digits: "1", frac: "5", exp: "2", suffix: "f64", hasDot: true, hasExp: true},
		{name: "empty", input: "", ok: false},
		{name: "no leading digit", input: ".5", ok: false},
		{name: "empty hex body", input: "0x", ok: false},
		{name: "digit outside binary radix", input: "0b102", ok: false},
		{name: "digit outside octal radix", input: "0o19", ok: false},
		{name: "exponent without digits", input: "1e", ok: false},
		{name: "exponent sign only", input: "1e+", ok: false},
		{name: "hex keeps e as digit", input: "0x1e2", ok: true, base: 16, digits: "1e2"},
		{name: "hex dot ends body", input: "0x1.5", ok: true, base: 16, digits: "1", suffix: ".5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nl, ok := scanNumber(tt.input)
			if ok != tt.ok {
				t.Fatalf("scanNumber(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if !ok {
				return
			}
			if nl.base != tt.base || nl.digits != tt.digits || nl.frac != tt.frac ||
				nl.exp != tt.exp || nl.suffix != tt.suffix ||
				nl.hasDot != tt.hasDot || nl.hasExp != tt.hasExp {
				t.Fatalf("scanNumber(%q) = %+v, want base=%d digits=%q frac=%q exp=%q suffix=%q dot=%v exp?=%v",
					tt.input, nl, tt.base, tt.digits, tt.frac, tt.exp, tt.suffix, tt.hasDot, tt.hasExp)
			}
		})
	}
}

func TestFitsInt(t *testing.T) {
	tests := []struct {
		name string
		mag  Uint128
		typ  IntType
		neg  bool
		want bool
	}{
		{name: "u8 max", mag: Uint128{Lo: 255}, typ: U8, want: true},
		{name: "u8 overflow", mag: Uint128{Lo: 256}, typ: U8, want: false},
		{name: "i8 max", mag: Uint128{Lo: 127}, typ: I8, want: true},
		{name: "i8 positive overflow", mag: Uint128{Lo: 128}, typ: I8, want: false},
		{name: "i8 min", mag: Uint128{Lo: 128}, typ: I8, neg: true, want: true},
		{name: "i8 negative overflow", mag: Uint128{Lo: 129}, typ: I8, neg: true, want: false},
		{name: "u64 max", mag: Uint128{Lo: ^uint64(0)}, typ: U64, want: true},
		{name: "u64 overflow", mag: Uint128{Hi: 1}, typ: U64, want: false},
		{name: "i64 min", mag: Uint128{Lo: 1 << 63}, typ: I64, neg: true, want: true},
		{name: "u128 max", mag: Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}, typ: U128, want: true},
		{name: "i128 positive max", mag: Uint128{Hi: 1<<63 - 1, Lo: ^uint64(0)}, typ: I128, want: true},
		{name: "i128 positive overflow", mag: Uint128{Hi: 1 << 63}, typ: I128, want: false},
		{name: "i128 min", mag: Uint128{Hi: 1 << 63}, typ: I128, neg: true, want: true},
		{name: "unsigned rejects negative", mag: Uint128{Lo: 1}, typ: U32, neg: true, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fitsInt(tt.mag, tt.typ, tt.neg); got != tt.want {
				t.Fatalf("fitsInt(%v, %v, neg=%v) = %v, want %v", tt.mag, tt.typ, tt.neg, got, tt.want)
			}
		})
	}
}
