package litfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func sampleEntries() []Entry {
	return []Entry{
		{Line: 1, Lexeme: "42u8", Kind: "int", Value: "42", Type: "u8"},
		{Line: 2, Lexeme: `"hi"`, Kind: "string", Value: `"hi"`},
		{Line: 3, Lexeme: "0b102", Kind: "int", Error: "literal kind mismatch"},
	}
}

func TestFormatPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatPretty(&buf, sampleEntries(), PrettyOpts{}); err != nil {
		t.Fatalf("FormatPretty failed: %v", err)
	}
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "=> 42 : u8") {
		t.Errorf("int line missing value and type: %q", lines[0])
	}
	if !strings.Contains(lines[1], `=> "hi"`) || strings.Contains(lines[1], " : ") {
		t.Errorf("string line should carry a value and no type: %q", lines[1])
	}
	if !strings.Contains(lines[2], "!! literal kind mismatch") {
		t.Errorf("error line missing marker: %q", lines[2])
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("colorless output should carry no ANSI escapes")
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	entries := sampleEntries()
	if err := FormatJSON(&buf, entries); err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}

	var decoded []Entry
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(decoded), len(entries))
	}
	if decoded[0] != entries[0] {
		t.Fatalf("round trip lost data: %+v", decoded[0])
	}
	// Empty optional fields stay out of the wire form.
	if strings.Contains(buf.String(), `"error": ""`) {
		t.Error("empty error field should be omitted")
	}
}

func TestFormatMsgpack(t *testing.T) {
	var buf bytes.Buffer
	entries := sampleEntries()
	if err := FormatMsgpack(&buf, entries); err != nil {
		t.Fatalf("FormatMsgpack failed: %v", err)
	}

	var decoded []Entry
	if err := msgpack.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("output is not valid msgpack: %v", err)
	}
	if len(decoded) != len(entries) || decoded[2].Error != entries[2].Error {
		t.Fatalf("round trip lost data: %+v", decoded)
	}
}
