// Package litfmt renders decode results in pretty, JSON, and msgpack
// formats. It owns the output shape; decoding itself lives in
// internal/literal and internal/driver.
package litfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"
)

// Entry is the decode outcome for one lexeme.
type Entry struct {
	Line   uint32 `json:"line" msgpack:"line"`
	Lexeme string `json:"lexeme" msgpack:"lexeme"`
	Kind   string `json:"kind" msgpack:"kind"`
	Value  string `json:"value,omitempty" msgpack:"value"`
	Type   string `json:"type,omitempty" msgpack:"type"`
	Error  string `json:"error,omitempty" msgpack:"error"`
}

// PrettyOpts controls the human-readable format.
type PrettyOpts struct {
	Color bool
}

var (
	kindColor = color.New(color.FgCyan)
	typeColor = color.New(color.FgGreen)
	errColor  = color.New(color.FgRed, color.Bold)
)

// FormatPretty writes entries in a human-readable aligned format.
func FormatPretty(w io.Writer, entries []Entry, opts PrettyOpts) error {
	for _, e := range entries {
		kind := e.Kind
		if opts.Color {
			kind = kindColor.Sprint(kind)
		}
		if _, err := fmt.Fprintf(w, "%4d: %-12s %q", e.Line, kind, e.Lexeme); err != nil {
			return err
		}
		switch {
		case e.Error != "":
			msg := e.Error
			if opts.Color {
				msg = errColor.Sprint(msg)
			}
			fmt.Fprintf(w, " !! %s", msg)
		default:
			fmt.Fprintf(w, " => %s", e.Value)
			if e.Type != "" {
				typ := e.Type
				if opts.Color {
					typ = typeColor.Sprint(typ)
				}
				fmt.Fprintf(w, " : %s", typ)
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}

// FormatJSON writes entries as indented JSON.
func FormatJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// FormatMsgpack writes entries as a single msgpack-encoded array.
func FormatMsgpack(w io.Writer, entries []Entry) error {
	return msgpack.NewEncoder(w).Encode(entries)
}
