// Package driver orchestrates batch decoding: it maps lexemes to the
// facade's decode operations and fans the work out across workers.
package driver

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"litval/internal/litfmt"
	"litval/internal/literal"
	"litval/internal/token"
)

// Op names one of the facade's decode operations, plus Auto for
// per-lexeme self-classification.
type Op uint8

const (
	Auto Op = iota
	Int
	Float
	Str
	Char
	Byte
	Bytes
	InnerDoc
	OuterDoc
)

// ParseOp maps a CLI spelling to an operation.
func ParseOp(s string) (Op, error) {
	switch s {
	case "auto":
		return Auto, nil
	case "int":
		return Int, nil
	case "float":
		return Float, nil
	case "string":
		return Str, nil
	case "char":
		return Char, nil
	case "byte":
		return Byte, nil
	case "byte-string":
		return Bytes, nil
	case "inner-doc":
		return InnerDoc, nil
	case "outer-doc":
		return OuterDoc, nil
	}
	return Auto, fmt.Errorf("unknown literal kind %q", s)
}

// Result holds decode outcomes in input order.
type Result struct {
	Path    string
	Entries []litfmt.Entry
	Errors  int
}

type item struct {
	line   uint32
	lexeme string
}

// DecodeLexemes decodes each lexeme independently. Entries keep input
// order; Line is the 1-based position in the argument list.
func DecodeLexemes(ctx context.Context, lexemes []string, op Op, opts literal.Options, workers int) (*Result, error) {
	items := make([]item, 0, len(lexemes))
	for i, lex := range lexemes {
		line, err := safecast.Conv[uint32](i + 1)
		if err != nil {
			return nil, fmt.Errorf("lexeme index overflow: %w", err)
		}
		items = append(items, item{line: line, lexeme: lex})
	}
	return decodeItems(ctx, items, op, opts, workers)
}

// DecodeSources decodes host-provided tokens through their Source view.
// Only the lexeme text is consulted; any pre-classified kind on the
// host side is ignored in favor of op.
func DecodeSources(ctx context.Context, srcs []token.Source, op Op, opts literal.Options, workers int) (*Result, error) {
	lexemes := make([]string, len(srcs))
	for i, src := range srcs {
		lexemes[i] = src.Lexeme()
	}
	return DecodeLexemes(ctx, lexemes, op, opts, workers)
}

// DecodeFile decodes a file of lexemes, one per line. Blank lines are
// skipped; Line reports the real file line number.
func DecodeFile(ctx context.Context, path string, op Op, opts literal.Options, workers int) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var items []item
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	n := 0
	for sc.Scan() {
		n++
		lex := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(lex) == "" {
			continue
		}
		line, err := safecast.Conv[uint32](n)
		if err != nil {
			return nil, fmt.Errorf("line number overflow in %s: %w", path, err)
		}
		items = append(items, item{line: line, lexeme: lex})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	res, err := decodeItems(ctx, items, op, opts, workers)
	if err != nil {
		return nil, err
	}
	res.Path = path
	return res, nil
}

// decodeItems fans the items out across workers. Each decode is a pure
// function of its lexeme, so slots are written without coordination.
func decodeItems(ctx context.Context, items []item, op Op, opts literal.Options, workers int) (*Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	dec := literal.New(opts)
	entries := make([]litfmt.Entry, len(items))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, it := range items {
		i, it := i, it
		g.Go(func() error {
			entries[i] = decodeOne(dec, op, it.line, it.lexeme)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Entries: entries}
	for _, e := range entries {
		if e.Error != "" {
			res.Errors++
		}
	}
	return res, nil
}

func opForKind(k token.Kind) (Op, bool) {
	switch k {
	case token.Int:
		return Int, true
	case token.Float:
		return Float, true
	case token.String:
		return Str, true
	case token.Char:
		return Char, true
	case token.Byte:
		return Byte, true
	case token.ByteString:
		return Bytes, true
	default:
		return Auto, false
	}
}

func decodeOne(dec *literal.Decoder, op Op, line uint32, lexeme string) litfmt.Entry {
	e := litfmt.Entry{Line: line, Lexeme: lexeme}
	if op == Auto {
		k := literal.Classify(lexeme)
		if k.IsComment() {
			return decodeDocAuto(dec, line, lexeme)
		}
		var ok bool
		op, ok = opForKind(k)
		if !ok {
			e.Kind = "invalid"
			e.Error = "unrecognized literal form"
			return e
		}
	}

	switch op {
	case Int:
		e.Kind = "int"
		if v, err := dec.Int(lexeme); err != nil {
			e.Error = err.Error()
		} else {
			e.Value = v.String()
			e.Type = v.Type.String()
		}
	case Float:
		e.Kind = "float"
		if v, err := dec.Float(lexeme); err != nil {
			e.Error = err.Error()
		} else {
			e.Value = v.String()
			e.Type = v.Type.String()
		}
	case Str:
		e.Kind = "string"
		if s, err := dec.String(lexeme); err != nil {
			e.Error = err.Error()
		} else {
			e.Value = strconv.Quote(s)
		}
	case Char:
		e.Kind = "char"
		if r, err := dec.Char(lexeme); err != nil {
			e.Error = err.Error()
		} else {
			e.Value = strconv.QuoteRune(r)
		}
	case Byte:
		e.Kind = "byte"
		if b, err := dec.Byte(lexeme); err != nil {
			e.Error = err.Error()
		} else {
			e.Value = fmt.Sprintf("0x%02X", b)
		}
	case Bytes:
		e.Kind = "byte-string"
		if bs, err := dec.ByteString(lexeme); err != nil {
			e.Error = err.Error()
		} else {
			e.Value = fmt.Sprintf("%q", bs)
		}
	case InnerDoc:
		e.Kind = "inner-doc"
		if body, err := dec.InnerDoc(lexeme); err != nil {
			e.Error = err.Error()
		} else {
			e.Value = strconv.Quote(body)
		}
	case OuterDoc:
		e.Kind = "outer-doc"
		if body, err := dec.OuterDoc(lexeme); err != nil {
			e.Error = err.Error()
		} else {
			e.Value = strconv.Quote(body)
		}
	}
	return e
}

// decodeDocAuto resolves a comment's polarity by trying outer first.
func decodeDocAuto(dec *literal.Decoder, line uint32, lexeme string) litfmt.Entry {
	e := litfmt.Entry{Line: line, Lexeme: lexeme}
	if body, err := dec.OuterDoc(lexeme); err == nil {
		e.Kind = "outer-doc"
		e.Value = strconv.Quote(body)
		return e
	}
	if body, err := dec.InnerDoc(lexeme); err == nil {
		e.Kind = "inner-doc"
		e.Value = strconv.Quote(body)
		return e
	}
	e.Kind = "comment"
	e.Error = "plain comment, not a doc comment"
	return e
}
