package token

// Source is the boundary contract a host tokenizer implements: anything
// that can yield a literal's exact source text. Decoders need nothing
// else from the host; per-host adapters stay this thin on purpose.
type Source interface {
	Lexeme() string
}

// Token is a minimal literal token: a kind plus the exact lexeme text.
type Token struct {
	Kind Kind
	Text string
}

// Lexeme implements Source.
func (t Token) Lexeme() string { return t.Text }
