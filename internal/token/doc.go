// Package token defines literal token kinds and the Source boundary.
// Invariants:
//   - Token.Text is the exact lexeme as written in source, delimiters,
//     prefixes, and suffixes included; no normalization is applied.
//   - Kind is a dispatch hint from the host tokenizer. Decoders re-check
//     the lexeme's own prefix and never trust Kind beyond dispatch.
//   - Token implements Source, so a bare (Kind, Text) pair is enough to
//     drive decoding without any host tokenizer at all.
package token
