// Package literal decodes the raw text of a literal lexeme into its
// semantic value: typed integers and floats, unescaped string, char,
// byte, and byte-string content, and stripped doc-comment bodies.
//
// Failures come in two tiers and stay distinguishable:
//   - ErrMismatch: the lexeme does not encode the requested kind, or
//     its value does not fit the requested width. Recoverable; callers
//     try another interpretation.
//   - ErrMalformed: the lexeme is committed to being escaped text but
//     an escape sequence or Unicode scalar value in it is invalid. The
//     literal itself is corrupt; trying another kind will not help.
//
// Decoding is a pure function of the lexeme and the decoder options: no
// shared state, safe for concurrent use from any number of goroutines.
package literal
