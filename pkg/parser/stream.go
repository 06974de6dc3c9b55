package parser

import "github.com/plankit/pddl/pkg/types"

// TokenStream is an immutable cursor over the token sequence of one
// source text.
//
// Every operation returns a value instead of mutating in place, so any
// combinator can hold a checkpoint cursor and abandon it on failure at no
// cost beyond copying a small struct. The underlying source is shared by
// all copies; tokens are realized lazily by the embedded lexer, never
// materialized as a slice.
type TokenStream struct {
	lex Lexer
}

// NewTokenStream creates a cursor positioned at the first token of input.
func NewTokenStream(input string) TokenStream {
	return TokenStream{lex: NewLexer(input)}
}

// Peek returns the next token without consuming it. The second result is
// false once the input is exhausted. A lexical failure is returned as a
// TokenError token carrying its *types.Error.
func (s TokenStream) Peek() (Token, bool) {
	lex := s.lex
	t := lex.Next()
	if t.Type == TokenEOF {
		return t, false
	}
	return t, true
}

// PeekN returns up to n upcoming tokens. It exists for diagnostic context
// in error values; grammar decisions never depend on it.
func (s TokenStream) PeekN(n int) []Token {
	lex := s.lex
	out := make([]Token, 0, n)
	for len(out) < n {
		t := lex.Next()
		if t.Type == TokenEOF || t.Type == TokenError {
			break
		}
		out = append(out, t)
	}
	return out
}

// Advance returns a cursor positioned one token further.
func (s TokenStream) Advance() TokenStream {
	s.lex.Next()
	return s
}

// Len returns the number of source bytes not yet consumed.
func (s TokenStream) Len() int {
	return len(s.lex.input) - s.lex.current
}

// IsEmpty reports whether no further token can be read. A pending lexical
// failure counts as remaining input.
func (s TokenStream) IsEmpty() bool {
	_, ok := s.Peek()
	return !ok
}

// Span returns the byte range of the current token, for diagnostics. At
// the end of the input both bounds equal the source length.
func (s TokenStream) Span() types.Span {
	t, _ := s.Peek()
	return t.Span()
}

// Source returns the complete source text the cursor ranges over.
func (s TokenStream) Source() string {
	return s.lex.input
}
