package parser

import (
	"fmt"
	"strconv"

	"github.com/plankit/pddl/pkg/types"
)

// The combinator engine. Every primitive has the shape
//
//	func(TokenStream) (TokenStream, T, error)
//
// and must not consume input on failure: a failing parser's returned
// stream is never used, and callers always resume from the cursor value
// they already hold. That single invariant makes backtracking safe by
// construction; no grammar production ever saves or restores state
// explicitly.

// parserFn is a parser producing a value of type T.
type parserFn[T any] func(TokenStream) (TokenStream, T, error)

// pairOf carries the results of two sequenced parsers.
type pairOf[A, B any] struct {
	a A
	b B
}

// lookaheadDepth bounds the number of tokens captured into
// ErrExpectedToken diagnostics.
const lookaheadDepth = 6

// peek reads the next token, converting exhaustion and lexical failures
// into errors.
func peek(s TokenStream) (Token, error) {
	t, ok := s.Peek()
	if t.Type == TokenError {
		return t, t.Err
	}
	if !ok {
		return t, types.NewError(types.ErrIncompleteInput, "unexpected end of input", t.Span())
	}
	return t, nil
}

// lookahead collects the printable text of up to lookaheadDepth upcoming
// tokens for diagnostics.
func lookahead(s TokenStream) []string {
	toks := s.PeekN(lookaheadDepth)
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.text()
	}
	return out
}

// exact succeeds iff the next token has the expected type, producing the
// token itself.
func exact(tt TokenType) parserFn[Token] {
	return func(s TokenStream) (TokenStream, Token, error) {
		t, err := peek(s)
		if err != nil {
			return s, Token{}, err
		}
		if t.Type != tt {
			return s, Token{}, &types.Error{
				Code:      types.ErrExpectedToken,
				Message:   fmt.Sprintf("expected %s, found %s", tt, t.text()),
				Span:      t.Span(),
				Expected:  tt.String(),
				Lookahead: lookahead(s),
			}
		}
		return s.Advance(), t, nil
	}
}

// alt tries each branch in order against the same cursor and returns the
// first success. On total failure it returns the last branch's error; the
// more relevant error of an earlier branch that consumed further into the
// input is discarded. Tracking the furthest-offset error instead would
// sharpen diagnostics without changing accepted inputs.
func alt[T any](parsers ...parserFn[T]) parserFn[T] {
	return func(s TokenStream) (TokenStream, T, error) {
		var zero T
		var err error
		for _, p := range parsers {
			var rest TokenStream
			var v T
			rest, v, err = p(s)
			if err == nil {
				return rest, v, nil
			}
		}
		return s, zero, err
	}
}

// opt converts a failure of p into an absent value without consuming.
func opt[T any](p parserFn[T]) parserFn[*T] {
	return func(s TokenStream) (TokenStream, *T, error) {
		rest, v, err := p(s)
		if err != nil {
			return s, nil, nil
		}
		return rest, &v, nil
	}
}

// many0 applies p zero or more times, stopping at the first failure.
func many0[T any](p parserFn[T]) parserFn[[]T] {
	return func(s TokenStream) (TokenStream, []T, error) {
		var out []T
		for {
			rest, v, err := p(s)
			if err != nil {
				return s, out, nil
			}
			out = append(out, v)
			s = rest
		}
	}
}

// many1 applies p one or more times; zero matches fail the whole parse.
func many1[T any](p parserFn[T]) parserFn[[]T] {
	return func(s TokenStream) (TokenStream, []T, error) {
		rest, first, err := p(s)
		if err != nil {
			return s, nil, err
		}
		rest, more, _ := many0(p)(rest)
		return rest, append([]T{first}, more...), nil
	}
}

// mapv applies f to the result of p.
func mapv[A, B any](p parserFn[A], f func(A) B) parserFn[B] {
	return func(s TokenStream) (TokenStream, B, error) {
		rest, v, err := p(s)
		if err != nil {
			var zero B
			return s, zero, err
		}
		return rest, f(v), nil
	}
}

// pair sequences two parsers; the pair fails atomically when either
// element fails.
func pair[A, B any](pa parserFn[A], pb parserFn[B]) parserFn[pairOf[A, B]] {
	return func(s TokenStream) (TokenStream, pairOf[A, B], error) {
		var zero pairOf[A, B]
		rest, a, err := pa(s)
		if err != nil {
			return s, zero, err
		}
		rest, b, err := pb(rest)
		if err != nil {
			return s, zero, err
		}
		return rest, pairOf[A, B]{a: a, b: b}, nil
	}
}

// delimited parses open, then p, then close, producing only p's value.
func delimited[O, T, C any](open parserFn[O], p parserFn[T], close parserFn[C]) parserFn[T] {
	return func(s TokenStream) (TokenStream, T, error) {
		var zero T
		rest, _, err := open(s)
		if err != nil {
			return s, zero, err
		}
		rest, v, err := p(rest)
		if err != nil {
			return s, zero, err
		}
		rest, _, err = close(rest)
		if err != nil {
			return s, zero, err
		}
		return rest, v, nil
	}
}

// preceded parses a prefix and then p, producing only p's value.
func preceded[P, T any](prefix parserFn[P], p parserFn[T]) parserFn[T] {
	return func(s TokenStream) (TokenStream, T, error) {
		var zero T
		rest, _, err := prefix(s)
		if err != nil {
			return s, zero, err
		}
		rest, v, err := p(rest)
		if err != nil {
			return s, zero, err
		}
		return rest, v, nil
	}
}

// separatedPair parses a, then a separator, then b.
func separatedPair[A, S, B any](pa parserFn[A], sep parserFn[S], pb parserFn[B]) parserFn[pairOf[A, B]] {
	return func(s TokenStream) (TokenStream, pairOf[A, B], error) {
		var zero pairOf[A, B]
		rest, a, err := pa(s)
		if err != nil {
			return s, zero, err
		}
		rest, _, err = sep(rest)
		if err != nil {
			return s, zero, err
		}
		rest, b, err := pb(rest)
		if err != nil {
			return s, zero, err
		}
		return rest, pairOf[A, B]{a: a, b: b}, nil
	}
}

// Leaf parsers over literal tokens.

// ident parses an identifier, producing its text. Bare keywords are
// accepted here: "at", "over", and friends are ordinary names outside
// their keyword positions, and published domains use them as predicates.
func ident(s TokenStream) (TokenStream, string, error) {
	t, err := peek(s)
	if err != nil {
		return s, "", err
	}
	if t.Type != TokenID && !bareKeywordTypes[t.Type] {
		return s, "", types.NewError(types.ErrExpectedIdentifier,
			fmt.Sprintf("expected an identifier, found %s", t.text()), t.Span())
	}
	return s.Advance(), t.Value, nil
}

// variable parses a "?"-prefixed variable, producing its name without the
// question mark.
func variable(s TokenStream) (TokenStream, string, error) {
	t, err := peek(s)
	if err != nil {
		return s, "", err
	}
	if t.Type != TokenVariable {
		return s, "", types.NewError(types.ErrExpectedIdentifier,
			fmt.Sprintf("expected a variable, found %s", t.text()), t.Span())
	}
	return s.Advance(), t.Value, nil
}

// term parses an atom or plan-call argument: a bare name or a variable.
// The raw token text is kept, question mark included, so "(p ?x)" and
// "(p x)" stay distinct values.
func term(s TokenStream) (TokenStream, string, error) {
	return alt(
		ident,
		mapv(variable, func(name string) string { return "?" + name }),
	)(s)
}

// integer parses a signed integer literal.
func integer(s TokenStream) (TokenStream, int64, error) {
	t, err := peek(s)
	if err != nil {
		return s, 0, err
	}
	if t.Type != TokenInteger {
		return s, 0, types.NewError(types.ErrExpectedInteger,
			fmt.Sprintf("expected an integer, found %s", t.text()), t.Span())
	}
	n, convErr := strconv.ParseInt(t.Value, 10, 64)
	if convErr != nil {
		return s, 0, types.NewError(types.ErrExpectedInteger,
			fmt.Sprintf("malformed integer %q", t.Value), t.Span()).WithCause(convErr)
	}
	return s.Advance(), n, nil
}

// float parses a decimal float literal. Integer literals are accepted
// where a float is expected, as plan timestamps are often written without
// a fractional part.
func float(s TokenStream) (TokenStream, float64, error) {
	t, err := peek(s)
	if err != nil {
		return s, 0, err
	}
	if t.Type != TokenFloat && t.Type != TokenInteger {
		return s, 0, types.NewError(types.ErrExpectedFloat,
			fmt.Sprintf("expected a float, found %s", t.text()), t.Span())
	}
	f, convErr := strconv.ParseFloat(t.Value, 64)
	if convErr != nil {
		return s, 0, types.NewError(types.ErrExpectedFloat,
			fmt.Sprintf("malformed float %q", t.Value), t.Span()).WithCause(convErr)
	}
	return s.Advance(), f, nil
}
