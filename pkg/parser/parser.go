// Package parser implements the PDDL front end: tokenizer, token-stream
// cursor, combinator engine, and the document grammars.
//
// # Architecture
//
// The package consists of four layers:
//   - Lexer: turns source text into tokens on demand
//   - TokenStream: an immutable cursor whose copies share the source
//   - Combinators: generic parsers composed from smaller parsers
//   - Grammar: one production per syntactic form of the three documents
//
// Parsing is purely computational: text in, value tree or error out, with
// no I/O and no shared state. Separate documents may be parsed
// concurrently without synchronization.
//
// # Example
//
//	domain, err := parser.ParseDomain(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(domain.Name)
package parser

import (
	"fmt"

	"github.com/plankit/pddl/pkg/types"
)

// TraceFunc observes grammar production entries. It receives the
// production name and the byte offset at which the production was tried,
// including tries that later backtrack.
type TraceFunc func(production string, offset int)

// ParseOption configures a parse.
type ParseOption func(*parser)

// WithTrace installs a production observer. The observer is a pure
// side channel: it cannot alter what the parse accepts or produces.
func WithTrace(fn TraceFunc) ParseOption {
	return func(p *parser) {
		p.trace = fn
	}
}

// parser threads per-parse configuration through the grammar productions.
type parser struct {
	trace TraceFunc
}

func newParser(opts ...ParseOption) *parser {
	p := &parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// enter reports a production attempt to the trace observer, if any.
func (p *parser) enter(production string, s TokenStream) {
	if p.trace != nil {
		p.trace(production, s.Span().Start)
	}
}

// ParseDomain parses a complete domain document. The input must contain
// exactly one well-formed domain and nothing else.
func ParseDomain(input string, opts ...ParseOption) (*types.Domain, error) {
	p := newParser(opts...)
	rest, d, err := p.domain(NewTokenStream(input))
	if err != nil {
		return nil, err
	}
	if err := expectEOF(rest); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseProblem parses a complete problem document. The input must contain
// exactly one well-formed problem and nothing else.
func ParseProblem(input string, opts ...ParseOption) (*types.Problem, error) {
	p := newParser(opts...)
	rest, prob, err := p.problem(NewTokenStream(input))
	if err != nil {
		return nil, err
	}
	if err := expectEOF(rest); err != nil {
		return nil, err
	}
	return prob, nil
}

// ParsePlan parses a plan file: a sequence of action invocations, all
// simple or all durative. An empty input yields an empty plan.
func ParsePlan(input string, opts ...ParseOption) (*types.Plan, error) {
	p := newParser(opts...)
	rest, plan, err := p.plan(NewTokenStream(input))
	if err != nil {
		return nil, err
	}
	if err := expectEOF(rest); err != nil {
		return nil, err
	}
	return plan, nil
}

// expectEOF converts leftover tokens after a successful top-level match
// into an error. A pending lexical failure surfaces as itself.
func expectEOF(s TokenStream) error {
	t, ok := s.Peek()
	if !ok {
		return nil
	}
	if t.Type == TokenError {
		return t.Err
	}
	return &types.Error{
		Code:      types.ErrExpectedEndOfInput,
		Message:   fmt.Sprintf("expected end of input, found %s", t.text()),
		Span:      t.Span(),
		Lookahead: lookahead(s),
	}
}
