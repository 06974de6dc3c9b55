package types

import "fmt"

// ErrorCode identifies a parse failure kind.
//
// The set is closed: every error produced by the lexer, the combinator
// engine, or a grammar production carries exactly one of these codes.
type ErrorCode string

const (
	// ErrLexer indicates that the tokenizer could not recognize the input
	// at the reported position.
	ErrLexer ErrorCode = "lexer-error"

	// ErrExpectedToken indicates that a specific token was required but a
	// different one was found.
	ErrExpectedToken ErrorCode = "expected-token"

	// ErrExpectedIdentifier indicates that an identifier or variable was
	// required at the reported position.
	ErrExpectedIdentifier ErrorCode = "expected-identifier"

	// ErrExpectedInteger indicates that an integer literal was required.
	ErrExpectedInteger ErrorCode = "expected-integer"

	// ErrExpectedFloat indicates that a float literal was required.
	ErrExpectedFloat ErrorCode = "expected-float"

	// ErrExpectedEndOfInput indicates that a top-level form parsed
	// successfully but tokens remained afterwards.
	ErrExpectedEndOfInput ErrorCode = "expected-end-of-input"

	// ErrIncompleteInput indicates that the input ended in the middle of a
	// form.
	ErrIncompleteInput ErrorCode = "incomplete-input"

	// ErrUnsupportedRequirement indicates a syntactically valid
	// :requirements block declaring a capability outside the supported set.
	ErrUnsupportedRequirement ErrorCode = "unsupported-requirement"
)

// Span is a byte range into the original source text.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Error is the structured error returned by every parse entry point.
//
// Errors are ordinary return values; the parser never panics on malformed
// input. Facets of codes that do not apply stay at their zero value:
// Expected is only set for ErrExpectedToken, Requirement only for
// ErrUnsupportedRequirement.
type Error struct {
	Code    ErrorCode
	Message string
	Span    Span

	// Expected names the token the grammar was looking for, as printable
	// text ("(", ":requirements", ...). Set for ErrExpectedToken.
	Expected string

	// Lookahead holds the printable text of up to a few tokens following
	// the failure position. Diagnostic context only; never consulted for
	// grammar decisions.
	Lookahead []string

	// Requirement is the rejected capability flag for
	// ErrUnsupportedRequirement.
	Requirement Requirement

	// Err is an optional wrapped cause.
	Err error
}

// NewError creates an Error with the given code, message, and source span.
func NewError(code ErrorCode, message string, span Span) *Error {
	return &Error{Code: code, Message: message, Span: span}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Span.End > e.Span.Start {
		return fmt.Sprintf("%s at byte %d..%d: %s", e.Code, e.Span.Start, e.Span.End, e.Message)
	}
	return fmt.Sprintf("%s at byte %d: %s", e.Code, e.Span.Start, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code, which makes
// errors.Is usable with sentinel values such as
// &types.Error{Code: types.ErrExpectedEndOfInput}.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}
