package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/plankit/pddl/pkg/types"
)

const eof = -1

// Lexer converts PDDL source text into a sequence of tokens, one per call.
// The implementation follows Rob Pike's "Lexical Scanning in Go" technique.
//
// A Lexer is a small value type: copying one is a cheap cursor copy that
// never duplicates the underlying source text. TokenStream relies on this
// to make backtracking affordable.
//
// Tokens are produced on demand. An unrecognized character does not fail
// the whole input eagerly; it yields a TokenError token the first time a
// consumer reads past it.
type Lexer struct {
	input   string
	start   int // start position of the current token
	current int // current position in input
	width   int // width of the last rune read
	err     *types.Error
}

// NewLexer creates a lexer over the given input.
func NewLexer(input string) Lexer {
	return Lexer{input: input}
}

// Next returns the next token. After the end of the input it returns
// TokenEOF for all subsequent calls; after a lexical failure it returns
// the same TokenError for all subsequent calls.
func (l *Lexer) Next() Token {
	l.skipMeta()

	if l.err != nil {
		return Token{Type: TokenError, Pos: l.err.Span.Start, End: l.err.Span.End, Err: l.err}
	}

	ch := l.nextRune()
	if ch == eof {
		return Token{Type: TokenEOF, Pos: l.current, End: l.current}
	}

	switch {
	case ch == '(':
		return l.newToken(TokenOpenParen)
	case ch == ')':
		return l.newToken(TokenCloseParen)
	case ch == '[':
		return l.newToken(TokenOpenBracket)
	case ch == ']':
		return l.newToken(TokenCloseBracket)
	case ch == '+':
		return l.newToken(TokenPlus)
	case ch == '*':
		return l.newToken(TokenTimes)
	case ch == '/':
		return l.newToken(TokenDivide)
	case ch == '=':
		return l.newToken(TokenEqual)
	case ch == ':':
		return l.scanColonKeyword()
	case ch == '-':
		if l.accept(isDigit) {
			l.backup()
			return l.scanNumber()
		}
		return l.newToken(TokenDash)
	case isDigit(ch):
		l.backup()
		return l.scanNumber()
	case ch == '?':
		return l.scanVariable()
	case isLetter(ch):
		l.backup()
		return l.scanIdentifier()
	default:
		return l.errorToken(fmt.Sprintf("unrecognized character %q", ch))
	}
}

// Err returns the lexical failure encountered so far, if any.
func (l *Lexer) Err() *types.Error {
	return l.err
}

// scanColonKeyword reads a ":"-prefixed keyword. The colon has already
// been consumed. When the word after the colon is not a known keyword the
// colon stands alone as a TokenColon, as it does after plan timestamps.
func (l *Lexer) scanColonKeyword() Token {
	mark := *l
	if !l.acceptAll(isIdentRune) {
		return l.newToken(TokenColon)
	}
	word := strings.ToLower(l.input[l.start:l.current])
	if tt, ok := colonKeywords[word]; ok {
		return l.newToken(tt)
	}
	*l = mark
	return l.newToken(TokenColon)
}

// scanNumber reads an integer or float literal, with an optional leading
// minus sign. A decimal point makes the token a float; a trailing dot
// without digits is not consumed.
func (l *Lexer) scanNumber() Token {
	l.acceptRune('-')
	l.acceptAll(isDigit)

	mark := *l
	if l.acceptRune('.') {
		if l.acceptAll(isDigit) {
			return l.newToken(TokenFloat)
		}
		// Dot without digits is not part of the number.
		*l = mark
	}
	return l.newToken(TokenInteger)
}

// scanVariable reads a "?"-prefixed variable. The question mark has
// already been consumed and is excluded from the token value.
func (l *Lexer) scanVariable() Token {
	l.ignore()
	if !l.accept(isLetter) {
		return l.errorToken("expected a letter after '?'")
	}
	l.acceptAll(isIdentRune)
	return l.newToken(TokenVariable)
}

// scanIdentifier reads an identifier: a letter followed by letters,
// digits, underscores, or dashes. Bare keywords match case-insensitively.
func (l *Lexer) scanIdentifier() Token {
	l.accept(isLetter)
	l.acceptAll(isIdentRune)
	t := l.newToken(TokenID)
	if tt, ok := bareKeywords[strings.ToLower(t.Value)]; ok {
		t.Type = tt
	}
	return t
}

// Helper methods

func (l *Lexer) errorToken(message string) Token {
	span := types.Span{Start: l.start, End: l.current}
	if span.End == span.Start {
		span.End = span.Start + 1
	}
	l.err = types.NewError(types.ErrLexer, message, span)
	return Token{Type: TokenError, Pos: span.Start, End: span.End, Err: l.err}
}

func (l *Lexer) newToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.current],
		Pos:   l.start,
		End:   l.current,
	}
	l.width = 0
	l.start = l.current
	return t
}

func (l *Lexer) nextRune() rune {
	if l.err != nil || l.current >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.current:])
	l.width = w
	l.current += w
	return r
}

func (l *Lexer) backup() {
	l.current -= l.width
	l.width = 0
}

func (l *Lexer) ignore() {
	l.start = l.current
}

func (l *Lexer) acceptRune(r rune) bool {
	return l.accept(func(c rune) bool { return c == r })
}

func (l *Lexer) accept(isValid func(rune) bool) bool {
	if isValid(l.nextRune()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptAll(isValid func(rune) bool) bool {
	var matched bool
	for l.accept(isValid) {
		matched = true
	}
	return matched
}

// skipMeta discards everything the grammar never sees: whitespace, ";"
// line comments, and embedded (in-package ...) directives.
func (l *Lexer) skipMeta() {
	for {
		l.acceptAll(isWhitespace)
		l.ignore()

		if l.acceptRune(';') {
			for {
				ch := l.nextRune()
				if ch == eof || ch == '\n' {
					break
				}
			}
			l.ignore()
			continue
		}

		if l.acceptRune('(') {
			mark := *l
			l.acceptAll(isWhitespace)
			wordStart := l.current
			l.acceptAll(isIdentRune)
			if strings.EqualFold(l.input[wordStart:l.current], "in-package") {
				l.skipDirective()
				l.ignore()
				continue
			}
			*l = mark
			l.backup()
		}
		return
	}
}

// skipDirective consumes the remainder of a directive group, the opening
// parenthesis of which has already been read.
func (l *Lexer) skipDirective() {
	depth := 1
	for depth > 0 {
		switch l.nextRune() {
		case '(':
			depth++
		case ')':
			depth--
		case eof:
			return
		}
	}
}

// Character classification functions

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentRune(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_' || r == '-'
}
