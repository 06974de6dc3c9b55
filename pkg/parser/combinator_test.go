package parser

import (
	"errors"
	"testing"

	"github.com/plankit/pddl/pkg/types"
)

func parseCode(t *testing.T, err error) types.ErrorCode {
	t.Helper()
	var perr *types.Error
	if !errors.As(err, &perr) {
		t.Fatalf("error %v is not a *types.Error", err)
	}
	return perr.Code
}

func TestExact(t *testing.T) {
	s := NewTokenStream("( foo")
	rest, tok, err := exact(TokenOpenParen)(s)
	if err != nil {
		t.Fatalf("exact failed: %v", err)
	}
	if tok.Type != TokenOpenParen {
		t.Fatalf("token = %s, want open paren", tok.Type)
	}
	next, _ := rest.Peek()
	if next.Value != "foo" {
		t.Fatalf("cursor at %q after match, want foo", next.Value)
	}
}

func TestExactMismatch(t *testing.T) {
	s := NewTokenStream("foo")
	_, _, err := exact(TokenOpenParen)(s)
	if code := parseCode(t, err); code != types.ErrExpectedToken {
		t.Fatalf("code = %s, want %s", code, types.ErrExpectedToken)
	}
	var perr *types.Error
	errors.As(err, &perr)
	if perr.Expected != "(" {
		t.Errorf("expected field = %q, want \"(\"", perr.Expected)
	}
	if len(perr.Lookahead) == 0 || perr.Lookahead[0] != "foo" {
		t.Errorf("lookahead = %v, want to start with foo", perr.Lookahead)
	}
}

func TestExactAtEndOfInput(t *testing.T) {
	_, _, err := exact(TokenOpenParen)(NewTokenStream("  "))
	if code := parseCode(t, err); code != types.ErrIncompleteInput {
		t.Fatalf("code = %s, want %s", code, types.ErrIncompleteInput)
	}
}

func TestExactSurfacesLexerError(t *testing.T) {
	_, _, err := exact(TokenOpenParen)(NewTokenStream("@"))
	if code := parseCode(t, err); code != types.ErrLexer {
		t.Fatalf("code = %s, want %s", code, types.ErrLexer)
	}
}

func TestAltBacktracksWithoutConsuming(t *testing.T) {
	// The first branch consumes two tokens before failing; the second
	// branch must still see the full input.
	first := mapv(
		pair(exact(TokenOpenParen), exact(TokenOpenParen)),
		func(pairOf[Token, Token]) string { return "nested" },
	)
	second := mapv(
		pair(exact(TokenOpenParen), ident),
		func(v pairOf[Token, string]) string { return v.b },
	)

	rest, got, err := alt(first, second)(NewTokenStream("(foo"))
	if err != nil {
		t.Fatalf("alt failed: %v", err)
	}
	if got != "foo" {
		t.Fatalf("alt value = %q, want foo", got)
	}
	if !rest.IsEmpty() {
		t.Fatal("alt left input unconsumed")
	}
}

func TestAltReturnsLastBranchError(t *testing.T) {
	_, _, err := alt(
		mapv(exact(TokenOpenParen), func(Token) string { return "" }),
		ident,
	)(NewTokenStream("?x"))
	// The identifier branch is tried last, so its error wins.
	if code := parseCode(t, err); code != types.ErrExpectedIdentifier {
		t.Fatalf("code = %s, want %s", code, types.ErrExpectedIdentifier)
	}
}

func TestOpt(t *testing.T) {
	rest, v, err := opt(ident)(NewTokenStream("( x"))
	if err != nil || v != nil {
		t.Fatalf("opt = (%v, %v), want absent and no error", v, err)
	}
	tok, _ := rest.Peek()
	if tok.Type != TokenOpenParen {
		t.Fatal("opt consumed input on failure")
	}

	_, v, err = opt(ident)(NewTokenStream("x"))
	if err != nil || v == nil || *v != "x" {
		t.Fatalf("opt = (%v, %v), want x", v, err)
	}
}

func TestMany0AndMany1(t *testing.T) {
	_, vals, err := many0(ident)(NewTokenStream("a b c"))
	if err != nil || len(vals) != 3 {
		t.Fatalf("many0 = (%v, %v), want three values", vals, err)
	}

	_, vals, err = many0(ident)(NewTokenStream("( x"))
	if err != nil || len(vals) != 0 {
		t.Fatalf("many0 on no match = (%v, %v), want empty success", vals, err)
	}

	_, _, err = many1(ident)(NewTokenStream("( x"))
	if err == nil {
		t.Fatal("many1 must fail on zero matches")
	}
}

func TestDelimitedAndPreceded(t *testing.T) {
	_, v, err := delimited(exact(TokenOpenParen), ident, exact(TokenCloseParen))(NewTokenStream("(foo)"))
	if err != nil || v != "foo" {
		t.Fatalf("delimited = (%q, %v)", v, err)
	}

	_, v, err = preceded(exact(TokenDash), ident)(NewTokenStream("- block"))
	if err != nil || v != "block" {
		t.Fatalf("preceded = (%q, %v)", v, err)
	}
}

func TestSeparatedPair(t *testing.T) {
	_, v, err := separatedPair(ident, exact(TokenDash), ident)(NewTokenStream("truck - vehicle"))
	if err != nil {
		t.Fatalf("separatedPair failed: %v", err)
	}
	if v.a != "truck" || v.b != "vehicle" {
		t.Fatalf("separatedPair = (%q, %q)", v.a, v.b)
	}
}

func TestLeafParsers(t *testing.T) {
	_, name, err := ident(NewTokenStream("pick-up"))
	if err != nil || name != "pick-up" {
		t.Fatalf("ident = (%q, %v)", name, err)
	}

	// Bare keywords are acceptable identifiers.
	_, name, err = ident(NewTokenStream("at"))
	if err != nil || name != "at" {
		t.Fatalf("ident on keyword = (%q, %v)", name, err)
	}

	_, v, err := variable(NewTokenStream("?block"))
	if err != nil || v != "block" {
		t.Fatalf("variable = (%q, %v)", v, err)
	}

	_, n, err := integer(NewTokenStream("-42"))
	if err != nil || n != -42 {
		t.Fatalf("integer = (%d, %v)", n, err)
	}

	_, f, err := float(NewTokenStream("136.002"))
	if err != nil || f != 136.002 {
		t.Fatalf("float = (%v, %v)", f, err)
	}

	// An integer is accepted where a float is expected.
	_, f, err = float(NewTokenStream("100"))
	if err != nil || f != 100 {
		t.Fatalf("float on integer = (%v, %v)", f, err)
	}

	_, _, err = integer(NewTokenStream("foo"))
	if code := parseCode(t, err); code != types.ErrExpectedInteger {
		t.Fatalf("integer error code = %s", code)
	}

	_, _, err = float(NewTokenStream("foo"))
	if code := parseCode(t, err); code != types.ErrExpectedFloat {
		t.Fatalf("float error code = %s", code)
	}
}
