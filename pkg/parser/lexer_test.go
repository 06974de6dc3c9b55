package parser

import (
	"testing"

	"github.com/plankit/pddl/pkg/types"
)

type lexerTestCase struct {
	name      string
	input     string
	expected  []Token
	expectErr bool
}

func collectTokens(input string, limit int) ([]Token, *types.Error) {
	lex := NewLexer(input)
	var out []Token
	for i := 0; i < limit; i++ {
		t := lex.Next()
		if t.Type == TokenEOF {
			break
		}
		if t.Type == TokenError {
			return out, t.Err
		}
		out = append(out, t)
	}
	return out, nil
}

func runLexerTests(t *testing.T, tests []lexerTestCase) {
	t.Helper()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := collectTokens(tc.input, 64)
			if tc.expectErr {
				if err == nil {
					t.Fatalf("expected a lexer error, got tokens %v", got)
				}
				if err.Code != types.ErrLexer {
					t.Fatalf("expected code %s, got %s", types.ErrLexer, err.Code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected lexer error: %v", err)
			}
			if len(got) != len(tc.expected) {
				t.Fatalf("token count = %d, want %d (%v)", len(got), len(tc.expected), got)
			}
			for i, want := range tc.expected {
				if got[i].Type != want.Type {
					t.Errorf("token %d type = %s, want %s", i, got[i].Type, want.Type)
				}
				if want.Value != "" && got[i].Value != want.Value {
					t.Errorf("token %d value = %q, want %q", i, got[i].Value, want.Value)
				}
			}
		})
	}
}

func TestLexerPunctuation(t *testing.T) {
	runLexerTests(t, []lexerTestCase{
		{
			name:  "parens and brackets",
			input: "( ) [ ]",
			expected: []Token{
				{Type: TokenOpenParen},
				{Type: TokenCloseParen},
				{Type: TokenOpenBracket},
				{Type: TokenCloseBracket},
			},
		},
		{
			name:  "operators",
			input: "+ * / = -",
			expected: []Token{
				{Type: TokenPlus},
				{Type: TokenTimes},
				{Type: TokenDivide},
				{Type: TokenEqual},
				{Type: TokenDash},
			},
		},
	})
}

func TestLexerIdentifiersAndKeywords(t *testing.T) {
	runLexerTests(t, []lexerTestCase{
		{
			name:  "plain identifiers",
			input: "pick-up location_1 b2",
			expected: []Token{
				{Type: TokenID, Value: "pick-up"},
				{Type: TokenID, Value: "location_1"},
				{Type: TokenID, Value: "b2"},
			},
		},
		{
			name:  "bare keywords",
			input: "define domain and not forall either",
			expected: []Token{
				{Type: TokenDefine},
				{Type: TokenDomain},
				{Type: TokenAnd},
				{Type: TokenNot},
				{Type: TokenForall},
				{Type: TokenEither},
			},
		},
		{
			name:  "keywords are case-insensitive",
			input: "DEFINE Domain AND",
			expected: []Token{
				{Type: TokenDefine},
				{Type: TokenDomain},
				{Type: TokenAnd},
			},
		},
		{
			name:  "scale keywords",
			input: "assign scale-up scale-down increase decrease",
			expected: []Token{
				{Type: TokenAssign},
				{Type: TokenScaleUp},
				{Type: TokenScaleDown},
				{Type: TokenIncrease},
				{Type: TokenDecrease},
			},
		},
	})
}

func TestLexerColonKeywords(t *testing.T) {
	runLexerTests(t, []lexerTestCase{
		{
			name:  "section keywords",
			input: ":requirements :types :action :durative-action",
			expected: []Token{
				{Type: TokenRequirements},
				{Type: TokenTypes},
				{Type: TokenAction},
				{Type: TokenDurativeAction},
			},
		},
		{
			name:  "requirement flags",
			input: ":strips :typing :fluents :durative-actions",
			expected: []Token{
				{Type: TokenStrips},
				{Type: TokenTyping},
				{Type: TokenFluents},
				{Type: TokenDurativeActions},
			},
		},
		{
			name:  "unknown colon word leaves a bare colon",
			input: ":frobnicate",
			expected: []Token{
				{Type: TokenColon},
				{Type: TokenID, Value: "frobnicate"},
			},
		},
		{
			name:  "bare colon after timestamp",
			input: "0.000: (a)",
			expected: []Token{
				{Type: TokenFloat, Value: "0.000"},
				{Type: TokenColon},
				{Type: TokenOpenParen},
				{Type: TokenID, Value: "a"},
				{Type: TokenCloseParen},
			},
		},
	})
}

func TestLexerNumbersAndVariables(t *testing.T) {
	runLexerTests(t, []lexerTestCase{
		{
			name:  "integers",
			input: "42 -7 0",
			expected: []Token{
				{Type: TokenInteger, Value: "42"},
				{Type: TokenInteger, Value: "-7"},
				{Type: TokenInteger, Value: "0"},
			},
		},
		{
			name:  "floats",
			input: "0.000 -1.5 188.503",
			expected: []Token{
				{Type: TokenFloat, Value: "0.000"},
				{Type: TokenFloat, Value: "-1.5"},
				{Type: TokenFloat, Value: "188.503"},
			},
		},
		{
			name:  "variables drop the question mark",
			input: "?x ?location1",
			expected: []Token{
				{Type: TokenVariable, Value: "x"},
				{Type: TokenVariable, Value: "location1"},
			},
		},
		{
			name:      "question mark needs a letter",
			input:     "?1",
			expectErr: true,
		},
	})
}

func TestLexerMeta(t *testing.T) {
	runLexerTests(t, []lexerTestCase{
		{
			name:  "line comments are skipped",
			input: "; a comment\nfoo ; trailing\nbar",
			expected: []Token{
				{Type: TokenID, Value: "foo"},
				{Type: TokenID, Value: "bar"},
			},
		},
		{
			name:  "in-package directives are skipped",
			input: "(in-package :pddl) (define",
			expected: []Token{
				{Type: TokenOpenParen},
				{Type: TokenDefine},
			},
		},
	})
}

func TestLexerErrorIsSticky(t *testing.T) {
	lex := NewLexer("foo @ bar")
	first := lex.Next()
	if first.Type != TokenID {
		t.Fatalf("first token = %s, want identifier", first.Type)
	}
	bad := lex.Next()
	if bad.Type != TokenError {
		t.Fatalf("second token = %s, want error", bad.Type)
	}
	again := lex.Next()
	if again.Type != TokenError {
		t.Fatalf("after an error the lexer must keep returning it, got %s", again.Type)
	}
	if bad.Err == nil || again.Err != bad.Err {
		t.Fatal("repeated error tokens must carry the same error")
	}
}

func TestLexerSpans(t *testing.T) {
	lex := NewLexer("  foo ?x")
	id := lex.Next()
	if id.Pos != 2 || id.End != 5 {
		t.Errorf("identifier span = %d..%d, want 2..5", id.Pos, id.End)
	}
	// The variable's span covers the name, not the question mark.
	v := lex.Next()
	if v.Pos != 7 || v.End != 8 {
		t.Errorf("variable span = %d..%d, want 7..8", v.Pos, v.End)
	}
}
