package parser

import "github.com/plankit/pddl/pkg/types"

// TokenType represents the type of a lexical token.
//
// Every grammar construct keyword and every requirement flag is a distinct
// token variant, so the grammar matches by token identity instead of
// comparing identifier strings.
type TokenType uint8

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Punctuation
	TokenOpenParen    // (
	TokenCloseParen   // )
	TokenOpenBracket  // [
	TokenCloseBracket // ]
	TokenColon        // :
	TokenDash         // - (type separator and subtraction)

	// Operators
	TokenPlus   // +
	TokenTimes  // *
	TokenDivide // /
	TokenEqual  // =

	// Literals
	TokenID       // pick-up, arm, location_1
	TokenVariable // ?x (value stored without the question mark)
	TokenInteger  // 42, -7
	TokenFloat    // 0.000, -1.5

	// Construct keywords
	TokenDefine         // define
	TokenDomain         // domain
	TokenProblem        // problem
	TokenProblemDomain  // :domain
	TokenRequirements   // :requirements
	TokenTypes          // :types
	TokenConstants      // :constants
	TokenPredicates     // :predicates
	TokenFunctions      // :functions
	TokenAction         // :action
	TokenDurativeAction // :durative-action
	TokenParameters     // :parameters
	TokenPrecondition   // :precondition
	TokenCondition      // :condition
	TokenEffect         // :effect
	TokenDuration       // :duration
	TokenObjects        // :objects
	TokenInit           // :init
	TokenGoal           // :goal
	TokenAnd            // and
	TokenNot            // not
	TokenForall         // forall
	TokenEither         // either
	TokenAt             // at
	TokenOver           // over
	TokenStart          // start
	TokenEnd            // end
	TokenAll            // all
	TokenAssign         // assign
	TokenScaleUp        // scale-up
	TokenScaleDown      // scale-down
	TokenIncrease       // increase
	TokenDecrease       // decrease

	// Requirement flags (PDDL 1 through PDDL+)
	TokenStrips
	TokenTyping
	TokenDisjunctivePreconditions
	TokenEquality
	TokenExistentialPreconditions
	TokenUniversalPreconditions
	TokenQuantifiedPreconditions
	TokenConditionalEffects
	TokenActionExpansions
	TokenForeachExpansions
	TokenDagExpansions
	TokenDomainAxioms
	TokenSubgoalsThroughAxioms
	TokenSafetyConstraints
	TokenExpressionEvaluation
	TokenFluents
	TokenOpenWorld
	TokenTrueNegation
	TokenAdl
	TokenUcpop
	TokenNumericFluents
	TokenDurativeActions
	TokenDurativeInequalities
	TokenContinuousEffects
	TokenNegativePreconditions
	TokenDerivedPredicates
	TokenTimedInitialLiterals
	TokenPreferences
	TokenConstraints
	TokenActionCosts
	TokenGoalUtilities
	TokenTime
)

// Token represents one lexical token of a PDDL document.
type Token struct {
	Type  TokenType
	Value string // literal text; variables are stored without the leading '?'
	Pos   int    // starting byte offset in the input
	End   int    // byte offset one past the token

	// Err carries the lexical failure for TokenError tokens.
	Err *types.Error
}

// Span returns the byte range the token occupies.
func (t Token) Span() types.Span {
	return types.Span{Start: t.Pos, End: t.End}
}

// bareKeywords maps lowercased bare words to keyword token types.
// Keywords are matched case-insensitively.
var bareKeywords = map[string]TokenType{
	"define":     TokenDefine,
	"domain":     TokenDomain,
	"problem":    TokenProblem,
	"and":        TokenAnd,
	"not":        TokenNot,
	"forall":     TokenForall,
	"either":     TokenEither,
	"at":         TokenAt,
	"over":       TokenOver,
	"start":      TokenStart,
	"end":        TokenEnd,
	"all":        TokenAll,
	"assign":     TokenAssign,
	"scale-up":   TokenScaleUp,
	"scale-down": TokenScaleDown,
	"increase":   TokenIncrease,
	"decrease":   TokenDecrease,
}

// colonKeywords maps lowercased ":"-prefixed words to keyword token types,
// including every requirement flag.
var colonKeywords = map[string]TokenType{
	":domain":          TokenProblemDomain,
	":requirements":    TokenRequirements,
	":types":           TokenTypes,
	":constants":       TokenConstants,
	":predicates":      TokenPredicates,
	":functions":       TokenFunctions,
	":action":          TokenAction,
	":durative-action": TokenDurativeAction,
	":parameters":      TokenParameters,
	":precondition":    TokenPrecondition,
	":condition":       TokenCondition,
	":effect":          TokenEffect,
	":duration":        TokenDuration,
	":objects":         TokenObjects,
	":init":            TokenInit,
	":goal":            TokenGoal,

	":strips":                    TokenStrips,
	":typing":                    TokenTyping,
	":disjunctive-preconditions": TokenDisjunctivePreconditions,
	":equality":                  TokenEquality,
	":existential-preconditions": TokenExistentialPreconditions,
	":universal-preconditions":   TokenUniversalPreconditions,
	":quantified-preconditions":  TokenQuantifiedPreconditions,
	":conditional-effects":       TokenConditionalEffects,
	":action-expansions":         TokenActionExpansions,
	":foreach-expansions":        TokenForeachExpansions,
	":dag-expansions":            TokenDagExpansions,
	":domain-axioms":             TokenDomainAxioms,
	":subgoals-through-axioms":   TokenSubgoalsThroughAxioms,
	":safety-constraints":        TokenSafetyConstraints,
	":expression-evaluation":     TokenExpressionEvaluation,
	":fluents":                   TokenFluents,
	":open-world":                TokenOpenWorld,
	":true-negation":             TokenTrueNegation,
	":adl":                       TokenAdl,
	":ucpop":                     TokenUcpop,
	":numeric-fluents":           TokenNumericFluents,
	":durative-actions":          TokenDurativeActions,
	":durative-inequalities":     TokenDurativeInequalities,
	":continuous-effects":        TokenContinuousEffects,
	":negative-preconditions":    TokenNegativePreconditions,
	":derived-predicates":        TokenDerivedPredicates,
	":timed-initial-literals":    TokenTimedInitialLiterals,
	":preferences":               TokenPreferences,
	":constraints":               TokenConstraints,
	":action-costs":              TokenActionCosts,
	":goal-utilities":            TokenGoalUtilities,
	":time":                      TokenTime,
}

// requirementTokens maps requirement keyword tokens to the Requirement
// enumeration. The grammar consults this to turn matched tokens into
// capability flags.
var requirementTokens = map[TokenType]types.Requirement{
	TokenStrips:                   types.RequirementStrips,
	TokenTyping:                   types.RequirementTyping,
	TokenDisjunctivePreconditions: types.RequirementDisjunctivePreconditions,
	TokenEquality:                 types.RequirementEquality,
	TokenExistentialPreconditions: types.RequirementExistentialPreconditions,
	TokenUniversalPreconditions:   types.RequirementUniversalPreconditions,
	TokenQuantifiedPreconditions:  types.RequirementQuantifiedPreconditions,
	TokenConditionalEffects:       types.RequirementConditionalEffects,
	TokenActionExpansions:         types.RequirementActionExpansions,
	TokenForeachExpansions:        types.RequirementForeachExpansions,
	TokenDagExpansions:            types.RequirementDagExpansions,
	TokenDomainAxioms:             types.RequirementDomainAxioms,
	TokenSubgoalsThroughAxioms:    types.RequirementSubgoalsThroughAxioms,
	TokenSafetyConstraints:        types.RequirementSafetyConstraints,
	TokenExpressionEvaluation:     types.RequirementExpressionEvaluation,
	TokenFluents:                  types.RequirementFluents,
	TokenOpenWorld:                types.RequirementOpenWorld,
	TokenTrueNegation:             types.RequirementTrueNegation,
	TokenAdl:                      types.RequirementAdl,
	TokenUcpop:                    types.RequirementUcpop,
	TokenNumericFluents:           types.RequirementNumericFluents,
	TokenDurativeActions:          types.RequirementDurativeActions,
	TokenDurativeInequalities:     types.RequirementDurativeInequalities,
	TokenContinuousEffects:        types.RequirementContinuousEffects,
	TokenNegativePreconditions:    types.RequirementNegativePreconditions,
	TokenDerivedPredicates:        types.RequirementDerivedPredicates,
	TokenTimedInitialLiterals:     types.RequirementTimedInitialLiterals,
	TokenPreferences:              types.RequirementPreferences,
	TokenConstraints:              types.RequirementConstraints,
	TokenActionCosts:              types.RequirementActionCosts,
	TokenGoalUtilities:            types.RequirementGoalUtilities,
	TokenTime:                     types.RequirementTime,
}

// tokenNames holds the printable form of punctuation, operator, and
// keyword tokens, derived from the keyword maps at init time.
var tokenNames = map[TokenType]string{
	TokenEOF:          "(eof)",
	TokenError:        "(error)",
	TokenOpenParen:    "(",
	TokenCloseParen:   ")",
	TokenOpenBracket:  "[",
	TokenCloseBracket: "]",
	TokenColon:        ":",
	TokenDash:         "-",
	TokenPlus:         "+",
	TokenTimes:        "*",
	TokenDivide:       "/",
	TokenEqual:        "=",
	TokenID:           "(identifier)",
	TokenVariable:     "(variable)",
	TokenInteger:      "(integer)",
	TokenFloat:        "(float)",
}

// bareKeywordTypes is the set of token types produced from bare keywords.
// Identifier positions accept these, since words like "at" and "over" are
// legal predicate and object names.
var bareKeywordTypes = map[TokenType]bool{}

func init() {
	for word, tt := range bareKeywords {
		tokenNames[tt] = word
		bareKeywordTypes[tt] = true
	}
	for word, tt := range colonKeywords {
		tokenNames[tt] = word
	}
}

// String returns a printable representation of the token type, used in
// error messages.
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "(unknown)"
}

// text returns the token as displayed in diagnostic lookahead: the literal
// value when one exists, otherwise the token type name.
func (t Token) text() string {
	switch t.Type {
	case TokenVariable:
		return "?" + t.Value
	case TokenID, TokenInteger, TokenFloat:
		return t.Value
	default:
		return t.Type.String()
	}
}
