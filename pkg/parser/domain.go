package parser

import (
	"fmt"

	"github.com/plankit/pddl/pkg/types"
)

// The domain document grammar: "(define (domain name) ...)" with the
// section order requirements, types, constants, predicates, functions,
// actions. Only :predicates is mandatory.

func (p *parser) domain(s TokenStream) (TokenStream, *types.Domain, error) {
	p.enter("domain", s)
	return delimited(
		exact(TokenOpenParen),
		preceded(exact(TokenDefine), p.domainBody),
		exact(TokenCloseParen),
	)(s)
}

func (p *parser) domainBody(s TokenStream) (TokenStream, *types.Domain, error) {
	rest, name, err := domainName(s)
	if err != nil {
		return s, nil, err
	}
	rest, requirements, err := requirementSection(rest)
	if err != nil {
		return s, nil, err
	}
	rest, defs, err := opt(typeDefs)(rest)
	if err != nil {
		return s, nil, err
	}
	rest, constants, err := opt(constantDefs)(rest)
	if err != nil {
		return s, nil, err
	}
	rest, predicates, err := signatureSection(TokenPredicates)(rest)
	if err != nil {
		return s, nil, err
	}
	rest, functions, err := opt(signatureSection(TokenFunctions))(rest)
	if err != nil {
		return s, nil, err
	}
	rest, actions, err := many0(p.action)(rest)
	if err != nil {
		return s, nil, err
	}
	d := &types.Domain{
		Name:         name,
		Requirements: requirements,
		Predicates:   predicates,
		Actions:      actions,
	}
	if defs != nil {
		d.Types = *defs
	}
	if constants != nil {
		d.Constants = *constants
	}
	if functions != nil {
		d.Functions = *functions
	}
	return rest, d, nil
}

// domainName parses "(domain name)".
func domainName(s TokenStream) (TokenStream, string, error) {
	return delimited(
		exact(TokenOpenParen),
		preceded(exact(TokenDomain), ident),
		exact(TokenCloseParen),
	)(s)
}

// requirementSection parses an optional "(:requirements :flag*)" section and
// rejects any declared capability outside the supported subset. The
// rejection happens here, during the parse, so an unsupported domain
// never yields a value at all.
func requirementSection(s TokenStream) (TokenStream, []types.Requirement, error) {
	section := delimited(
		exact(TokenOpenParen),
		preceded(exact(TokenRequirements), many0(requirementFlag)),
		exact(TokenCloseParen),
	)
	rest, flags, err := opt(section)(s)
	if err != nil {
		return s, nil, err
	}
	if flags == nil {
		return rest, nil, nil
	}
	for _, r := range *flags {
		if !r.Supported() {
			return s, nil, &types.Error{
				Code:        types.ErrUnsupportedRequirement,
				Message:     fmt.Sprintf("unsupported requirement %s", r.ToPDDL()),
				Span:        s.Span(),
				Requirement: r,
			}
		}
	}
	return rest, *flags, nil
}

// requirementFlag parses one requirement keyword token. The token type
// carries the flag identity, so a single map lookup replaces a
// per-keyword alternation.
func requirementFlag(s TokenStream) (TokenStream, types.Requirement, error) {
	t, err := peek(s)
	if err != nil {
		return s, "", err
	}
	if r, ok := requirementTokens[t.Type]; ok {
		return s.Advance(), r, nil
	}
	return s, "", types.NewError(types.ErrExpectedIdentifier,
		fmt.Sprintf("expected a requirement flag, found %s", t.text()), t.Span())
}

// typeRef parses a type position: a bare name or "(either name+)".
func typeRef(s TokenStream) (TokenStream, types.Type, error) {
	return alt(
		mapv(ident, types.SimpleType),
		mapv(
			delimited(
				exact(TokenOpenParen),
				preceded(exact(TokenEither), many1(ident)),
				exact(TokenCloseParen),
			),
			func(names []string) types.Type { return types.EitherType(names...) },
		),
	)(s)
}

// typeDefs parses "(:types (name+ (- parent)?)*)". Each name group fans
// out to one TypeDef per name; a group without a parent defaults to
// "object".
func typeDefs(s TokenStream) (TokenStream, []types.TypeDef, error) {
	group := pair(many1(ident), opt(preceded(exact(TokenDash), ident)))
	rest, groups, err := delimited(
		exact(TokenOpenParen),
		preceded(exact(TokenTypes), many0(group)),
		exact(TokenCloseParen),
	)(s)
	if err != nil {
		return s, nil, err
	}
	var defs []types.TypeDef
	for _, g := range groups {
		parent := types.DefaultType
		if g.b != nil {
			parent = *g.b
		}
		for _, name := range g.a {
			defs = append(defs, types.TypeDef{Name: name, Parent: parent})
		}
	}
	return rest, defs, nil
}

// constantDefs parses "(:constants (name+ - type)*)" with the same group
// fan-out as typeDefs, but the type annotation is mandatory.
func constantDefs(s TokenStream) (TokenStream, []types.Constant, error) {
	group := separatedPair(many1(ident), exact(TokenDash), typeRef)
	rest, groups, err := delimited(
		exact(TokenOpenParen),
		preceded(exact(TokenConstants), many0(group)),
		exact(TokenCloseParen),
	)(s)
	if err != nil {
		return s, nil, err
	}
	var constants []types.Constant
	for _, g := range groups {
		for _, name := range g.a {
			constants = append(constants, types.Constant{Name: name, Type: g.b})
		}
	}
	return rest, constants, nil
}

// typedParameters parses "(?name+ (- type)?)*" and fans each group out to
// one TypedParameter per variable. A group without a type annotation
// defaults to "object".
func typedParameters(s TokenStream) (TokenStream, []types.TypedParameter, error) {
	group := pair(many1(variable), opt(preceded(exact(TokenDash), typeRef)))
	rest, groups, err := many0(group)(s)
	if err != nil {
		return s, nil, err
	}
	var params []types.TypedParameter
	for _, g := range groups {
		t := types.ObjectType()
		if g.b != nil {
			t = *g.b
		}
		for _, name := range g.a {
			params = append(params, types.TypedParameter{Name: name, Type: t})
		}
	}
	return rest, params, nil
}

// signatureSection parses "(:predicates (name typed-parameters)*)" or the
// :functions section of the same shape.
func signatureSection(section TokenType) parserFn[[]types.TypedPredicate] {
	signature := mapv(
		delimited(
			exact(TokenOpenParen),
			pair(ident, typedParameters),
			exact(TokenCloseParen),
		),
		func(v pairOf[string, []types.TypedParameter]) types.TypedPredicate {
			return types.TypedPredicate{Name: v.a, Parameters: v.b}
		},
	)
	return delimited(
		exact(TokenOpenParen),
		preceded(exact(section), many0(signature)),
		exact(TokenCloseParen),
	)
}

// action parses either action variant.
func (p *parser) action(s TokenStream) (TokenStream, types.Action, error) {
	return alt(p.simpleAction, p.durativeAction)(s)
}

// simpleAction parses "(:action name :parameters (...) [:precondition e]
// :effect e)".
func (p *parser) simpleAction(s TokenStream) (TokenStream, types.Action, error) {
	p.enter("action", s)
	var zero types.Action
	rest, _, err := exact(TokenOpenParen)(s)
	if err != nil {
		return s, zero, err
	}
	rest, _, err = exact(TokenAction)(rest)
	if err != nil {
		return s, zero, err
	}
	rest, name, err := ident(rest)
	if err != nil {
		return s, zero, err
	}
	rest, params, err := parameterSection(rest)
	if err != nil {
		return s, zero, err
	}
	rest, precondition, err := opt(preceded(exact(TokenPrecondition), p.expression))(rest)
	if err != nil {
		return s, zero, err
	}
	rest, effect, err := preceded(exact(TokenEffect), p.expression)(rest)
	if err != nil {
		return s, zero, err
	}
	rest, _, err = exact(TokenCloseParen)(rest)
	if err != nil {
		return s, zero, err
	}
	a := &types.SimpleAction{Name: name, Parameters: params, Effect: effect}
	if precondition != nil {
		a.Precondition = *precondition
	}
	return rest, types.Action{Simple: a}, nil
}

// durativeAction parses "(:durative-action name :parameters (...)
// :duration e [:condition e] :effect e)".
func (p *parser) durativeAction(s TokenStream) (TokenStream, types.Action, error) {
	p.enter("durative-action", s)
	var zero types.Action
	rest, _, err := exact(TokenOpenParen)(s)
	if err != nil {
		return s, zero, err
	}
	rest, _, err = exact(TokenDurativeAction)(rest)
	if err != nil {
		return s, zero, err
	}
	rest, name, err := ident(rest)
	if err != nil {
		return s, zero, err
	}
	rest, params, err := parameterSection(rest)
	if err != nil {
		return s, zero, err
	}
	rest, duration, err := preceded(exact(TokenDuration), p.expression)(rest)
	if err != nil {
		return s, zero, err
	}
	rest, condition, err := opt(preceded(exact(TokenCondition), p.expression))(rest)
	if err != nil {
		return s, zero, err
	}
	rest, effect, err := preceded(exact(TokenEffect), p.expression)(rest)
	if err != nil {
		return s, zero, err
	}
	rest, _, err = exact(TokenCloseParen)(rest)
	if err != nil {
		return s, zero, err
	}
	a := &types.DurativeAction{Name: name, Parameters: params, Duration: duration, Effect: effect}
	if condition != nil {
		a.Condition = *condition
	}
	return rest, types.Action{Durative: a}, nil
}

// parameterSection parses ":parameters ( typed-parameters )".
func parameterSection(s TokenStream) (TokenStream, []types.TypedParameter, error) {
	return preceded(
		exact(TokenParameters),
		delimited(exact(TokenOpenParen), typedParameters, exact(TokenCloseParen)),
	)(s)
}
