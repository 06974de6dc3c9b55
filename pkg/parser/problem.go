package parser

import "github.com/plankit/pddl/pkg/types"

// The problem document grammar: "(define (problem name) (:domain name)
// objects init goal)".

func (p *parser) problem(s TokenStream) (TokenStream, *types.Problem, error) {
	p.enter("problem", s)
	return delimited(
		exact(TokenOpenParen),
		preceded(exact(TokenDefine), p.problemBody),
		exact(TokenCloseParen),
	)(s)
}

func (p *parser) problemBody(s TokenStream) (TokenStream, *types.Problem, error) {
	rest, name, err := problemName(s)
	if err != nil {
		return s, nil, err
	}
	rest, domain, err := domainRef(rest)
	if err != nil {
		return s, nil, err
	}
	rest, objects, err := objectDefs(rest)
	if err != nil {
		return s, nil, err
	}
	rest, init, err := initSection(p)(rest)
	if err != nil {
		return s, nil, err
	}
	rest, goal, err := delimited(
		exact(TokenOpenParen),
		preceded(exact(TokenGoal), p.expression),
		exact(TokenCloseParen),
	)(rest)
	if err != nil {
		return s, nil, err
	}
	return rest, &types.Problem{
		Name:    name,
		Domain:  domain,
		Objects: objects,
		Init:    init,
		Goal:    goal,
	}, nil
}

// problemName parses "(problem name)".
func problemName(s TokenStream) (TokenStream, string, error) {
	return delimited(
		exact(TokenOpenParen),
		preceded(exact(TokenProblem), ident),
		exact(TokenCloseParen),
	)(s)
}

// domainRef parses "(:domain name)", the reference back to the domain the
// problem is stated against.
func domainRef(s TokenStream) (TokenStream, string, error) {
	return delimited(
		exact(TokenOpenParen),
		preceded(exact(TokenProblemDomain), ident),
		exact(TokenCloseParen),
	)(s)
}

// objectDefs parses "(:objects (name+ (- type)?)*)" with the usual group
// fan-out and "object" default.
func objectDefs(s TokenStream) (TokenStream, []types.Object, error) {
	group := pair(many1(ident), opt(preceded(exact(TokenDash), typeRef)))
	rest, groups, err := delimited(
		exact(TokenOpenParen),
		preceded(exact(TokenObjects), many0(group)),
		exact(TokenCloseParen),
	)(s)
	if err != nil {
		return s, nil, err
	}
	var objects []types.Object
	for _, g := range groups {
		t := types.ObjectType()
		if g.b != nil {
			t = *g.b
		}
		for _, name := range g.a {
			objects = append(objects, types.Object{Name: name, Type: t})
		}
	}
	return rest, objects, nil
}

// initSection parses "(:init expression*)". The entries are conventionally
// ground atoms, but any expression form is accepted.
func initSection(p *parser) parserFn[[]*types.Expression] {
	return delimited(
		exact(TokenOpenParen),
		preceded(exact(TokenInit), many0(p.expression)),
		exact(TokenCloseParen),
	)
}
