package parser

import "github.com/plankit/pddl/pkg/types"

// The condition/effect expression grammar. Alternatives are tried in a
// fixed order: and, not, atom, the assignment family, duration qualifiers,
// forall, comparison. Every branch begins with an opening parenthesis and
// fails before consuming past it, so the order only decides which branch
// claims an input both could match.

func (p *parser) expression(s TokenStream) (TokenStream, *types.Expression, error) {
	p.enter("expression", s)
	return alt(
		p.andExpr,
		p.notExpr,
		p.atom,
		p.assignmentExpr(TokenAssign, types.ExprAssign),
		p.assignmentExpr(TokenScaleUp, types.ExprScaleUp),
		p.assignmentExpr(TokenScaleDown, types.ExprScaleDown),
		p.assignmentExpr(TokenIncrease, types.ExprIncrease),
		p.assignmentExpr(TokenDecrease, types.ExprDecrease),
		p.durationExpr,
		p.forallExpr,
		p.comparison,
	)(s)
}

// andExpr parses "(and expression*)".
func (p *parser) andExpr(s TokenStream) (TokenStream, *types.Expression, error) {
	p.enter("and", s)
	return mapv(
		delimited(
			exact(TokenOpenParen),
			preceded(exact(TokenAnd), many0(p.expression)),
			exact(TokenCloseParen),
		),
		types.NewAnd,
	)(s)
}

// notExpr parses "(not expression)".
func (p *parser) notExpr(s TokenStream) (TokenStream, *types.Expression, error) {
	p.enter("not", s)
	return mapv(
		delimited(
			exact(TokenOpenParen),
			preceded(exact(TokenNot), p.expression),
			exact(TokenCloseParen),
		),
		types.NewNot,
	)(s)
}

// atom parses "(name term*)" where each term is a bare name or a
// variable. Each argument is recorded as its source text, so a variable
// keeps its question mark and never aliases a constant of the same name.
func (p *parser) atom(s TokenStream) (TokenStream, *types.Expression, error) {
	p.enter("atom", s)
	return mapv(
		delimited(
			exact(TokenOpenParen),
			pair(ident, many0(term)),
			exact(TokenCloseParen),
		),
		func(v pairOf[string, []string]) *types.Expression {
			return types.NewAtom(v.a, v.b)
		},
	)(s)
}

// assignmentExpr builds the parser for one member of the assignment
// family: "(op operand operand)" producing the given node kind.
func (p *parser) assignmentExpr(tt TokenType, kind types.ExprKind) parserFn[*types.Expression] {
	return func(s TokenStream) (TokenStream, *types.Expression, error) {
		p.enter(string(kind), s)
		return mapv(
			delimited(
				exact(TokenOpenParen),
				preceded(exact(tt), pair(p.operand, p.operand)),
				exact(TokenCloseParen),
			),
			func(v pairOf[*types.Expression, *types.Expression]) *types.Expression {
				return types.NewAssignment(kind, v.a, v.b)
			},
		)(s)
	}
}

// operand parses the argument position of assignment and comparison
// forms: a number literal, a nested comparison, or an atom.
func (p *parser) operand(s TokenStream) (TokenStream, *types.Expression, error) {
	return alt(p.number, p.comparison, p.atom)(s)
}

// number parses an integer literal operand.
func (p *parser) number(s TokenStream) (TokenStream, *types.Expression, error) {
	return mapv(integer, types.NewNumber)(s)
}

// comparison parses "(op operand operand)" over the binary operators
// + - * / =.
func (p *parser) comparison(s TokenStream) (TokenStream, *types.Expression, error) {
	p.enter("comparison", s)
	return mapv(
		delimited(
			exact(TokenOpenParen),
			pair(binaryOperator, pair(p.operand, p.operand)),
			exact(TokenCloseParen),
		),
		func(v pairOf[types.BinaryOp, pairOf[*types.Expression, *types.Expression]]) *types.Expression {
			return types.NewBinary(v.a, v.b.a, v.b.b)
		},
	)(s)
}

// binaryOperator parses one of the binary operator tokens.
func binaryOperator(s TokenStream) (TokenStream, types.BinaryOp, error) {
	return alt(
		mapv(exact(TokenPlus), func(Token) types.BinaryOp { return types.OpAdd }),
		mapv(exact(TokenDash), func(Token) types.BinaryOp { return types.OpSubtract }),
		mapv(exact(TokenTimes), func(Token) types.BinaryOp { return types.OpMultiply }),
		mapv(exact(TokenDivide), func(Token) types.BinaryOp { return types.OpDivide }),
		mapv(exact(TokenEqual), func(Token) types.BinaryOp { return types.OpEqual }),
	)(s)
}

// durationExpr parses the time qualifiers "(at start e)", "(at end e)",
// and "(over all e)" wrapping conditions and effects of durative actions.
func (p *parser) durationExpr(s TokenStream) (TokenStream, *types.Expression, error) {
	p.enter("duration", s)
	at := preceded(exact(TokenAt), pair(
		alt(
			mapv(exact(TokenStart), func(Token) types.Instant { return types.InstantStart }),
			mapv(exact(TokenEnd), func(Token) types.Instant { return types.InstantEnd }),
		),
		p.expression,
	))
	over := preceded(exact(TokenOver), pair(
		mapv(exact(TokenAll), func(Token) types.Instant { return types.InstantAll }),
		p.expression,
	))
	return mapv(
		delimited(exact(TokenOpenParen), alt(at, over), exact(TokenCloseParen)),
		func(v pairOf[types.Instant, *types.Expression]) *types.Expression {
			return types.NewDuration(v.a, v.b)
		},
	)(s)
}

// forallExpr parses "(forall (typed-parameters) expression)".
func (p *parser) forallExpr(s TokenStream) (TokenStream, *types.Expression, error) {
	p.enter("forall", s)
	return mapv(
		delimited(
			exact(TokenOpenParen),
			preceded(exact(TokenForall), pair(
				delimited(exact(TokenOpenParen), typedParameters, exact(TokenCloseParen)),
				p.expression,
			)),
			exact(TokenCloseParen),
		),
		func(v pairOf[[]types.TypedParameter, *types.Expression]) *types.Expression {
			return types.NewForall(v.a, v.b)
		},
	)(s)
}
