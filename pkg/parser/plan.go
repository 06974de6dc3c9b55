package parser

import "github.com/plankit/pddl/pkg/types"

// The plan file grammar. A plan is either a sequence of durative lines
//
//	0.000: (name args) [100.000]
//
// or a sequence of bare invocations
//
//	(name args)
//
// The choice is made once for the whole document: the durative grammar is
// tried against the entire input first, and the simple grammar only when
// that attempt does not consume everything. A file mixing both line
// shapes is rejected rather than given invented semantics.

func (p *parser) plan(s TokenStream) (TokenStream, *types.Plan, error) {
	p.enter("plan", s)
	durRest, durItems, err := many0(p.durativePlanCall)(s)
	if err == nil && len(durItems) > 0 && durRest.IsEmpty() {
		return durRest, &types.Plan{Items: durItems}, nil
	}
	rest, items, err := many0(p.simplePlanCall)(s)
	if err != nil {
		return s, nil, err
	}
	// When neither grammar covers the whole document, hand back the
	// attempt that consumed further so the leftover is reported at the
	// first offending line instead of the start of the input.
	if len(durItems) > 0 && durRest.Len() < rest.Len() {
		return durRest, &types.Plan{Items: durItems}, nil
	}
	return rest, &types.Plan{Items: items}, nil
}

// simplePlanCall parses "(name term*)".
func (p *parser) simplePlanCall(s TokenStream) (TokenStream, types.PlanItem, error) {
	return mapv(
		delimited(
			exact(TokenOpenParen),
			pair(ident, many0(term)),
			exact(TokenCloseParen),
		),
		func(v pairOf[string, []string]) types.PlanItem {
			return types.PlanItem{Simple: &types.PlanCall{Name: v.a, Args: v.b}}
		},
	)(s)
}

// durativePlanCall parses "timestamp: (name term*) [duration]".
func (p *parser) durativePlanCall(s TokenStream) (TokenStream, types.PlanItem, error) {
	var zero types.PlanItem
	rest, timestamp, err := float(s)
	if err != nil {
		return s, zero, err
	}
	rest, _, err = exact(TokenColon)(rest)
	if err != nil {
		return s, zero, err
	}
	rest, call, err := delimited(
		exact(TokenOpenParen),
		pair(ident, many0(alt(ident, variable))),
		exact(TokenCloseParen),
	)(rest)
	if err != nil {
		return s, zero, err
	}
	rest, duration, err := delimited(
		exact(TokenOpenBracket),
		float,
		exact(TokenCloseBracket),
	)(rest)
	if err != nil {
		return s, zero, err
	}
	return rest, types.PlanItem{Durative: &types.DurativePlanCall{
		Name:      call.a,
		Args:      call.b,
		Timestamp: timestamp,
		Duration:  duration,
	}}, nil
}
