// Package pddl provides a parser and printer for the Planning Domain
// Definition Language.
//
// PDDL documents come in three kinds: domains (types, predicates, and
// actions), problems (objects, initial state, and goal against a domain),
// and plans (ordered action invocations, plain or timestamped). Each kind
// has one parse entry point producing an immutable value tree, and every
// node of the tree renders back to canonical source text.
//
// # Quick Start
//
//	domain, err := pddl.ParseDomain(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(domain.Name)
//	fmt.Println(domain.ToPDDL())
//
// # Scope
//
// The parser accepts the typed STRIPS subset: a domain declaring any
// requirement flag beyond :strips and :typing is rejected at parse time
// with an error naming the flag. The full flag vocabulary from PDDL 1
// through PDDL+ is recognized, so the rejection is always precise.
//
// # More Information
//
// For detailed documentation, see:
//   - Parser: github.com/plankit/pddl/pkg/parser
//   - Types: github.com/plankit/pddl/pkg/types
//   - Cache: github.com/plankit/pddl/pkg/cache
package pddl

import (
	"fmt"

	"github.com/plankit/pddl/pkg/parser"
	"github.com/plankit/pddl/pkg/types"
)

// Version returns the current version of the module.
func Version() string {
	return "v0.1.0-dev"
}

// ParseDomain parses a domain document.
//
// The input must contain exactly one well-formed domain. The returned
// value is never mutated by this package and is safe for concurrent use.
func ParseDomain(input string, opts ...parser.ParseOption) (*types.Domain, error) {
	return parser.ParseDomain(input, opts...)
}

// ParseProblem parses a problem document.
func ParseProblem(input string, opts ...parser.ParseOption) (*types.Problem, error) {
	return parser.ParseProblem(input, opts...)
}

// ParsePlan parses a plan file.
func ParsePlan(input string, opts ...parser.ParseOption) (*types.Plan, error) {
	return parser.ParsePlan(input, opts...)
}

// MustParseDomain is like ParseDomain but panics on error. It simplifies
// initialization of fixture variables.
func MustParseDomain(input string) *types.Domain {
	d, err := ParseDomain(input)
	if err != nil {
		panic(fmt.Sprintf("pddl: ParseDomain: %v", err))
	}
	return d
}
