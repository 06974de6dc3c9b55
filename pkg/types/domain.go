// Package types defines the value tree produced by the PDDL parser.
//
// This package contains:
//   - Domain, Problem, Plan: the three top-level document values
//   - Expression: the recursive condition/effect tree
//   - Requirement, Type, TypedParameter and friends: declaration records
//   - Error: the closed error model shared by every layer
//
// Every value is created exactly once, by the grammar production
// responsible for its syntactic form, and is never mutated afterwards.
// Each node exposes a ToPDDL printer whose output re-parses to a
// structurally equal value. Nodes also carry json and yaml struct tags so
// that a parsed document can be dumped to either format unchanged.
package types

import "strings"

// TypedPredicate is a predicate or function signature: a name plus typed
// parameters.
type TypedPredicate struct {
	Name       string           `json:"name" yaml:"name"`
	Parameters []TypedParameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// ToPDDL renders the signature as "(name ?p - type ...)".
func (p TypedPredicate) ToPDDL() string {
	if len(p.Parameters) == 0 {
		return "(" + p.Name + ")"
	}
	return "(" + p.Name + " " + parameterList(p.Parameters) + ")"
}

// SimpleAction is an instantaneous action: an optional precondition and an
// effect over typed parameters.
type SimpleAction struct {
	Name         string           `json:"name" yaml:"name"`
	Parameters   []TypedParameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Precondition *Expression      `json:"precondition,omitempty" yaml:"precondition,omitempty"`
	Effect       *Expression      `json:"effect" yaml:"effect"`
}

// ToPDDL renders the action block, one clause per line.
func (a *SimpleAction) ToPDDL() string {
	var b strings.Builder
	b.WriteString("(:action ")
	b.WriteString(a.Name)
	b.WriteString("\n:parameters (")
	b.WriteString(parameterList(a.Parameters))
	b.WriteString(")\n")
	if a.Precondition != nil {
		b.WriteString(":precondition ")
		b.WriteString(a.Precondition.ToPDDL())
		b.WriteByte('\n')
	}
	b.WriteString(":effect ")
	b.WriteString(a.Effect.ToPDDL())
	b.WriteString("\n)")
	return b.String()
}

// DurativeAction is an action with an explicit duration and time-qualified
// condition and effect.
type DurativeAction struct {
	Name       string           `json:"name" yaml:"name"`
	Parameters []TypedParameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Duration   *Expression      `json:"duration" yaml:"duration"`
	Condition  *Expression      `json:"condition,omitempty" yaml:"condition,omitempty"`
	Effect     *Expression      `json:"effect" yaml:"effect"`
}

// ToPDDL renders the durative action block, one clause per line.
func (a *DurativeAction) ToPDDL() string {
	var b strings.Builder
	b.WriteString("(:durative-action ")
	b.WriteString(a.Name)
	b.WriteString("\n:parameters (")
	b.WriteString(parameterList(a.Parameters))
	b.WriteString(")\n:duration ")
	b.WriteString(a.Duration.ToPDDL())
	b.WriteByte('\n')
	if a.Condition != nil {
		b.WriteString(":condition ")
		b.WriteString(a.Condition.ToPDDL())
		b.WriteByte('\n')
	}
	b.WriteString(":effect ")
	b.WriteString(a.Effect.ToPDDL())
	b.WriteString("\n)")
	return b.String()
}

// Action is either a SimpleAction or a DurativeAction; exactly one field
// is non-nil.
type Action struct {
	Simple   *SimpleAction   `json:"simple,omitempty" yaml:"simple,omitempty"`
	Durative *DurativeAction `json:"durative,omitempty" yaml:"durative,omitempty"`
}

// Name returns the action name regardless of variant.
func (a Action) Name() string {
	if a.Durative != nil {
		return a.Durative.Name
	}
	return a.Simple.Name
}

// Parameters returns the typed parameters regardless of variant.
func (a Action) Parameters() []TypedParameter {
	if a.Durative != nil {
		return a.Durative.Parameters
	}
	return a.Simple.Parameters
}

// Precondition returns the precondition of a simple action or the
// condition of a durative one; nil when absent.
func (a Action) Precondition() *Expression {
	if a.Durative != nil {
		return a.Durative.Condition
	}
	return a.Simple.Precondition
}

// Effect returns the effect regardless of variant.
func (a Action) Effect() *Expression {
	if a.Durative != nil {
		return a.Durative.Effect
	}
	return a.Simple.Effect
}

// ToPDDL renders whichever variant is present.
func (a Action) ToPDDL() string {
	if a.Durative != nil {
		return a.Durative.ToPDDL()
	}
	return a.Simple.ToPDDL()
}

// Domain is a parsed domain document: the types, predicates, functions,
// and actions available to problems that reference it.
type Domain struct {
	Name         string           `json:"name" yaml:"name"`
	Requirements []Requirement    `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	Types        []TypeDef        `json:"types,omitempty" yaml:"types,omitempty"`
	Constants    []Constant       `json:"constants,omitempty" yaml:"constants,omitempty"`
	Predicates   []TypedPredicate `json:"predicates" yaml:"predicates"`
	Functions    []TypedPredicate `json:"functions,omitempty" yaml:"functions,omitempty"`
	Actions      []Action         `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// ToPDDL renders the whole domain as canonical source text.
// Optional blocks that are empty are omitted; the mandatory :predicates
// block is always printed so that the output re-parses.
func (d *Domain) ToPDDL() string {
	var b strings.Builder
	b.WriteString("(define (domain ")
	b.WriteString(d.Name)
	b.WriteString(")\n")
	if len(d.Requirements) > 0 {
		b.WriteString("(:requirements")
		for _, r := range d.Requirements {
			b.WriteByte(' ')
			b.WriteString(r.ToPDDL())
		}
		b.WriteString(")\n")
	}
	if len(d.Types) > 0 {
		b.WriteString("(:types\n")
		for _, t := range d.Types {
			b.WriteString("  ")
			b.WriteString(t.ToPDDL())
			b.WriteByte('\n')
		}
		b.WriteString(")\n")
	}
	if len(d.Constants) > 0 {
		b.WriteString("(:constants\n")
		for _, c := range d.Constants {
			b.WriteString("  ")
			b.WriteString(c.ToPDDL())
			b.WriteByte('\n')
		}
		b.WriteString(")\n")
	}
	b.WriteString("(:predicates\n")
	for _, p := range d.Predicates {
		b.WriteString("  ")
		b.WriteString(p.ToPDDL())
		b.WriteByte('\n')
	}
	b.WriteString(")\n")
	if len(d.Functions) > 0 {
		b.WriteString("(:functions\n")
		for _, f := range d.Functions {
			b.WriteString("  ")
			b.WriteString(f.ToPDDL())
			b.WriteByte('\n')
		}
		b.WriteString(")\n")
	}
	for _, a := range d.Actions {
		b.WriteString(a.ToPDDL())
		b.WriteByte('\n')
	}
	b.WriteString(")")
	return b.String()
}
