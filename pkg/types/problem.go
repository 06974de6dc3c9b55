package types

import "strings"

// Object is one entry of a problem's :objects block: a constant-like name
// with a type, defaulting to "object" when none is written.
type Object struct {
	Name string `json:"name" yaml:"name"`
	Type Type   `json:"type" yaml:"type"`
}

// ToPDDL renders the object as "name - type".
func (o Object) ToPDDL() string {
	return o.Name + " - " + o.Type.ToPDDL()
}

// Problem is a parsed problem document: the objects, initial state, and
// goal for a named domain.
type Problem struct {
	Name    string        `json:"name" yaml:"name"`
	Domain  string        `json:"domain" yaml:"domain"`
	Objects []Object      `json:"objects,omitempty" yaml:"objects,omitempty"`
	Init    []*Expression `json:"init,omitempty" yaml:"init,omitempty"`
	Goal    *Expression   `json:"goal" yaml:"goal"`
}

// ToPDDL renders the whole problem as canonical source text.
func (p *Problem) ToPDDL() string {
	var b strings.Builder
	b.WriteString("(define (problem ")
	b.WriteString(p.Name)
	b.WriteString(")\n(:domain ")
	b.WriteString(p.Domain)
	b.WriteString(")\n(:objects\n")
	for _, o := range p.Objects {
		b.WriteString("  ")
		b.WriteString(o.ToPDDL())
		b.WriteByte('\n')
	}
	b.WriteString(")\n(:init\n")
	for _, e := range p.Init {
		b.WriteString("  ")
		b.WriteString(e.ToPDDL())
		b.WriteByte('\n')
	}
	b.WriteString(")\n(:goal ")
	b.WriteString(p.Goal.ToPDDL())
	b.WriteString(")\n)")
	return b.String()
}
