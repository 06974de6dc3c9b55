package types

import "strings"

// DefaultType is the root of the PDDL type hierarchy, assumed whenever a
// name or parameter is written without an explicit "- type" suffix.
const DefaultType = "object"

// Type constrains a parameter, constant, or object.
//
// A Type is either simple (one name) or an "either" union over one or more
// names. Exactly one of the two shapes is populated; Either is never empty
// for a union because the grammar requires at least one member name.
type Type struct {
	Name   string   `json:"name,omitempty" yaml:"name,omitempty"`
	Either []string `json:"either,omitempty" yaml:"either,omitempty"`
}

// SimpleType creates a simple type constraint.
func SimpleType(name string) Type {
	return Type{Name: name}
}

// EitherType creates a union type constraint.
func EitherType(names ...string) Type {
	return Type{Either: names}
}

// ObjectType returns the default type used when none is declared.
func ObjectType() Type {
	return SimpleType(DefaultType)
}

// IsEither reports whether the type is a union constraint.
func (t Type) IsEither() bool {
	return len(t.Either) > 0
}

// ToPDDL renders the type as source text: a bare name for a simple type,
// an (either ...) form for a union.
func (t Type) ToPDDL() string {
	if t.IsEither() {
		return "(either " + strings.Join(t.Either, " ") + ")"
	}
	return t.Name
}

// TypeDef is one entry of a :types block: a type name and its parent,
// which defaults to "object" when the "- parent" suffix is omitted.
type TypeDef struct {
	Name   string `json:"name" yaml:"name"`
	Parent string `json:"parent" yaml:"parent"`
}

// ToPDDL renders the definition as "name - parent".
func (d TypeDef) ToPDDL() string {
	return d.Name + " - " + d.Parent
}

// TypedParameter binds a variable name to a type. The name is stored
// without the leading question mark; the printer restores it.
type TypedParameter struct {
	Name string `json:"name" yaml:"name"`
	Type Type   `json:"type" yaml:"type"`
}

// ToPDDL renders the parameter as "?name - type".
func (p TypedParameter) ToPDDL() string {
	return "?" + p.Name + " - " + p.Type.ToPDDL()
}

// Constant is one entry of a :constants block.
type Constant struct {
	Name string `json:"name" yaml:"name"`
	Type Type   `json:"type" yaml:"type"`
}

// ToPDDL renders the constant as "name - type".
func (c Constant) ToPDDL() string {
	return c.Name + " - " + c.Type.ToPDDL()
}

// parameterList joins the ToPDDL form of each parameter with spaces.
func parameterList(params []TypedParameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.ToPDDL()
	}
	return strings.Join(parts, " ")
}
