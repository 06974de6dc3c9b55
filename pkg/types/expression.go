package types

import (
	"strconv"
	"strings"
)

// ExprKind identifies the variant of an Expression node.
type ExprKind string

const (
	ExprAtom      ExprKind = "atom"
	ExprAnd       ExprKind = "and"
	ExprNot       ExprKind = "not"
	ExprForall    ExprKind = "forall"
	ExprAssign    ExprKind = "assign"
	ExprIncrease  ExprKind = "increase"
	ExprDecrease  ExprKind = "decrease"
	ExprScaleUp   ExprKind = "scale-up"
	ExprScaleDown ExprKind = "scale-down"
	ExprBinary    ExprKind = "binary"
	ExprNumber    ExprKind = "number"
	ExprDuration  ExprKind = "duration"
)

// BinaryOp is the operator of an ExprBinary node.
type BinaryOp string

const (
	OpAdd      BinaryOp = "+"
	OpSubtract BinaryOp = "-"
	OpMultiply BinaryOp = "*"
	OpDivide   BinaryOp = "/"
	OpEqual    BinaryOp = "="
)

// Instant qualifies when a durative condition or effect applies.
type Instant string

const (
	InstantStart Instant = "start"
	InstantEnd   Instant = "end"
	InstantAll   Instant = "all"
)

// Expression is one node of the recursive condition/effect tree.
//
// A single tagged struct represents every variant; Kind selects which
// fields are meaningful:
//
//	ExprAtom      Name, Args
//	ExprAnd       Children
//	ExprNot       Body
//	ExprForall    Parameters, Body
//	ExprAssign,
//	ExprIncrease,
//	ExprDecrease,
//	ExprScaleUp,
//	ExprScaleDown LHS, RHS
//	ExprBinary    Op, LHS, RHS
//	ExprNumber    Number
//	ExprDuration  Instant, Body
//
// Nodes are immutable once the parser returns them; accessors and the
// printer only read.
type Expression struct {
	Kind ExprKind `json:"kind" yaml:"kind"`

	// Args holds atom arguments as source text: a variable keeps its
	// leading question mark, a constant is a bare name. A fact is ground
	// when no argument starts with '?'.
	Name string   `json:"name,omitempty" yaml:"name,omitempty"`
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`

	Op      BinaryOp `json:"op,omitempty" yaml:"op,omitempty"`
	Number  int64    `json:"number,omitempty" yaml:"number,omitempty"`
	Instant Instant  `json:"instant,omitempty" yaml:"instant,omitempty"`

	Parameters []TypedParameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`

	LHS      *Expression   `json:"lhs,omitempty" yaml:"lhs,omitempty"`
	RHS      *Expression   `json:"rhs,omitempty" yaml:"rhs,omitempty"`
	Body     *Expression   `json:"body,omitempty" yaml:"body,omitempty"`
	Children []*Expression `json:"children,omitempty" yaml:"children,omitempty"`
}

// Constructors. The parser builds every node through these so that each
// variant's field population stays in one place.

func NewAtom(name string, args []string) *Expression {
	return &Expression{Kind: ExprAtom, Name: name, Args: args}
}

func NewAnd(children []*Expression) *Expression {
	return &Expression{Kind: ExprAnd, Children: children}
}

func NewNot(body *Expression) *Expression {
	return &Expression{Kind: ExprNot, Body: body}
}

func NewForall(params []TypedParameter, body *Expression) *Expression {
	return &Expression{Kind: ExprForall, Parameters: params, Body: body}
}

func NewAssignment(kind ExprKind, lhs, rhs *Expression) *Expression {
	return &Expression{Kind: kind, LHS: lhs, RHS: rhs}
}

func NewBinary(op BinaryOp, lhs, rhs *Expression) *Expression {
	return &Expression{Kind: ExprBinary, Op: op, LHS: lhs, RHS: rhs}
}

func NewNumber(n int64) *Expression {
	return &Expression{Kind: ExprNumber, Number: n}
}

func NewDuration(instant Instant, body *Expression) *Expression {
	return &Expression{Kind: ExprDuration, Instant: instant, Body: body}
}

// ToPDDL renders the expression as canonical source text. Whitespace and
// comments of the original input are not reproduced; re-parsing the output
// yields a structurally identical tree.
func (e *Expression) ToPDDL() string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}

func (e *Expression) write(b *strings.Builder) {
	switch e.Kind {
	case ExprAtom:
		b.WriteByte('(')
		b.WriteString(e.Name)
		for _, a := range e.Args {
			b.WriteByte(' ')
			b.WriteString(a)
		}
		b.WriteByte(')')
	case ExprAnd:
		b.WriteString("(and")
		for _, c := range e.Children {
			b.WriteByte(' ')
			c.write(b)
		}
		b.WriteByte(')')
	case ExprNot:
		b.WriteString("(not ")
		e.Body.write(b)
		b.WriteByte(')')
	case ExprForall:
		b.WriteString("(forall (")
		b.WriteString(parameterList(e.Parameters))
		b.WriteString(") ")
		e.Body.write(b)
		b.WriteByte(')')
	case ExprAssign, ExprIncrease, ExprDecrease, ExprScaleUp, ExprScaleDown:
		b.WriteByte('(')
		b.WriteString(string(e.Kind))
		b.WriteByte(' ')
		e.LHS.write(b)
		b.WriteByte(' ')
		e.RHS.write(b)
		b.WriteByte(')')
	case ExprBinary:
		b.WriteByte('(')
		b.WriteString(string(e.Op))
		b.WriteByte(' ')
		e.LHS.write(b)
		b.WriteByte(' ')
		e.RHS.write(b)
		b.WriteByte(')')
	case ExprNumber:
		b.WriteString(strconv.FormatInt(e.Number, 10))
	case ExprDuration:
		switch e.Instant {
		case InstantAll:
			b.WriteString("(over all ")
		case InstantEnd:
			b.WriteString("(at end ")
		default:
			b.WriteString("(at start ")
		}
		e.Body.write(b)
		b.WriteByte(')')
	}
}

// String implements fmt.Stringer.
func (e *Expression) String() string {
	return e.ToPDDL()
}
