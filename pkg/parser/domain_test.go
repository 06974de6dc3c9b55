package parser

import (
	"errors"
	"os"
	"reflect"
	"testing"

	"github.com/plankit/pddl/pkg/types"
)

func readFixture(t testing.TB, name string) string {
	t.Helper()
	src, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("fixture %s: %v", name, err)
	}
	return string(src)
}

func TestParseDomainMinimal(t *testing.T) {
	src := `(define (domain blocks)
	  (:requirements :strips :typing)
	  (:predicates (on ?x ?y) (clear ?x)))`

	d, err := ParseDomain(src)
	if err != nil {
		t.Fatalf("ParseDomain failed: %v", err)
	}
	if d.Name != "blocks" {
		t.Errorf("name = %q, want blocks", d.Name)
	}
	want := []types.Requirement{types.RequirementStrips, types.RequirementTyping}
	if !reflect.DeepEqual(d.Requirements, want) {
		t.Errorf("requirements = %v, want %v", d.Requirements, want)
	}
	if len(d.Predicates) != 2 {
		t.Fatalf("predicates = %d, want 2", len(d.Predicates))
	}
	// Untyped predicate parameters default to "object".
	on := d.Predicates[0]
	if on.Name != "on" || len(on.Parameters) != 2 {
		t.Fatalf("first predicate = %+v", on)
	}
	if !reflect.DeepEqual(on.Parameters[0].Type, types.ObjectType()) {
		t.Errorf("parameter type = %v, want object", on.Parameters[0].Type)
	}
}

func TestParseDomainUnsupportedRequirement(t *testing.T) {
	src := `(define (domain blocks)
	  (:requirements :strips :typing :fluents)
	  (:predicates (on ?x ?y)))`

	_, err := ParseDomain(src)
	if err == nil {
		t.Fatal("expected the requirement gate to reject :fluents")
	}
	var perr *types.Error
	if !errors.As(err, &perr) {
		t.Fatalf("error %v is not a *types.Error", err)
	}
	if perr.Code != types.ErrUnsupportedRequirement {
		t.Fatalf("code = %s, want %s", perr.Code, types.ErrUnsupportedRequirement)
	}
	if perr.Requirement != types.RequirementFluents {
		t.Fatalf("requirement = %s, want fluents", perr.Requirement)
	}
}

func TestParseDomainRequirementGateCoversAllFlags(t *testing.T) {
	// Every flag outside the supported pair must be rejected.
	flags := []string{
		":disjunctive-preconditions", ":equality", ":adl", ":numeric-fluents",
		":durative-actions", ":derived-predicates", ":preferences",
		":action-costs", ":time",
	}
	for _, flag := range flags {
		src := `(define (domain d) (:requirements ` + flag + `) (:predicates (p)))`
		_, err := ParseDomain(src)
		var perr *types.Error
		if !errors.As(err, &perr) || perr.Code != types.ErrUnsupportedRequirement {
			t.Errorf("flag %s: error = %v, want unsupported-requirement", flag, err)
		}
	}
}

func TestParseDomainTypedParameterFanOut(t *testing.T) {
	src := `(define (domain fan)
	  (:predicates (p ?a ?b - foo ?c - (either bar baz))))`

	d, err := ParseDomain(src)
	if err != nil {
		t.Fatalf("ParseDomain failed: %v", err)
	}
	got := d.Predicates[0].Parameters
	want := []types.TypedParameter{
		{Name: "a", Type: types.SimpleType("foo")},
		{Name: "b", Type: types.SimpleType("foo")},
		{Name: "c", Type: types.EitherType("bar", "baz")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parameters = %v, want %v", got, want)
	}
}

func TestParseDomainTypesAndConstants(t *testing.T) {
	src := `(define (domain typed)
	  (:types truck plane - vehicle vehicle - object city)
	  (:constants home office - city red - color)
	  (:predicates (in ?v - vehicle ?c - city)))`

	d, err := ParseDomain(src)
	if err != nil {
		t.Fatalf("ParseDomain failed: %v", err)
	}
	wantTypes := []types.TypeDef{
		{Name: "truck", Parent: "vehicle"},
		{Name: "plane", Parent: "vehicle"},
		{Name: "vehicle", Parent: "object"},
		{Name: "city", Parent: "object"},
	}
	if !reflect.DeepEqual(d.Types, wantTypes) {
		t.Errorf("types = %v, want %v", d.Types, wantTypes)
	}
	wantConstants := []types.Constant{
		{Name: "home", Type: types.SimpleType("city")},
		{Name: "office", Type: types.SimpleType("city")},
		{Name: "red", Type: types.SimpleType("color")},
	}
	if !reflect.DeepEqual(d.Constants, wantConstants) {
		t.Errorf("constants = %v, want %v", d.Constants, wantConstants)
	}
}

func TestParseDomainLetseat(t *testing.T) {
	d, err := ParseDomain(readFixture(t, "domain.pddl"))
	if err != nil {
		t.Fatalf("ParseDomain failed: %v", err)
	}
	if d.Name != "letseat" {
		t.Errorf("name = %q, want letseat", d.Name)
	}
	if len(d.Actions) != 3 {
		t.Fatalf("actions = %d, want 3", len(d.Actions))
	}
	names := []string{d.Actions[0].Name(), d.Actions[1].Name(), d.Actions[2].Name()}
	want := []string{"pick-up", "drop", "move"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("action names = %v, want %v", names, want)
	}
	for _, a := range d.Actions {
		if a.Precondition() == nil {
			t.Errorf("action %s has no precondition", a.Name())
		}
		if len(a.Parameters()) != 3 {
			t.Errorf("action %s has %d parameters, want 3", a.Name(), len(a.Parameters()))
		}
	}
}

func TestParseDomainDurative(t *testing.T) {
	d, err := ParseDomain(readFixture(t, "durative-domain.pddl"))
	if err != nil {
		t.Fatalf("ParseDomain failed: %v", err)
	}
	if len(d.Actions) != 1 || d.Actions[0].Durative == nil {
		t.Fatalf("want exactly one durative action, got %+v", d.Actions)
	}
	carry := d.Actions[0].Durative
	if carry.Name != "carry" {
		t.Errorf("name = %q, want carry", carry.Name)
	}
	if carry.Duration == nil || carry.Duration.Kind != types.ExprBinary {
		t.Errorf("duration = %v, want a comparison", carry.Duration)
	}
	if carry.Condition == nil || carry.Condition.Kind != types.ExprAnd {
		t.Fatalf("condition = %v, want a conjunction", carry.Condition)
	}
	first := carry.Condition.Children[0]
	if first.Kind != types.ExprDuration || first.Instant != types.InstantStart {
		t.Errorf("first condition = %v, want an at-start qualifier", first)
	}
	if len(d.Functions) != 1 || d.Functions[0].Name != "effort" {
		t.Errorf("functions = %v, want effort", d.Functions)
	}
}

func TestParseDomainRoundTrip(t *testing.T) {
	fixtures := []string{"domain.pddl", "durative-domain.pddl"}
	for _, name := range fixtures {
		first, err := ParseDomain(readFixture(t, name))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		printed := first.ToPDDL()
		second, err := ParseDomain(printed)
		if err != nil {
			t.Fatalf("%s: re-parse of printed output failed: %v\n%s", name, err, printed)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: round trip changed the domain", name)
		}
		if again := second.ToPDDL(); again != printed {
			t.Errorf("%s: printing is not idempotent", name)
		}
	}
}

func TestParseDomainLeftoverInput(t *testing.T) {
	src := `(define (domain d) (:predicates (p))) trailing`
	_, err := ParseDomain(src)
	var perr *types.Error
	if !errors.As(err, &perr) || perr.Code != types.ErrExpectedEndOfInput {
		t.Fatalf("error = %v, want expected-end-of-input", err)
	}
}

func TestParseDomainTrace(t *testing.T) {
	var productions []string
	_, err := ParseDomain(
		`(define (domain d) (:predicates (p ?x)))`,
		WithTrace(func(production string, offset int) {
			productions = append(productions, production)
		}),
	)
	if err != nil {
		t.Fatalf("ParseDomain failed: %v", err)
	}
	if len(productions) == 0 || productions[0] != "domain" {
		t.Fatalf("trace = %v, want it to start with the domain production", productions)
	}
}

func BenchmarkParseDomain(b *testing.B) {
	src := readFixture(b, "domain.pddl")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ParseDomain(src); err != nil {
			b.Fatal(err)
		}
	}
}
