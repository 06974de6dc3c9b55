package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/plankit/pddl/pkg/types"
)

func TestParsePlanSimple(t *testing.T) {
	p, err := ParsePlan(readFixture(t, "plan.txt"))
	if err != nil {
		t.Fatalf("ParsePlan failed: %v", err)
	}
	if p.Len() != 3 {
		t.Fatalf("plan length = %d, want 3", p.Len())
	}
	want := types.PlanItem{Simple: &types.PlanCall{
		Name: "pick-up",
		Args: []string{"arm", "cupcake", "table"},
	}}
	if !reflect.DeepEqual(p.Items[0], want) {
		t.Errorf("first item = %v, want %v", p.Items[0], want)
	}
	for i, item := range p.Items {
		if item.Durative != nil {
			t.Errorf("item %d parsed as durative", i)
		}
	}
}

func TestParsePlanDurative(t *testing.T) {
	p, err := ParsePlan(readFixture(t, "durative-plan.txt"))
	if err != nil {
		t.Fatalf("ParsePlan failed: %v", err)
	}
	if p.Len() != 4 {
		t.Fatalf("plan length = %d, want 4", p.Len())
	}
	want := types.PlanItem{Durative: &types.DurativePlanCall{
		Name:      "grasp-folded-garment",
		Args:      []string{"towel-01", "robot-01"},
		Timestamp: 0,
		Duration:  100,
	}}
	if !reflect.DeepEqual(p.Items[0], want) {
		t.Errorf("first item = %v, want %v", p.Items[0], want)
	}
	if got := p.Items[2].Durative; got.Timestamp != 136.002 || got.Duration != 52.5 {
		t.Errorf("third item timing = %v/%v, want 136.002/52.5", got.Timestamp, got.Duration)
	}
}

func TestParsePlanDurativeIntegerTimestamps(t *testing.T) {
	// Timestamps and durations without a decimal point are accepted.
	p, err := ParsePlan("5: (step one) [10]")
	if err != nil {
		t.Fatalf("ParsePlan failed: %v", err)
	}
	d := p.Items[0].Durative
	if d == nil || d.Timestamp != 5 || d.Duration != 10 {
		t.Fatalf("item = %+v, want durative 5/10", p.Items[0])
	}
}

func TestParsePlanEmpty(t *testing.T) {
	for _, input := range []string{"", "  \n", "; just a comment\n"} {
		p, err := ParsePlan(input)
		if err != nil {
			t.Errorf("ParsePlan(%q) failed: %v", input, err)
			continue
		}
		if p.Len() != 0 {
			t.Errorf("ParsePlan(%q) = %d items, want 0", input, p.Len())
		}
	}
}

func TestParsePlanRejectsMixedShapes(t *testing.T) {
	// Neither grammar covers a document mixing line shapes; the leftover
	// is reported at the first line the winning attempt could not parse.
	cases := []struct {
		name   string
		src    string
		offend string
	}{
		{
			name:   "simple then durative",
			src:    "(move a b)\n1.000: (move b c) [2.000]\n",
			offend: "1.000",
		},
		{
			name:   "durative then simple",
			src:    "0.000: (move a b) [1.000]\n(move b c)\n",
			offend: "(move b c)",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePlan(tc.src)
			var perr *types.Error
			if !errors.As(err, &perr) || perr.Code != types.ErrExpectedEndOfInput {
				t.Fatalf("error = %v, want expected-end-of-input", err)
			}
			if want := strings.Index(tc.src, tc.offend); perr.Span.Start != want {
				t.Errorf("span starts at %d, want %d (the offending line)", perr.Span.Start, want)
			}
		})
	}
}

func TestParsePlanRoundTrip(t *testing.T) {
	fixtures := []string{"plan.txt", "durative-plan.txt"}
	for _, name := range fixtures {
		first, err := ParsePlan(readFixture(t, name))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		printed := first.ToPDDL()
		second, err := ParsePlan(printed)
		if err != nil {
			t.Fatalf("%s: re-parse of printed output failed: %v\n%s", name, err, printed)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: round trip changed the plan", name)
		}
		if again := second.ToPDDL(); again != printed {
			t.Errorf("%s: printing is not idempotent", name)
		}
	}
}
