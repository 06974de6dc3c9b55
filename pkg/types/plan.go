package types

import (
	"strconv"
	"strings"
)

// PlanCall is one instantaneous action invocation of a plan file.
type PlanCall struct {
	Name string   `json:"name" yaml:"name"`
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`
}

// ToPDDL renders the call as "(name arg ...)".
func (c PlanCall) ToPDDL() string {
	if len(c.Args) == 0 {
		return "(" + c.Name + ")"
	}
	return "(" + c.Name + " " + strings.Join(c.Args, " ") + ")"
}

// DurativePlanCall is one timestamped invocation of a temporal plan file:
// "timestamp: (name arg ...) [duration]".
type DurativePlanCall struct {
	Name      string   `json:"name" yaml:"name"`
	Args      []string `json:"args,omitempty" yaml:"args,omitempty"`
	Timestamp float64  `json:"timestamp" yaml:"timestamp"`
	Duration  float64  `json:"duration" yaml:"duration"`
}

// ToPDDL renders the call in temporal plan line format.
func (c DurativePlanCall) ToPDDL() string {
	call := PlanCall{Name: c.Name, Args: c.Args}.ToPDDL()
	return formatPlanFloat(c.Timestamp) + ": " + call + " [" + formatPlanFloat(c.Duration) + "]"
}

// PlanItem is either a PlanCall or a DurativePlanCall; exactly one field
// is non-nil. A plan never mixes the two shapes: the parser applies one
// grammar to the whole document.
type PlanItem struct {
	Simple   *PlanCall         `json:"simple,omitempty" yaml:"simple,omitempty"`
	Durative *DurativePlanCall `json:"durative,omitempty" yaml:"durative,omitempty"`
}

// Name returns the invoked action name regardless of variant.
func (i PlanItem) Name() string {
	if i.Durative != nil {
		return i.Durative.Name
	}
	return i.Simple.Name
}

// Args returns the invocation arguments regardless of variant.
func (i PlanItem) Args() []string {
	if i.Durative != nil {
		return i.Durative.Args
	}
	return i.Simple.Args
}

// ToPDDL renders whichever variant is present.
func (i PlanItem) ToPDDL() string {
	if i.Durative != nil {
		return i.Durative.ToPDDL()
	}
	return i.Simple.ToPDDL()
}

// Plan is an ordered sequence of action invocations. Order is significant.
type Plan struct {
	Items []PlanItem `json:"items" yaml:"items"`
}

// Actions returns the invocations in plan order.
func (p *Plan) Actions() []PlanItem {
	return p.Items
}

// Len returns the number of invocations.
func (p *Plan) Len() int {
	return len(p.Items)
}

// ToPDDL renders the plan, one invocation per line.
func (p *Plan) ToPDDL() string {
	lines := make([]string, len(p.Items))
	for i, item := range p.Items {
		lines[i] = item.ToPDDL()
	}
	return strings.Join(lines, "\n")
}

// formatPlanFloat renders timestamps and durations with the three decimal
// places conventional in temporal plan files.
func formatPlanFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}
