package types

// Requirement is a capability flag a domain may declare in its
// :requirements block. The enumeration is closed: it covers every flag
// defined from PDDL 1 through PDDL+, whether or not this parser supports
// the semantics behind it.
type Requirement string

const (
	// PDDL 1
	RequirementStrips                   Requirement = "strips"
	RequirementTyping                   Requirement = "typing"
	RequirementDisjunctivePreconditions Requirement = "disjunctive-preconditions"
	RequirementEquality                 Requirement = "equality"
	RequirementExistentialPreconditions Requirement = "existential-preconditions"
	RequirementUniversalPreconditions   Requirement = "universal-preconditions"
	RequirementQuantifiedPreconditions  Requirement = "quantified-preconditions"
	RequirementConditionalEffects       Requirement = "conditional-effects"
	RequirementActionExpansions         Requirement = "action-expansions"
	RequirementForeachExpansions        Requirement = "foreach-expansions"
	RequirementDagExpansions            Requirement = "dag-expansions"
	RequirementDomainAxioms             Requirement = "domain-axioms"
	RequirementSubgoalsThroughAxioms    Requirement = "subgoals-through-axioms"
	RequirementSafetyConstraints        Requirement = "safety-constraints"
	RequirementExpressionEvaluation     Requirement = "expression-evaluation"
	RequirementFluents                  Requirement = "fluents"
	RequirementOpenWorld                Requirement = "open-world"
	RequirementTrueNegation             Requirement = "true-negation"
	RequirementAdl                      Requirement = "adl"
	RequirementUcpop                    Requirement = "ucpop"

	// PDDL 2.1
	RequirementNumericFluents        Requirement = "numeric-fluents"
	RequirementDurativeActions       Requirement = "durative-actions"
	RequirementDurativeInequalities  Requirement = "durative-inequalities"
	RequirementContinuousEffects     Requirement = "continuous-effects"
	RequirementNegativePreconditions Requirement = "negative-preconditions"

	// PDDL 2.2
	RequirementDerivedPredicates    Requirement = "derived-predicates"
	RequirementTimedInitialLiterals Requirement = "timed-initial-literals"

	// PDDL 3
	RequirementPreferences Requirement = "preferences"
	RequirementConstraints Requirement = "constraints"

	// PDDL 3.1
	RequirementActionCosts   Requirement = "action-costs"
	RequirementGoalUtilities Requirement = "goal-utilities"

	// PDDL+
	RequirementTime Requirement = "time"
)

// Supported reports whether this parser accepts the declared capability.
// Only the STRIPS and typing subsets are supported; everything else is
// rejected at parse time so that a consumer never silently misreads a
// domain whose semantics this front end does not model.
func (r Requirement) Supported() bool {
	switch r {
	case RequirementStrips, RequirementTyping:
		return true
	default:
		return false
	}
}

// ToPDDL returns the flag as it appears in source, colon prefix included.
func (r Requirement) ToPDDL() string {
	return ":" + string(r)
}

// String implements fmt.Stringer.
func (r Requirement) String() string {
	return r.ToPDDL()
}
