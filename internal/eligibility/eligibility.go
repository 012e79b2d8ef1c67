// Package eligibility evaluates whether a team's accepted-member count
// satisfies an event's size constraints.
//
// Evaluation is a pure function over a count the caller has already read;
// it never touches the store, so it is safe to call from any context.
package eligibility

// Result describes a team's eligibility for a specific event.
type Result struct {
	Eligible      bool `json:"eligible"`
	AcceptedCount int  `json:"accepted_count"`
	Min           int  `json:"min"`
	Max           int  `json:"max"`
}

// Evaluate returns the eligibility of a team with acceptedCount accepted
// members against the inclusive [min, max] bound.
func Evaluate(acceptedCount, min, max int) Result {
	return Result{
		Eligible:      acceptedCount >= min && acceptedCount <= max,
		AcceptedCount: acceptedCount,
		Min:           min,
		Max:           max,
	}
}
