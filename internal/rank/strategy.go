package rank

// Strategy selects the weighted formula that combines factor scores
// into one priority. The zero value is SmartBalance, which is also the
// fallback for unrecognized names.
type Strategy int

const (
	SmartBalance Strategy = iota
	FastestWins
	HighImpact
	DeadlineDriven
)

// Fixed per-strategy weights.
const (
	fastestWinsEffortWeight     = 0.7
	fastestWinsUrgencyWeight    = 0.2
	fastestWinsImportanceWeight = 0.1

	deadlineDrivenUrgencyWeight    = 0.7
	deadlineDrivenImportanceWeight = 0.3

	highImpactImportanceWeight = 1.0
)

// ParseStrategy maps a strategy name to a Strategy. Unknown names fall
// back to SmartBalance rather than erroring.
func ParseStrategy(name string) Strategy {
	switch name {
	case "fastest_wins":
		return FastestWins
	case "high_impact":
		return HighImpact
	case "deadline_driven":
		return DeadlineDriven
	default:
		return SmartBalance
	}
}

// String returns the wire name of the strategy.
func (s Strategy) String() string {
	switch s {
	case FastestWins:
		return "fastest_wins"
	case HighImpact:
		return "high_impact"
	case DeadlineDriven:
		return "deadline_driven"
	default:
		return "smart_balance"
	}
}

// leadPhrase is the strategy-specific opening of each explanation.
func (s Strategy) leadPhrase() string {
	switch s {
	case FastestWins:
		return "prioritized quick wins (low effort)"
	case HighImpact:
		return "prioritized high importance"
	case DeadlineDriven:
		return "prioritized close deadlines"
	default:
		return "balanced importance, urgency, effort, and dependencies"
	}
}

// Weights configures the smart_balance formula. Factor scores are on
// the 0–10 scale; the dependents count is a raw small integer and is
// not rescaled.
type Weights struct {
	Importance   float64
	Urgency      float64
	Effort       float64
	Dependencies float64
}

// DefaultSmartWeights returns the smart_balance defaults by value, so
// callers can never mutate the shared configuration.
func DefaultSmartWeights() Weights {
	return Weights{
		Importance:   0.4,
		Urgency:      0.3,
		Effort:       0.2,
		Dependencies: 0.1,
	}
}

// MergeWeights overlays caller-supplied weight values on the defaults.
// Keys use the wire names importance, urgency, effort, dependencies;
// unrecognized keys are ignored and omitted keys keep their defaults.
func MergeWeights(overrides map[string]float64) Weights {
	w := DefaultSmartWeights()
	for key, value := range overrides {
		switch key {
		case "importance":
			w.Importance = value
		case "urgency":
			w.Urgency = value
		case "effort":
			w.Effort = value
		case "dependencies":
			w.Dependencies = value
		}
	}
	return w
}

// score applies the strategy formula to the factor sub-scores at full
// precision. Rounding happens only at the output boundary.
func (s Strategy) score(importance, urgency, effort float64, dependents int, w Weights) float64 {
	switch s {
	case FastestWins:
		return fastestWinsEffortWeight*effort +
			fastestWinsUrgencyWeight*urgency +
			fastestWinsImportanceWeight*importance
	case HighImpact:
		return highImpactImportanceWeight * importance
	case DeadlineDriven:
		return deadlineDrivenUrgencyWeight*urgency +
			deadlineDrivenImportanceWeight*importance
	default:
		return w.Importance*importance +
			w.Urgency*urgency +
			w.Effort*effort +
			w.Dependencies*float64(dependents)
	}
}
