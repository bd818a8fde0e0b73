package rank

import "testing"

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want Strategy
	}{
		{"fastest_wins", FastestWins},
		{"high_impact", HighImpact},
		{"deadline_driven", DeadlineDriven},
		{"smart_balance", SmartBalance},
		{"", SmartBalance},
		{"FASTEST_WINS", SmartBalance}, // exact match only
		{"bogus", SmartBalance},
	}
	for _, tt := range tests {
		if got := ParseStrategy(tt.name); got != tt.want {
			t.Errorf("ParseStrategy(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStrategyString_RoundTrips(t *testing.T) {
	t.Parallel()

	for _, s := range []Strategy{SmartBalance, FastestWins, HighImpact, DeadlineDriven} {
		if got := ParseStrategy(s.String()); got != s {
			t.Errorf("ParseStrategy(%q) = %v, want %v", s.String(), got, s)
		}
	}
}

func TestMergeWeights(t *testing.T) {
	t.Parallel()

	t.Run("nil keeps defaults", func(t *testing.T) {
		t.Parallel()
		if got := MergeWeights(nil); got != DefaultSmartWeights() {
			t.Errorf("got %+v, want defaults", got)
		}
	})

	t.Run("partial override keeps the rest", func(t *testing.T) {
		t.Parallel()
		got := MergeWeights(map[string]float64{"urgency": 0.9, "dependencies": 0})
		want := Weights{Importance: 0.4, Urgency: 0.9, Effort: 0.2, Dependencies: 0}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("unknown keys ignored", func(t *testing.T) {
		t.Parallel()
		if got := MergeWeights(map[string]float64{"velocity": 3}); got != DefaultSmartWeights() {
			t.Errorf("got %+v, want defaults", got)
		}
	})

	t.Run("defaults are not shared state", func(t *testing.T) {
		t.Parallel()
		w := DefaultSmartWeights()
		w.Importance = 99
		if DefaultSmartWeights().Importance != 0.4 {
			t.Error("mutating a returned Weights changed the defaults")
		}
	})
}

func TestStrategyScore_Formulas(t *testing.T) {
	t.Parallel()

	const (
		importance = 8.0
		urgency    = 6.0
		effort     = 10.0
		dependents = 3
	)
	w := DefaultSmartWeights()

	tests := []struct {
		strategy Strategy
		want     float64
	}{
		{FastestWins, 0.7*effort + 0.2*urgency + 0.1*importance},
		{HighImpact, importance},
		{DeadlineDriven, 0.7*urgency + 0.3*importance},
		{SmartBalance, 0.4*importance + 0.3*urgency + 0.2*effort + 0.1*float64(dependents)},
	}
	for _, tt := range tests {
		got := tt.strategy.score(importance, urgency, effort, dependents, w)
		if got != tt.want {
			t.Errorf("%v.score = %v, want %v", tt.strategy, got, tt.want)
		}
	}
}

func TestStrategyScore_DependentsOnlyAffectSmartBalance(t *testing.T) {
	t.Parallel()

	for _, s := range []Strategy{FastestWins, HighImpact, DeadlineDriven} {
		with := s.score(5, 5, 5, 10, DefaultSmartWeights())
		without := s.score(5, 5, 5, 0, DefaultSmartWeights())
		if with != without {
			t.Errorf("%v: dependents changed score from %v to %v", s, without, with)
		}
	}
}
