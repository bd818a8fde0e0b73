package rank

import (
	"testing"
	"time"
)

// today is the fixed reference date used across scoring tests.
var today = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

// dueIn returns a due date n calendar days from the reference date.
func dueIn(n int) *time.Time {
	d := today.AddDate(0, 0, n)
	return &d
}

func TestUrgencyScore_NoDueDate(t *testing.T) {
	t.Parallel()

	score, reason := UrgencyScore(nil, today)
	if score != 5.0 {
		t.Errorf("score = %v, want 5.0", score)
	}
	if reason != "neutral urgency (no due date)" {
		t.Errorf("reason = %q", reason)
	}
}

func TestUrgencyScore_FutureAndToday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		days       int
		wantScore  float64
		wantReason string
	}{
		{"due today", 0, 10, "due today"},
		{"tomorrow", 1, 9, "due soon (in 1 days)"},
		{"soon boundary", 3, 7, "due soon (in 3 days)"},
		{"past soon boundary", 4, 6, "due in 4 days"},
		{"one week", 7, 3, "due in 7 days"},
		{"ten days floors at zero", 10, 0, "due in 10 days"},
		{"far future", 30, 0, "due in 30 days"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			score, reason := UrgencyScore(dueIn(tt.days), today)
			if score != tt.wantScore {
				t.Errorf("score = %v, want %v", score, tt.wantScore)
			}
			if reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}

func TestUrgencyScore_Overdue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		days       int
		wantScore  float64
		wantReason string
	}{
		{"one day late", -1, 9, "overdue by 1 days"},
		{"three days late", -3, 7, "overdue by 3 days"},
		{"week late", -7, 7, "overdue by 7 days"},
		{"ten days late caps like a week", -10, 7, "overdue by 10 days"},
		{"months late still capped", -90, 7, "overdue by 90 days"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			score, reason := UrgencyScore(dueIn(tt.days), today)
			if score != tt.wantScore {
				t.Errorf("score = %v, want %v", score, tt.wantScore)
			}
			if reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}

func TestUrgencyScore_IgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	// Due late tonight is still "due today" even if the clock time
	// is earlier than now.
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	score, reason := UrgencyScore(&due, today)
	if score != 10 || reason != "due today" {
		t.Errorf("got (%v, %q), want (10, due today)", score, reason)
	}
}

func TestEffortScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		hours      float64
		wantScore  float64
		wantReason string
	}{
		{"unknown", 0, 6.0, "unknown effort (assumed medium)"},
		{"negative is unknown", -2, 6.0, "unknown effort (assumed medium)"},
		{"very low", 0.5, 10.0, "very low effort (~0.5h)"},
		{"very low boundary", 1, 10.0, "very low effort (~1h)"},
		{"low", 2, 8.0, "low effort (~2h)"},
		{"low boundary", 3, 8.0, "low effort (~3h)"},
		{"medium", 4.5, 6.0, "medium effort (~4.5h)"},
		{"medium boundary", 6, 6.0, "medium effort (~6h)"},
		{"high", 8, 4.0, "high effort (~8h)"},
		{"high boundary", 10, 4.0, "high effort (~10h)"},
		{"very high", 40, 2.0, "very high effort (~40h)"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			score, reason := EffortScore(tt.hours)
			if score != tt.wantScore {
				t.Errorf("score = %v, want %v", score, tt.wantScore)
			}
			if reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}

func TestDaysBetween_CrossesMonths(t *testing.T) {
	t.Parallel()

	a := time.Date(2026, 2, 27, 23, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)
	if got := daysBetween(a, b); got != 3 {
		t.Errorf("daysBetween = %d, want 3", got)
	}
	if got := daysBetween(b, a); got != -3 {
		t.Errorf("reversed daysBetween = %d, want -3", got)
	}
}
