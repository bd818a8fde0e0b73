package rank

import (
	"fmt"
	"time"
)

// overdueFloor caps how far past due a task can push its urgency.
// Anything more than a week overdue scores the same as a week overdue,
// though the reason text reports the true day count.
const overdueFloor = -7

// unknownEffortScore is the medium-effort assumption applied when a
// task has no positive hour estimate.
const unknownEffortScore = 6.0

// UrgencyScore maps a due date to a 0–10 urgency plus a reason. A nil
// due date is neutral (5.0). Overdue tasks always land in [7, 10],
// deeper overdue pushing toward 10. Future dates score 10 minus the
// day count, bottoming out at 0 for anything ten or more days away.
func UrgencyScore(due *time.Time, today time.Time) (float64, string) {
	if due == nil {
		return 5.0, "neutral urgency (no due date)"
	}

	days := daysBetween(today, *due)
	if days < 0 {
		capped := days
		if capped < overdueFloor {
			capped = overdueFloor
		}
		urgency := clamp(float64(10+capped), 7, 10)
		return urgency, fmt.Sprintf("overdue by %d days", -days)
	}

	urgency := clamp(float64(10-days), 0, 10)
	switch {
	case days == 0:
		return urgency, "due today"
	case days <= 3:
		return urgency, fmt.Sprintf("due soon (in %d days)", days)
	default:
		return urgency, fmt.Sprintf("due in %d days", days)
	}
}

// EffortScore maps an hour estimate to a quick-win score: higher for
// lower effort. Missing or non-positive estimates assume medium
// effort. The reason echoes the bucket and the original estimate.
func EffortScore(hours float64) (float64, string) {
	if hours <= 0 {
		return unknownEffortScore, "unknown effort (assumed medium)"
	}

	switch {
	case hours <= 1:
		return 10.0, fmt.Sprintf("very low effort (~%gh)", hours)
	case hours <= 3:
		return 8.0, fmt.Sprintf("low effort (~%gh)", hours)
	case hours <= 6:
		return 6.0, fmt.Sprintf("medium effort (~%gh)", hours)
	case hours <= 10:
		return 4.0, fmt.Sprintf("high effort (~%gh)", hours)
	default:
		return 2.0, fmt.Sprintf("very high effort (~%gh)", hours)
	}
}

// daysBetween returns whole calendar days from a to b, ignoring the
// time of day on both ends. Negative when b is before a.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
