// Package rank is the task-prioritization engine. Given a batch of
// tasks with importance, due dates, effort estimates, and dependency
// links, it computes a priority score and a human-readable explanation
// for each task under a selectable strategy, then returns the batch
// sorted by priority. All computation is pure: a ranking call owns its
// own graph and cycle set, and nothing is cached between calls.
package rank

import "time"

// Task is one unit of work to be ranked. Optional fields use pointer
// or zero values: a nil Importance defaults to 5, a nil DueDate means
// no deadline, and EstimatedHours <= 0 means unknown effort.
type Task struct {
	ID             string     `json:"id,omitempty" toml:"id,omitempty"`
	Title          string     `json:"title,omitempty" toml:"title,omitempty"`
	Notes          string     `json:"notes,omitempty" toml:"notes,omitempty"`
	Importance     *int       `json:"importance,omitempty" toml:"importance,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty" toml:"due_date,omitempty"`
	EstimatedHours float64    `json:"estimated_hours,omitempty" toml:"estimated_hours,omitempty"`
	Dependencies   []string   `json:"dependencies,omitempty" toml:"dependencies,omitempty"`
}

// RawImportance returns the caller-supplied importance before
// defaulting, or 0 when absent. Used as the sort tie-breaker.
func (t Task) RawImportance() int {
	if t.Importance == nil {
		return 0
	}
	return *t.Importance
}

// ScoredTask is the output record: the original task plus the score,
// the strategy that produced it, an explanation, and a cycle flag.
// Internal graph ids never appear here.
type ScoredTask struct {
	Task
	Score        float64 `json:"score"`
	StrategyUsed string  `json:"strategy_used"`
	Explanation  string  `json:"explanation"`
	HasCycle     bool    `json:"has_cycle"`
}
