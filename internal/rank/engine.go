package rank

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Analyze scores every task in the batch under the named strategy and
// returns the batch sorted by priority, highest first. Weight
// overrides apply only to smart_balance and may cover any subset of
// keys. Malformed optional fields degrade to defaults; Analyze never
// fails. The due-date reference is the current local date.
func Analyze(tasks []Task, strategy string, weights map[string]float64) []ScoredTask {
	return AnalyzeAt(tasks, strategy, weights, time.Now())
}

// AnalyzeAt is Analyze with an explicit "today" for the urgency
// calculation, which keeps ranking deterministic under test.
func AnalyzeAt(tasks []Task, strategy string, weights map[string]float64, today time.Time) []ScoredTask {
	if len(tasks) == 0 {
		return []ScoredTask{}
	}

	graph := BuildGraph(tasks)
	cycles := graph.Cycles()
	strat := ParseStrategy(strategy)
	w := MergeWeights(weights)

	type row struct {
		out           ScoredTask
		rawImportance int
	}
	rows := make([]row, len(tasks))
	for i, task := range tasks {
		rows[i] = row{
			out:           scoreTask(task, graph.IDs[i], strat, w, graph.Dependents, cycles, today),
			rawImportance: task.RawImportance(),
		}
	}

	// Score is the primary key, raw importance breaks ties, both
	// descending. Stable: exact ties keep input order.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].out.Score != rows[j].out.Score {
			return rows[i].out.Score > rows[j].out.Score
		}
		return rows[i].rawImportance > rows[j].rawImportance
	})

	ranked := make([]ScoredTask, len(rows))
	for i, r := range rows {
		ranked[i] = r.out
	}
	return ranked
}

// SuggestTop returns the first limit entries of Analyze's result. A
// limit beyond the batch size returns the whole batch; an empty batch
// returns an empty list.
func SuggestTop(tasks []Task, strategy string, limit int) []ScoredTask {
	ranked := Analyze(tasks, strategy, nil)
	if limit < 0 {
		limit = 0
	}
	if limit > len(ranked) {
		limit = len(ranked)
	}
	return ranked[:limit]
}

// scoreTask computes the score and explanation for a single task. The
// graph, cycle set, and reference date are shared read-only across the
// batch.
func scoreTask(task Task, id string, strat Strategy, w Weights, dependents map[string]int, cycles map[string]bool, today time.Time) ScoredTask {
	importance := float64(NormalizeImportance(task.Importance))
	urgency, urgencyReason := UrgencyScore(task.DueDate, today)
	effort, effortReason := EffortScore(task.EstimatedHours)
	unblocks := dependents[id]

	score := strat.score(importance, urgency, effort, unblocks, w)

	phrases := []string{
		strat.leadPhrase(),
		fmt.Sprintf("importance %.1f/10", importance),
		"urgency because it is " + urgencyReason,
		effortReason,
	}
	if unblocks > 0 {
		phrases = append(phrases, fmt.Sprintf("unblocks %d other task(s)", unblocks))
	}
	hasCycle := cycles[id]
	if hasCycle {
		phrases = append(phrases, "involved in a circular dependency")
	}

	return ScoredTask{
		Task:         task,
		Score:        round2(score),
		StrategyUsed: strat.String(),
		Explanation:  strings.Join(phrases, "; "),
		HasCycle:     hasCycle,
	}
}

// round2 rounds to two decimal places for output.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
