// Package ui provides terminal output for triage ranking results.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/papapumpkin/triage/internal/rank"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

// scoreBarWidth is the number of cells in the score bar; each cell
// covers one point on the 0–10 scale.
const scoreBarWidth = 10

// Printer renders ranked tasks to a writer. Color is optional so
// output stays clean when piped.
type Printer struct {
	Out     io.Writer
	Color   bool
	Verbose bool
}

// New returns a Printer writing colored output to w.
func New(w io.Writer, color bool) *Printer {
	return &Printer{Out: w, Color: color}
}

// paint wraps s in the given codes when color is enabled.
func (p *Printer) paint(s string, codes ...string) string {
	if !p.Color || len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + reset
}

// Banner prints the strategy header for a ranking run.
func (p *Printer) Banner(strategy string, count int) {
	label := fmt.Sprintf("%d task(s) ranked by %s", count, strategy)
	fmt.Fprintln(p.Out, p.paint(label, bold, cyan))
}

// RenderRanked prints one line per task: rank, score, score bar, and
// name. Verbose mode adds the explanation under each line.
func (p *Printer) RenderRanked(ranked []rank.ScoredTask) {
	if len(ranked) == 0 {
		fmt.Fprintln(p.Out, p.paint("no tasks to rank", dim))
		return
	}

	for i, st := range ranked {
		name := st.Title
		if name == "" {
			name = st.ID
		}
		if name == "" {
			name = fmt.Sprintf("task #%d", i+1)
		}

		line := fmt.Sprintf("%2d. %s %s  %s",
			i+1,
			p.paint(fmt.Sprintf("%6.2f", st.Score), bold, p.scoreColor(st.Score)),
			p.scoreBar(st.Score),
			name,
		)
		if st.HasCycle {
			line += " " + p.paint("⟳ cycle", red)
		}
		fmt.Fprintln(p.Out, line)

		if p.Verbose {
			fmt.Fprintln(p.Out, p.paint("      "+st.Explanation, dim))
		}
	}
}

// scoreBar draws a 10-cell bar clamped to the 0–10 factor scale.
// Composite scores can exceed 10; the bar simply saturates.
func (p *Printer) scoreBar(score float64) string {
	filled := int(score)
	if filled > scoreBarWidth {
		filled = scoreBarWidth
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", scoreBarWidth-filled)
	return p.paint(bar, p.scoreColor(score))
}

// scoreColor buckets scores into urgency colors.
func (p *Printer) scoreColor(score float64) string {
	switch {
	case score >= 7:
		return red
	case score >= 4:
		return yellow
	default:
		return green
	}
}
