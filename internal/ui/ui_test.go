package ui

import (
	"strings"
	"testing"

	"github.com/papapumpkin/triage/internal/rank"
)

func TestRenderRanked_PlainOutput(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	p := New(&buf, false)
	p.RenderRanked([]rank.ScoredTask{
		{Task: rank.Task{ID: "a", Title: "Fix login"}, Score: 8.4},
		{Task: rank.Task{ID: "b"}, Score: 2.1, HasCycle: true},
	})

	out := buf.String()
	if !strings.Contains(out, " 1.") || !strings.Contains(out, "Fix login") {
		t.Errorf("missing first row: %q", out)
	}
	if !strings.Contains(out, "8.40") {
		t.Errorf("missing score: %q", out)
	}
	if !strings.Contains(out, "cycle") {
		t.Errorf("missing cycle marker: %q", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("color disabled but ANSI codes present: %q", out)
	}
}

func TestRenderRanked_VerboseShowsExplanation(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	p := New(&buf, false)
	p.Verbose = true
	p.RenderRanked([]rank.ScoredTask{
		{Task: rank.Task{ID: "a"}, Score: 5, Explanation: "prioritized high importance; importance 5.0/10"},
	})

	if !strings.Contains(buf.String(), "prioritized high importance") {
		t.Errorf("explanation missing: %q", buf.String())
	}
}

func TestRenderRanked_Empty(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	New(&buf, false).RenderRanked(nil)
	if !strings.Contains(buf.String(), "no tasks") {
		t.Errorf("got %q", buf.String())
	}
}

func TestScoreBar_Saturates(t *testing.T) {
	t.Parallel()

	p := New(nil, false)
	if got := p.scoreBar(25); strings.Contains(got, "░") {
		t.Errorf("score above scale should fill the bar: %q", got)
	}
	if got := p.scoreBar(-3); strings.Contains(got, "█") {
		t.Errorf("negative score should leave the bar empty: %q", got)
	}
}
