package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/triage/internal/rank"
)

// strategyOrder is the cycle used by tab and the number keys.
var strategyOrder = []rank.Strategy{
	rank.SmartBalance,
	rank.FastestWins,
	rank.HighImpact,
	rank.DeadlineDriven,
}

// Model is the interactive ranking board. It holds the immutable task
// batch and re-ranks it whenever the strategy changes; each re-rank is
// an independent engine call.
type Model struct {
	tasks    []rank.Task
	weights  map[string]float64
	strategy rank.Strategy

	rows   []rank.ScoredTask
	cursor int
	width  int
	height int
	keys   KeyMap

	// now supplies the urgency reference date; tests pin it.
	now func() time.Time
}

// NewModel creates a board over the given batch, ranked with the named
// starting strategy.
func NewModel(tasks []rank.Task, strategy string, weights map[string]float64) Model {
	m := Model{
		tasks:    tasks,
		weights:  weights,
		strategy: rank.ParseStrategy(strategy),
		keys:     DefaultKeyMap(),
		width:    80,
		height:   24,
		now:      time.Now,
	}
	m.rerank()
	return m
}

// rerank recomputes the scored rows for the current strategy, keeping
// the cursor in bounds.
func (m *Model) rerank() {
	m.rows = rank.AnalyzeAt(m.tasks, m.strategy.String(), m.weights, m.now())
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.NextStrategy):
		m.strategy = nextStrategy(m.strategy)
		m.rerank()
	case key.Matches(msg, m.keys.Smart):
		m.setStrategy(rank.SmartBalance)
	case key.Matches(msg, m.keys.Fastest):
		m.setStrategy(rank.FastestWins)
	case key.Matches(msg, m.keys.Impact):
		m.setStrategy(rank.HighImpact)
	case key.Matches(msg, m.keys.Deadline):
		m.setStrategy(rank.DeadlineDriven)
	}
	return m, nil
}

func (m *Model) setStrategy(s rank.Strategy) {
	if m.strategy == s {
		return
	}
	m.strategy = s
	m.rerank()
}

func nextStrategy(s rank.Strategy) rank.Strategy {
	for i, candidate := range strategyOrder {
		if candidate == s {
			return strategyOrder[(i+1)%len(strategyOrder)]
		}
	}
	return strategyOrder[0]
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewTitleBar())
	b.WriteByte('\n')
	b.WriteString(m.viewRows())
	b.WriteByte('\n')
	b.WriteString(m.viewDetail())
	b.WriteByte('\n')
	b.WriteString(styleFooter.Render("↑/↓ move · 1-4/tab strategy · q quit"))
	return b.String()
}

func (m Model) viewTitleBar() string {
	segments := make([]string, 0, len(strategyOrder))
	for i, s := range strategyOrder {
		label := fmt.Sprintf("%d:%s", i+1, s)
		if s == m.strategy {
			segments = append(segments, styleStrategyActive.Render(label))
		} else {
			segments = append(segments, styleStrategyIdle.Render(label))
		}
	}
	title := styleTitleBar.Render("triage board")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", strings.Join(segments, "  "))
}

func (m Model) viewRows() string {
	if len(m.rows) == 0 {
		return styleDetail.Render("no tasks loaded")
	}

	var b strings.Builder
	for i, st := range m.rows {
		indicator := " "
		rowStyle := styleRow
		if i == m.cursor {
			indicator = selectionIndicator
			rowStyle = styleRowSelected
		}

		name := st.Title
		if name == "" {
			name = st.ID
		}
		if name == "" {
			name = fmt.Sprintf("task #%d", i+1)
		}

		line := fmt.Sprintf("%s%2d. %s %s",
			indicator,
			i+1,
			scoreStyle(st.Score).Render(fmt.Sprintf("%6.2f", st.Score)),
			rowStyle.Render(name),
		)
		if st.HasCycle {
			line += " " + styleCycleBadge.Render("⟳")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// viewDetail renders the explanation of the selected task, one phrase
// per line.
func (m Model) viewDetail() string {
	if len(m.rows) == 0 {
		return ""
	}
	selected := m.rows[m.cursor]

	var b strings.Builder
	for _, phrase := range strings.Split(selected.Explanation, "; ") {
		b.WriteString(styleDetail.Render("• " + phrase))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Strategy returns the currently selected strategy, for tests and the
// caller that persists the last choice.
func (m Model) Strategy() rank.Strategy {
	return m.strategy
}

// Rows returns the current ranked rows.
func (m Model) Rows() []rank.ScoredTask {
	return m.rows
}
