// Package tui implements the interactive ranking board: a BubbleTea
// program that shows a task batch ranked under the current strategy
// and re-ranks live as the user switches strategies.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/triage/internal/rank"
)

// Run opens the board over the given batch, blocking until the user
// quits.
func Run(tasks []rank.Task, strategy string, weights map[string]float64) error {
	p := tea.NewProgram(NewModel(tasks, strategy, weights), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
