// Package taskfile loads task batches from JSON or TOML files and
// coerces their loosely-typed wire fields into the engine's typed
// records. The engine never sees wire values; everything lenient
// happens here.
package taskfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/triage/internal/rank"
)

// ErrUnknownFormat is returned for file extensions other than .json,
// .toml.
var ErrUnknownFormat = fmt.Errorf("unknown task file format")

// RawTask mirrors the wire shape of one task entry. Importance and
// due_date stay loosely typed so malformed values can degrade to
// defaults instead of failing the decode.
type RawTask struct {
	ID             string  `json:"id" toml:"id"`
	Title          string  `json:"title" toml:"title"`
	Notes          string  `json:"notes" toml:"notes"`
	Importance     any     `json:"importance" toml:"importance"`
	DueDate        any     `json:"due_date" toml:"due_date"`
	EstimatedHours float64 `json:"estimated_hours" toml:"estimated_hours"`
	Dependencies   []any   `json:"dependencies" toml:"dependencies"`
}

// Task converts the wire record into the engine's typed record.
func (r RawTask) Task() rank.Task {
	t := rank.Task{
		ID:             r.ID,
		Title:          r.Title,
		Notes:          r.Notes,
		Importance:     rank.CoerceImportance(r.Importance),
		DueDate:        parseDueDate(r.DueDate),
		EstimatedHours: r.EstimatedHours,
	}
	for _, dep := range r.Dependencies {
		t.Dependencies = append(t.Dependencies, stringifyID(dep))
	}
	return t
}

// Batch is a task file: a list of tasks plus optional ranking
// parameters that CLI flags may override.
type Batch struct {
	Strategy string             `json:"strategy" toml:"strategy"`
	Weights  map[string]float64 `json:"weights" toml:"weights"`
	Tasks    []RawTask          `json:"tasks" toml:"tasks"`
}

// RankTasks converts every wire task in the batch.
func (b *Batch) RankTasks() []rank.Task {
	tasks := make([]rank.Task, len(b.Tasks))
	for i, raw := range b.Tasks {
		tasks[i] = raw.Task()
	}
	return tasks
}

// Load reads a task batch from path, choosing the codec by file
// extension (.json or .toml).
func Load(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading task file: %w", err)
	}

	var batch Batch
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	return &batch, nil
}

// dueDateLayouts are accepted string forms, tried in order.
var dueDateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDueDate interprets a wire due date: a calendar-date or RFC3339
// string, or a native TOML datetime. Anything else means no deadline.
func parseDueDate(raw any) *time.Time {
	switch v := raw.(type) {
	case time.Time:
		return &v
	case toml.LocalDate:
		d := v.AsTime(time.UTC)
		return &d
	case toml.LocalDateTime:
		d := v.AsTime(time.UTC)
		return &d
	case string:
		if v == "" {
			return nil
		}
		for _, layout := range dueDateLayouts {
			if d, err := time.Parse(layout, v); err == nil {
				return &d
			}
		}
		return nil
	default:
		return nil
	}
}

// stringifyID renders a wire dependency id as a string. JSON numbers
// arrive as float64; integral values print without a decimal point.
func stringifyID(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}
