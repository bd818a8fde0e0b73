package rank

import (
	"encoding/json"
	"strconv"
)

// Importance bounds and default. Missing or invalid importance never
// fails a ranking call; it degrades to DefaultImportance.
const (
	MinImportance     = 1
	MaxImportance     = 10
	DefaultImportance = 5
)

// NormalizeImportance returns the canonical importance for a task:
// DefaultImportance when absent, otherwise the value clamped to
// [MinImportance, MaxImportance].
func NormalizeImportance(importance *int) int {
	if importance == nil {
		return DefaultImportance
	}
	v := *importance
	if v < MinImportance {
		return MinImportance
	}
	if v > MaxImportance {
		return MaxImportance
	}
	return v
}

// CoerceImportance converts a loosely-typed wire value into an
// optional importance. Floats truncate toward zero, numeric strings
// parse as integers, and anything not representable as an integer
// yields nil so the engine applies the default. Delivery shells call
// this while decoding; the engine itself only sees *int.
func CoerceImportance(raw any) *int {
	switch v := raw.(type) {
	case nil:
		return nil
	case int:
		return &v
	case int32:
		n := int(v)
		return &n
	case int64:
		n := int(v)
		return &n
	case float32:
		n := int(v)
		return &n
	case float64:
		n := int(v)
		return &n
	case bool:
		n := 0
		if v {
			n = 1
		}
		return &n
	case json.Number:
		if i, err := v.Int64(); err == nil {
			n := int(i)
			return &n
		}
		if f, err := v.Float64(); err == nil {
			n := int(f)
			return &n
		}
		return nil
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return &i
		}
		return nil
	default:
		return nil
	}
}

// clamp bounds v to the closed interval [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
