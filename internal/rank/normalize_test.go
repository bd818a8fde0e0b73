package rank

import (
	"encoding/json"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestNormalizeImportance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   *int
		want int
	}{
		{"nil defaults to 5", nil, 5},
		{"in range", intPtr(7), 7},
		{"min", intPtr(1), 1},
		{"max", intPtr(10), 10},
		{"below range clamps", intPtr(0), 1},
		{"negative clamps", intPtr(-4), 1},
		{"above range clamps", intPtr(99), 10},
	}
	for _, tt := range tests {
		if got := NormalizeImportance(tt.in); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestCoerceImportance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want *int
	}{
		{"nil", nil, nil},
		{"int", 7, intPtr(7)},
		{"int64", int64(3), intPtr(3)},
		{"float truncates", 7.9, intPtr(7)},
		{"negative float truncates toward zero", -3.7, intPtr(-3)},
		{"numeric string", "8", intPtr(8)},
		{"decimal string is invalid", "7.5", nil},
		{"garbage string", "high", nil},
		{"bool true", true, intPtr(1)},
		{"bool false", false, intPtr(0)},
		{"json integer", json.Number("6"), intPtr(6)},
		{"json float truncates", json.Number("6.8"), intPtr(6)},
		{"json garbage", json.Number("x"), nil},
		{"unsupported type", []string{"5"}, nil},
	}
	for _, tt := range tests {
		got := CoerceImportance(tt.in)
		switch {
		case got == nil && tt.want == nil:
		case got == nil || tt.want == nil:
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		case *got != *tt.want:
			t.Errorf("%s: got %d, want %d", tt.name, *got, *tt.want)
		}
	}
}
