package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/papapumpkin/triage/internal/rank"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeTaskFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAnalyzeCommand_JSONOutput(t *testing.T) {
	path := writeTaskFile(t, `{
		"tasks": [
			{"id": "low", "importance": 3},
			{"id": "high", "importance": 9}
		]
	}`)

	out, err := execute(t, "analyze", path, "--json", "--strategy", "high_impact")
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}

	var ranked []rank.ScoredTask
	if err := json.Unmarshal([]byte(out), &ranked); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(ranked) != 2 || ranked[0].ID != "high" {
		t.Errorf("ranked = %+v", ranked)
	}
	if ranked[0].Score != 9.0 {
		t.Errorf("score = %v, want 9.0", ranked[0].Score)
	}
}

func TestAnalyzeCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "analyze", filepath.Join(t.TempDir(), "absent.json"), "--json")
	if err == nil {
		t.Error("want error for missing task file")
	}
}
