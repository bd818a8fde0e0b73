package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/triage/internal/config"
	"github.com/papapumpkin/triage/internal/rank"
	"github.com/papapumpkin/triage/internal/taskfile"
	"github.com/papapumpkin/triage/internal/telemetry"
	"github.com/papapumpkin/triage/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <taskfile>",
	Short: "Score and rank every task in a batch",
	Long: `Analyze loads a task batch from a JSON or TOML file, scores every
task under the selected strategy, and prints the batch ordered by
priority. Strategy and weights resolve flags-over-file-over-config.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringP("strategy", "s", "", "ranking strategy: smart_balance, fastest_wins, high_impact, deadline_driven")
	analyzeCmd.Flags().StringArray("weight", nil, "smart_balance weight override, e.g. --weight urgency=0.5 (repeatable)")
	analyzeCmd.Flags().Bool("json", false, "emit the ranked batch as JSON")
	analyzeCmd.Flags().Bool("explain", false, "print each task's scoring explanation")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ranked, params, err := rankFromFile(cmd, args[0])
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd.OutOrStdout(), ranked)
	}

	cfg := config.Load()
	explain, _ := cmd.Flags().GetBool("explain")
	printer := ui.New(cmd.OutOrStdout(), cfg.Color)
	printer.Verbose = explain || cfg.Verbose
	printer.Banner(params.strategy, len(ranked))
	printer.RenderRanked(ranked)
	return nil
}

// rankFromFile loads, resolves parameters, ranks, and emits telemetry.
// Shared by analyze, suggest, and watch.
func rankFromFile(cmd *cobra.Command, path string) ([]rank.ScoredTask, runParams, error) {
	cfg := config.Load()

	batch, err := taskfile.Load(path)
	if err != nil {
		return nil, runParams{}, err
	}

	flagStrategy, _ := cmd.Flags().GetString("strategy")
	flagWeights, _ := cmd.Flags().GetStringArray("weight")
	params, err := resolveRunParams(cfg, batch, flagStrategy, flagWeights)
	if err != nil {
		return nil, runParams{}, err
	}

	tasks := batch.RankTasks()
	ranked := rank.Analyze(tasks, params.strategy, params.weights)

	if cfg.TelemetryPath != "" {
		if err := emitRun(cfg.TelemetryPath, params.strategy, ranked); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
	}
	return ranked, params, nil
}

// emitRun appends one ranking run to the telemetry stream.
func emitRun(path, strategy string, ranked []rank.ScoredTask) error {
	em, err := telemetry.NewEmitter(path)
	if err != nil {
		return err
	}
	defer em.Close()

	_ = em.Emit(telemetry.Event{Kind: telemetry.KindRunStart, Strategy: strategy, TaskCount: len(ranked)})
	for _, st := range ranked {
		_ = em.Emit(telemetry.Event{Kind: telemetry.KindTaskScored, Strategy: st.StrategyUsed, TaskID: st.ID, Score: st.Score})
	}
	return em.Emit(telemetry.Event{Kind: telemetry.KindRunDone, Strategy: strategy, TaskCount: len(ranked)})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
