package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/triage/internal/config"
	"github.com/papapumpkin/triage/internal/ui"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <taskfile>",
	Short: "Show the top-N tasks to work on next",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().StringP("strategy", "s", "", "ranking strategy: smart_balance, fastest_wins, high_impact, deadline_driven")
	suggestCmd.Flags().StringArray("weight", nil, "smart_balance weight override, e.g. --weight urgency=0.5 (repeatable)")
	suggestCmd.Flags().IntP("limit", "n", 0, "number of tasks to suggest (default from config)")
	suggestCmd.Flags().Bool("json", false, "emit the suggestions as JSON")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ranked, params, err := rankFromFile(cmd, args[0])
	if err != nil {
		return err
	}

	cfg := config.Load()
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = cfg.Limit
	}
	if limit > len(ranked) {
		limit = len(ranked)
	}
	top := ranked[:limit]

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd.OutOrStdout(), top)
	}

	printer := ui.New(cmd.OutOrStdout(), cfg.Color)
	printer.Verbose = true
	printer.Banner(params.strategy, len(top))
	printer.RenderRanked(top)
	return nil
}
