package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/triage/internal/config"
	"github.com/papapumpkin/triage/internal/taskfile"
	"github.com/papapumpkin/triage/internal/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board <taskfile>",
	Short: "Open the interactive ranking board",
	Long: `Board opens a terminal UI over a task batch. Switch strategies with
the number keys or tab and the batch re-ranks live; the detail panel
shows why the selected task scored the way it did.`,
	Args: cobra.ExactArgs(1),
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().StringP("strategy", "s", "", "starting strategy")
	boardCmd.Flags().StringArray("weight", nil, "smart_balance weight override, e.g. --weight urgency=0.5 (repeatable)")
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	batch, err := taskfile.Load(args[0])
	if err != nil {
		return err
	}

	flagStrategy, _ := cmd.Flags().GetString("strategy")
	flagWeights, _ := cmd.Flags().GetStringArray("weight")
	params, err := resolveRunParams(cfg, batch, flagStrategy, flagWeights)
	if err != nil {
		return err
	}

	return tui.Run(batch.RankTasks(), params.strategy, params.weights)
}
