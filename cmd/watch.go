package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/triage/internal/config"
	"github.com/papapumpkin/triage/internal/ui"
)

// watchDebounce coalesces editor write bursts into one re-rank.
const watchDebounce = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch <taskfile>",
	Short: "Re-rank a task file every time it changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringP("strategy", "s", "", "ranking strategy: smart_balance, fastest_wins, high_impact, deadline_driven")
	watchCmd.Flags().StringArray("weight", nil, "smart_balance weight override, e.g. --weight urgency=0.5 (repeatable)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	render := func() {
		ranked, params, err := rankFromFile(cmd, path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			return
		}
		cfg := config.Load()
		printer := ui.New(cmd.OutOrStdout(), cfg.Color)
		printer.Banner(params.strategy, len(ranked))
		printer.RenderRanked(ranked)
		fmt.Fprintln(cmd.OutOrStdout())
	}
	render()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var pending *time.Timer
	debounced := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(watchDebounce, func() {
				select {
				case debounced <- struct{}{}:
				default:
				}
			})
		case <-debounced:
			render()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
		}
	}
}
