package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagLimit        int
	flagHistoryTUI   bool
	flagHistoryStats bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [level]",
	Short: "Show finished sessions",
	Long: `Display the most recent finished sessions, optionally for one level.

Examples:
  frogger history
  frogger history crossing --limit 5
  frogger history --stats
  frogger history --tui
  frogger history crossing --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse history in the full-screen interface")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Show per-level totals instead of sessions")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the sessions of the level, or all of them")
}

func runHistory(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if !a.cfg.History.Enabled {
		return errors.New("history is disabled in the config")
	}

	store, err := storage.Open(a.cfg.History.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHistoryTUI {
		cfg := terminalConfig()
		_, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	level := ""
	if len(args) == 1 {
		level = args[0]
	}

	if flagHistoryClear {
		if err := store.ClearSessions(ctx, level); err != nil {
			return err
		}
		if level == "" {
			fmt.Fprintln(out, "Cleared all history.")
		} else {
			fmt.Fprintf(out, "Cleared history for %s.\n", level)
		}
		a.logger.Info("history cleared", "level", level)
		return nil
	}

	if flagHistoryStats {
		stats, err := store.Stats(ctx)
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Fprintln(out, "No sessions recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "  %-20s  %-5s  %-4s  %-6s  %-4s  %s\n", "Level", "Plays", "Wins", "Losses", "Best", "Last played")
		fmt.Fprintf(out, "  %-20s  %-5s  %-4s  %-6s  %-4s  %s\n", "-----", "-----", "----", "------", "----", "-----------")
		for _, st := range stats {
			best := "-"
			if st.BestTurns > 0 {
				best = fmt.Sprintf("%d", st.BestTurns)
			}
			fmt.Fprintf(out, "  %-20s  %-5d  %-4d  %-6d  %-4s  %s\n",
				st.Level, st.Plays, st.Wins, st.Losses, best, st.LastPlayed.Format("2006-01-02 15:04"))
		}
		return nil
	}

	records, err := store.RecentSessions(ctx, level, flagLimit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'frogger play' to start your history!")
		return nil
	}

	fmt.Fprintf(out, "  %-20s  %-8s  %-5s  %-5s  %s\n", "Level", "Outcome", "Turns", "Ticks", "Date")
	fmt.Fprintf(out, "  %-20s  %-8s  %-5s  %-5s  %s\n", "-----", "-------", "-----", "-----", "----")
	for _, r := range records {
		fmt.Fprintf(out, "  %-20s  %-8s  %-5d  %-5d  %s\n",
			r.Level, r.Outcome, r.Turns, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
