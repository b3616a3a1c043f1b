package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"prosegate/internal/config"
	"prosegate/internal/history"
	"prosegate/internal/report"
)

var (
	flagHistorySince  string
	flagHistoryFailed bool
	flagHistorySearch string
	flagHistoryLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded gate runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := history.Open(config.HistoryPath())
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer db.Close()

		opts := history.QueryOpts{
			Search:     flagHistorySearch,
			FailedOnly: flagHistoryFailed,
			Limit:      flagHistoryLimit,
		}
		if flagHistorySince != "" {
			d, err := parseSince(flagHistorySince)
			if err != nil {
				return fmt.Errorf("invalid --since value: %w", err)
			}
			opts.Since = time.Now().Add(-d)
		}

		runs, err := db.GetRuns(opts)
		if err != nil {
			return fmt.Errorf("querying runs: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}

		for _, r := range runs {
			fmt.Printf("%s  %s\n", r.EvaluatedAt.Format("2006-01-02 15:04"), report.RunSummary(r))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&flagHistorySince, "since", "", "only show runs from the last duration (e.g., 30d, 24h)")
	historyCmd.Flags().BoolVar(&flagHistoryFailed, "failed", false, "only show failed runs")
	historyCmd.Flags().StringVar(&flagHistorySearch, "search", "", "filter runs by label or origin")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 0, "maximum runs to show")
}
