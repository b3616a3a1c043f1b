package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"prosegate/internal/config"
	"prosegate/internal/feed"
	"prosegate/internal/gate"
	"prosegate/internal/history"
	"prosegate/internal/report"
)

var (
	flagFeedSince    string
	flagFeedNoRecord bool
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Fetch configured feeds and gate every item",
	Long: `Fetch all enabled RSS/Atom feeds from the config, run each item's text
through the quality gate (with no plagiarism sources), and print a one-line
verdict per item.`,
	RunE: runFeed,
}

func init() {
	feedCmd.Flags().StringVar(&flagFeedSince, "since", "", "only gate items published within this window (e.g., 7d, 24h)")
	feedCmd.Flags().BoolVar(&flagFeedNoRecord, "no-record", false, "do not record runs in the history")
}

func runFeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	enabled := cfg.EnabledFeeds()
	if len(enabled) == 0 {
		fmt.Println("No feeds enabled. Edit", config.DefaultConfigPath())
		return nil
	}

	var since time.Time
	if flagFeedSince != "" {
		d, err := parseSince(flagFeedSince)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		since = time.Now().Add(-d)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	result := feed.FetchAll(ctx, enabled)
	cancel()

	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "  [warn] %v\n", e)
	}

	var db *history.Store
	if !flagFeedNoRecord {
		db, err = history.Open(config.HistoryPath())
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer db.Close()
	}

	th := gate.Thresholds{
		MinOriginality:    cfg.Thresholds.MinOriginality,
		MaxAITone:         cfg.Thresholds.MaxAITone,
		MinHumanity:       cfg.Thresholds.MinHumanity,
		StrictSourceTrace: cfg.Thresholds.StrictSourceTrace,
	}

	gated, passed := 0, 0
	for _, item := range result.Items {
		if !since.IsZero() && item.Published.Before(since) {
			continue
		}

		m := gate.Evaluate(item.Text, nil, th)
		fmt.Println(report.Summary(item.Title, m))
		gated++
		if m.Passed {
			passed++
		}

		if db != nil {
			run := history.Run{
				ID:          item.ID,
				Label:       item.Title,
				Origin:      item.Feed,
				Domain:      string(m.Domain),
				Originality: m.Originality,
				AITone:      m.AITone,
				Humanity:    m.Humanity,
				Risk:        string(m.Risk),
				Passed:      m.Passed,
				Report:      report.Render(m),
				EvaluatedAt: time.Now(),
			}
			if err := db.Upsert(run); err != nil {
				fmt.Fprintf(os.Stderr, "  [warn] recording %s: %v\n", item.Title, err)
			}
		}
	}

	fmt.Printf("%d item(s) gated, %d passed\n", gated, passed)
	return nil
}
