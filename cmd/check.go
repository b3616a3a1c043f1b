package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"prosegate/internal/config"
	"prosegate/internal/gate"
	"prosegate/internal/history"
	"prosegate/internal/report"
	"prosegate/internal/textload"
)

var (
	flagArticle        string
	flagSources        []string
	flagMinOriginality float64
	flagMaxAITone      float64
	flagMinHumanity    float64
	flagStrictTrace    bool
	flagNoRecord       bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate an article against the quality gate",
	Long: `Score an article's originality, AI tone and humanity, print the full
signal report, and exit non-zero when the gate fails. Threshold flags
override the configured defaults; source files that do not exist are
skipped with a warning.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&flagArticle, "article", "a", "", "article text file")
	checkCmd.Flags().StringArrayVarP(&flagSources, "source", "s", nil, "source text file (repeatable)")
	checkCmd.Flags().Float64Var(&flagMinOriginality, "min-originality", 0, "minimum originality score")
	checkCmd.Flags().Float64Var(&flagMaxAITone, "max-ai-tone", 0, "maximum AI-tone score")
	checkCmd.Flags().Float64Var(&flagMinHumanity, "min-humanity", 0, "minimum humanity score")
	checkCmd.Flags().BoolVar(&flagStrictTrace, "strict-source-trace", false, "force originality to 0 if a source-trace phrase appears")
	checkCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "do not record this run in the history")
	checkCmd.MarkFlagRequired("article")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	article, err := textload.ReadFile(flagArticle)
	if err != nil {
		return err
	}

	var sources []string
	for _, path := range flagSources {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "  [warn] source %s not found, skipping\n", path)
			continue
		}
		text, err := textload.ReadFile(path)
		if err != nil {
			return err
		}
		sources = append(sources, text)
	}

	th := gateThresholds(cmd, cfg)
	m := gate.Evaluate(article, sources, th)
	text := report.Render(m)
	fmt.Print(text)

	if !flagNoRecord {
		if err := recordRun(history.Run{
			ID:          history.RunID(article),
			Label:       flagArticle,
			Origin:      "file",
			Domain:      string(m.Domain),
			Originality: m.Originality,
			AITone:      m.AITone,
			Humanity:    m.Humanity,
			Risk:        string(m.Risk),
			Passed:      m.Passed,
			Report:      text,
			EvaluatedAt: time.Now(),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "  [warn] recording run: %v\n", err)
		}
	}

	if !m.Passed {
		return fmt.Errorf("quality gate failed (originality %.2f, ai_tone %.2f, humanity %.2f)",
			m.Originality, m.AITone, m.Humanity)
	}
	return nil
}

// gateThresholds resolves the effective thresholds: config values, overridden
// by whichever flags were set explicitly.
func gateThresholds(cmd *cobra.Command, cfg *config.Config) gate.Thresholds {
	th := gate.Thresholds{
		MinOriginality:    cfg.Thresholds.MinOriginality,
		MaxAITone:         cfg.Thresholds.MaxAITone,
		MinHumanity:       cfg.Thresholds.MinHumanity,
		StrictSourceTrace: cfg.Thresholds.StrictSourceTrace,
	}
	if cmd.Flags().Changed("min-originality") {
		th.MinOriginality = flagMinOriginality
	}
	if cmd.Flags().Changed("max-ai-tone") {
		th.MaxAITone = flagMaxAITone
	}
	if cmd.Flags().Changed("min-humanity") {
		th.MinHumanity = flagMinHumanity
	}
	if cmd.Flags().Changed("strict-source-trace") {
		th.StrictSourceTrace = flagStrictTrace
	}
	return th
}

func recordRun(r history.Run) error {
	db, err := history.Open(config.HistoryPath())
	if err != nil {
		return err
	}
	defer db.Close()
	return db.Upsert(r)
}
