package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"prosegate/internal/config"
	"prosegate/internal/history"
	"prosegate/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	db, err := history.Open(config.HistoryPath())
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer db.Close()

	return tui.Run(db)
}
