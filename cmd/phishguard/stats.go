package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phishguard/phishguard/internal/analytics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show threat statistics and recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(func(analyzer *analytics.Analyzer, logger *zap.Logger) error {
			defer logger.Sync()
			report, err := analyzer.GenerateReport(cmd.Context())
			if err != nil {
				return err
			}
			printReport(&report)
			return nil
		})
	},
}
