package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phishguard/phishguard/internal/core"
	"github.com/phishguard/phishguard/internal/detection"
)

var (
	checkSender string
	checkRecord bool
)

var checkCmd = &cobra.Command{
	Use:   "check <message>",
	Short: "Check a single message for phishing attempts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := args[0]

		var analysis core.Analysis
		err := invoke(func(detector *detection.Detector, logger *zap.Logger) error {
			defer logger.Sync()
			analysis = detector.Analyze(core.Message{Content: message, Sender: checkSender})
			printAnalysis(analysis)
			return nil
		})
		if err != nil || !checkRecord || analysis.Invalid {
			return err
		}

		// The store is only constructed after the verdict has been printed,
		// so an unavailable store never withholds a classification.
		if err := invoke(func(svc *core.GuardService, logger *zap.Logger) error {
			defer logger.Sync()
			_, recordErr := svc.Record(cmd.Context(), &analysis)
			return recordErr
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: verdict was not recorded: %v\n", err)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkSender, "sender", "s", "Unknown", "Message sender")
	checkCmd.Flags().BoolVar(&checkRecord, "record", false, "Persist the verdict to the threat store")
}
