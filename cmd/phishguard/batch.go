package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phishguard/phishguard/internal/core"
	"github.com/phishguard/phishguard/internal/detection"
)

var batchRecord bool

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Check multiple messages from a JSON file",
	Long: `Reads a JSON array of {"sender": ..., "content": ...} objects and
classifies every message. An unparseable file fails the whole batch before
any classification is attempted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("cannot open batch file: %w", err)
		}
		messages, err := core.ParseMessages(data)
		if err != nil {
			return err
		}

		var result core.BatchResult
		err = invoke(func(detector *detection.Detector, logger *zap.Logger) error {
			defer logger.Sync()
			result = core.ClassifyBatch(detector, messages)
			printBatch(&result)
			return nil
		})
		if err != nil || !batchRecord {
			return err
		}

		// Persistence runs after every verdict is out; a store failure is a
		// warning, not a classification failure.
		if err := invoke(func(svc *core.GuardService, logger *zap.Logger) error {
			defer logger.Sync()
			return svc.RecordBatch(cmd.Context(), &result)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: batch was not fully recorded: %v\n", err)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().BoolVar(&batchRecord, "record", false, "Persist every verdict to the threat store")
}
