package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phishguard/phishguard/internal/core"
	"github.com/phishguard/phishguard/internal/detection"
)

var demoMessages = []core.Message{
	{
		Sender:  "+27123456789",
		Content: "URGENT: Your ABSA account has been suspended. Click here to verify: http://bit.ly/absa-secure-now",
	},
	{
		Sender:  "MTN",
		Content: "Congratulations! You won R50,000 from MTN. Claim your prize: http://tinyurl.com/mtn-win-2024",
	},
	{
		Sender:  "Mom",
		Content: "Hi, can you please send me some airtime when you get a chance?",
	},
	{
		Sender:  "+441234567890",
		Content: "Security Alert: Unusual login detected on your account. Verify now: http://security-update-africa.com",
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a demonstration with sample messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(func(detector *detection.Detector, logger *zap.Logger) error {
			defer logger.Sync()
			for i, msg := range demoMessages {
				fmt.Printf("Message %d:\n", i+1)
				fmt.Printf("From: %s", msg.Sender)
				if detection.ValidPhoneNumber(msg.Sender) {
					fmt.Printf(" (valid subscriber number)")
				}
				fmt.Printf("\nContent: %s\n", msg.Content)
				printAnalysis(detector.Analyze(msg))
				fmt.Println()
			}
			return nil
		})
	},
}
