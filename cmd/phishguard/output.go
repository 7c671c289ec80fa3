package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/phishguard/phishguard/internal/core"
)

func printJSON(v interface{}) {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode result: %v\n", err)
		return
	}
	fmt.Println(string(encoded))
}

func printAnalysis(analysis core.Analysis) {
	if jsonOut {
		printJSON(analysis)
		return
	}

	if analysis.Invalid {
		fmt.Println("Message too short to classify (no verdict).")
		return
	}

	fmt.Printf("Threat Level: %s\n", strings.ToUpper(string(analysis.ThreatLevel)))
	fmt.Printf("Confidence: %d%%\n", analysis.Confidence)
	if len(analysis.Reasons) > 0 {
		fmt.Printf("Reasons: %s\n", strings.Join(analysis.Reasons, ", "))
	}
	if analysis.IsPhishing {
		fmt.Println("This message appears to be PHISHING!")
	} else {
		fmt.Println("This message appears to be safe.")
	}
}

func printBatch(result *core.BatchResult) {
	if jsonOut {
		printJSON(result)
		return
	}

	fmt.Println("Batch Analysis Results")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Total Messages: %d\n", result.TotalMessages)
	fmt.Printf("Phishing Detected: %d\n", result.PhishingCount)
	fmt.Printf("High Risk: %d\n", result.HighRiskCount)
	fmt.Printf("Medium Risk: %d\n", result.MediumRiskCount)
	fmt.Printf("Low Risk: %d\n", result.LowRiskCount)
	fmt.Printf("Phishing Rate: %.1f%%\n", result.PhishingRate())
}

func printReport(report *core.ThreatReport) {
	if jsonOut {
		printJSON(report)
		return
	}

	fmt.Println("PhishGuard - Threat Report")
	fmt.Println(strings.Repeat("=", 50))

	fmt.Printf("Last %d Days Summary:\n", report.Summary.PeriodDays)
	fmt.Printf("  Total Messages: %d\n", report.Summary.TotalMessages)
	fmt.Printf("  Phishing Detected: %d\n", report.Summary.PhishingMessages)
	fmt.Printf("  Phishing Rate: %.2f%%\n", report.Summary.PhishingRate)
	fmt.Printf("  High Risk Messages: %d\n", report.Summary.HighRiskMessages)

	fmt.Println("\nTop Threat Patterns:")
	for _, pattern := range report.TopThreatPatterns {
		fmt.Printf("  %dx - %s\n", pattern.Count, strings.Join(pattern.Reasons, ", "))
	}

	fmt.Println("\nSecurity Recommendations:")
	for _, rec := range report.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
}
