package detection

import (
	"testing"

	"github.com/phishguard/phishguard/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testRules mirrors the default rule tables shipped in the configuration
func testRules() *Rules {
	return &Rules{
		TrustedSenders:        []string{"MTN", "VODACOM", "SAFARICOM", "AIRTEL", "MPESA", "ABSABANK"},
		TrustedCountryCodes:   []string{"+27", "+234", "+254", "+233"},
		SuspiciousSenderTerms: []string{"bank", "security", "alert", "update"},
		Keywords: []string{
			"urgent", "immediately", "account suspended", "verify now",
			"click here", "limited time", "winner", "prize", "lottery",
			"bank alert", "security update", "password expired",
			"unauthorized login", "confirm your account", "free money",
			"bonus", "reward", "congratulations", "you have won",
		},
		Banks: []string{
			"absa", "standard bank", "fnb", "nedbank", "capitec",
			"ecobank", "uba", "zenith", "access bank", "gtbank",
			"first bank", "union bank", "fidelity", "polaris",
		},
		Telecoms: []string{
			"mtn", "vodacom", "safaricom", "airtel", "orange",
			"telkom", "cell c", "mpesa", "mobile money",
		},
		UrgencyTerms:     []string{"urgent", "verify", "suspended", "update"},
		PrizeTerms:       []string{"win", "prize", "free", "bonus"},
		WinTerms:         []string{"win", "won", "prize", "reward"},
		CurrencyPattern:  `(?i)(R\s?\d+|₦\s?\d+|KSh\s?\d+|GHS\s?\d+|USD\s?\d+|ZAR\s?\d+)`,
		ShortenerDomains: []string{"bit.ly", "tinyurl", "goo.gl", "shorturl"},
		URLTerms:         []string{"free", "win", "prize", "reward", "bonus", "claim"},
		MinTokens:        2,
		HighThreshold:    7,
		MediumThreshold:  4,
		LowThreshold:     2,
	}
}

func newTestDetector(t *testing.T) *Detector {
	t.Helper()
	detector, err := NewDetector(testRules(), zap.NewNop())
	require.NoError(t, err)
	return detector
}

func TestDetector_Analyze(t *testing.T) {
	detector := newTestDetector(t)

	tests := []struct {
		name            string
		content         string
		sender          string
		wantPhishing    bool
		wantThreatLevel core.ThreatLevel
		wantConfidence  int
	}{
		{
			name:            "Legitimate mobile money receipt",
			content:         "You have received KSH 2,500 from John Doe. New balance is KSH 3,950.50",
			sender:          "MPESA",
			wantPhishing:    false,
			wantThreatLevel: core.ThreatLow,
			wantConfidence:  0,
		},
		{
			name:            "Account suspension with shortened link from untrusted international number",
			content:         "URGENT: Your account will be suspended. Verify now: http://bit.ly/verify-now",
			sender:          "+44123456789",
			wantPhishing:    true,
			wantThreatLevel: core.ThreatMedium,
			wantConfidence:  48,
		},
		{
			name:            "Telecom prize scam with currency amount",
			content:         "Congratulations! You won R50,000 from MTN. Claim your prize: http://tinyurl.com/mtn-win-2024",
			sender:          "MTN",
			wantPhishing:    true,
			wantThreatLevel: core.ThreatHigh,
			wantConfidence:  90,
		},
		{
			name:            "Personal airtime request",
			content:         "Hi, can you please send me some airtime when you get a chance?",
			sender:          "Mom",
			wantPhishing:    false,
			wantThreatLevel: core.ThreatLow,
			wantConfidence:  0,
		},
		{
			name:            "Login alert below the phishing threshold",
			content:         "Security Alert: Unusual login detected on your account. Verify now: http://security-update-africa.com",
			sender:          "+441234567890",
			wantPhishing:    false,
			wantThreatLevel: core.ThreatLow,
			wantConfidence:  15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := detector.Analyze(core.Message{Content: tt.content, Sender: tt.sender})

			assert.False(t, analysis.Invalid)
			assert.Equal(t, tt.wantPhishing, analysis.IsPhishing)
			assert.Equal(t, tt.wantThreatLevel, analysis.ThreatLevel)
			assert.Equal(t, tt.wantConfidence, analysis.Confidence)
			assert.Equal(t, tt.content, analysis.MessageContent)
			assert.Equal(t, tt.sender, analysis.Sender)
		})
	}
}

func TestDetector_Analyze_ReasonsMatchComponentScores(t *testing.T) {
	detector := newTestDetector(t)

	messages := []core.Message{
		{Content: "You have received KSH 2,500 from John Doe. New balance is KSH 3,950.50", Sender: "MPESA"},
		{Content: "URGENT: Your account will be suspended. Verify now: http://bit.ly/verify-now", Sender: "+44123456789"},
		{Content: "Congratulations! You won R50,000 from MTN. Claim your prize: http://tinyurl.com/mtn-win-2024", Sender: "MTN"},
		{Content: "Meeting moved to 3pm tomorrow", Sender: "+27821234567"},
		{Content: "Update your details at http://10.0.0.1/claim", Sender: "FNB-Security-Alert"},
	}

	for _, msg := range messages {
		analysis := detector.Analyze(msg)

		assert.Equal(t, analysis.SenderRisk > 0,
			contains(analysis.Reasons, core.ReasonSuspiciousSender), "sender reason mismatch for %q", msg.Sender)
		assert.Equal(t, analysis.ContentRisk > 0,
			contains(analysis.Reasons, core.ReasonPhishingKeywords), "content reason mismatch for %q", msg.Content)
		assert.Equal(t, analysis.URLRisk > 0,
			contains(analysis.Reasons, core.ReasonSuspiciousLinks), "url reason mismatch for %q", msg.Content)

		if analysis.TotalRisk() > 0 {
			assert.NotEmpty(t, analysis.Reasons)
		} else {
			assert.Empty(t, analysis.Reasons)
		}
	}
}

func TestDetector_Analyze_Deterministic(t *testing.T) {
	detector := newTestDetector(t)
	msg := core.Message{
		Content: "URGENT: Your ABSA account has been suspended. Click here to verify: http://bit.ly/absa-secure-now",
		Sender:  "+27123456789",
	}

	first := detector.Analyze(msg)
	for i := 0; i < 10; i++ {
		again := detector.Analyze(msg)
		again.Timestamp = first.Timestamp
		assert.Equal(t, first, again)
	}
}

func TestDetector_Analyze_ThresholdTable(t *testing.T) {
	detector := newTestDetector(t)

	// Repeating a shortened URL escalates risk by 2 per occurrence, walking
	// total risk through every threshold band.
	tests := []struct {
		urls            int
		wantTotal       int
		wantPhishing    bool
		wantThreatLevel core.ThreatLevel
		wantConfidence  int
	}{
		{urls: 1, wantTotal: 2, wantPhishing: false, wantThreatLevel: core.ThreatLow, wantConfidence: 10},
		{urls: 2, wantTotal: 4, wantPhishing: true, wantThreatLevel: core.ThreatMedium, wantConfidence: 32},
		{urls: 3, wantTotal: 6, wantPhishing: true, wantThreatLevel: core.ThreatMedium, wantConfidence: 48},
		{urls: 4, wantTotal: 8, wantPhishing: true, wantThreatLevel: core.ThreatHigh, wantConfidence: 80},
		{urls: 5, wantTotal: 10, wantPhishing: true, wantThreatLevel: core.ThreatHigh, wantConfidence: 95},
	}

	for _, tt := range tests {
		content := "see this"
		for i := 0; i < tt.urls; i++ {
			content += " http://bit.ly/x"
		}

		analysis := detector.Analyze(core.Message{Content: content, Sender: "Unknown"})
		assert.Equal(t, tt.wantTotal, analysis.TotalRisk(), "urls=%d", tt.urls)
		assert.Equal(t, tt.wantPhishing, analysis.IsPhishing, "urls=%d", tt.urls)
		assert.Equal(t, tt.wantThreatLevel, analysis.ThreatLevel, "urls=%d", tt.urls)
		assert.Equal(t, tt.wantConfidence, analysis.Confidence, "urls=%d", tt.urls)
		assert.LessOrEqual(t, analysis.Confidence, 95)
	}
}

func TestDetector_Analyze_InvalidInput(t *testing.T) {
	detector := newTestDetector(t)

	for _, content := range []string{"", "   ", "hello", " win \t"} {
		analysis := detector.Analyze(core.Message{Content: content, Sender: "+44123456789"})

		assert.True(t, analysis.Invalid, "content %q", content)
		assert.False(t, analysis.IsPhishing)
		assert.Equal(t, core.ThreatLow, analysis.ThreatLevel)
		assert.Zero(t, analysis.Confidence)
		assert.Empty(t, analysis.Reasons)
		assert.Zero(t, analysis.TotalRisk())
	}
}

func TestNewDetector_InvalidCurrencyPattern(t *testing.T) {
	rules := testRules()
	rules.CurrencyPattern = `(`

	_, err := NewDetector(rules, zap.NewNop())
	assert.Error(t, err)
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
