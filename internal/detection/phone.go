package detection

import "regexp"

// Phone number formats for the supported regions, including the local
// leading-zero form.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\+27\d{9}$`),   // South Africa
	regexp.MustCompile(`^\+234\d{10}$`), // Nigeria
	regexp.MustCompile(`^\+254\d{9}$`),  // Kenya
	regexp.MustCompile(`^\+233\d{9}$`),  // Ghana
	regexp.MustCompile(`^0\d{9}$`),      // Local format
}

// ValidPhoneNumber reports whether the sender looks like a subscriber
// number in one of the supported regional formats
func ValidPhoneNumber(phone string) bool {
	for _, pattern := range phonePatterns {
		if pattern.MatchString(phone) {
			return true
		}
	}
	return false
}
