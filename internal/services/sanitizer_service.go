package services

import (
	"regexp"
	"strings"
)

// redactionMarker replaces any matched prompt-injection phrase
const redactionMarker = "[REDACTED]"

// dangerousPatterns are phrase shapes associated with prompt-injection
// attempts. Matching is case-insensitive with flexible whitespace.
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+previous\s+instructions?`),
	regexp.MustCompile(`(?i)disregard\s+all\s+previous\s+instructions?`),
	regexp.MustCompile(`(?i)forget\s+everything\s+above`),
	regexp.MustCompile(`(?i)new\s+instructions?:`),
	regexp.MustCompile(`(?i)system\s*:`),
	regexp.MustCompile(`(?i)admin\s*:`),
	regexp.MustCompile(`(?i)\[\s*system\s*\]`),
	regexp.MustCompile(`(?i)\{\s*system\s*\}`),
	regexp.MustCompile(`(?i)<\s*system\s*>`),
	regexp.MustCompile(`(?i)you\s+are\s+now`),
	regexp.MustCompile(`(?i)pretend\s+you\s+are`),
	regexp.MustCompile(`(?i)from\s+now\s+on`),
	regexp.MustCompile(`(?i)act\s+as`),
}

// SanitizerService scrubs free-text fields before they are persisted or fed
// into bio generation. It never returns an error; the worst case is an empty
// result.
type SanitizerService struct {
	maxLength int
}

func NewSanitizerService(maxLength int) *SanitizerService {
	if maxLength <= 0 {
		maxLength = 500
	}
	return &SanitizerService{maxLength: maxLength}
}

// Sanitize trims surrounding whitespace, truncates to the configured maximum
// length, replaces known injection phrases with a redaction marker and strips
// control characters.
func (s *SanitizerService) Sanitize(input string) string {
	sanitized := strings.TrimSpace(input)

	// Truncation happens before pattern matching and counts runes, not bytes.
	if runes := []rune(sanitized); len(runes) > s.maxLength {
		sanitized = string(runes[:s.maxLength])
	}

	for _, pattern := range dangerousPatterns {
		sanitized = pattern.ReplaceAllString(sanitized, redactionMarker)
	}

	// Remove control characters (0x00-0x1F and DEL) after the pattern pass.
	sanitized = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, sanitized)

	return sanitized
}

// SanitizeList sanitizes every element and drops the ones that end up empty,
// preserving the order of the remaining elements.
func (s *SanitizerService) SanitizeList(inputs []string) []string {
	sanitized := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if clean := s.Sanitize(input); clean != "" {
			sanitized = append(sanitized, clean)
		}
	}
	return sanitized
}

// ContainsDangerousPattern reports whether the input matches any known
// injection phrase, without modifying it.
func (s *SanitizerService) ContainsDangerousPattern(input string) bool {
	for _, pattern := range dangerousPatterns {
		if pattern.MatchString(input) {
			return true
		}
	}
	return false
}
