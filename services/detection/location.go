package detection

import (
	"regexp"
	"strings"
)

// locationPatterns pull a location phrase out of free text. First match
// wins. Capture group 1 is the phrase reported to the user.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b((?:room|rm|office|suite|unit|apt|apartment)\.?\s*#?\s*[0-9]+[a-z]?)\b`),
	regexp.MustCompile(`(?i)\b([0-9]+(?:st|nd|rd|th)\s+floor)\b`),
	regexp.MustCompile(`(?i)\b(floor\s+[0-9]+)\b`),
	regexp.MustCompile(`(?i)\b((?:building|block|wing|tower)\s+[a-z0-9]+)\b`),
	regexp.MustCompile(`(?i)\b(basement|rooftop|roof|lobby|reception|parking (?:lot|garage)|garage|stairwell|hallway|corridor|cafeteria|kitchen|break room|conference room|meeting room|server room|storage room|utility room|elevator|entrance|exit)\b`),
	regexp.MustCompile(`(?i)\b((?:men'?s|women'?s|gents|ladies)?\s*(?:bathroom|restroom|washroom|toilets?))\b`),
	regexp.MustCompile(`(?i)(?:\bin|\bat|\bnear)\s+the\s+([a-z][a-z ]{2,40}?)(?:[,.!?]|$)`),
}

// extractLocation returns the first location phrase found in text, or ""
// when nothing matches.
func extractLocation(text string) string {
	for _, p := range locationPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
