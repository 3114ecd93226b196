package detection

import (
	"regexp"
	"strings"

	"fixdesk/models"
)

var (
	highUrgencyPattern = regexp.MustCompile(`(?i)\b(emergency|urgent(ly)?|critical|asap|immediately|right away)\b`)
	lowUrgencyPattern  = regexp.MustCompile(`(?i)\b(when possible|whenever|not urgent|no rush|low priority)\b`)

	// Hazard phrases escalate past the three guided-flow levels. Only
	// free-text detection can produce priority 4-5; the chat buttons stop
	// at High.
	emergencyPattern = regexp.MustCompile(`(?i)\b(gas leak|fire(?: hazard)?|smoke|flood(ing)?|carbon monoxide|exposed wir(e|ing)|someone (is )?hurt|injur(y|ed))\b`)
)

// InferUrgency scans text for urgency keywords and returns one of the three
// coarse labels. The low-urgency phrases are negations ("not urgent") and
// must be checked before the bare high-urgency keywords they contain.
func InferUrgency(text string) models.Urgency {
	if lowUrgencyPattern.MatchString(text) {
		return models.UrgencyLow
	}
	if highUrgencyPattern.MatchString(text) {
		return models.UrgencyHigh
	}
	return models.UrgencyMedium
}

// PriorityNumber maps an urgency label to the 1-5 priority scale used by
// the ticket API.
func PriorityNumber(u models.Urgency) int {
	switch u {
	case models.UrgencyLow:
		return models.PriorityLow
	case models.UrgencyHigh:
		return models.PriorityHigh
	default:
		return models.PriorityMedium
	}
}

// detectPriority returns the priority number for free text, escalating to
// Emergency when a hazard phrase is present.
func detectPriority(text string) int {
	if emergencyPattern.MatchString(strings.ToLower(text)) {
		return models.PriorityEmergency
	}
	return PriorityNumber(InferUrgency(text))
}
