package conversation

import (
	"fmt"
	"strings"

	"fixdesk/models"
)

const (
	promptIssue    = "What would you like to report? Describe the issue in your own words."
	promptLocation = "Where is the problem located? (e.g. Room 101, 2nd floor, parking garage)"
	promptUrgency  = "How urgent is this?"
	promptConfirm  = "Does this look right? You can also attach photos before creating the ticket."
	msgSubmitting  = "Creating your ticket..."
	msgCancelled   = "No problem, I've discarded the request. Start again whenever you're ready."
	msgEditHandoff = "Okay, opening the full request form so you can fill it in manually."
	msgInFlight    = "Your ticket is being submitted, one moment..."
	msgNeedButtons = "Please pick one of the urgency options below."
)

var urgencyChoices = []models.ChatAction{models.ActionLow, models.ActionMedium, models.ActionHigh}
var confirmChoices = []models.ChatAction{models.ActionCreate, models.ActionEdit, models.ActionCancel}

// summarizeDraft renders the human-readable confirmation summary.
func summarizeDraft(draft models.IssueDraft) string {
	var b strings.Builder
	b.WriteString("Here's your request so far:\n")
	fmt.Fprintf(&b, "• Issue: %s\n", valueOr(draft.IssueText, "(not described)"))
	fmt.Fprintf(&b, "• Location: %s\n", valueOr(draft.Location, defaultLocation))
	urgency := draft.UrgencyLabel
	if urgency == "" {
		urgency = models.UrgencyMedium
	}
	fmt.Fprintf(&b, "• Urgency: %s", urgency)
	if draft.Category != 0 && draft.Category.Valid() {
		fmt.Fprintf(&b, "\n• Category: %s", draft.Category.Name())
	}
	if draft.PhotoCount > 0 {
		fmt.Fprintf(&b, "\n• Photos: %d", draft.PhotoCount)
	}
	return b.String()
}

func valueOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
