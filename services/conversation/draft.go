package conversation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fixdesk/models"
	"fixdesk/services/detection"
)

// Ticket API validation limits. The builder clamps to these so a payload it
// produces is never rejected on length grounds.
const (
	minTitleLength       = 5
	maxTitleLength       = 200
	minDescriptionLength = 10
	maxDescriptionLength = 2000
	maxLocationLength    = 200

	defaultIssueTitle = "Maintenance Request"
	defaultLocation   = "Not specified"
	shortTitlePrefix  = "Maintenance Request - "
	descriptionFiller = "No further details were provided by the requester."
)

// BuildTicketPayload normalizes a draft into a valid create-ticket payload.
// It is pure: the same draft and user always produce the identical payload,
// which is what makes a retry after a failed submission byte-for-byte
// equal. Both the guided chat and the classic form go through here -- the
// normalization rules must never diverge between the two entry paths.
// onBehalfOf is only ever set by the classic form.
func BuildTicketPayload(draft models.IssueDraft, userID, onBehalfOf string) (models.CreateTicketPayload, error) {
	if userID == "" {
		return models.CreateTicketPayload{}, ErrUnauthenticated
	}

	title := strings.TrimSpace(draft.Title)
	if title == "" {
		title = strings.TrimSpace(draft.IssueText)
	}
	if title == "" {
		title = defaultIssueTitle
	}
	if loc := strings.TrimSpace(draft.Location); loc != "" {
		title = title + " - " + loc
	}
	if len(title) < minTitleLength {
		title = shortTitlePrefix + title
	}
	title = truncate(title, maxTitleLength)

	location := strings.TrimSpace(draft.Location)
	if location == "" {
		location = defaultLocation
	}
	location = truncate(location, maxLocationLength)

	urgency := draft.UrgencyLabel
	if urgency == "" {
		urgency = models.UrgencyMedium
	}
	priority := draft.PriorityNumber
	if priority < models.PriorityLow || priority > models.PriorityEmergency {
		priority = detection.PriorityNumber(urgency)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Issue: %s\n", orFallback(draft.IssueText, title))
	fmt.Fprintf(&b, "Location: %s\n", location)
	fmt.Fprintf(&b, "Priority: %s", urgency)
	if draft.PhotoCount > 0 {
		fmt.Fprintf(&b, "\nPhotos attached: %d", draft.PhotoCount)
	}
	description := b.String()
	if len(description) < minDescriptionLength {
		description = description + "\n" + descriptionFiller
	}
	description = truncate(description, maxDescriptionLength)

	return models.CreateTicketPayload{
		Title:             title,
		Description:       description,
		Location:          location,
		Priority:          priority,
		Category:          draft.Category,
		RequestedByUserID: userID,
		OnBehalfOf:        onBehalfOf,
	}, nil
}

// truncate cuts s to at most max bytes without splitting a UTF-8 rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

func orFallback(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return strings.TrimSpace(s)
}
