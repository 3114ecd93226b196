package ticket

import (
	"context"

	"fixdesk/models"
)

// Gateway is the network boundary to the upstream ticket API. Timeout and
// retry policy live behind this interface, not in the callers.
type Gateway interface {
	CreateTicket(ctx context.Context, payload models.CreateTicketPayload) (*models.Ticket, error)
	GetKeywordSuggestions(ctx context.Context, text string) ([]models.SuggestionRecord, error)
	Ping(ctx context.Context) error
}
