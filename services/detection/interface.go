package detection

import (
	"context"

	"fixdesk/models"
	"fixdesk/services/ticket"
)

// DetectionService turns free-text user input into a structured issue
// description. Classify is local and instant; RemoteDetect consults the
// ticket API's keyword-suggestion endpoint for a richer signal.
type DetectionService interface {
	Classify(text string) models.DetectionResult
	RemoteDetect(ctx context.Context, text string) models.DetectionResult
}

// DefaultDetectionService implements DetectionService.
type DefaultDetectionService struct {
	Gateway ticket.Gateway
}
