package conversation

import (
	"context"

	"fixdesk/models"
	"fixdesk/services/detection"
	"fixdesk/services/ticket"
)

// ChatService drives the guided ticket-creation conversation, one turn per
// call. Every turn loads the session, applies exactly one transition (or
// rejects the input) and persists the result.
type ChatService interface {
	StartSession(ctx context.Context, userID, initialText string) (*models.ChatReply, error)
	HandleMessage(ctx context.Context, sessionID, userID, text string) (*models.ChatReply, error)
	HandleAction(ctx context.Context, sessionID, userID string, action models.ChatAction) (*models.ChatReply, error)

	// RecordRemoteDetection stores the latest debounced remote detection on
	// the session; LatestRemoteDetection reads it back.
	RecordRemoteDetection(ctx context.Context, sessionID string, result models.DetectionResult) error
	LatestRemoteDetection(ctx context.Context, sessionID, userID string) (*models.DetectionResult, error)
}

// DefaultChatService implements ChatService.
type DefaultChatService struct {
	Store    SessionStore
	Detector detection.DetectionService
	Gateway  ticket.Gateway
}
