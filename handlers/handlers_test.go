package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fixdesk/models"
	"fixdesk/services/conversation"
	"fixdesk/services/detection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type noopGateway struct{}

func (noopGateway) CreateTicket(ctx context.Context, payload models.CreateTicketPayload) (*models.Ticket, error) {
	return &models.Ticket{ID: "T-1", Title: payload.Title}, nil
}

func (noopGateway) GetKeywordSuggestions(ctx context.Context, text string) ([]models.SuggestionRecord, error) {
	return nil, errors.New("not used")
}

func (noopGateway) Ping(ctx context.Context) error { return nil }

func postJSON(t *testing.T, handler gin.HandlerFunc, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	if userID != "" {
		c.Set("userID", userID)
	}
	handler(c)
	return w
}

func TestClassifyHandler(t *testing.T) {
	h := NewDetectionHandler(&detection.DefaultDetectionService{}, nil, nil, zap.NewNop())

	w := postJSON(t, h.ClassifyHandler, "user-1", gin.H{"text": "water leak in bathroom, urgent"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var result models.DetectionResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if result.Category != models.CategoryPlumbing {
		t.Fatalf("category = %v, want Plumbing", result.Category)
	}
	if result.Urgency != models.UrgencyHigh {
		t.Fatalf("urgency = %q, want High", result.Urgency)
	}
}

func TestCreateTicketHandlerRequiresUser(t *testing.T) {
	h := NewTicketHandler(noopGateway{}, zap.NewNop())

	w := postJSON(t, h.CreateTicketHandler, "", gin.H{"issueText": "spill in lobby"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 without a session user", w.Code)
	}
}

func TestCreateTicketHandlerGoesThroughDraftBuilder(t *testing.T) {
	h := NewTicketHandler(noopGateway{}, zap.NewNop())

	w := postJSON(t, h.CreateTicketHandler, "user-1", gin.H{"issueText": "x"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", w.Code, w.Body.String())
	}
	var created models.Ticket
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	// The same clamps as the chat flow: a one-character issue gets the
	// short-title prefix.
	if created.Title != "Maintenance Request - x" {
		t.Fatalf("title = %q, want the normalized title", created.Title)
	}
}

func TestChatHandlersDriveTheGuidedFlow(t *testing.T) {
	svc := &conversation.DefaultChatService{
		Store:    conversation.NewMemorySessionStore(time.Minute),
		Detector: &detection.DefaultDetectionService{},
		Gateway:  noopGateway{},
	}
	h := NewChatHandler(svc, zap.NewNop())

	w := postJSON(t, h.StartSessionHandler, "user-1", gin.H{})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	var reply models.ChatReply
	if err := json.Unmarshal(w.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decoding reply: %v", err)
	}
	if reply.State != models.StateAwaitingIssue {
		t.Fatalf("state = %q, want awaiting_issue", reply.State)
	}
	if len(reply.Messages) == 0 {
		t.Fatal("starting a session must emit a prompt message")
	}
}

func TestStartSessionHandlerRequiresUser(t *testing.T) {
	svc := &conversation.DefaultChatService{
		Store:    conversation.NewMemorySessionStore(time.Minute),
		Detector: &detection.DefaultDetectionService{},
		Gateway:  noopGateway{},
	}
	h := NewChatHandler(svc, zap.NewNop())

	w := postJSON(t, h.StartSessionHandler, "", gin.H{})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
