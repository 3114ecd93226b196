package ticket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"fixdesk/config"
	"fixdesk/models"
)

// HTTPGateway talks to the upstream ticket REST API.
type HTTPGateway struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewHTTPGateway builds a gateway from the loaded application config.
func NewHTTPGateway() *HTTPGateway {
	timeout := time.Duration(config.AppConfig.TicketAPITimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPGateway{
		BaseURL: config.AppConfig.TicketAPIBaseURL,
		APIKey:  config.AppConfig.TicketAPIKey,
		Client:  &http.Client{Timeout: timeout},
	}
}

// CreateTicket performs exactly one create call. 4xx responses surface as
// SubmissionRejectedError with the backend message; 5xx and transport
// failures as SubmissionFailedError.
func (g *HTTPGateway) CreateTicket(ctx context.Context, payload models.CreateTicketPayload) (*models.Ticket, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ticket payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/api/tickets", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build create-ticket request: %w", err)
	}
	g.setHeaders(req)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, &SubmissionFailedError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var created models.Ticket
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			return nil, &SubmissionFailedError{Err: fmt.Errorf("decoding create-ticket response: %w", err)}
		}
		return &created, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, &SubmissionRejectedError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	default:
		return nil, &SubmissionFailedError{StatusCode: resp.StatusCode}
	}
}

// GetKeywordSuggestions fetches suggestion records for the typed text.
// Failures are wrapped as DetectionUnavailableError so callers can degrade
// to local classification.
func (g *HTTPGateway) GetKeywordSuggestions(ctx context.Context, text string) ([]models.SuggestionRecord, error) {
	endpoint := fmt.Sprintf("%s/api/tickets/keywords?text=%s", g.BaseURL, url.QueryEscape(text))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &DetectionUnavailableError{Err: err}
	}
	g.setHeaders(req)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, &DetectionUnavailableError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &DetectionUnavailableError{Err: fmt.Errorf("suggestion endpoint returned status %d", resp.StatusCode)}
	}

	var recs []models.SuggestionRecord
	if err := json.NewDecoder(resp.Body).Decode(&recs); err != nil {
		return nil, &DetectionUnavailableError{Err: fmt.Errorf("decoding suggestions: %w", err)}
	}
	return recs, nil
}

// Ping checks upstream reachability. Used by the periodic health probe.
func (g *HTTPGateway) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("ticket API health returned status %d", resp.StatusCode)
	}
	return nil
}

func (g *HTTPGateway) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if g.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.APIKey)
	}
}

// readErrorMessage extracts a human-readable message from an error body.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return "the ticket service rejected the request"
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return string(raw)
}
