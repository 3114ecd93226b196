package ticket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fixdesk/models"
)

func newTestGateway(srv *httptest.Server) *HTTPGateway {
	return &HTTPGateway{
		BaseURL: srv.URL,
		Client:  &http.Client{Timeout: 2 * time.Second},
	}
}

func TestCreateTicketSuccess(t *testing.T) {
	var received models.CreateTicketPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/tickets" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decoding payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Ticket{ID: "T-1", Title: received.Title, Status: "open"})
	}))
	defer srv.Close()

	gw := newTestGateway(srv)
	payload := models.CreateTicketPayload{
		Title:             "HVAC issue - Room 101",
		Description:       "Issue: AC not working\nLocation: Room 101\nPriority: High",
		Location:          "Room 101",
		Priority:          3,
		RequestedByUserID: "user-1",
	}

	created, err := gw.CreateTicket(context.Background(), payload)
	if err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}
	if created.ID != "T-1" {
		t.Fatalf("ticket ID = %q, want T-1", created.ID)
	}
	if received.Priority != 3 {
		t.Fatalf("server received priority %d, want 3", received.Priority)
	}
}

func TestCreateTicketRejectedSurfacesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "title is too short"})
	}))
	defer srv.Close()

	_, err := newTestGateway(srv).CreateTicket(context.Background(), models.CreateTicketPayload{})
	var rejected *SubmissionRejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("err = %v, want SubmissionRejectedError", err)
	}
	if rejected.Message != "title is too short" {
		t.Fatalf("message = %q, want the backend's own words", rejected.Message)
	}
	if rejected.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rejected.StatusCode)
	}
}

func TestCreateTicketServerErrorIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestGateway(srv).CreateTicket(context.Background(), models.CreateTicketPayload{})
	var failed *SubmissionFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("err = %v, want SubmissionFailedError", err)
	}
	if IsRejected(err) {
		t.Fatal("a 5xx must not be classified as a validation rejection")
	}
}

func TestCreateTicketNetworkErrorIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := newTestGateway(srv).CreateTicket(context.Background(), models.CreateTicketPayload{})
	var failed *SubmissionFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("err = %v, want SubmissionFailedError", err)
	}
}

func TestGetKeywordSuggestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tickets/keywords" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("text"); got != "water leak" {
			t.Fatalf("text query = %q, want %q", got, "water leak")
		}
		json.NewEncoder(w).Encode([]models.SuggestionRecord{
			{Keyword: "pipe burst", Category: models.CategoryPlumbing, CategoryText: "Plumbing", Relevance: 0.9},
		})
	}))
	defer srv.Close()

	recs, err := newTestGateway(srv).GetKeywordSuggestions(context.Background(), "water leak")
	if err != nil {
		t.Fatalf("GetKeywordSuggestions: %v", err)
	}
	if len(recs) != 1 || recs[0].Keyword != "pipe burst" {
		t.Fatalf("recs = %+v", recs)
	}
}

func TestGetKeywordSuggestionsFailureIsDetectionUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestGateway(srv).GetKeywordSuggestions(context.Background(), "water leak")
	var unavailable *DetectionUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want DetectionUnavailableError", err)
	}
}
