package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"fixdesk/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore(time.Minute)

	session := &models.ChatSession{SessionID: "s1", UserID: "user-1", State: models.StateAwaitingIssue}
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserID != "user-1" || got.State != models.StateAwaitingIssue {
		t.Fatalf("got = %+v", got)
	}

	// Mutating the returned session must not change the stored copy.
	got.Draft.IssueText = "mutated"
	again, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again.Draft.IssueText != "" {
		t.Fatal("store leaked a mutable reference to its session")
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound after delete", err)
	}
}

func TestMemoryStoreSweepRemovesExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore(-time.Second) // everything is born expired

	if err := store.Save(ctx, &models.ChatSession{SessionID: "old"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if removed := store.Sweep(); removed != 1 {
		t.Fatalf("Sweep removed %d, want 1", removed)
	}
	if _, err := store.Get(ctx, "old"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}
