package conversation

import (
	"errors"
	"fmt"

	"fixdesk/models"
)

// ErrUnauthenticated is returned when a draft is built or submitted without
// a session user.
var ErrUnauthenticated = errors.New("no authenticated user for this session")

// ErrSessionNotFound is returned when a chat session does not exist or has
// expired.
var ErrSessionNotFound = errors.New("chat session not found or expired")

// TransitionError reports an input that is not legal in the session's
// current state. The session is left unchanged.
type TransitionError struct {
	State models.ConversationState
	Input string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("input %q is not valid in state %q", e.Input, e.State)
}
