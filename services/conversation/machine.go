package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fixdesk/models"
	"fixdesk/services/detection"
	"fixdesk/services/ticket"

	"github.com/google/uuid"
)

// StartSession begins a guided conversation for the user. When initialText
// is provided and the classifier finds concrete details in it, the guided
// questions are skipped and the session lands directly on confirmation with
// the detected fields pre-filled.
func (s *DefaultChatService) StartSession(ctx context.Context, userID, initialText string) (*models.ChatReply, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	session := &models.ChatSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		State:     models.StateAwaitingIssue,
		CreatedAt: time.Now(),
	}

	var reply *models.ChatReply
	if trimmed := strings.TrimSpace(initialText); trimmed != "" {
		reply = s.startWithText(session, trimmed)
	} else {
		reply = s.reply(session, []string{promptIssue}, nil)
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save chat session: %w", err)
	}
	return reply, nil
}

// startWithText is the direct entry: free text supplied while opening the
// session. When the classifier finds both a category and a location the
// guided questions are skipped and the session lands on confirmation fully
// pre-filled, urgency included. This is the only place free-text urgency
// feeds the draft; inside the guided flow urgency comes from the buttons.
func (s *DefaultChatService) startWithText(session *models.ChatSession, trimmed string) *models.ChatReply {
	det := s.Detector.Classify(trimmed)
	if det.HasDetails && det.Location != "" {
		session.Draft.IssueText = trimmed
		session.Draft.Category = det.Category
		session.Draft.Title = det.IssueTitle
		session.Draft.Location = det.Location
		session.Draft.UrgencyLabel = det.Urgency
		session.Draft.PriorityNumber = det.PriorityNumber
		session.State = models.StateAwaitingConfirmation
		return s.reply(session, []string{summarizeDraft(session.Draft), promptConfirm}, confirmChoices)
	}
	return s.applyIssue(session, trimmed)
}

// HandleMessage advances the conversation with one free-text user message.
func (s *DefaultChatService) HandleMessage(ctx context.Context, sessionID, userID, text string) (*models.ChatReply, error) {
	session, err := s.loadSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	var reply *models.ChatReply
	switch session.State {
	case models.StateIdle:
		// A message to an idle session is a fresh ticket request.
		session.Draft = models.IssueDraft{}
		session.State = models.StateAwaitingIssue
		reply = s.applyIssueOrPrompt(session, text)

	case models.StateAwaitingIssue:
		reply = s.applyIssue(session, text)

	case models.StateAwaitingLocation:
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			reply = s.reply(session, []string{promptLocation}, nil)
			break
		}
		session.Draft.Location = trimmed
		session.State = models.StateAwaitingUrgency
		reply = s.reply(session, []string{promptUrgency}, urgencyChoices)

	case models.StateAwaitingUrgency:
		// Urgency is buttons-only inside the guided flow.
		reply = s.reply(session, []string{msgNeedButtons, promptUrgency}, urgencyChoices)

	case models.StateAwaitingConfirmation:
		reply = s.reply(session, []string{summarizeDraft(session.Draft), promptConfirm}, confirmChoices)

	case models.StateSubmitting:
		reply = s.reply(session, []string{msgInFlight}, nil)

	default:
		return nil, &TransitionError{State: session.State, Input: "message"}
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save chat session: %w", err)
	}
	return reply, nil
}

// HandleAction applies one explicit button action.
func (s *DefaultChatService) HandleAction(ctx context.Context, sessionID, userID string, action models.ChatAction) (*models.ChatReply, error) {
	session, err := s.loadSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	// Cancel is legal from every state and always discards the draft.
	if action == models.ActionCancel {
		session.Draft = models.IssueDraft{}
		session.State = models.StateIdle
		reply := s.reply(session, []string{msgCancelled}, nil)
		if err := s.Store.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to save chat session: %w", err)
		}
		return reply, nil
	}

	var reply *models.ChatReply
	switch {
	case session.State == models.StateAwaitingUrgency && isUrgencyAction(action):
		session.Draft.UrgencyLabel = urgencyForAction(action)
		session.Draft.PriorityNumber = detection.PriorityNumber(session.Draft.UrgencyLabel)
		session.State = models.StateAwaitingConfirmation
		reply = s.reply(session, []string{summarizeDraft(session.Draft), promptConfirm}, confirmChoices)

	case session.State == models.StateAwaitingConfirmation && action == models.ActionPhotoAdded:
		// Photo uploads happen outside this service; the widget reports
		// each one so the ticket description can record the count.
		session.Draft.PhotoCount++
		reply = s.reply(session, []string{summarizeDraft(session.Draft), promptConfirm}, confirmChoices)

	case session.State == models.StateAwaitingConfirmation && action == models.ActionEdit:
		session.Draft = models.IssueDraft{}
		session.State = models.StateIdle
		reply = s.reply(session, []string{msgEditHandoff}, nil)

	case session.State == models.StateAwaitingConfirmation && action == models.ActionCreate:
		return s.submit(ctx, session)

	case session.State == models.StateSubmitting && action == models.ActionCreate:
		// A second Create while a submission is in flight is a no-op.
		reply = s.reply(session, []string{msgInFlight}, nil)

	default:
		return nil, &TransitionError{State: session.State, Input: string(action)}
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save chat session: %w", err)
	}
	return reply, nil
}

// submit performs exactly one create call for the current draft. The draft
// itself is never mutated here: a retry after failure rebuilds the exact
// payload that failed.
func (s *DefaultChatService) submit(ctx context.Context, session *models.ChatSession) (*models.ChatReply, error) {
	payload, err := BuildTicketPayload(session.Draft, session.UserID, "")
	if err != nil {
		// Unauthenticated is the only build failure: surface and reset.
		session.Draft = models.IssueDraft{}
		session.State = models.StateIdle
		if saveErr := s.Store.Save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return nil, err
	}

	// Mark the session in flight before the network call so a concurrent
	// Create sees Submitting and no-ops.
	session.State = models.StateSubmitting
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save chat session: %w", err)
	}

	created, err := s.Gateway.CreateTicket(ctx, payload)
	if err != nil {
		session.State = models.StateAwaitingConfirmation
		if saveErr := s.Store.Save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		reply := s.reply(session, []string{humanizeSubmissionError(err), promptConfirm}, confirmChoices)
		reply.Retryable = true
		return reply, nil
	}

	session.Draft = models.IssueDraft{}
	session.State = models.StateIdle
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save chat session: %w", err)
	}

	reply := s.reply(session, []string{
		msgSubmitting,
		fmt.Sprintf("Done! Ticket %s has been created. The facilities team has been notified.", created.ID),
	}, nil)
	reply.Ticket = created
	return reply, nil
}

// RecordRemoteDetection stores the latest debounced remote detection on the
// session. Missing sessions are ignored: the result of a superseded or
// late-arriving detection must never resurrect expired state.
func (s *DefaultChatService) RecordRemoteDetection(ctx context.Context, sessionID string, result models.DetectionResult) error {
	session, err := s.Store.Get(ctx, sessionID)
	if err == ErrSessionNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	session.LastRemoteDetection = &result
	return s.Store.Save(ctx, session)
}

// LatestRemoteDetection returns the most recent delivered remote detection,
// or a zero-confidence fallback when nothing has been delivered yet.
func (s *DefaultChatService) LatestRemoteDetection(ctx context.Context, sessionID, userID string) (*models.DetectionResult, error) {
	session, err := s.loadSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.LastRemoteDetection == nil {
		fallback := s.Detector.Classify("")
		return &fallback, nil
	}
	return session.LastRemoteDetection, nil
}

// applyIssueOrPrompt either records the initial issue text or, when there
// is none, prompts for it.
func (s *DefaultChatService) applyIssueOrPrompt(session *models.ChatSession, text string) *models.ChatReply {
	if strings.TrimSpace(text) == "" {
		return s.reply(session, []string{promptIssue}, nil)
	}
	return s.applyIssue(session, text)
}

// applyIssue stores the user's issue text verbatim, pre-fills the category
// and title from the classifier and asks for the location. Inside the
// guided flow the issue text always leads to the location question; the
// flow never blocks on classification confidence, and urgency stays with
// the buttons.
func (s *DefaultChatService) applyIssue(session *models.ChatSession, text string) *models.ChatReply {
	trimmed := strings.TrimSpace(text)
	session.Draft.IssueText = trimmed

	det := s.Detector.Classify(trimmed)
	if det.Confidence > 0 {
		session.Draft.Category = det.Category
		session.Draft.Title = det.IssueTitle
	} else {
		session.Draft.Category = models.CategoryGeneral
		session.Draft.Title = trimmed
	}

	session.State = models.StateAwaitingLocation
	return s.reply(session, []string{promptLocation}, nil)
}

func (s *DefaultChatService) loadSession(ctx context.Context, sessionID, userID string) (*models.ChatSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	// A session belongs to exactly one user; treat a mismatch the same as
	// a missing session.
	if userID != "" && session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *DefaultChatService) reply(session *models.ChatSession, messages []string, choices []models.ChatAction) *models.ChatReply {
	draft := session.Draft
	return &models.ChatReply{
		SessionID: session.SessionID,
		State:     session.State,
		Messages:  messages,
		Choices:   choices,
		Draft:     &draft,
	}
}

func isUrgencyAction(action models.ChatAction) bool {
	return action == models.ActionLow || action == models.ActionMedium || action == models.ActionHigh
}

func urgencyForAction(action models.ChatAction) models.Urgency {
	switch action {
	case models.ActionLow:
		return models.UrgencyLow
	case models.ActionHigh:
		return models.UrgencyHigh
	default:
		return models.UrgencyMedium
	}
}

// humanizeSubmissionError turns gateway errors into a chat message with the
// backend's own words where available.
func humanizeSubmissionError(err error) string {
	if ticket.IsRejected(err) {
		return fmt.Sprintf("The ticket service rejected the request: %v. You can retry or open the full form.", err)
	}
	return "I couldn't reach the ticket service. Your details are saved - you can retry or open the full form."
}
