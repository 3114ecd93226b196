package models

import "time"

// ConversationState is the current stage of a guided chat session.
type ConversationState string

const (
	StateIdle                 ConversationState = "idle"
	StateAwaitingIssue        ConversationState = "awaiting_issue"
	StateAwaitingLocation     ConversationState = "awaiting_location"
	StateAwaitingUrgency      ConversationState = "awaiting_urgency"
	StateAwaitingConfirmation ConversationState = "awaiting_confirmation"
	StateSubmitting           ConversationState = "submitting"
)

// Urgency is the coarse urgency label collected from the user.
type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// Priority numbers as enforced by the ticket API. Only 1-3 are reachable
// through the guided flow; 4-5 come from free-text detection.
const (
	PriorityLow       = 1
	PriorityMedium    = 2
	PriorityHigh      = 3
	PriorityCritical  = 4
	PriorityEmergency = 5
)

// ChatAction is an explicit button action sent by the chat widget.
type ChatAction string

const (
	ActionLow    ChatAction = "low"
	ActionMedium ChatAction = "medium"
	ActionHigh   ChatAction = "high"
	// ActionPhotoAdded is sent by the widget after each external photo
	// upload so the draft records the count. Legal at confirmation only.
	ActionPhotoAdded ChatAction = "photo_added"
	ActionCreate     ChatAction = "create"
	ActionEdit       ChatAction = "edit"
	ActionCancel     ChatAction = "cancel"
)

// IssueDraft is the accumulated, not-yet-submitted ticket state gathered
// during one chat session.
type IssueDraft struct {
	IssueText      string   `json:"issueText,omitempty"`
	Location       string   `json:"location,omitempty"`
	UrgencyLabel   Urgency  `json:"urgencyLabel,omitempty"`
	PriorityNumber int      `json:"priorityNumber,omitempty"`
	Category       Category `json:"category,omitempty"`
	Title          string   `json:"title,omitempty"`
	PhotoCount     int      `json:"photoCount,omitempty"`
}

// ChatSession holds one widget's conversation context between turns.
type ChatSession struct {
	SessionID string            `json:"sessionId"`
	UserID    string            `json:"userId"`
	State     ConversationState `json:"state"`
	Draft     IssueDraft        `json:"draft"`
	// LastRemoteDetection is the most recent debounced remote detection
	// delivered for this session, if any.
	LastRemoteDetection *DetectionResult `json:"lastRemoteDetection,omitempty"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

// ChatReply is what the service returns for every chat turn.
type ChatReply struct {
	SessionID string            `json:"sessionId"`
	State     ConversationState `json:"state"`
	Messages  []string          `json:"messages"`
	Choices   []ChatAction      `json:"choices,omitempty"`
	Draft     *IssueDraft       `json:"draft,omitempty"`
	Ticket    *Ticket           `json:"ticket,omitempty"`
	Retryable bool              `json:"retryable,omitempty"`
}
