package models

// SessionUser is the authenticated identity attached to a request by the
// hosting application's auth middleware. User records themselves live in
// the upstream API.
type SessionUser struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
}
