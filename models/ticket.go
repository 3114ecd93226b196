package models

import "time"

// CreateTicketPayload is the create-ticket request body accepted by the
// upstream ticket API. Field limits mirror the API's validation rules.
type CreateTicketPayload struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Location          string   `json:"location"`
	Priority          int      `json:"priority"`
	Category          Category `json:"category,omitempty"`
	RequestedByUserID string   `json:"requestedByUserId"`
	OnBehalfOf        string   `json:"onBehalfOf,omitempty"`
}

// Ticket is a created ticket as returned by the upstream ticket API.
type Ticket struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Priority     int       `json:"priority"`
	Category     Category  `json:"category,omitempty"`
	CategoryText string    `json:"categoryText,omitempty"`
	Status       string    `json:"status"`
	RequestedBy  string    `json:"requestedBy"`
	CreatedAt    time.Time `json:"createdAt"`
}
