package utils

import (
	"sync"
	"time"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	TicketAPI bool      `json:"ticketApi"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth = HealthStatus{TicketAPI: true}
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// SetHealthStatus stores a fresh health snapshot. Called by the periodic
// health probe job.
func SetHealthStatus(status HealthStatus) {
	healthMu.Lock()
	defer healthMu.Unlock()
	currentHealth = status
}

// TicketAPIUp reports whether the last probe reached the upstream ticket API.
// Before the first probe runs it optimistically reports true.
func TicketAPIUp() bool {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth.TicketAPI
}
