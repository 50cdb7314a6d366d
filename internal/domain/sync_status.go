package domain

import "time"

// SyncStatus summarises the most recent fetches from the ticketing API.
type SyncStatus struct {
	LastSuccessAt *time.Time `json:"last_success_at,omitempty"`
	ActiveCount   int        `json:"active_count"`
	LastFailureAt *time.Time `json:"last_failure_at,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
}

// Healthy reports whether the last recorded fetch succeeded.
func (s SyncStatus) Healthy() bool {
	if s.LastFailureAt == nil {
		return true
	}
	return s.LastSuccessAt != nil && s.LastSuccessAt.After(*s.LastFailureAt)
}
