package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketsSynced EventType = "tickets_synced"
	EventSyncFailed    EventType = "sync_failed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketsSyncedPayload describes a successful fetch from the ticketing API.
type TicketsSyncedPayload struct {
	Fetched      int       `json:"fetched"`
	Active       int       `json:"active"`
	ChangedSince time.Time `json:"changed_since"`
}

// SyncFailedPayload describes a failed fetch.
type SyncFailedPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
