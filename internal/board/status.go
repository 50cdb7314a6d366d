package board

import (
	"time"

	"github.com/spec-kit/ticket-board/internal/domain"
)

// Status is the due-date urgency bucket used to color a ticket badge.
type Status string

const (
	StatusUnknown  Status = "unknown"
	StatusPastDue  Status = "past-due"
	StatusDueToday Status = "due-today"
	StatusDueSoon  Status = "due-soon"
	StatusSafe     Status = "safe"
)

// DueSoonDays is how far ahead a date still counts as due soon.
const DueSoonDays = 10

// Classify buckets the ticket's effective date relative to now, checking
// unknown, past due, due today, due soon and safe in that order.
func Classify(t domain.Ticket, now time.Time) Status {
	d, kind := EffectiveDate(t, now.Location())
	if kind != DateValid {
		return StatusUnknown
	}
	today := sameDay(d, now)
	if d.Before(now) && !today {
		return StatusPastDue
	}
	if today {
		return StatusDueToday
	}
	if !d.After(now.AddDate(0, 0, DueSoonDays)) {
		return StatusDueSoon
	}
	return StatusSafe
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// CSSClass is the badge class for the status.
func (s Status) CSSClass() string {
	return "badge badge-" + string(s)
}
