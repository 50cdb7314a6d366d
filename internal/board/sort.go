package board

import (
	"cmp"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/spec-kit/ticket-board/internal/domain"
)

// SortMode selects the ordering of a ticket group.
type SortMode string

const (
	SortDueDate     SortMode = "due_date"
	SortPubName     SortMode = "pub_name"
	SortLastUpdated SortMode = "last_updated"
)

// SortModes lists the supported modes in display order.
var SortModes = []SortMode{SortDueDate, SortPubName, SortLastUpdated}

// Label is the human name of the mode.
func (m SortMode) Label() string {
	switch m {
	case SortPubName:
		return "Publication"
	case SortLastUpdated:
		return "Last updated"
	default:
		return "Due date"
	}
}

// Sort returns a stably sorted copy of tickets. Unknown modes sort by due date.
func Sort(tickets []domain.Ticket, mode SortMode) []domain.Ticket {
	switch mode {
	case SortPubName:
		return sortByPubName(tickets)
	case SortLastUpdated:
		return sortByLastUpdated(tickets)
	default:
		return SortByDueDate(tickets)
	}
}

type dueKey struct {
	missing bool
	millis  int64
}

func dueDateKey(t domain.Ticket) dueKey {
	d, kind := EffectiveDate(t, time.Local)
	switch kind {
	case DateMissing:
		return dueKey{missing: true}
	case DateInvalid:
		return dueKey{millis: MaxSafeInteger}
	}
	return dueKey{millis: d.UnixMilli()}
}

// compareDue orders ascending by date with missing dates last. Two missing
// dates compare equal so their relative order is kept.
func compareDue(a, b dueKey) int {
	switch {
	case a.missing && b.missing:
		return 0
	case a.missing:
		return 1
	case b.missing:
		return -1
	}
	return cmp.Compare(a.millis, b.millis)
}

type keyed[K any] struct {
	ticket domain.Ticket
	key    K
}

func sortKeyed[K any](tickets []domain.Ticket, key func(domain.Ticket) K, compare func(a, b K) int) []domain.Ticket {
	entries := make([]keyed[K], len(tickets))
	for i, t := range tickets {
		entries[i] = keyed[K]{ticket: t, key: key(t)}
	}
	slices.SortStableFunc(entries, func(a, b keyed[K]) int {
		return compare(a.key, b.key)
	})
	out := make([]domain.Ticket, len(entries))
	for i, e := range entries {
		out[i] = e.ticket
	}
	return out
}

// SortByDueDate orders ascending by effective date. Unparseable dates come
// after every valid one and missing dates come last.
func SortByDueDate(tickets []domain.Ticket) []domain.Ticket {
	return sortKeyed(tickets, dueDateKey, compareDue)
}

func sortByPubName(tickets []domain.Ticket) []domain.Ticket {
	col := collate.New(language.English)
	return sortKeyed(tickets, func(t domain.Ticket) string {
		return string(t.PubName)
	}, col.CompareString)
}

// sortByLastUpdated orders newest first; missing or unparseable timestamps
// count as the epoch.
func sortByLastUpdated(tickets []domain.Ticket) []domain.Ticket {
	return sortKeyed(tickets, func(t domain.Ticket) int64 {
		d, ok := ParseDate(string(t.LastUpdated), time.Local)
		if !ok {
			return 0
		}
		return d.UnixMilli()
	}, func(a, b int64) int {
		return cmp.Compare(b, a)
	})
}
