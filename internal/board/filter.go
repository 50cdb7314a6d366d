package board

import (
	"sort"

	"github.com/spec-kit/ticket-board/internal/domain"
)

// FilterAll disables assignee filtering.
const FilterAll = "all"

// Filter keeps the tickets assigned to exactly assignee. FilterAll keeps everything.
func Filter(tickets []domain.Ticket, assignee string) []domain.Ticket {
	if assignee == FilterAll {
		return tickets
	}
	out := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if string(t.AssignedToUser) == assignee {
			out = append(out, t)
		}
	}
	return out
}

// Assignees returns the distinct non-empty assignees in tickets, sorted.
func Assignees(tickets []domain.Ticket) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, t := range tickets {
		name := string(t.AssignedToUser)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
