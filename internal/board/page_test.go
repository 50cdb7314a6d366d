package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-board/internal/domain"
)

func sampleTickets() []domain.Ticket {
	return []domain.Ticket{
		{ID: "10", TicketNumber: "T-10", Type: "Service", Subject: "Fix login", StatusName: "Open",
			DueDate: "2024-06-20", AssignedToUser: "Dana", CustomerName: "Acme"},
		{ID: "11", Type: "Service Ad", Description: "Banner refresh", StatusName: "In Progress",
			DueDate: domain.NoDate, DeliveryDate: "2024-06-10", AssignedToUser: "Lee", PubName: "Herald"},
		{ID: "12", Type: "Printing", StatusName: "Open", PubName: "Gazette", IssName: "June", Size: "1/4"},
	}
}

func TestBuildDefaultState(t *testing.T) {
	now := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	page := Build(sampleTickets(), DefaultViewState(), Options{
		Now:       now,
		TicketURL: "https://tickets.example/ticket/?id=%s",
	})

	require.Len(t, page.Columns, 2)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, "/", page.ResetTo)

	service := page.Columns[0]
	assert.Equal(t, "Service Tickets", service.Title)
	assert.Equal(t, 2, service.Count)
	assert.Equal(t, "11", service.Cards[0].ID, "delivery date June 10 sorts first")
	assert.Equal(t, "10", service.Cards[1].ID)

	card := service.Cards[1]
	assert.Equal(t, "T-10", card.Number)
	assert.Equal(t, "Fix login", card.Title)
	assert.Equal(t, "Acme", card.Customer)
	assert.Equal(t, "Due: Jun 20, 2024", card.DateLabel)
	assert.Equal(t, StatusDueSoon, card.Urgency)
	assert.Equal(t, "https://tickets.example/ticket/?id=10", card.URL)

	first := service.Cards[0]
	assert.Equal(t, "11", first.Number)
	assert.Equal(t, "Banner refresh", first.Title)
	assert.Equal(t, "Delivery: Jun 10, 2024", first.DateLabel)
	assert.Equal(t, StatusPastDue, first.Urgency)

	ad := page.Columns[1]
	assert.Equal(t, []string{"11", "12"}, []string{ad.Cards[0].ID, ad.Cards[1].ID})
	printing := ad.Cards[1]
	assert.Equal(t, "Unassigned", printing.Assignee)
	assert.Equal(t, "No date set", printing.DateLabel)
	assert.Equal(t, StatusUnknown, printing.Urgency)
	assert.Equal(t, "Gazette", printing.Publication)
}

func TestBuildAppliesPerColumnState(t *testing.T) {
	state := DefaultViewState().With(ParamServiceFilter, "Dana").With(ParamAdSort, string(SortPubName))
	page := Build(sampleTickets(), state, Options{Now: time.Now(), Path: "/board"})

	service := page.Columns[0]
	require.Len(t, service.Cards, 1)
	assert.Equal(t, "10", service.Cards[0].ID)

	ad := page.Columns[1]
	assert.Equal(t, "12", ad.Cards[0].ID, "Gazette before Herald")
	assert.Equal(t, "11", ad.Cards[1].ID)

	// the filter options cover the whole group, not only the visible cards
	var labels []string
	for _, o := range service.FilterOptions {
		labels = append(labels, o.Label)
		if o.Value == FilterAll {
			assert.Equal(t, "/board?adSort=pub_name", o.URL)
			assert.False(t, o.Selected)
		}
		if o.Value == "Dana" {
			assert.True(t, o.Selected)
		}
	}
	assert.Equal(t, []string{"All assignees", "Dana", "Lee"}, labels)

	for _, o := range ad.SortOptions {
		if o.Value == string(SortDueDate) {
			assert.Equal(t, "/board?serviceFilter=Dana", o.URL)
		}
		assert.Equal(t, o.Value == string(SortPubName), o.Selected)
	}
}

func TestBuildKeepsUnknownFilterSelectable(t *testing.T) {
	state := DefaultViewState().With(ParamAdFilter, "Ghost")
	page := Build(sampleTickets(), state, Options{Now: time.Now()})

	ad := page.Columns[1]
	assert.Zero(t, ad.Count)
	assert.Equal(t, "No ad tickets found.", ad.EmptyText)
	last := ad.FilterOptions[len(ad.FilterOptions)-1]
	assert.Equal(t, "Ghost", last.Value)
	assert.True(t, last.Selected)
}

func TestTicketURLEscapesID(t *testing.T) {
	assert.Equal(t, "https://x/?id=a%26b", TicketURL("https://x/?id=%s", "a&b"))
	assert.Equal(t, "", TicketURL("", "1"))
}
