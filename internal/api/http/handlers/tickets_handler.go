package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-board/internal/domain"
)

// TicketLister yields the currently active tickets.
type TicketLister interface {
	ActiveTickets(ctx context.Context) ([]domain.Ticket, error)
}

// TicketsHandler serves the signed proxy endpoint.
type TicketsHandler struct {
	tickets TicketLister
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets TicketLister) *TicketsHandler {
	return &TicketsHandler{tickets: tickets}
}

// ListActive GET /api. Responds with the bare JSON array of active tickets,
// each object exactly as the ticketing API sent it.
func (h *TicketsHandler) ListActive(c *fiber.Ctx) error {
	tickets, err := h.tickets.ActiveTickets(c.UserContext())
	if err != nil {
		return err
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	return c.JSON(tickets)
}
