package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-board/internal/config"
	"github.com/spec-kit/ticket-board/internal/domain"
	"github.com/spec-kit/ticket-board/internal/events"
	"github.com/spec-kit/ticket-board/internal/upstream"
	apperrors "github.com/spec-kit/ticket-board/pkg/util/errorutil"
)

// TicketAPI is the subset of the upstream client the service needs.
type TicketAPI interface {
	Routes(ctx context.Context) (upstream.RouteMap, error)
	Tickets(ctx context.Context, routeURL string, since time.Time) ([]domain.Ticket, error)
}

// TicketService fetches active tickets from the ticketing API.
type TicketService struct {
	api        TicketAPI
	cfg        config.UpstreamConfig
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	API        TicketAPI
	Config     config.UpstreamConfig
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	s := &TicketService{
		api:        deps.API,
		cfg:        deps.Config,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		now:        deps.Now,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// ActiveTickets discovers the tickets route, fetches the tickets changed
// within the configured window and drops the completed ones. Both upstream
// calls happen on every invocation, in order.
func (s *TicketService) ActiveTickets(ctx context.Context) ([]domain.Ticket, error) {
	if !s.cfg.Configured() {
		err := apperrors.NewMisconfigured(s.cfg.MissingCredentials()...)
		s.publishFailure(ctx, err)
		return nil, err
	}

	routes, err := s.api.Routes(ctx)
	if err != nil {
		err = upstreamFailure("failed to load api routes", err)
		s.publishFailure(ctx, err)
		return nil, err
	}

	ticketsURL, ok := routes.Lookup(upstream.RouteTickets)
	if !ok {
		err := apperrors.NewUpstreamError(fmt.Sprintf("api root has no %q route", upstream.RouteTickets), nil)
		s.publishFailure(ctx, err)
		return nil, err
	}

	since := ChangedSince(s.now(), s.cfg.ChangedSinceMonths)
	tickets, err := s.api.Tickets(ctx, ticketsURL, since)
	if err != nil {
		err = upstreamFailure("failed to load tickets", err)
		s.publishFailure(ctx, err)
		return nil, err
	}

	active := ActiveOnly(tickets)
	s.publish(ctx, events.EventTicketsSynced, events.TicketsSyncedPayload{
		Fetched:      len(tickets),
		Active:       len(active),
		ChangedSince: since,
	})
	return active, nil
}

// ChangedSince returns now minus the given number of calendar months in
// local time. Day overflow normalises forward (May 31 minus 3 months is March 2 or 3).
func ChangedSince(now time.Time, months int) time.Time {
	return now.Local().AddDate(0, -months, 0)
}

// ActiveOnly drops tickets whose status is Done, keeping the order of the rest.
func ActiveOnly(tickets []domain.Ticket) []domain.Ticket {
	active := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.IsDone() {
			continue
		}
		active = append(active, t)
	}
	return active
}

// upstreamFailure maps a failed upstream call to 504 when it ran out of
// time and to 502 otherwise.
func upstreamFailure(message string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return apperrors.NewTimeout(message, err)
	}
	return apperrors.NewUpstreamError(message, err)
}

func (s *TicketService) publishFailure(ctx context.Context, err error) {
	de := apperrors.ToDomainError(err)
	s.publish(ctx, events.EventSyncFailed, events.SyncFailedPayload{
		Code:    de.Code,
		Message: de.Error(),
	})
}

func (s *TicketService) publish(ctx context.Context, eventType events.EventType, payload any) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: s.now(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}
