package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-board/internal/domain"
)

const (
	// HeaderChangedSince limits the tickets route to recently changed tickets.
	HeaderChangedSince = "X-OPT-CHANGEDSINCE"
	// ChangedSinceLayout is the local-time format the tickets route accepts.
	ChangedSinceLayout = "2006-01-02 15:04:05"
	// RouteTickets is the route map entry for the ticket list.
	RouteTickets = "tickets"
)

// Recorder receives one call per outbound request.
type Recorder interface {
	RecordUpstream(route string, status int, duration time.Duration)
}

// RouteMap maps logical resource names to absolute URLs.
type RouteMap map[string]string

// Lookup returns the URL registered under name.
func (r RouteMap) Lookup(name string) (string, bool) {
	u, ok := r[name]
	return u, ok && u != ""
}

// Error describes a failed upstream call.
type Error struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("upstream %s: %v", e.URL, e.Err)
	case e.Body != "":
		return fmt.Sprintf("upstream %s: %d %s %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode), e.Body)
	default:
		return fmt.Sprintf("upstream %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client talks to the ticketing API. Every request is signed and no
// response is cached.
type Client struct {
	baseURL    string
	httpClient *http.Client
	signer     *Signer
	logger     *zap.Logger
	recorder   Recorder
}

// NewClient builds a client that signs requests with signer.
func NewClient(signer *Signer, options ...Options) *Client {
	opts := evalOptions(options...)
	return &Client{
		baseURL:    opts.baseURL,
		httpClient: opts.client,
		signer:     signer,
		logger:     opts.logger,
		recorder:   opts.recorder,
	}
}

// Routes fetches the route map from the API root.
func (c *Client) Routes(ctx context.Context) (RouteMap, error) {
	var raw map[string]any
	if err := c.get(ctx, "root", c.baseURL+"/", nil, &raw); err != nil {
		return nil, err
	}
	routes := make(RouteMap, len(raw))
	for name, v := range raw {
		if s, ok := v.(string); ok {
			routes[name] = s
		}
	}
	return routes, nil
}

// Tickets fetches the tickets changed since the given time from routeURL.
func (c *Client) Tickets(ctx context.Context, routeURL string, since time.Time) ([]domain.Ticket, error) {
	headers := http.Header{}
	headers.Set(HeaderChangedSince, FormatChangedSince(since))

	var tickets []domain.Ticket
	if err := c.get(ctx, RouteTickets, routeURL, headers, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// FormatChangedSince renders t in local time for HeaderChangedSince.
func FormatChangedSince(t time.Time) string {
	return t.Local().Format(ChangedSinceLayout)
}

func (c *Client) get(ctx context.Context, route, rawURL string, headers http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &Error{URL: rawURL, Err: err}
	}
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	c.signer.Sign(req, rawURL)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(route, rawURL, 0, start)
		return &Error{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()
	c.observe(route, rawURL, resp.StatusCode, start)

	if resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &Error{URL: rawURL, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{URL: rawURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) observe(route, rawURL string, status int, start time.Time) {
	duration := time.Since(start)
	if c.recorder != nil {
		c.recorder.RecordUpstream(route, status, duration)
	}
	c.logger.Debug("upstream call",
		zap.String("route", route),
		zap.String("url", rawURL),
		zap.Int("status", status),
		zap.Duration("duration", duration))
}
