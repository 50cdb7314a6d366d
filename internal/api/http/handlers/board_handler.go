package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-board/internal/api/dto"
	"github.com/spec-kit/ticket-board/internal/board"
	"github.com/spec-kit/ticket-board/internal/config"
	apperrors "github.com/spec-kit/ticket-board/pkg/util/errorutil"
)

//go:embed templates/*.html
var templateFS embed.FS

var boardTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// BoardHandler renders the ticket board page.
type BoardHandler struct {
	tickets TicketLister
	cfg     config.BoardConfig
	logger  *zap.Logger
	now     func() time.Time
}

// NewBoardHandler returns a new handler instance.
func NewBoardHandler(tickets TicketLister, cfg config.BoardConfig, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{tickets: tickets, cfg: cfg, logger: logger, now: time.Now}
}

// Show GET /. Fetches the active tickets once and renders both groups with
// the filter and sort selections taken from the query string.
func (h *BoardHandler) Show(c *fiber.Ctx) error {
	query := url.Values{}
	for key, value := range c.Queries() {
		query.Set(key, value)
	}
	state := board.ParseViewState(query)

	tickets, err := h.tickets.ActiveTickets(c.UserContext())
	if err != nil {
		de := apperrors.ToDomainError(err)
		h.logger.Warn("board fetch failed", zap.String("code", de.Code), zap.Error(de))
		return h.render(c, de.HTTPStatus, "error.html", dto.ErrorView{
			Title:    h.cfg.Title,
			Code:     de.Code,
			Message:  de.Message,
			RetryURL: c.OriginalURL(),
		})
	}

	page := board.Build(tickets, state, board.Options{
		Now:       h.now(),
		Path:      c.Path(),
		TicketURL: h.cfg.TicketDetailURL,
		Logger:    h.logger,
	})
	return h.render(c, fiber.StatusOK, "board.html", dto.BoardView{
		Title:    h.cfg.Title,
		Subtitle: "A list of all active tickets sorted by due date, separated by type.",
		Page:     page,
	})
}

func (h *BoardHandler) render(c *fiber.Ctx, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := boardTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Status(status)
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
