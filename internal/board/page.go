package board

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-board/internal/domain"
)

// Options controls page rendering.
type Options struct {
	Now time.Time
	// Path is the board URL path the controls link back to.
	Path string
	// TicketURL is a format string taking the escaped ticket id.
	TicketURL string
	Logger    *zap.Logger
}

// Page is the rendered board: one column per ticket group.
type Page struct {
	State   ViewState
	Columns []Column
	Total   int
	ResetTo string
}

// Column is one ticket group after filtering and sorting.
type Column struct {
	Key           string
	Title         string
	Count         int
	EmptyText     string
	FilterParam   string
	SortParam     string
	FilterOptions []Option
	SortOptions   []Option
	Cards         []Card
}

// Option is a selectable control value and the URL that selects it.
type Option struct {
	Value    string
	Label    string
	URL      string
	Selected bool
}

// Card is a single ticket row.
type Card struct {
	ID          string
	Number      string
	Title       string
	Status      string
	Customer    string
	Publication string
	Issue       string
	Size        string
	Assignee    string
	DateLabel   string
	Urgency     Status
	URL         string
}

// Build partitions, filters and sorts tickets for state.
func Build(tickets []domain.Ticket, state ViewState, opts Options) Page {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.Path == "" {
		opts.Path = "/"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	ordered := SortByDueDate(tickets)
	service, ad := Partition(ordered)

	return Page{
		State: state,
		Total: len(tickets),
		Columns: []Column{
			buildColumn("service", "Service Tickets", service, state, ParamServiceFilter, ParamServiceSort, opts),
			buildColumn("ad", "Ad Tickets", ad, state, ParamAdFilter, ParamAdSort, opts),
		},
		ResetTo: DefaultViewState().URL(opts.Path),
	}
}

func buildColumn(key, title string, group []domain.Ticket, state ViewState, filterParam, sortParam string, opts Options) Column {
	filter := state.Get(filterParam)
	mode := SortMode(state.Get(sortParam))
	visible := Sort(Filter(group, filter), mode)

	cards := make([]Card, 0, len(visible))
	for _, t := range visible {
		cards = append(cards, buildCard(t, opts))
	}

	return Column{
		Key:           key,
		Title:         title,
		Count:         len(cards),
		EmptyText:     "No " + strings.ToLower(title) + " found.",
		FilterParam:   filterParam,
		SortParam:     sortParam,
		FilterOptions: filterOptions(group, state, filterParam, opts.Path),
		SortOptions:   sortOptions(state, sortParam, opts.Path),
		Cards:         cards,
	}
}

func filterOptions(group []domain.Ticket, state ViewState, param, path string) []Option {
	current := state.Get(param)
	names := Assignees(group)
	if current != FilterAll && !slices.Contains(names, current) {
		names = append(names, current)
	}
	options := make([]Option, 0, len(names)+1)
	options = append(options, Option{
		Value:    FilterAll,
		Label:    "All assignees",
		URL:      state.With(param, FilterAll).URL(path),
		Selected: current == FilterAll,
	})
	for _, name := range names {
		options = append(options, Option{
			Value:    name,
			Label:    name,
			URL:      state.With(param, name).URL(path),
			Selected: current == name,
		})
	}
	return options
}

func sortOptions(state ViewState, param, path string) []Option {
	current := state.Get(param)
	options := make([]Option, 0, len(SortModes))
	for _, mode := range SortModes {
		options = append(options, Option{
			Value:    string(mode),
			Label:    mode.Label(),
			URL:      state.With(param, string(mode)).URL(path),
			Selected: current == string(mode),
		})
	}
	return options
}

func buildCard(t domain.Ticket, opts Options) Card {
	label := DateLabel(t, opts.Now.Location())
	if label == "Invalid date" {
		opts.Logger.Warn("invalid date encountered",
			zap.String("ticket_id", t.ID.String()),
			zap.String("value", EffectiveDateString(t)))
	}
	return Card{
		ID:          t.ID.String(),
		Number:      firstNonEmpty(t.TicketNumber.String(), t.ID.String()),
		Title:       firstNonEmpty(t.Subject.String(), t.Description.String()),
		Status:      string(t.StatusName),
		Customer:    t.CustomerName.String(),
		Publication: t.PubName.String(),
		Issue:       t.IssName.String(),
		Size:        t.Size.String(),
		Assignee:    firstNonEmpty(t.AssignedToUser.String(), "Unassigned"),
		DateLabel:   label,
		Urgency:     Classify(t, opts.Now),
		URL:         TicketURL(opts.TicketURL, t.ID.String()),
	}
}

// TicketURL formats the detail link for id.
func TicketURL(format, id string) string {
	if format == "" {
		return ""
	}
	return fmt.Sprintf(format, url.QueryEscape(id))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
