package board

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/spec-kit/ticket-board/internal/domain"
)

// DateKind tells how a ticket's effective date resolved.
type DateKind int

const (
	DateMissing DateKind = iota
	DateInvalid
	DateValid
)

// MaxSafeInteger is the sort key, in milliseconds, of an unparseable date.
const MaxSafeInteger int64 = 1<<53 - 1

// DateLabelLayout renders badge dates, e.g. "Mar 4, 2024".
const DateLabelLayout = "Jan 2, 2006"

var isoLayouts = buildISOLayouts()

func buildISOLayouts() []string {
	layouts := []string{"2006-01-02", "2006-01"}
	for _, sep := range []string{"T", " "} {
		for _, clock := range []string{"15:04:05", "15:04"} {
			base := "2006-01-02" + sep + clock
			layouts = append(layouts, base, base+"Z07:00", base+"Z0700", base+"Z07")
		}
	}
	return layouts
}

// UsesDueDate reports whether due_date is set to a real value.
func UsesDueDate(t domain.Ticket) bool {
	return t.DueDate != "" && t.DueDate != domain.NoDate
}

// EffectiveDateString is due_date, or delivery_date when due_date is unset.
func EffectiveDateString(t domain.Ticket) string {
	if UsesDueDate(t) {
		return string(t.DueDate)
	}
	return string(t.DeliveryDate)
}

// ParseDate parses s as ISO-8601 first and falls back to a lenient parse.
// Values without a zone are read in loc. Fragments the lenient parser
// reads without a year are rejected.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == domain.NoDate {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil || t.Year() == 0 {
		return time.Time{}, false
	}
	return t, true
}

// EffectiveDate resolves the ticket's effective date in loc.
func EffectiveDate(t domain.Ticket, loc *time.Location) (time.Time, DateKind) {
	s := EffectiveDateString(t)
	if s == "" {
		return time.Time{}, DateMissing
	}
	d, ok := ParseDate(s, loc)
	if !ok {
		return time.Time{}, DateInvalid
	}
	return d, DateValid
}

// DateLabel renders the badge text: "Due: Mar 4, 2024", "Delivery: ...",
// "No date set" or "Invalid date".
func DateLabel(t domain.Ticket, loc *time.Location) string {
	d, kind := EffectiveDate(t, loc)
	switch kind {
	case DateMissing:
		return "No date set"
	case DateInvalid:
		return "Invalid date"
	}
	label := "Delivery"
	if UsesDueDate(t) {
		label = "Due"
	}
	return label + ": " + d.Format(DateLabelLayout)
}
