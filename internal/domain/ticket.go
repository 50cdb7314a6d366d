package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// TicketStatus is the upstream status_name of a ticket.
type TicketStatus string

// TicketStatusDone marks a completed ticket. Only this exact spelling counts.
const TicketStatusDone TicketStatus = "Done"

// NoDate is the upstream sentinel for an unset date column.
const NoDate = "0000-00-00"

// Text is a scalar ticket attribute. Upstream sends ids and sizes as
// numbers or strings interchangeably, so both decode into text.
type Text string

// UnmarshalJSON accepts strings, numbers, booleans and null. Objects and
// arrays decode to the empty string.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[':
		*t = ""
	default:
		*t = Text(b)
	}
	return nil
}

func (t Text) String() string {
	return string(t)
}

// Ticket is a support ticket as served by the ticketing API. It is read-only
// here: a decoded ticket re-encodes to exactly the JSON it was decoded from.
type Ticket struct {
	ID                  Text         `json:"id"`
	TicketNumber        Text         `json:"ticket_number"`
	Type                Text         `json:"type"`
	StatusName          TicketStatus `json:"status_name"`
	DueDate             Text         `json:"due_date"`
	DeliveryDate        Text         `json:"delivery_date"`
	CreatedAt           Text         `json:"created_at"`
	LastUpdated         Text         `json:"last_updated"`
	Subject             Text         `json:"subject"`
	Description         Text         `json:"description"`
	AssignedToUser      Text         `json:"assigned_to_user"`
	AssignedToName      Text         `json:"assigned_to_name,omitempty"`
	OrderAssignedToName Text         `json:"order_assigned_to_name,omitempty"`
	CustomerName        Text         `json:"customer_name,omitempty"`
	PubName             Text         `json:"pub_name,omitempty"`
	IssName             Text         `json:"iss_name,omitempty"`
	Size                Text         `json:"size,omitempty"`

	raw json.RawMessage
}

type ticketFields Ticket

// UnmarshalJSON decodes the known fields and keeps the original document.
func (t *Ticket) UnmarshalJSON(b []byte) error {
	var f ticketFields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*t = Ticket(f)
	t.raw = append(json.RawMessage(nil), b...)
	return nil
}

// MarshalJSON returns the upstream document when there is one.
func (t Ticket) MarshalJSON() ([]byte, error) {
	if len(t.raw) > 0 {
		return t.raw, nil
	}
	return json.Marshal(ticketFields(t))
}

// IsDone reports whether the ticket is completed.
func (t Ticket) IsDone() bool {
	return t.StatusName == TicketStatusDone
}

// TypeContains reports whether the ticket type contains sub, ignoring case.
func (t Ticket) TypeContains(sub string) bool {
	return strings.Contains(strings.ToLower(string(t.Type)), strings.ToLower(sub))
}

// UnmarshalJSON accepts the same scalar shapes as Text.
func (s *TicketStatus) UnmarshalJSON(b []byte) error {
	var t Text
	if err := t.UnmarshalJSON(b); err != nil {
		return err
	}
	*s = TicketStatus(t)
	return nil
}
