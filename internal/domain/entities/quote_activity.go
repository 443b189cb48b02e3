package entities

import "time"

type QuoteActivityType string

const (
	QuoteActivityCreated       QuoteActivityType = "created"
	QuoteActivityStatusChanged QuoteActivityType = "status_changed"
	QuoteActivityNoteAdded     QuoteActivityType = "note_added"
	QuoteActivityCallRequested QuoteActivityType = "call_requested"
)

// QuoteActivity is one entry of a quote's audit trail.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id + created_at
type QuoteActivity struct {
	ID          string            `json:"id"`
	QuoteID     string            `json:"quote_id"`
	Type        QuoteActivityType `json:"activity_type"`
	Description string            `json:"description,omitempty"`
	CreatedBy   string            `json:"created_by,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}
