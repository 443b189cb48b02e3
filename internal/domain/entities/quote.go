package entities

import "time"

// QuoteStatus represents the lifecycle of a project quote.
//
// Domain notes:
//   - Every quote starts as pending.
//   - Admins may move a quote to any status from any status.
//   - The owner may only move it to call_requested, and only after admin feedback exists.

type QuoteStatus string

const (
	QuoteStatusDraft          QuoteStatus = "draft"
	QuoteStatusPending        QuoteStatus = "pending"
	QuoteStatusUnderReview    QuoteStatus = "under_review"
	QuoteStatusAccepted       QuoteStatus = "accepted"
	QuoteStatusRejected       QuoteStatus = "rejected"
	QuoteStatusCallRequested  QuoteStatus = "call_requested"
	QuoteStatusProjectCreated QuoteStatus = "project_created"
)

// DefaultCurrency is used when neither the AI nor the budget text names one.
const DefaultCurrency = "USD"

var quoteStatuses = []QuoteStatus{
	QuoteStatusDraft,
	QuoteStatusPending,
	QuoteStatusUnderReview,
	QuoteStatusAccepted,
	QuoteStatusRejected,
	QuoteStatusCallRequested,
	QuoteStatusProjectCreated,
}

// QuoteStatuses returns the seven legal statuses in lifecycle order.
func QuoteStatuses() []QuoteStatus {
	out := make([]QuoteStatus, len(quoteStatuses))
	copy(out, quoteStatuses)
	return out
}

// QuoteStatusNames is QuoteStatuses as plain strings, for error payloads.
func QuoteStatusNames() []string {
	out := make([]string, len(quoteStatuses))
	for i, s := range quoteStatuses {
		out[i] = string(s)
	}
	return out
}

func (s QuoteStatus) IsValid() bool {
	for _, candidate := range quoteStatuses {
		if s == candidate {
			return true
		}
	}
	return false
}

// Quote is a project quote request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id + created_at, newest first when queried descending
//
// Field ownership:
//   - Title, WebsiteNeeds, CollaborationPreferences, BudgetRange come from the owner and never change.
//   - AIQuote, SuggestedCollaboration, AISuggestions, EstimatedCost, Currency come from the
//     generator at proposal time and never change.
//   - AdminFeedback is written by admins only; UserFeedback by the owner only.
//     Nil means "no feedback"; an empty string is never stored.
type Quote struct {
	ID                       string      `json:"id"`
	OwnerID                  string      `json:"user_id"`
	BusinessID               *string     `json:"business_id,omitempty"`
	Title                    string      `json:"title"`
	WebsiteNeeds             string      `json:"website_needs"`
	CollaborationPreferences string      `json:"collaboration_preferences,omitempty"`
	BudgetRange              string      `json:"budget_range,omitempty"`
	AIQuote                  string      `json:"ai_quote,omitempty"`
	SuggestedCollaboration   string      `json:"suggested_collaboration,omitempty"`
	AISuggestions            []string    `json:"ai_suggestions"`
	EstimatedCost            *float64    `json:"estimated_cost"`
	Currency                 string      `json:"currency"`
	Status                   QuoteStatus `json:"status"`
	AdminFeedback            *string     `json:"admin_feedback"`
	UserFeedback             *string     `json:"user_feedback"`
	CreatedAt                time.Time   `json:"created_at"`
	UpdatedAt                time.Time   `json:"updated_at"`
}

// HasAdminFeedback reports whether an admin has left non-blank feedback.
func (q Quote) HasAdminFeedback() bool {
	return NormalizeFeedback(q.AdminFeedback) != nil
}
