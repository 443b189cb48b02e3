package response

import (
	"strings"
	"time"
	"unicode/utf8"

	"webara_portal/internal/domain/entities"
)

const (
	maxSummaryLength = 160

	fallbackSummary       = "No summary provided yet."
	fallbackQuote         = "Our team is preparing the details of this quote."
	fallbackCollaboration = "We will suggest a collaboration model once we review your request."
)

var statusLabels = map[entities.QuoteStatus]string{
	entities.QuoteStatusDraft:          "Draft",
	entities.QuoteStatusPending:        "Pending",
	entities.QuoteStatusUnderReview:    "Under Review",
	entities.QuoteStatusAccepted:       "Accepted",
	entities.QuoteStatusRejected:       "Rejected",
	entities.QuoteStatusCallRequested:  "Call Requested",
	entities.QuoteStatusProjectCreated: "Project Created",
}

type QuoteResponse struct {
	ID                       string    `json:"id"`
	UserID                   string    `json:"user_id"`
	BusinessID               *string   `json:"business_id"`
	Title                    string    `json:"title"`
	Summary                  string    `json:"summary"`
	WebsiteNeeds             string    `json:"website_needs"`
	CollaborationPreferences string    `json:"collaboration_preferences"`
	BudgetRange              string    `json:"budget_range"`
	AIQuote                  string    `json:"ai_quote"`
	SuggestedCollaboration   string    `json:"suggested_collaboration"`
	AISuggestions            []string  `json:"ai_suggestions"`
	EstimatedCost            *float64  `json:"estimated_cost"`
	Currency                 string    `json:"currency"`
	Status                   string    `json:"status"`
	StatusLabel              string    `json:"status_label"`
	AdminFeedback            *string   `json:"admin_feedback"`
	UserFeedback             *string   `json:"user_feedback"`
	CanRequestCall           bool      `json:"can_request_call"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

type QuoteEnvelope struct {
	Quote QuoteResponse `json:"quote"`
}

type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
}

type RequestCallResponse struct {
	Quote   QuoteResponse `json:"quote"`
	Message string        `json:"message"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	suggestions := q.AISuggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return QuoteResponse{
		ID:                       q.ID,
		UserID:                   q.OwnerID,
		BusinessID:               q.BusinessID,
		Title:                    q.Title,
		Summary:                  SummarizeText(firstNonBlank(q.AIQuote, q.WebsiteNeeds)),
		WebsiteNeeds:             q.WebsiteNeeds,
		CollaborationPreferences: q.CollaborationPreferences,
		BudgetRange:              q.BudgetRange,
		AIQuote:                  orFallback(q.AIQuote, fallbackQuote),
		SuggestedCollaboration:   orFallback(q.SuggestedCollaboration, fallbackCollaboration),
		AISuggestions:            suggestions,
		EstimatedCost:            q.EstimatedCost,
		Currency:                 orFallback(q.Currency, entities.DefaultCurrency),
		Status:                   string(q.Status),
		StatusLabel:              StatusLabel(q.Status),
		AdminFeedback:            q.AdminFeedback,
		UserFeedback:             q.UserFeedback,
		CanRequestCall:           q.HasAdminFeedback() && q.Status != entities.QuoteStatusCallRequested,
		CreatedAt:                q.CreatedAt,
		UpdatedAt:                q.UpdatedAt,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

// StatusLabel renders a status for people. Unknown values read as Draft.
func StatusLabel(s entities.QuoteStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return statusLabels[entities.QuoteStatusDraft]
}

// SummarizeText collapses whitespace and cuts text to 160 runes, ending in
// "..." when truncated.
func SummarizeText(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if collapsed == "" {
		return fallbackSummary
	}
	if utf8.RuneCountInString(collapsed) <= maxSummaryLength {
		return collapsed
	}
	runes := []rune(collapsed)
	return string(runes[:maxSummaryLength-3]) + "..."
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func orFallback(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
