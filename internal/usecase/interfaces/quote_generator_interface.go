package interfaces

import "context"

//go:generate mockgen -source=quote_generator_interface.go -destination=mocks/mock_quote_generator_interface.go -package=mock_interfaces

// QuotePromptInput is the free text sent to the quote prompt.
// Empty optional fields are replaced with "Not specified" by the caller.
type QuotePromptInput struct {
	WebsiteNeeds             string
	CollaborationPreferences string
	Budget                   string
}

// QuotePromptOutput is the structured answer of the quote prompt.
type QuotePromptOutput struct {
	ProjectTitle           string   `json:"projectTitle"`
	ProjectSummary         string   `json:"projectSummary"`
	Quote                  string   `json:"quote"`
	SuggestedCollaboration string   `json:"suggestedCollaboration"`
	EstimatedCost          *float64 `json:"estimatedCost"`
	Currency               string   `json:"currency"`
}

type SuggestionsPromptInput struct {
	ProjectRequirements      string
	CollaborationPreferences string
}

type SuggestionsPromptOutput struct {
	Suggestions []string `json:"suggestions"`
}

// IQuoteGenerator abstracts the hosted LLM flows. Both calls either return a
// complete structured answer or an error; partial output is never returned.
type IQuoteGenerator interface {
	GenerateQuote(ctx context.Context, in QuotePromptInput) (QuotePromptOutput, error)
	GenerateSuggestions(ctx context.Context, in SuggestionsPromptInput) (SuggestionsPromptOutput, error)
}
