package entities

// GeneratedQuote is the merged answer of the AI quote and suggestion flows.
// It is returned to visitors before anything is persisted and is submitted
// back, unchanged, when the owner proposes the project.
type GeneratedQuote struct {
	ProjectTitle           string   `json:"projectTitle"`
	ProjectSummary         string   `json:"projectSummary"`
	Quote                  string   `json:"quote"`
	SuggestedCollaboration string   `json:"suggestedCollaboration"`
	EstimatedCost          *float64 `json:"estimatedCost"`
	Currency               string   `json:"currency"`
	Suggestions            []string `json:"suggestions"`
}
