package ai

import (
	"context"
	"log"

	"webara_portal/internal/usecase/interfaces"
)

// MockQuoteGenerator returns canned answers without calling any model.
// Enabled with QUOTE_GENERATOR_MOCK for local runs and demos.
type MockQuoteGenerator struct{}

var _ interfaces.IQuoteGenerator = MockQuoteGenerator{}

func (MockQuoteGenerator) GenerateQuote(_ context.Context, in interfaces.QuotePromptInput) (interfaces.QuotePromptOutput, error) {
	log.Printf("[ai][generator] mock quote needs_len=%d", len(in.WebsiteNeeds))
	return interfaces.QuotePromptOutput{
		ProjectSummary:         "A responsive website built around the requirements you described.",
		Quote:                  "Discovery, design, build and launch of your website over four to six weeks, including two revision rounds and basic SEO setup.",
		SuggestedCollaboration: "Fixed price with milestone payments.",
	}, nil
}

func (MockQuoteGenerator) GenerateSuggestions(_ context.Context, _ interfaces.SuggestionsPromptInput) (interfaces.SuggestionsPromptOutput, error) {
	return interfaces.SuggestionsPromptOutput{Suggestions: []string{
		"Add a contact form connected to your inbox",
		"Set up analytics from day one",
		"Plan a blog section for SEO",
	}}, nil
}
