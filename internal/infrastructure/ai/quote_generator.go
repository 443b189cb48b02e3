package ai

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"strconv"
	"strings"

	"webara_portal/internal/usecase/interfaces"
)

// QuoteGenerator runs the quote and suggestion prompts against an
// Ollama-compatible server.
type QuoteGenerator struct {
	client *Client
}

var _ interfaces.IQuoteGenerator = (*QuoteGenerator)(nil)

func NewQuoteGenerator(client *Client) *QuoteGenerator {
	return &QuoteGenerator{client: client}
}

// quoteReply tolerates models that return estimatedCost as a string.
type quoteReply struct {
	ProjectTitle           string          `json:"projectTitle"`
	ProjectSummary         string          `json:"projectSummary"`
	Quote                  string          `json:"quote"`
	SuggestedCollaboration string          `json:"suggestedCollaboration"`
	EstimatedCost          json.RawMessage `json:"estimatedCost"`
	Currency               string          `json:"currency"`
}

func (g *QuoteGenerator) GenerateQuote(ctx context.Context, in interfaces.QuotePromptInput) (interfaces.QuotePromptOutput, error) {
	prompt, err := render(quotePrompt, in)
	if err != nil {
		return interfaces.QuotePromptOutput{}, err
	}

	var reply quoteReply
	if err := g.client.ChatJSON(ctx, systemPrompt, prompt, &reply); err != nil {
		log.Printf("[ai][generator] quote prompt failed err=%v", err)
		return interfaces.QuotePromptOutput{}, err
	}
	if strings.TrimSpace(reply.Quote) == "" {
		return interfaces.QuotePromptOutput{}, &ClientError{Kind: ErrKindInvalidResponse, Message: "model reply has no quote"}
	}

	return interfaces.QuotePromptOutput{
		ProjectTitle:           strings.TrimSpace(reply.ProjectTitle),
		ProjectSummary:         strings.TrimSpace(reply.ProjectSummary),
		Quote:                  reply.Quote,
		SuggestedCollaboration: reply.SuggestedCollaboration,
		EstimatedCost:          parseCost(reply.EstimatedCost),
		Currency:               strings.TrimSpace(reply.Currency),
	}, nil
}

func (g *QuoteGenerator) GenerateSuggestions(ctx context.Context, in interfaces.SuggestionsPromptInput) (interfaces.SuggestionsPromptOutput, error) {
	prompt, err := render(suggestionsPrompt, in)
	if err != nil {
		return interfaces.SuggestionsPromptOutput{}, err
	}

	var reply interfaces.SuggestionsPromptOutput
	if err := g.client.ChatJSON(ctx, systemPrompt, prompt, &reply); err != nil {
		log.Printf("[ai][generator] suggestions prompt failed err=%v", err)
		return interfaces.SuggestionsPromptOutput{}, err
	}
	if reply.Suggestions == nil {
		reply.Suggestions = []string{}
	}
	return reply, nil
}

var costDigits = regexp.MustCompile(`-?\d+(\.\d+)?`)

func parseCost(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	m := costDigits.FindString(strings.ReplaceAll(s, ",", ""))
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &v
}
