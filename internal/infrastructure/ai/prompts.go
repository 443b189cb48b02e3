package ai

import (
	"strings"
	"text/template"
)

const systemPrompt = "You are an AI assistant that writes quotes and collaboration suggestions for web design projects. Reply with a single JSON object and nothing else."

var quotePrompt = template.Must(template.New("quote").Parse(`Based on the client's input, provide a detailed quote for their web design needs and suggest a suitable collaboration option.
Consider the project scope, budget and collaboration preferences.

Return ONLY valid JSON that matches this schema exactly:
{
  "projectTitle": "short descriptive name (<= 80 characters)",
  "projectSummary": "1-2 sentence summary of the requested work",
  "quote": "Detailed cost narrative with deliverables, timeline, and benefits",
  "suggestedCollaboration": "Best-fit collaboration approach and rationale",
  "estimatedCost": number (no currency symbols, average if given a range),
  "currency": "ISO-4217 currency code such as USD, EUR, GBP. Default to USD if unsure."
}

When inferring the estimatedCost:
- If the budget is a range, average the numeric values.
- If the budget is missing or vague, estimate a realistic industry price for the described scope.
- Never include commas or symbols, just the numeric value with decimals if needed.

Website Needs: {{.WebsiteNeeds}}
Collaboration Preferences: {{.CollaborationPreferences}}
Budget: {{.Budget}}`))

var suggestionsPrompt = template.Must(template.New("suggestions").Parse(`Suggest concrete improvements or additional features the client could consider for this website project.

Return ONLY valid JSON that matches this schema exactly:
{
  "suggestions": ["short actionable suggestion", "..."]
}

Give between 3 and 5 suggestions.

Project Requirements: {{.ProjectRequirements}}
Collaboration Preferences: {{.CollaborationPreferences}}`))

func render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
