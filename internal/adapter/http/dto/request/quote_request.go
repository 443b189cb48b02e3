package request

import (
	"webara_portal/internal/domain/entities"
	"webara_portal/internal/usecase"
)

// QuoteFormRequest is the public quote request form.
type QuoteFormRequest struct {
	Name                     string `json:"name"`
	Email                    string `json:"email"`
	WebsiteNeeds             string `json:"websiteNeeds"`
	CollaborationPreferences string `json:"collaborationPreferences"`
	Budget                   string `json:"budget"`
}

func (r QuoteFormRequest) ToForm() usecase.QuoteForm {
	return usecase.QuoteForm{
		Name:                     r.Name,
		Email:                    r.Email,
		WebsiteNeeds:             r.WebsiteNeeds,
		CollaborationPreferences: r.CollaborationPreferences,
		Budget:                   r.Budget,
	}
}

// ProposeQuoteRequest stores a generated quote for the signed-in user.
// AIResult is the unchanged body returned by POST /quotes/generate.
type ProposeQuoteRequest struct {
	FormValues QuoteFormRequest        `json:"formValues"`
	AIResult   entities.GeneratedQuote `json:"aiResult"`
}

// FeedbackRequest sets or clears a feedback channel. A missing, null or
// blank feedback clears it.
type FeedbackRequest struct {
	Feedback *string `json:"feedback"`
}

type StatusRequest struct {
	Status *string `json:"status"`
}
