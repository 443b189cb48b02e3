package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"webara_portal/internal/domain/entities"
	"webara_portal/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=quote_generation_usecase.go -destination=../adapter/http/handlers/mocks/mock_quote_generation_usecase.go -package=mocks

// IQuoteGenerationUseCase runs the AI quote flow for the public request form.
// Nothing is persisted; the result is handed back to the visitor and later
// submitted with Propose.
type IQuoteGenerationUseCase interface {
	Generate(ctx context.Context, form QuoteForm) (entities.GeneratedQuote, error)
}

type QuoteGenerationUseCase struct {
	generator interfaces.IQuoteGenerator
}

var _ IQuoteGenerationUseCase = (*QuoteGenerationUseCase)(nil)

func NewQuoteGenerationUseCase(generator interfaces.IQuoteGenerator) *QuoteGenerationUseCase {
	return &QuoteGenerationUseCase{generator: generator}
}

func (u *QuoteGenerationUseCase) Generate(ctx context.Context, form QuoteForm) (entities.GeneratedQuote, error) {
	if err := validateQuoteForm(form); err != nil {
		return entities.GeneratedQuote{}, err
	}
	if u.generator == nil {
		log.Printf("[ai][usecase] generator not configured")
		return entities.GeneratedQuote{}, fmt.Errorf("%w: generator not configured", ErrQuoteGenerationFailed)
	}

	log.Printf("[ai][usecase] generate start email=%s needs_len=%d", form.Email, len(form.WebsiteNeeds))

	var (
		quote       interfaces.QuotePromptOutput
		suggestions interfaces.SuggestionsPromptOutput
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := u.generator.GenerateQuote(gctx, interfaces.QuotePromptInput{
			WebsiteNeeds:             form.WebsiteNeeds,
			CollaborationPreferences: orNotSpecified(form.CollaborationPreferences),
			Budget:                   orNotSpecified(form.Budget),
		})
		if err != nil {
			return fmt.Errorf("quote prompt: %w", err)
		}
		quote = out
		return nil
	})
	g.Go(func() error {
		out, err := u.generator.GenerateSuggestions(gctx, interfaces.SuggestionsPromptInput{
			ProjectRequirements:      form.WebsiteNeeds,
			CollaborationPreferences: orNotSpecified(form.CollaborationPreferences),
		})
		if err != nil {
			return fmt.Errorf("suggestions prompt: %w", err)
		}
		suggestions = out
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Printf("[ai][usecase] generate failed err=%v", err)
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return entities.GeneratedQuote{}, ctx.Err()
		}
		return entities.GeneratedQuote{}, fmt.Errorf("%w: %v", ErrQuoteGenerationFailed, err)
	}
	if strings.TrimSpace(quote.Quote) == "" {
		log.Printf("[ai][usecase] generate returned empty quote")
		return entities.GeneratedQuote{}, fmt.Errorf("%w: empty quote", ErrQuoteGenerationFailed)
	}

	out := entities.GeneratedQuote{
		ProjectTitle:           deriveProjectTitle(quote.ProjectTitle, form),
		ProjectSummary:         strings.TrimSpace(quote.ProjectSummary),
		Quote:                  quote.Quote,
		SuggestedCollaboration: quote.SuggestedCollaboration,
		EstimatedCost:          resolveEstimatedCost(quote.EstimatedCost, form.Budget),
		Currency:               resolveCurrency(quote.Currency, form.Budget),
		Suggestions:            sanitizeSuggestions(suggestions.Suggestions),
	}
	log.Printf("[ai][usecase] generate success title=%q suggestions=%d", out.ProjectTitle, len(out.Suggestions))
	return out, nil
}
