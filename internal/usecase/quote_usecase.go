package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"webara_portal/internal/domain/entities"
	"webara_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=quote_usecase.go -destination=../adapter/http/handlers/mocks/mock_quote_usecase.go -package=mocks

const (
	MsgCallRequested        = "Your request has been sent. Our team will call you using the phone number on your account."
	MsgCallAlreadyRequested = "A call has already been requested for this quote."
)

// IQuoteUseCase is the quote lifecycle engine.
//
// Every operation takes the request's Caller explicitly. Authorization tiers:
//   - owner: ListMine, Propose, SetUserFeedback, RequestCall, GetByID (own quotes)
//   - admin: SetAdminFeedback, SetStatus, ListAllForAdmin, ListActivities, GetByID (any quote)
//
// Successful writes return the full updated record so clients can restore or
// confirm optimistic view state without a second fetch.
type IQuoteUseCase interface {
	ListMine(ctx context.Context, caller entities.Caller) ([]entities.Quote, error)
	GetByID(ctx context.Context, caller entities.Caller, id string) (entities.Quote, error)
	Propose(ctx context.Context, caller entities.Caller, form QuoteForm, ai entities.GeneratedQuote) (entities.Quote, error)
	SetAdminFeedback(ctx context.Context, caller entities.Caller, id string, text *string) (entities.Quote, error)
	SetUserFeedback(ctx context.Context, caller entities.Caller, id string, text *string) (entities.Quote, error)
	SetStatus(ctx context.Context, caller entities.Caller, id string, status string) (entities.Quote, error)
	RequestCall(ctx context.Context, caller entities.Caller, id string) (RequestCallResult, error)
	ListAllForAdmin(ctx context.Context, caller entities.Caller) (AdminOverview, error)
	ListActivities(ctx context.Context, caller entities.Caller, id string) ([]entities.QuoteActivity, error)
	AuthorizeOwner(ctx context.Context, caller entities.Caller, id string) error
}

// RequestCallResult is the outcome of a call request. AlreadyRequested is set
// when the quote was call_requested before and nothing was written.
type RequestCallResult struct {
	Quote            entities.Quote
	Message          string
	AlreadyRequested bool
}

// AdminOverview is every quote together with its owners' records.
type AdminOverview struct {
	Quotes     []entities.Quote
	Profiles   []entities.Profile
	Businesses []entities.Business
}

type QuoteUseCase struct {
	quotes     interfaces.IQuoteRepository
	profiles   interfaces.IProfileRepository
	businesses interfaces.IBusinessRepository
	activities interfaces.IQuoteActivityRepository
	notifier   interfaces.INotifier
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase wires the engine. activities and notifier may be nil, in
// which case the audit trail and call notifications are skipped.
func NewQuoteUseCase(
	quotes interfaces.IQuoteRepository,
	profiles interfaces.IProfileRepository,
	businesses interfaces.IBusinessRepository,
	activities interfaces.IQuoteActivityRepository,
	notifier interfaces.INotifier,
) *QuoteUseCase {
	return &QuoteUseCase{
		quotes:     quotes,
		profiles:   profiles,
		businesses: businesses,
		activities: activities,
		notifier:   notifier,
	}
}

func (u *QuoteUseCase) ListMine(ctx context.Context, caller entities.Caller) ([]entities.Quote, error) {
	if !caller.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	quotes, err := u.quotes.ListByOwnerID(ctx, caller.ID)
	if err != nil {
		log.Printf("[quote][usecase] list-mine failed user_id=%s err=%v", caller.ID, err)
		return nil, err
	}
	sortNewestFirst(quotes)
	return quotes, nil
}

// GetByID hides quotes the caller may not read behind ErrQuoteNotFound so
// that existence is not leaked to non-owners.
func (u *QuoteUseCase) GetByID(ctx context.Context, caller entities.Caller, id string) (entities.Quote, error) {
	if !caller.IsAuthenticated() {
		return entities.Quote{}, ErrUnauthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !caller.IsAdmin() && !caller.Owns(q) {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) Propose(ctx context.Context, caller entities.Caller, form QuoteForm, ai entities.GeneratedQuote) (entities.Quote, error) {
	if !caller.IsAuthenticated() {
		return entities.Quote{}, ErrUnauthenticated
	}
	if err := validateQuoteForm(form); err != nil {
		return entities.Quote{}, err
	}
	if strings.TrimSpace(ai.Quote) == "" {
		return entities.Quote{}, ErrInvalidAIResult
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:                       uuid.NewString(),
		OwnerID:                  caller.ID,
		Title:                    deriveProjectTitle(ai.ProjectTitle, form),
		WebsiteNeeds:             form.WebsiteNeeds,
		CollaborationPreferences: blankToEmpty(form.CollaborationPreferences),
		BudgetRange:              blankToEmpty(form.Budget),
		AIQuote:                  ai.Quote,
		SuggestedCollaboration:   ai.SuggestedCollaboration,
		AISuggestions:            sanitizeSuggestions(ai.Suggestions),
		EstimatedCost:            resolveEstimatedCost(ai.EstimatedCost, form.Budget),
		Currency:                 resolveCurrency(ai.Currency, form.Budget),
		Status:                   entities.QuoteStatusPending,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] propose failed user_id=%s err=%v", caller.ID, err)
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] propose success quote_id=%s user_id=%s", created.ID, caller.ID)

	u.recordActivity(ctx, created.ID, entities.QuoteActivityCreated, caller.ID, "Quote proposed", nil)
	return created, nil
}

func (u *QuoteUseCase) SetAdminFeedback(ctx context.Context, caller entities.Caller, id string, text *string) (entities.Quote, error) {
	if err := RequireAdmin(caller); err != nil {
		return entities.Quote{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	feedback := entities.NormalizeFeedback(text)
	updated, err := u.quotes.UpdateAdminFeedback(ctx, id, feedback)
	if err != nil {
		log.Printf("[quote][usecase] admin-feedback failed quote_id=%s err=%v", id, err)
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	u.recordActivity(ctx, id, entities.QuoteActivityNoteAdded, caller.ID, feedbackDescription("Admin", feedback),
		map[string]string{"channel": "admin"})
	return updated, nil
}

func (u *QuoteUseCase) SetUserFeedback(ctx context.Context, caller entities.Caller, id string, text *string) (entities.Quote, error) {
	if !caller.IsAuthenticated() {
		return entities.Quote{}, ErrUnauthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	if _, err := u.loadOwned(ctx, caller, id); err != nil {
		return entities.Quote{}, err
	}

	feedback := entities.NormalizeFeedback(text)
	updated, err := u.quotes.UpdateUserFeedback(ctx, id, feedback)
	if err != nil {
		log.Printf("[quote][usecase] user-feedback failed quote_id=%s err=%v", id, err)
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	u.recordActivity(ctx, id, entities.QuoteActivityNoteAdded, caller.ID, feedbackDescription("Client", feedback),
		map[string]string{"channel": "user"})
	return updated, nil
}

// SetStatus is the admin override: any of the seven statuses may be set from
// any current status.
func (u *QuoteUseCase) SetStatus(ctx context.Context, caller entities.Caller, id string, status string) (entities.Quote, error) {
	if err := RequireAdmin(caller); err != nil {
		return entities.Quote{}, err
	}
	next := entities.QuoteStatus(strings.TrimSpace(status))
	if !next.IsValid() {
		return entities.Quote{}, &StatusValidationError{Value: status, Allowed: entities.QuoteStatusNames()}
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	updated, err := u.quotes.UpdateStatus(ctx, id, next)
	if err != nil {
		log.Printf("[quote][usecase] set-status failed quote_id=%s status=%s err=%v", id, next, err)
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] set-status success quote_id=%s from=%s to=%s", id, current.Status, next)

	u.recordActivity(ctx, id, entities.QuoteActivityStatusChanged, caller.ID, "Status changed",
		map[string]string{"from": string(current.Status), "to": string(next)})
	return updated, nil
}

// RequestCall is the only owner-initiated transition. It requires non-blank
// admin feedback and is idempotent once the quote is call_requested.
func (u *QuoteUseCase) RequestCall(ctx context.Context, caller entities.Caller, id string) (RequestCallResult, error) {
	if !caller.IsAuthenticated() {
		return RequestCallResult{}, ErrUnauthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return RequestCallResult{}, ErrInvalidQuoteID
	}

	q, err := u.loadOwned(ctx, caller, id)
	if err != nil {
		return RequestCallResult{}, err
	}
	if !q.HasAdminFeedback() {
		return RequestCallResult{}, ErrAdminFeedbackNeeded
	}
	if q.Status == entities.QuoteStatusCallRequested {
		return RequestCallResult{Quote: q, Message: MsgCallAlreadyRequested, AlreadyRequested: true}, nil
	}

	updated, err := u.quotes.UpdateStatus(ctx, id, entities.QuoteStatusCallRequested)
	if err != nil {
		log.Printf("[quote][usecase] request-call failed quote_id=%s err=%v", id, err)
		return RequestCallResult{}, err
	}
	if updated.ID == "" {
		return RequestCallResult{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] request-call success quote_id=%s from=%s", id, q.Status)

	u.recordActivity(ctx, id, entities.QuoteActivityCallRequested, caller.ID, "Client requested a call",
		map[string]string{"from": string(q.Status), "to": string(entities.QuoteStatusCallRequested)})
	u.notifyCallRequested(ctx, updated)

	return RequestCallResult{Quote: updated, Message: MsgCallRequested}, nil
}

func (u *QuoteUseCase) ListAllForAdmin(ctx context.Context, caller entities.Caller) (AdminOverview, error) {
	if err := RequireAdmin(caller); err != nil {
		return AdminOverview{}, err
	}

	var out AdminOverview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		quotes, err := u.quotes.ListAll(gctx)
		out.Quotes = quotes
		return err
	})
	g.Go(func() error {
		profiles, err := u.profiles.ListAll(gctx)
		out.Profiles = profiles
		return err
	})
	g.Go(func() error {
		businesses, err := u.businesses.ListAll(gctx)
		out.Businesses = businesses
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[quote][usecase] admin-overview failed err=%v", err)
		return AdminOverview{}, err
	}

	sortNewestFirst(out.Quotes)
	return out, nil
}

func (u *QuoteUseCase) ListActivities(ctx context.Context, caller entities.Caller, id string) ([]entities.QuoteActivity, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidQuoteID
	}
	if _, err := u.load(ctx, id); err != nil {
		return nil, err
	}
	if u.activities == nil {
		return []entities.QuoteActivity{}, nil
	}

	items, err := u.activities.ListByQuoteID(ctx, id)
	if err != nil {
		log.Printf("[quote][usecase] list-activities failed quote_id=%s err=%v", id, err)
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

// AuthorizeOwner runs the owner-tier checks of SetUserFeedback and
// RequestCall without writing anything.
func (u *QuoteUseCase) AuthorizeOwner(ctx context.Context, caller entities.Caller, id string) error {
	if !caller.IsAuthenticated() {
		return ErrUnauthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	_, err := u.loadOwned(ctx, caller, id)
	return err
}

func (u *QuoteUseCase) loadOwned(ctx context.Context, caller entities.Caller, id string) (entities.Quote, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !caller.Owns(q) {
		log.Printf("[quote][usecase] owner operation forbidden quote_id=%s user_id=%s", id, caller.ID)
		return entities.Quote{}, ErrForbidden
	}
	return q, nil
}

func (u *QuoteUseCase) load(ctx context.Context, id string) (entities.Quote, error) {
	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		log.Printf("[quote][usecase] load failed quote_id=%s err=%v", id, err)
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// recordActivity appends to the audit trail. A failed write is logged and
// does not undo the mutation it describes.
func (u *QuoteUseCase) recordActivity(ctx context.Context, quoteID string, kind entities.QuoteActivityType, actor, description string, metadata map[string]string) {
	if u.activities == nil {
		return
	}
	a := entities.QuoteActivity{
		ID:          uuid.NewString(),
		QuoteID:     quoteID,
		Type:        kind,
		Description: description,
		CreatedBy:   actor,
		Metadata:    metadata,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := u.activities.Create(ctx, a); err != nil {
		log.Printf("[quote][usecase] activity write failed quote_id=%s type=%s err=%v", quoteID, kind, err)
	}
}

func (u *QuoteUseCase) notifyCallRequested(ctx context.Context, q entities.Quote) {
	if u.notifier == nil {
		return
	}
	n := interfaces.Notification{
		UserID:  q.OwnerID,
		Role:    string(entities.RoleAdmin),
		Title:   "Call requested",
		Message: "A client asked for a call about \"" + q.Title + "\".",
		QuoteID: q.ID,
	}
	if err := u.notifier.Notify(ctx, n); err != nil {
		log.Printf("[quote][usecase] call notification failed quote_id=%s err=%v", q.ID, err)
	}
}

// RequireAdmin is the admin-tier check shared by every admin operation.
func RequireAdmin(caller entities.Caller) error {
	if !caller.IsAuthenticated() {
		return ErrUnauthenticated
	}
	if !caller.IsAdmin() {
		log.Printf("[quote][usecase] admin operation forbidden user_id=%s role=%s source=%s", caller.ID, caller.Role, caller.RoleSource)
		return ErrForbidden
	}
	return nil
}

func feedbackDescription(who string, feedback *string) string {
	if feedback == nil {
		return who + " feedback cleared"
	}
	return who + " feedback updated"
}

func blankToEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

func sortNewestFirst(quotes []entities.Quote) {
	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].CreatedAt.After(quotes[j].CreatedAt) })
}
