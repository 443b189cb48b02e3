package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"webara_portal/internal/domain/entities"
	mock_interfaces "webara_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	ownerCaller = entities.Caller{ID: "user-1", Role: entities.RoleUser, RoleSource: entities.RoleSourceProfile}
	otherCaller = entities.Caller{ID: "user-2", Role: entities.RoleUser, RoleSource: entities.RoleSourceIdentityProvider}
	adminCaller = entities.Caller{ID: "admin-1", Role: entities.RoleAdmin, RoleSource: entities.RoleSourceIdentityProvider}
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func validForm() QuoteForm {
	return QuoteForm{
		Name:                     "Jane Doe",
		Email:                    "jane@example.com",
		WebsiteNeeds:             "need a 5-page booking site",
		CollaborationPreferences: "Weekly calls",
		Budget:                   "$3,000 - $5,000",
	}
}

func validAIResult() entities.GeneratedQuote {
	return entities.GeneratedQuote{
		ProjectTitle:           "Booking site",
		ProjectSummary:         "A five page booking site.",
		Quote:                  "Design, build and launch a five page booking site.",
		SuggestedCollaboration: "Bi-weekly demos",
		EstimatedCost:          floatPtr(4200),
		Currency:               "USD",
		Suggestions:            []string{"Add online payments", "  ", "Add a blog"},
	}
}

// memQuotes is an in-memory IQuoteRepository with the same zero-value
// not-found contract as the DynamoDB one.
type memQuotes struct {
	mu     sync.Mutex
	items  map[string]entities.Quote
	writes int
}

func newMemQuotes(seed ...entities.Quote) *memQuotes {
	m := &memQuotes{items: map[string]entities.Quote{}}
	for _, q := range seed {
		m.items[q.ID] = q
	}
	return m
}

func (m *memQuotes) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[q.ID] = q
	m.writes++
	return q, nil
}

func (m *memQuotes) GetByID(_ context.Context, id string) (entities.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[id], nil
}

func (m *memQuotes) ListByOwnerID(_ context.Context, ownerID string) ([]entities.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.Quote
	for _, q := range m.items {
		if q.OwnerID == ownerID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memQuotes) ListAll(_ context.Context) ([]entities.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entities.Quote, 0, len(m.items))
	for _, q := range m.items {
		out = append(out, q)
	}
	return out, nil
}

func (m *memQuotes) update(id string, fn func(*entities.Quote)) (entities.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.items[id]
	if !ok {
		return entities.Quote{}, nil
	}
	fn(&q)
	q.UpdatedAt = time.Now().UTC()
	m.items[id] = q
	m.writes++
	return q, nil
}

func (m *memQuotes) UpdateStatus(_ context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	return m.update(id, func(q *entities.Quote) { q.Status = status })
}

func (m *memQuotes) UpdateAdminFeedback(_ context.Context, id string, feedback *string) (entities.Quote, error) {
	return m.update(id, func(q *entities.Quote) { q.AdminFeedback = feedback })
}

func (m *memQuotes) UpdateUserFeedback(_ context.Context, id string, feedback *string) (entities.Quote, error) {
	return m.update(id, func(q *entities.Quote) { q.UserFeedback = feedback })
}

func seededQuote(id string, status entities.QuoteStatus, adminFeedback *string) entities.Quote {
	now := time.Now().UTC()
	return entities.Quote{
		ID:            id,
		OwnerID:       ownerCaller.ID,
		Title:         "Booking site",
		AIQuote:       "Five pages",
		Status:        status,
		AdminFeedback: adminFeedback,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestQuoteUseCase_Propose(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Propose(context.Background(), entities.Caller{}, validForm(), validAIResult())
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("invalid form", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil)
		form := validForm()
		form.Email = "not-an-email"
		form.WebsiteNeeds = "short"
		_, err := uc.Propose(context.Background(), ownerCaller, form, validAIResult())
		if !errors.Is(err, ErrInvalidQuoteForm) {
			t.Fatalf("expected ErrInvalidQuoteForm, got %v", err)
		}
		var fe *FormValidationError
		if !errors.As(err, &fe) {
			t.Fatalf("expected FormValidationError, got %T", err)
		}
		if _, ok := fe.Fields["email"]; !ok {
			t.Fatalf("expected email field, got %+v", fe.Fields)
		}
		if _, ok := fe.Fields["websiteNeeds"]; !ok {
			t.Fatalf("expected websiteNeeds field, got %+v", fe.Fields)
		}
	})

	t.Run("missing ai quote", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil)
		ai := validAIResult()
		ai.Quote = "  "
		_, err := uc.Propose(context.Background(), ownerCaller, validForm(), ai)
		if !errors.Is(err, ErrInvalidAIResult) {
			t.Fatalf("expected ErrInvalidAIResult, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db"))

		_, err := uc.Propose(context.Background(), ownerCaller, validForm(), validAIResult())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success records activity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		activities := mock_interfaces.NewMockIQuoteActivityRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, activities, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.OwnerID != ownerCaller.ID {
					t.Fatalf("unexpected identity fields: %+v", q)
				}
				if q.Status != entities.QuoteStatusPending {
					t.Fatalf("expected pending, got %s", q.Status)
				}
				if q.AdminFeedback != nil || q.UserFeedback != nil {
					t.Fatalf("expected no feedback on creation")
				}
				if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				if len(q.AISuggestions) != 2 {
					t.Fatalf("expected blank suggestion dropped, got %v", q.AISuggestions)
				}
				return q, nil
			},
		)
		activities.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteActivity{})).DoAndReturn(
			func(_ context.Context, a entities.QuoteActivity) (entities.QuoteActivity, error) {
				if a.Type != entities.QuoteActivityCreated || a.CreatedBy != ownerCaller.ID || a.QuoteID == "" {
					t.Fatalf("unexpected activity: %+v", a)
				}
				return a, nil
			},
		)

		res, err := uc.Propose(context.Background(), ownerCaller, validForm(), validAIResult())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Status != entities.QuoteStatusPending {
			t.Fatalf("expected pending, got %s", res.Status)
		}
	})

	t.Run("activity failure does not fail propose", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		activities := mock_interfaces.NewMockIQuoteActivityRepository(ctrl)
		uc := NewQuoteUseCase(newMemQuotes(), nil, nil, activities, nil)

		activities.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteActivity{}, errors.New("db"))

		if _, err := uc.Propose(context.Background(), ownerCaller, validForm(), validAIResult()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("falls back to budget when ai gives no estimate", func(t *testing.T) {
		uc := NewQuoteUseCase(newMemQuotes(), nil, nil, nil, nil)
		ai := validAIResult()
		ai.EstimatedCost = nil
		ai.Currency = ""
		form := validForm()
		form.Budget = "€2,000 - €3,000"

		res, err := uc.Propose(context.Background(), ownerCaller, form, ai)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.EstimatedCost == nil || *res.EstimatedCost != 2500 {
			t.Fatalf("expected 2500, got %v", res.EstimatedCost)
		}
		if res.Currency != "EUR" {
			t.Fatalf("expected EUR, got %s", res.Currency)
		}
	})
}

func TestQuoteUseCase_ProposeThenGetByID(t *testing.T) {
	repo := newMemQuotes()
	uc := NewQuoteUseCase(repo, nil, nil, nil, nil)
	form := validForm()
	ai := validAIResult()

	created, err := uc.Propose(context.Background(), ownerCaller, form, ai)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := uc.GetByID(context.Background(), ownerCaller, created.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != entities.QuoteStatusPending {
		t.Fatalf("expected pending, got %s", got.Status)
	}
	if got.WebsiteNeeds != form.WebsiteNeeds || got.CollaborationPreferences != form.CollaborationPreferences || got.BudgetRange != form.Budget {
		t.Fatalf("form fields changed: %+v", got)
	}
	if got.AIQuote != ai.Quote || got.SuggestedCollaboration != ai.SuggestedCollaboration || got.Title != ai.ProjectTitle {
		t.Fatalf("ai fields changed: %+v", got)
	}
	if got.EstimatedCost == nil || *got.EstimatedCost != 4200 || got.Currency != "USD" {
		t.Fatalf("expected 4200 USD, got %v %s", got.EstimatedCost, got.Currency)
	}
}

func TestQuoteUseCase_ListMine(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.ListMine(context.Background(), entities.Caller{}); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil)

		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().ListByOwnerID(gomock.Any(), ownerCaller.ID).Return([]entities.Quote{
			{ID: "old", CreatedAt: base},
			{ID: "new", CreatedAt: base.Add(2 * time.Hour)},
			{ID: "mid", CreatedAt: base.Add(time.Hour)},
		}, nil)

		res, err := uc.ListMine(context.Background(), ownerCaller)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(res) != 3 || res[0].ID != "new" || res[1].ID != "mid" || res[2].ID != "old" {
			t.Fatalf("unexpected order: %+v", res)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	repo := newMemQuotes(seededQuote("q-1", entities.QuoteStatusPending, nil))
	uc := NewQuoteUseCase(repo, nil, nil, nil, nil)

	t.Run("unauthenticated", func(t *testing.T) {
		if _, err := uc.GetByID(context.Background(), entities.Caller{}, "q-1"); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		if _, err := uc.GetByID(context.Background(), ownerCaller, "  "); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := uc.GetByID(context.Background(), ownerCaller, "missing"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("non owner sees not found", func(t *testing.T) {
		if _, err := uc.GetByID(context.Background(), otherCaller, "q-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("owner and admin", func(t *testing.T) {
		for _, c := range []entities.Caller{ownerCaller, adminCaller} {
			q, err := uc.GetByID(context.Background(), c, " q-1 ")
			if err != nil || q.ID != "q-1" {
				t.Fatalf("caller %s: unexpected result %+v err=%v", c.ID, q, err)
			}
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mock := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(mock, nil, nil, nil, nil)

		mock.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("db"))

		if _, err := uc.GetByID(context.Background(), ownerCaller, "q-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_SetAdminFeedback(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.SetAdminFeedback(context.Background(), entities.Caller{}, "q-1", strPtr("x")); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("non admin forbidden regardless of role source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil)

		callers := []entities.Caller{
			ownerCaller,
			otherCaller,
			{ID: "staff-1", Role: entities.RoleStaff, RoleSource: entities.RoleSourceProfile},
			{ID: "plain-1", Role: entities.RoleUser},
		}
		for _, c := range callers {
			if _, err := uc.SetAdminFeedback(context.Background(), c, "q-1", strPtr("x")); !errors.Is(err, ErrForbidden) {
				t.Fatalf("caller %s: expected ErrForbidden, got %v", c.ID, err)
			}
		}
	})

	t.Run("blank text stored as null", func(t *testing.T) {
		for _, in := range []*string{nil, strPtr(""), strPtr("   ")} {
			repo := newMemQuotes(seededQuote("q-1", entities.QuoteStatusPending, strPtr("old")))
			uc := NewQuoteUseCase(repo, nil, nil, nil, nil)

			res, err := uc.SetAdminFeedback(context.Background(), adminCaller, "q-1", in)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if res.AdminFeedback != nil {
				t.Fatalf("expected nil feedback, got %q", *res.AdminFeedback)
			}
			stored, _ := repo.GetByID(context.Background(), "q-1")
			if stored.AdminFeedback != nil {
				t.Fatalf("expected stored feedback nil")
			}
		}
	})

	t.Run("trimmed text returned with full record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		activities := mock_interfaces.NewMockIQuoteActivityRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, activities, nil)

		repo.EXPECT().UpdateAdminFeedback(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, fb *string) (entities.Quote, error) {
				if fb == nil || *fb != "We can start in 2 weeks" {
					t.Fatalf("expected trimmed feedback, got %v", fb)
				}
				q := seededQuote(id, entities.QuoteStatusUnderReview, fb)
				return q, nil
			},
		)
		activities.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.QuoteActivity) (entities.QuoteActivity, error) {
				if a.Type != entities.QuoteActivityNoteAdded || a.Metadata["channel"] != "admin" {
					t.Fatalf("unexpected activity: %+v", a)
				}
				return a, nil
			},
		)

		res, err := uc.SetAdminFeedback(context.Background(), adminCaller, "q-1", strPtr("  We can start in 2 weeks \n"))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.ID != "q-1" || res.Status != entities.QuoteStatusUnderReview || res.Title == "" {
			t.Fatalf("expected full record, got %+v", res)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := NewQuoteUseCase(newMemQuotes(), nil, nil, nil, nil)
		if _, err := uc.SetAdminFeedback(context.Background(), adminCaller, "missing", strPtr("x")); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_SetUserFeedback(t *testing.T) {
	t.Run("non owner forbidden regardless of status", func(t *testing.T) {
		for _, st := range entities.QuoteStatuses() {
			repo := newMemQuotes(seededQuote("q-1", st, strPtr("feedback")))
			uc := NewQuoteUseCase(repo, nil, nil, nil, nil)
			if _, err := uc.SetUserFeedback(context.Background(), otherCaller, "q-1", strPtr("x")); !errors.Is(err, ErrForbidden) {
				t.Fatalf("status %s: expected ErrForbidden, got %v", st, err)
			}
			if repo.writes != 0 {
				t.Fatalf("status %s: expected no writes", st)
			}
		}
	})

	t.Run("admin who is not owner is forbidden", func(t *testing.T) {
		repo := newMemQuotes(seededQuote("q-1", entities.QuoteStatusPending, nil))
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil)
		if _, err := uc.SetUserFeedback(context.Background(), adminCaller, "q-1", strPtr("x")); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := NewQuoteUseCase(newMemQuotes(), nil, nil, nil, nil)
		if _, err := uc.SetUserFeedback(context.Background(), ownerCaller, "missing", strPtr("x")); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("owner writes trimmed and clears blank", func(t *testing.T) {
		repo := newMemQuotes(seededQuote("q-1", entities.QuoteStatusPending, nil))
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil)

		res, err := uc.SetUserFeedback(context.Background(), ownerCaller, "q-1", strPtr("  Please add a blog "))
		if err != nil || res.UserFeedback == nil || *res.UserFeedback != "Please add a blog" {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}

		res, err = uc.SetUserFeedback(context.Background(), ownerCaller, "q-1", strPtr(" "))
		if err != nil || res.UserFeedback != nil {
			t.Fatalf("expected cleared feedback, got %+v err=%v", res, err)
		}
	})
}

func TestQuoteUseCase_FeedbackChannelsAreIndependent(t *testing.T) {
	seed := func() *memQuotes {
		q := seededQuote("q-1", entities.QuoteStatusUnderReview, strPtr("admin note"))
		q.UserFeedback = strPtr("user note")
		return newMemQuotes(q)
	}

	t.Run("admin writes keep user feedback", func(t *testing.T) {
		repo := seed()
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil)

		for _, in := range []*string{nil, strPtr("new admin note")} {
			res, err := uc.SetAdminFeedback(context.Background(), adminCaller, "q-1", in)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if res.UserFeedback == nil || *res.UserFeedback != "user note" {
				t.Fatalf("user feedback altered: %v", res.UserFeedback)
			}
		}
		stored, _ := repo.GetByID(context.Background(), "q-1")
		if stored.AdminFeedback == nil || *stored.AdminFeedback != "new admin note" || *stored.UserFeedback != "user note" {
			t.Fatalf("unexpected stored quote %+v", stored)
		}
	})

	t.Run("user writes keep admin feedback", func(t *testing.T) {
		repo := seed()
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil)

		for _, in := range []*string{nil, strPtr("new user note")} {
			res, err := uc.SetUserFeedback(context.Background(), ownerCaller, "q-1", in)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if res.AdminFeedback == nil || *res.AdminFeedback != "admin note" {
				t.Fatalf("admin feedback altered: %v", res.AdminFeedback)
			}
		}
		stored, _ := repo.GetByID(context.Background(), "q-1")
		if stored.UserFeedback == nil || *stored.UserFeedback != "new user note" || *stored.AdminFeedback != "admin note" {
			t.Fatalf("unexpected stored quote %+v", stored)
		}
	})
}

func TestQuoteUseCase_AuthorizeOwner(t *testing.T) {
	repo := newMemQuotes(seededQuote("q-1", entities.QuoteStatusPending, nil))
	uc := NewQuoteUseCase(repo, nil, nil, nil, nil)

	cases := []struct {
		name   string
		caller entities.Caller
		id     string
		want   error
	}{
		{name: "unauthenticated", caller: entities.Caller{}, id: "q-1", want: ErrUnauthenticated},
		{name: "blank id", caller: ownerCaller, id: " ", want: ErrInvalidQuoteID},
		{name: "missing", caller: ownerCaller, id: "missing", want: ErrQuoteNotFound},
		{name: "other user", caller: otherCaller, id: "q-1", want: ErrForbidden},
		{name: "admin is not owner", caller: adminCaller, id: "q-1", want: ErrForbidden},
		{name: "owner", caller: ownerCaller, id: " q-1 ", want: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := uc.AuthorizeOwner(context.Background(), tc.caller, tc.id)
			if tc.want == nil && err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if repo.writes != 0 {
		t.Fatalf("expected no writes, got %d", repo.writes)
	}
}

func TestQuoteUseCase_SetStatus(t *testing.T) {
	t.Run("non admin forbidden", func(t *testing.T) {
		uc := NewQuoteUseCase(newMemQuotes(), nil, nil, nil, nil)
		if _, err := uc.SetStatus(context.Background(), ownerCaller, "q-1", "accepted"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("invalid status enumerates allowed values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil)

		_, err := uc.SetStatus(context.Background(), adminCaller, "q-1", "not_a_real_status")
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
		var se *StatusValidationError
		if !errors.As(err, &se) {
			t.Fatalf("expected StatusValidationError, got %T", err)
		}
		if len(se.Allowed) != 7 {
			t.Fatalf("expected 7 allowed values, got %v", se.Allowed)
		}
	})

	t.Run("admin can set any status from any status", func(t *testing.T) {
		for _, from := range entities.QuoteStatuses() {
			for _, to := range entities.QuoteStatuses() {
				repo := newMemQuotes(seededQuote("q-1", from, nil))
				uc := NewQuoteUseCase(repo, nil, nil, nil, nil)
				res, err := uc.SetStatus(context.Background(), adminCaller, "q-1", string(to))
				if err != nil {
					t.Fatalf("%s -> %s: unexpected err: %v", from, to, err)
				}
				if res.Status != to {
					t.Fatalf("%s -> %s: got %s", from, to, res.Status)
				}
			}
		}
	})

	t.Run("status is trimmed", func(t *testing.T) {
		repo := newMemQuotes(seededQuote("q-1", entities.QuoteStatusPending, nil))
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil)
		res, err := uc.SetStatus(context.Background(), adminCaller, "q-1", " accepted ")
		if err != nil || res.Status != entities.QuoteStatusAccepted {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := NewQuoteUseCase(newMemQuotes(), nil, nil, nil, nil)
		if _, err := uc.SetStatus(context.Background(), adminCaller, "missing", "accepted"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("records from and to", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		activities := mock_interfaces.NewMockIQuoteActivityRepository(ctrl)
		repo := newMemQuotes(seededQuote("q-1", entities.QuoteStatusPending, nil))
		uc := NewQuoteUseCase(repo, nil, nil, activities, nil)

		activities.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.QuoteActivity) (entities.QuoteActivity, error) {
				if a.Type != entities.QuoteActivityStatusChanged || a.Metadata["from"] != "pending" || a.Metadata["to"] != "rejected" {
					t.Fatalf("unexpected activity: %+v", a)
				}
				return a, nil
			},
		)

		if _, err := uc.SetStatus(context.Background(), adminCaller, "q-1", "rejected"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestQuoteUseCase_RequestCall(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		uc := NewQuoteUseCase(newMemQuotes(), nil, nil, nil, nil)
		if _, err := uc.RequestCall(context.Background(), entities.Caller{}, "q-1"); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := NewQuoteUseCase(newMemQuotes(), nil, nil, nil, nil)
		if _, err := uc.RequestCall(context.Background(), ownerCaller, "missing"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("non owner forbidden regardless of status", func(t *testing.T) {
		for _, st := range entities.QuoteStatuses() {
			repo := newMemQuotes(seededQuote("q-1", st, strPtr("We can start in 2 weeks")))
			uc := NewQuoteUseCase(repo, nil, nil, nil, nil)
			for _, c := range []entities.Caller{otherCaller, adminCaller} {
				if _, err := uc.RequestCall(context.Background(), c, "q-1"); !errors.Is(err, ErrForbidden) {
					t.Fatalf("status %s caller %s: expected ErrForbidden, got %v", st, c.ID, err)
				}
			}
		}
	})

	t.Run("requires admin feedback", func(t *testing.T) {
		for _, fb := range []*string{nil, strPtr(""), strPtr("  \t ")} {
			repo := newMemQuotes(seededQuote("q-1", entities.QuoteStatusUnderReview, fb))
			uc := NewQuoteUseCase(repo, nil, nil, nil, nil)

			_, err := uc.RequestCall(context.Background(), ownerCaller, "q-1")
			if !errors.Is(err, ErrAdminFeedbackNeeded) {
				t.Fatalf("expected ErrAdminFeedbackNeeded, got %v", err)
			}
			if errors.Is(err, ErrForbidden) || errors.Is(err, ErrInvalidQuoteStatus) || errors.Is(err, ErrInvalidQuoteForm) {
				t.Fatalf("domain error must not be a validation or forbidden error")
			}
			stored, _ := repo.GetByID(context.Background(), "q-1")
			if stored.Status != entities.QuoteStatusUnderReview || repo.writes != 0 {
				t.Fatalf("expected unchanged status, got %s writes=%d", stored.Status, repo.writes)
			}
		}
	})

	t.Run("feedback then request call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		repo := newMemQuotes(seededQuote("q-1", entities.QuoteStatusPending, nil))
		uc := NewQuoteUseCase(repo, nil, nil, nil, notifier)

		if _, err := uc.SetAdminFeedback(context.Background(), adminCaller, "q-1", strPtr("We can start in 2 weeks")); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(1).Return(nil)

		first, err := uc.RequestCall(context.Background(), ownerCaller, "q-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if first.Quote.Status != entities.QuoteStatusCallRequested || first.AlreadyRequested || first.Message != MsgCallRequested {
			t.Fatalf("unexpected first result: %+v", first)
		}
		writes := repo.writes

		second, err := uc.RequestCall(context.Background(), ownerCaller, "q-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !second.AlreadyRequested || second.Message != MsgCallAlreadyRequested || second.Quote.Status != entities.QuoteStatusCallRequested {
			t.Fatalf("unexpected second result: %+v", second)
		}
		if repo.writes != writes {
			t.Fatalf("idempotent call must not write")
		}
	})

	t.Run("notifier failure does not fail request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		repo := newMemQuotes(seededQuote("q-1", entities.QuoteStatusAccepted, strPtr("ok")))
		uc := NewQuoteUseCase(repo, nil, nil, nil, notifier)

		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		res, err := uc.RequestCall(context.Background(), ownerCaller, "q-1")
		if err != nil || res.Quote.Status != entities.QuoteStatusCallRequested {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})

	t.Run("store error on write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(seededQuote("q-1", entities.QuoteStatusPending, strPtr("ok")), nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusCallRequested).Return(entities.Quote{}, errors.New("db"))

		if _, err := uc.RequestCall(context.Background(), ownerCaller, "q-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_ListAllForAdmin(t *testing.T) {
	t.Run("forbidden", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.ListAllForAdmin(context.Background(), ownerCaller); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
		if _, err := uc.ListAllForAdmin(context.Background(), entities.Caller{}); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		businesses := mock_interfaces.NewMockIBusinessRepository(ctrl)
		uc := NewQuoteUseCase(quotes, profiles, businesses, nil, nil)

		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		quotes.EXPECT().ListAll(gomock.Any()).Return([]entities.Quote{
			{ID: "a", CreatedAt: base},
			{ID: "b", CreatedAt: base.Add(time.Minute)},
		}, nil)
		profiles.EXPECT().ListAll(gomock.Any()).Return([]entities.Profile{{ID: "p-1", UserID: "user-1"}}, nil)
		businesses.EXPECT().ListAll(gomock.Any()).Return([]entities.Business{{ID: "b-1", OwnerID: "user-1"}}, nil)

		res, err := uc.ListAllForAdmin(context.Background(), adminCaller)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(res.Quotes) != 2 || res.Quotes[0].ID != "b" {
			t.Fatalf("unexpected quotes: %+v", res.Quotes)
		}
		if len(res.Profiles) != 1 || len(res.Businesses) != 1 {
			t.Fatalf("unexpected related records: %+v", res)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		businesses := mock_interfaces.NewMockIBusinessRepository(ctrl)
		uc := NewQuoteUseCase(quotes, profiles, businesses, nil, nil)

		quotes.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db"))
		profiles.EXPECT().ListAll(gomock.Any()).Return(nil, nil).AnyTimes()
		businesses.EXPECT().ListAll(gomock.Any()).Return(nil, nil).AnyTimes()

		if _, err := uc.ListAllForAdmin(context.Background(), adminCaller); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_ListActivities(t *testing.T) {
	t.Run("forbidden", func(t *testing.T) {
		uc := NewQuoteUseCase(newMemQuotes(), nil, nil, nil, nil)
		if _, err := uc.ListActivities(context.Background(), ownerCaller, "q-1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		uc := NewQuoteUseCase(newMemQuotes(), nil, nil, nil, nil)
		if _, err := uc.ListActivities(context.Background(), adminCaller, "missing"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		activities := mock_interfaces.NewMockIQuoteActivityRepository(ctrl)
		repo := newMemQuotes(seededQuote("q-1", entities.QuoteStatusPending, nil))
		uc := NewQuoteUseCase(repo, nil, nil, activities, nil)

		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		activities.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.QuoteActivity{
			{ID: "a-1", CreatedAt: base},
			{ID: "a-2", CreatedAt: base.Add(time.Second)},
		}, nil)

		res, err := uc.ListActivities(context.Background(), adminCaller, "q-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(res) != 2 || res[0].ID != "a-2" {
			t.Fatalf("unexpected order: %+v", res)
		}
	})
}
