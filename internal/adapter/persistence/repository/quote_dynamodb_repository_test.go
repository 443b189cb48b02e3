package repository

import (
	"strings"
	"testing"
	"time"

	"webara_portal/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestQuoteItem_RoundTrip(t *testing.T) {
	cost := 4200.5
	fb := "We can start in 2 weeks"
	created := time.Date(2026, 3, 1, 10, 0, 0, 123, time.UTC)
	q := entities.Quote{
		ID:            "q-1",
		OwnerID:       "user-1",
		Title:         "Booking site",
		WebsiteNeeds:  "need a 5-page booking site",
		AIQuote:       "Five pages",
		AISuggestions: []string{"Blog"},
		EstimatedCost: &cost,
		Currency:      "USD",
		Status:        entities.QuoteStatusUnderReview,
		AdminFeedback: &fb,
		CreatedAt:     created,
		UpdatedAt:     created,
	}

	got := fromQuoteItem(toQuoteItem(q))
	if got.ID != q.ID || got.OwnerID != q.OwnerID || got.Status != q.Status || got.Currency != "USD" {
		t.Fatalf("unexpected quote: %+v", got)
	}
	if got.EstimatedCost == nil || *got.EstimatedCost != cost {
		t.Fatalf("expected cost %v, got %v", cost, got.EstimatedCost)
	}
	if got.AdminFeedback == nil || *got.AdminFeedback != fb || got.UserFeedback != nil {
		t.Fatalf("unexpected feedback: %v %v", got.AdminFeedback, got.UserFeedback)
	}
	if got.BusinessID != nil {
		t.Fatalf("expected nil business id")
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("expected %v got %v", created, got.CreatedAt)
	}
}

func TestQuoteItem_OmitsAbsentAttributes(t *testing.T) {
	blank := "   "
	av, err := attributevalue.MarshalMap(toQuoteItem(entities.Quote{
		ID:            "q-1",
		OwnerID:       "user-1",
		Status:        entities.QuoteStatusPending,
		AdminFeedback: &blank,
	}))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, attr := range []string{"admin_feedback", "user_feedback", "estimated_cost", "business_id", "ai_suggestions"} {
		if _, ok := av[attr]; ok {
			t.Fatalf("expected %s to be omitted", attr)
		}
	}
}

func TestFromQuoteItem_Defaults(t *testing.T) {
	got := fromQuoteItem(quoteItem{ID: "q-1", EstimatedCost: "not-a-number"})
	if got.Status != entities.QuoteStatusPending {
		t.Fatalf("expected pending, got %s", got.Status)
	}
	if got.AISuggestions == nil || got.EstimatedCost != nil {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestFeedbackUpdate(t *testing.T) {
	text := "ok"
	expr, vals, names := feedbackUpdate("admin_feedback", &text)("now")
	if !strings.HasPrefix(expr, "SET #fb = :fb") || names["#fb"] != "admin_feedback" {
		t.Fatalf("unexpected update: %s %v", expr, names)
	}
	if v, ok := vals[":fb"].(*types.AttributeValueMemberS); !ok || v.Value != "ok" {
		t.Fatalf("unexpected value: %v", vals[":fb"])
	}

	expr, vals, _ = feedbackUpdate("user_feedback", nil)("now")
	if !strings.Contains(expr, "REMOVE #fb") {
		t.Fatalf("expected REMOVE, got %s", expr)
	}
	if _, ok := vals[":fb"]; ok {
		t.Fatalf("unexpected :fb value on remove")
	}
}

func TestFeedbackUpdate_TouchesOnlyItsChannel(t *testing.T) {
	text := "ok"
	channels := map[string]string{"admin_feedback": "user_feedback", "user_feedback": "admin_feedback"}
	for attr, other := range channels {
		for _, fb := range []*string{nil, &text} {
			expr, vals, names := feedbackUpdate(attr, fb)("now")

			if len(names) != 2 || names["#fb"] != attr || names["#updated_at"] != "updated_at" {
				t.Fatalf("%s: unexpected names %v", attr, names)
			}
			if strings.Contains(expr, other) {
				t.Fatalf("%s: expression references %s: %s", attr, other, expr)
			}
			for k := range vals {
				if k != ":fb" && k != ":updated_at" {
					t.Fatalf("%s: unexpected value key %s", attr, k)
				}
			}
			if fb == nil {
				_, removed, _ := strings.Cut(expr, "REMOVE ")
				if removed != "#fb" {
					t.Fatalf("%s: expected REMOVE #fb only, got %q", attr, expr)
				}
			} else if strings.Contains(expr, "REMOVE") {
				t.Fatalf("%s: unexpected REMOVE in %q", attr, expr)
			}
		}
	}
}

func TestMergeNames(t *testing.T) {
	got := mergeNames(map[string]string{"#a": "a"}, map[string]string{"#id": "id"})
	if len(got) != 2 || got["#a"] != "a" || got["#id"] != "id" {
		t.Fatalf("unexpected merge: %v", got)
	}
	if got := mergeNames(nil, map[string]string{"#id": "id"}); got["#id"] != "id" {
		t.Fatalf("unexpected merge: %v", got)
	}
}
