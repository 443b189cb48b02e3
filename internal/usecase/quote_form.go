package usecase

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"webara_portal/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

const (
	maxTitleLength = 80
	notSpecified   = "Not specified"
)

// QuoteForm is what a visitor types into the quote request form.
type QuoteForm struct {
	Name                     string `json:"name" validate:"required,min=2"`
	Email                    string `json:"email" validate:"required,email"`
	WebsiteNeeds             string `json:"websiteNeeds" validate:"required,min=10"`
	CollaborationPreferences string `json:"collaborationPreferences"`
	Budget                   string `json:"budget"`
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateQuoteForm(f QuoteForm) error {
	err := formValidator.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidQuoteForm, err)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields[fe.Field()] = rule
	}
	return &FormValidationError{Fields: fields}
}

func orNotSpecified(v string) string {
	if strings.TrimSpace(v) == "" {
		return notSpecified
	}
	return v
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

var sentenceBoundary = regexp.MustCompile(`[.!?]`)

// deriveProjectTitle prefers the AI title, then the first sentence of the
// requirements, then a name-based fallback. The result is at most 80 runes.
func deriveProjectTitle(aiTitle string, form QuoteForm) string {
	if t := strings.TrimSpace(aiTitle); t != "" {
		return truncateRunes(t, maxTitleLength)
	}
	if needs := strings.TrimSpace(form.WebsiteNeeds); needs != "" {
		first := strings.TrimSpace(sentenceBoundary.Split(needs, 2)[0])
		if first != "" {
			return truncateRunes(first, maxTitleLength)
		}
	}
	return truncateRunes("Website project for "+form.Name, maxTitleLength)
}

var budgetNumber = regexp.MustCompile(`\d+(\.\d+)?`)

// parseBudgetAverage averages every number found in a budget string,
// e.g. "$3,000 - $5,000" -> 4000. Returns nil when no number is present.
func parseBudgetAverage(budget string) *float64 {
	if strings.TrimSpace(budget) == "" {
		return nil
	}
	matches := budgetNumber.FindAllString(strings.ReplaceAll(budget, ",", ""), -1)
	var sum float64
	var n int
	for _, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return nil
	}
	avg := math.Round(sum/float64(n)*100) / 100
	return &avg
}

var currencyHints = []struct {
	code    string
	needles []string
}{
	{code: "EUR", needles: []string{"eur", "€"}},
	{code: "GBP", needles: []string{"gbp", "£"}},
	{code: "AUD", needles: []string{"aud"}},
	{code: "CAD", needles: []string{"cad"}},
	{code: "INR", needles: []string{"inr", "₹"}},
	{code: "USD", needles: []string{"usd", "$"}},
}

func inferCurrencyFromText(text string) string {
	lower := strings.ToLower(text)
	if lower == "" {
		return ""
	}
	for _, hint := range currencyHints {
		for _, needle := range hint.needles {
			if strings.Contains(lower, needle) {
				return hint.code
			}
		}
	}
	return ""
}

func resolveEstimatedCost(aiEstimate *float64, budget string) *float64 {
	if aiEstimate != nil && !math.IsNaN(*aiEstimate) && !math.IsInf(*aiEstimate, 0) {
		v := *aiEstimate
		return &v
	}
	return parseBudgetAverage(budget)
}

func resolveCurrency(aiCurrency, budget string) string {
	if c := strings.TrimSpace(aiCurrency); c != "" {
		return strings.ToUpper(c)
	}
	if c := inferCurrencyFromText(budget); c != "" {
		return c
	}
	return entities.DefaultCurrency
}

func sanitizeSuggestions(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
