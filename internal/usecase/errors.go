package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	ErrQuoteNotFound       = errors.New("quote not found")
	ErrInvalidQuoteID      = errors.New("invalid quote id")
	ErrInvalidQuoteStatus  = errors.New("invalid quote status")
	ErrInvalidQuoteForm    = errors.New("invalid quote form")
	ErrInvalidAIResult     = errors.New("invalid ai quote result")
	ErrAdminFeedbackNeeded = errors.New("feedback required before a call can be requested")

	ErrQuoteGenerationFailed = errors.New("quote generation failed")
	ErrRoleResolution        = errors.New("unable to verify caller role")
)

// StatusValidationError rejects a status outside the enumerated set and
// carries the accepted values for API consumers.
type StatusValidationError struct {
	Value   string
	Allowed []string
}

func (e *StatusValidationError) Error() string {
	return fmt.Sprintf("invalid quote status %q (allowed: %s)", e.Value, strings.Join(e.Allowed, ", "))
}

func (e *StatusValidationError) Unwrap() error {
	return ErrInvalidQuoteStatus
}

// FormValidationError lists the quote form fields that failed validation.
type FormValidationError struct {
	Fields map[string]string
}

func (e *FormValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+" ("+e.Fields[field]+")")
	}
	return "invalid quote form: " + strings.Join(parts, ", ")
}

func (e *FormValidationError) Unwrap() error {
	return ErrInvalidQuoteForm
}
