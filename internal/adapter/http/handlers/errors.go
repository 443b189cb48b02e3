package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"webara_portal/internal/usecase"
	"webara_portal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

func mapQuoteError(err error) *pkg.AppError {
	var statusErr *usecase.StatusValidationError
	var formErr *usecase.FormValidationError

	switch {
	case errors.As(err, &statusErr):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid quote status", http.StatusBadRequest).
			WithDetail("allowed", statusErr.Allowed)
	case errors.As(err, &formErr):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid quote form", http.StatusBadRequest).
			WithDetail("fields", formErr.Fields)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You do not have permission to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteForm), errors.Is(err, usecase.ErrInvalidAIResult):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAdminFeedbackNeeded):
		return pkg.NewDomainErrorSimple("ADMIN_FEEDBACK_REQUIRED", "A call can be requested once our team has reviewed your quote", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteGenerationFailed):
		return pkg.NewDomainError("QUOTE_GENERATION_FAILED", "We could not generate a quote right now, please try again", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrRoleResolution):
		return pkg.NewDomainError("ROLE_RESOLUTION_FAILED", "Unable to verify permissions, please retry later", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred, please retry later", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapQuoteError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[quote][handler] request failed path=%s code=%s err=%v", c.FullPath(), appErr.Code, err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindOptionalJSON accepts an empty body as the zero value of out.
func bindOptionalJSON(c *gin.Context, out any) error {
	if err := c.ShouldBindJSON(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func respondInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}
