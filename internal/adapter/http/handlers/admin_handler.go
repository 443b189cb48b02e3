package handlers

import (
	"net/http"

	request "webara_portal/internal/adapter/http/dto/request"
	response "webara_portal/internal/adapter/http/dto/response"
	"webara_portal/internal/adapter/http/middleware"
	"webara_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin dashboard. Write endpoints check the admin
// tier before reading the body; the use case checks it again.
type AdminHandler struct {
	quotes usecase.IQuoteUseCase
}

func NewAdminHandler(quotes usecase.IQuoteUseCase) *AdminHandler {
	return &AdminHandler{quotes: quotes}
}

func (h *AdminHandler) Overview(c *gin.Context) {
	overview, err := h.quotes.ListAllForAdmin(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromAdminOverview(overview))
}

func (h *AdminHandler) SetAdminFeedback(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if err := usecase.RequireAdmin(caller); err != nil {
		respondError(c, err)
		return
	}

	var payload request.FeedbackRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	quote, err := h.quotes.SetAdminFeedback(c.Request.Context(), caller, c.Param(paramQuoteID), payload.Feedback)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.QuoteEnvelope{Quote: response.FromQuote(quote)})
}

// SetStatus passes a missing status through as "" so it is rejected with the
// allowed set. The tier is checked before the body is read.
func (h *AdminHandler) SetStatus(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if err := usecase.RequireAdmin(caller); err != nil {
		respondError(c, err)
		return
	}

	var payload request.StatusRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	status := ""
	if payload.Status != nil {
		status = *payload.Status
	}

	quote, err := h.quotes.SetStatus(c.Request.Context(), caller, c.Param(paramQuoteID), status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.QuoteEnvelope{Quote: response.FromQuote(quote)})
}

func (h *AdminHandler) ListActivities(c *gin.Context) {
	items, err := h.quotes.ListActivities(c.Request.Context(), middleware.CallerFrom(c), c.Param(paramQuoteID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromActivities(items))
}
