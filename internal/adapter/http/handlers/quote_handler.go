package handlers

import (
	"net/http"

	request "webara_portal/internal/adapter/http/dto/request"
	response "webara_portal/internal/adapter/http/dto/response"
	"webara_portal/internal/adapter/http/middleware"
	"webara_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

const paramQuoteID = "quote_id"

// QuoteHandler serves the owner side of the quote lifecycle plus the public
// AI quote generator.
type QuoteHandler struct {
	quotes     usecase.IQuoteUseCase
	generation usecase.IQuoteGenerationUseCase
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, generation usecase.IQuoteGenerationUseCase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, generation: generation}
}

// Generate runs the AI quote flow for the public request form. Nothing is stored.
func (h *QuoteHandler) Generate(c *gin.Context) {
	var payload request.QuoteFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	generated, err := h.generation.Generate(c.Request.Context(), payload.ToForm())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, generated)
}

func (h *QuoteHandler) Propose(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if !caller.IsAuthenticated() {
		respondError(c, usecase.ErrUnauthenticated)
		return
	}

	var payload request.ProposeQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	quote, err := h.quotes.Propose(c.Request.Context(), caller, payload.FormValues.ToForm(), payload.AIResult)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.QuoteEnvelope{Quote: response.FromQuote(quote)})
}

func (h *QuoteHandler) ListMine(c *gin.Context) {
	quotes, err := h.quotes.ListMine(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.QuoteListResponse{Quotes: response.FromQuotes(quotes)})
}

func (h *QuoteHandler) GetByID(c *gin.Context) {
	quote, err := h.quotes.GetByID(c.Request.Context(), middleware.CallerFrom(c), c.Param(paramQuoteID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.QuoteEnvelope{Quote: response.FromQuote(quote)})
}

// SetUserFeedback sets or clears the owner's reply to a quote. A malformed
// body is reported only to the owner; anyone else gets their tier error.
func (h *QuoteHandler) SetUserFeedback(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	id := c.Param(paramQuoteID)

	var payload request.FeedbackRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		if authErr := h.quotes.AuthorizeOwner(c.Request.Context(), caller, id); authErr != nil {
			respondError(c, authErr)
			return
		}
		respondInvalidPayload(c)
		return
	}

	quote, err := h.quotes.SetUserFeedback(c.Request.Context(), caller, id, payload.Feedback)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.QuoteEnvelope{Quote: response.FromQuote(quote)})
}

// RequestCall moves an answered quote to call_requested. Repeats answer 200
// with the stored quote and a different message.
func (h *QuoteHandler) RequestCall(c *gin.Context) {
	result, err := h.quotes.RequestCall(c.Request.Context(), middleware.CallerFrom(c), c.Param(paramQuoteID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.RequestCallResponse{
		Quote:   response.FromQuote(result.Quote),
		Message: result.Message,
	})
}
