package handlers

import (
	"net/http"

	response "webara_portal/internal/adapter/http/dto/response"
	"webara_portal/internal/adapter/http/middleware"
	"webara_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

func (h *ProfileHandler) GetProfileData(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	data, err := h.usecase.GetProfileData(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromProfileData(caller, data))
}
