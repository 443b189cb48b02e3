package routes

import (
	"webara_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes  = "/quotes"
	PathProfile = "/profile"
	PathAdmin   = "/admin"
)

func addPublicQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	rg.POST(PathQuotes+"/generate", h.Generate)
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.Propose)
		quotes.GET("", h.ListMine)
		quotes.GET("/:quote_id", h.GetByID)
		quotes.PATCH("/:quote_id/feedback", h.SetUserFeedback)
		quotes.POST("/:quote_id/request-call", h.RequestCall)
	}
}

func addProfileRoutes(rg *gin.RouterGroup, h *handlers.ProfileHandler) {
	rg.GET(PathProfile+"/data", h.GetProfileData)
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.GET("/overview", h.Overview)
		admin.PATCH("/quotes/:quote_id/feedback", h.SetAdminFeedback)
		admin.PATCH("/quotes/:quote_id/status", h.SetStatus)
		admin.GET("/quotes/:quote_id/activities", h.ListActivities)
	}
}
