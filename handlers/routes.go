package handlers

import (
	"github.com/labstack/echo/v4"

	mw "github.com/padraicbc/biathlonpicks/middleware"
)

// Register mounts the API on e. Everything except sign-in needs a valid JWT.
func (h *Handler) Register(e *echo.Echo) {
	// Public
	e.POST("/api/signin", h.Signin)

	// Protected – require valid JWT in Authorization header
	api := e.Group("/api", mw.JWT(h.JWTKey))
	api.POST("/results/resolve", h.Resolve)
	api.POST("/import/schedule", h.ImportSchedule)
	api.POST("/import/competitors", h.ImportCompetitors)
	api.GET("/market-types", h.MarketTypes)
	api.POST("/markets", h.CreateMarket)
	api.GET("/matches/:id/markets", h.MatchMarkets)
	api.POST("/selections", h.SubmitSelections)
}
