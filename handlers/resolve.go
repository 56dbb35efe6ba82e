package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type resolveRequest struct {
	RaceID string `json:"raceID" query:"raceID"`
}

// Resolve scores every market of the race's match. A 409 means the provider
// has no results yet and the call can be retried later.
func (h *Handler) Resolve(c echo.Context) error {
	var req resolveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.RaceID = strings.TrimSpace(req.RaceID)
	if req.RaceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing raceID")
	}

	summary, err := h.resolver.Resolve(c.Request().Context(), req.RaceID)
	if err != nil {
		h.logger.Warn("resolve failed", zap.String("race_id", req.RaceID), zap.Error(err))
		return httpError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
