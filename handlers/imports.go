package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type seasonRequest struct {
	SeasonID string `json:"seasonID" query:"seasonID"`
}

func bindSeason(c echo.Context) (string, error) {
	var req seasonRequest
	if err := c.Bind(&req); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	season := strings.TrimSpace(req.SeasonID)
	if season == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing seasonID")
	}
	return season, nil
}

// ImportSchedule loads the season's senior races and seeds their podium markets.
func (h *Handler) ImportSchedule(c echo.Context) error {
	season, err := bindSeason(c)
	if err != nil {
		return err
	}
	report, err := h.importer.ImportSchedule(c.Request().Context(), season)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// ImportCompetitors refreshes the athlete roster for the season.
func (h *Handler) ImportCompetitors(c echo.Context) error {
	season, err := bindSeason(c)
	if err != nil {
		return err
	}
	report, err := h.importer.ImportCompetitors(c.Request().Context(), season)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}
