package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/resolution"
	"github.com/padraicbc/biathlonpicks/selection"
	"github.com/padraicbc/biathlonpicks/store"
)

// httpError maps service errors onto status codes.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, resolution.ErrNoResults):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, selection.ErrEmptySubmission),
		errors.Is(err, selection.ErrConflictingSelections),
		errors.Is(err, selection.ErrMarketNotInMatch),
		errors.Is(err, selection.ErrMatchStarted),
		errors.Is(err, selection.ErrDuplicateMarket),
		errors.Is(err, selection.ErrEmptyAnswer):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, biathlon.ErrUnexpectedStatus):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
