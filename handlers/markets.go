package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/models"
)

type marketTypeView struct {
	ID              int                   `json:"id"`
	Label           string                `json:"label"`
	IsTeam          bool                  `json:"isTeam"`
	Input           models.InputKind      `json:"input"`
	NeedsRoster     bool                  `json:"needsRoster,omitempty"`
	NeedsDiscipline bool                  `json:"needsDiscipline,omitempty"`
	Analysis        biathlon.AnalysisType `json:"analysis,omitempty"`
	Group           string                `json:"group,omitempty"`
}

// MarketTypes lists the catalog. ?isTeam=true|false narrows it to one kind
// of race.
func (h *Handler) MarketTypes(c echo.Context) error {
	var team *bool
	if raw := c.QueryParam("isTeam"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid isTeam param")
		}
		team = &v
	}

	out := make([]marketTypeView, 0, h.catalog.Len())
	for _, d := range h.catalog.All() {
		if team != nil && d.IsTeam != *team {
			continue
		}
		view := marketTypeView{
			ID:              d.ID,
			Label:           d.Label,
			IsTeam:          d.IsTeam,
			Input:           d.Input,
			NeedsRoster:     d.NeedsRoster,
			NeedsDiscipline: d.NeedsDiscipline,
			Analysis:        d.Analysis,
		}
		if g, ok := d.Group(); ok {
			view.Group = string(g)
		}
		out = append(out, view)
	}
	return c.JSON(http.StatusOK, out)
}

type createMarketRequest struct {
	MatchID      int64  `json:"matchID"`
	MarketTypeID int    `json:"marketTypeID"`
	Name         string `json:"name"`
}

// CreateMarket adds a market of a catalog type to a match. The input kind is
// taken from the catalog, never from the request.
func (h *Handler) CreateMarket(c echo.Context) error {
	var req createMarketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	def, ok := h.catalog.Lookup(req.MarketTypeID)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown marketTypeID "+strconv.Itoa(req.MarketTypeID))
	}

	ctx := c.Request().Context()
	match, err := h.store.MatchByID(ctx, req.MatchID)
	if err != nil {
		return httpError(err)
	}
	if def.IsTeam != match.IsTeam {
		return echo.NewHTTPError(http.StatusBadRequest, "market type does not fit the match")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = def.Label
	}
	m := &models.Market{
		MatchID:      match.ID,
		MarketTypeID: def.ID,
		Name:         name,
		InputKind:    def.Input,
	}
	if err := h.store.CreateMarket(ctx, m); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, m)
}

// MatchMarkets returns the markets of a match with their results once resolved.
func (h *Handler) MatchMarkets(c echo.Context) error {
	matchID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid match id")
	}
	ctx := c.Request().Context()
	match, err := h.store.MatchByID(ctx, matchID)
	if err != nil {
		return httpError(err)
	}
	markets, err := h.store.MarketsByMatch(ctx, match.ID)
	if err != nil {
		return httpError(err)
	}
	if markets == nil {
		markets = []models.Market{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"match":   match,
		"markets": markets,
	})
}
