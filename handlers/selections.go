package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/padraicbc/biathlonpicks/models"
)

// jsonText accepts string, number, or null JSON values and normalizes to string.
// Number markets are often posted as bare numbers.
type jsonText string

func (t *jsonText) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = jsonText(s)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err == nil {
		*t = jsonText(n.String())
		return nil
	}

	return fmt.Errorf("expected string, number, or null")
}

type pick struct {
	MarketID  int64     `json:"marketID"`
	ProfileID uuid.UUID `json:"profileID"`
	ResultKey jsonText  `json:"resultKey"`
}

type submitRequest struct {
	MatchID    int64  `json:"matchID"`
	Selections []pick `json:"selections"`
}

// SubmitSelections stores a batch of picks for one match. The batch is
// accepted or rejected as a whole.
func (h *Handler) SubmitSelections(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	picks := make([]models.Selection, 0, len(req.Selections))
	for _, p := range req.Selections {
		if p.ProfileID == uuid.Nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("missing profileID for market %d", p.MarketID))
		}
		picks = append(picks, models.Selection{
			MarketID:  p.MarketID,
			ProfileID: p.ProfileID,
			ResultKey: string(p.ResultKey),
		})
	}

	stored, err := h.submitter.Submit(c.Request().Context(), req.MatchID, picks)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stored)
}
