package biathlon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public sport API root.
const DefaultBaseURL = "https://www.biathlonresults.com/modules/sportapi/api"

// ErrUnexpectedStatus is returned when the provider answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("biathlon: unexpected response status")

// Client is a rate-limited reader of the sport API. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewClient builds a Client. rps <= 0 disables throttling.
func NewClient(baseURL string, timeout time.Duration, rps float64, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := rate.Inf
	burst := 1
	if rps > 0 {
		limit = rate.Limit(rps)
		burst = max(1, int(rps))
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

// Events lists the events of a season, e.g. "2425".
func (c *Client) Events(ctx context.Context, seasonID string) ([]Event, error) {
	var events []Event
	err := c.get(ctx, "Events", url.Values{"SeasonId": {seasonID}}, &events)
	return events, err
}

// Competitions lists the races of an event.
func (c *Client) Competitions(ctx context.Context, eventID string) ([]Competition, error) {
	var competitions []Competition
	err := c.get(ctx, "Competitions", url.Values{"EventId": {eventID}}, &competitions)
	return competitions, err
}

// Results returns the official result list of a race.
func (c *Client) Results(ctx context.Context, raceID string) (*ResultResponse, error) {
	var res ResultResponse
	if err := c.get(ctx, "Results", url.Values{"RaceId": {raceID}}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AnalyticResults returns the race ranked by an analysis type instead of finish time.
func (c *Client) AnalyticResults(ctx context.Context, raceID string, analysis AnalysisType) (*ResultResponse, error) {
	var res ResultResponse
	q := url.Values{"RaceId": {raceID}, "TypeId": {string(analysis)}}
	if err := c.get(ctx, "AnalyticResults", q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Competitor returns the biography of a single athlete.
func (c *Client) Competitor(ctx context.Context, ibuID string) (*CompetitorBio, error) {
	var bio CompetitorBio
	if err := c.get(ctx, "CISBios", url.Values{"IBUId": {ibuID}}, &bio); err != nil {
		return nil, err
	}
	return &bio, nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	target := c.baseURL + "/" + endpoint + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "biathlonpicks/1.0")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("provider request",
		zap.String("endpoint", endpoint),
		zap.String("query", query.Encode()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s returned %d: %s", ErrUnexpectedStatus, endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}
