package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/padraicbc/biathlonpicks/importer"
	"github.com/padraicbc/biathlonpicks/markettype"
	"github.com/padraicbc/biathlonpicks/models"
	"github.com/padraicbc/biathlonpicks/resolution"
)

// Store is the persistence the handlers read and write directly.
// *store.Store satisfies it.
type Store interface {
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	MatchByID(ctx context.Context, matchID int64) (*models.Match, error)
	MarketsByMatch(ctx context.Context, matchID int64) ([]models.Market, error)
	CreateMarket(ctx context.Context, m *models.Market) error
}

type Resolver interface {
	Resolve(ctx context.Context, raceID string) (*resolution.Summary, error)
}

type Submitter interface {
	Submit(ctx context.Context, matchID int64, picks []models.Selection) ([]models.Selection, error)
}

type Importer interface {
	ImportSchedule(ctx context.Context, seasonID string) (*importer.ScheduleReport, error)
	ImportCompetitors(ctx context.Context, seasonID string) (*importer.RosterReport, error)
}

// Deps groups the services the handlers delegate to.
type Deps struct {
	Store     Store
	Resolver  Resolver
	Submitter Submitter
	Importer  Importer
	Catalog   *markettype.Catalog
	Logger    *zap.Logger
}

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	store     Store
	resolver  Resolver
	submitter Submitter
	importer  Importer
	catalog   *markettype.Catalog
	logger    *zap.Logger
	now       func() time.Time
	JWTKey    []byte
}

// New creates a Handler with the given services and JWT signing key.
func New(deps Deps, jwtKey []byte) *Handler {
	h := &Handler{
		store:     deps.Store,
		resolver:  deps.Resolver,
		submitter: deps.Submitter,
		importer:  deps.Importer,
		catalog:   deps.Catalog,
		logger:    deps.Logger,
		now:       time.Now,
		JWTKey:    jwtKey,
	}
	if h.catalog == nil {
		h.catalog = markettype.Default()
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	return h
}
