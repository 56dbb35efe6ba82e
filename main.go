package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/config"
	"github.com/padraicbc/biathlonpicks/db"
	"github.com/padraicbc/biathlonpicks/handlers"
	"github.com/padraicbc/biathlonpicks/importer"
	applog "github.com/padraicbc/biathlonpicks/logger"
	"github.com/padraicbc/biathlonpicks/markettype"
	"github.com/padraicbc/biathlonpicks/resolution"
	"github.com/padraicbc/biathlonpicks/selection"
	"github.com/padraicbc/biathlonpicks/store"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New("biathlonpicks", cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx := context.Background()
	bdb, err := db.Setup(ctx, cfg)
	if err != nil {
		logger.Fatal("database setup failed", zap.Error(err))
	}
	defer bdb.Close()

	if err := db.CreateTables(ctx, bdb, logger); err != nil {
		logger.Fatal("create tables failed", zap.Error(err))
	}

	st := store.New(bdb, logger)
	catalog := markettype.Default()
	client := biathlon.NewClient(cfg.BiathlonAPIURL, cfg.BiathlonTimeout, cfg.BiathlonRPS, logger)
	limits := importer.Limits{
		Events:       cfg.ImportEventConcurrency,
		Competitions: cfg.ImportCompetitionConcurrency,
		Competitors:  cfg.ImportCompetitorConcurrency,
	}

	h := handlers.New(handlers.Deps{
		Store:     st,
		Resolver:  resolution.New(st, client, catalog, logger),
		Submitter: selection.NewGuard(st, logger),
		Importer:  importer.New(client, st, catalog, limits, logger),
		Catalog:   catalog,
		Logger:    logger,
	}, cfg.JWTKey())

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"*", "Authorization"},
		AllowCredentials: true,
	}))

	h.Register(e)

	if cfg.Debug || len(cfg.TLSDomains) == 0 {
		logger.Info("starting server", zap.Bool("debug", cfg.Debug), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  15 * time.Second,
	}

	logger.Info("starting tls server", zap.Strings("domains", cfg.TLSDomains))
	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}
