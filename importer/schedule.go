package importer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/markettype"
	"github.com/padraicbc/biathlonpicks/models"
)

// ScheduleReport summarises a schedule import.
type ScheduleReport struct {
	Categories int `json:"categories"`
	Matches    int `json:"matches"`
	Markets    int `json:"markets"`
	Skipped    int `json:"skipped"`
}

// ImportSchedule creates a category per senior event of the season and a
// match per senior race, seeding each match with its podium markets. It is
// safe to re-run: everything is keyed by provider ids.
func (im *Importer) ImportSchedule(ctx context.Context, seasonID string) (*ScheduleReport, error) {
	events, err := im.provider.Events(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list events of season %s: %w", seasonID, err)
	}

	report := &ScheduleReport{}
	for _, ev := range events {
		if ev.IsYouthOrJunior() {
			continue
		}
		log := im.logger.With(zap.String("event_id", ev.EventID))

		start, err := parseTime(ev.StartDate)
		if err != nil {
			log.Warn("skipping event with bad start date", zap.Error(err))
			report.Skipped++
			continue
		}
		category := &models.Category{
			Name:            ev.Description,
			Location:        ev.Organizer,
			BiathlonEventID: ev.EventID,
			StartTime:       start,
			IsActive:        true,
		}
		if err := im.store.UpsertCategory(ctx, category); err != nil {
			return report, err
		}
		report.Categories++

		competitions, err := im.provider.Competitions(ctx, ev.EventID)
		if err != nil {
			return report, fmt.Errorf("list competitions of %s: %w", ev.EventID, err)
		}
		for _, comp := range competitions {
			created, err := im.importMatch(ctx, category.ID, comp)
			if err != nil {
				return report, err
			}
			if created < 0 {
				report.Skipped++
				continue
			}
			report.Matches++
			report.Markets += created
		}
	}

	im.logger.Info("schedule imported",
		zap.String("season", seasonID),
		zap.Int("categories", report.Categories),
		zap.Int("matches", report.Matches),
		zap.Int("markets", report.Markets),
	)
	return report, nil
}

// importMatch returns the number of markets created, or -1 if the race was
// skipped.
func (im *Importer) importMatch(ctx context.Context, categoryID int64, comp biathlon.Competition) (int, error) {
	g, ok := gender(comp.CatID)
	if !ok {
		return -1, nil
	}
	start, err := parseTime(comp.StartTime)
	if err != nil {
		im.logger.Warn("skipping race with bad start time", zap.String("race_id", comp.RaceID), zap.Error(err))
		return -1, nil
	}

	isTeam := biathlon.IsTeamDiscipline(comp.DisciplineID)
	match := &models.Match{
		CategoryID:     categoryID,
		Name:           comp.ShortDescription,
		BiathlonRaceID: comp.RaceID,
		Discipline:     comp.DisciplineID,
		Gender:         g,
		IsTeam:         isTeam,
		StartTime:      start,
	}
	if err := im.store.UpsertMatch(ctx, match); err != nil {
		return 0, err
	}

	created, err := im.store.EnsureMarkets(ctx, match.ID, im.defaultMarkets(isTeam))
	if err != nil {
		return 0, fmt.Errorf("seed markets of %s: %w", comp.RaceID, err)
	}
	return created, nil
}

func (im *Importer) defaultMarkets(isTeam bool) []models.Market {
	defaults := markettype.DefaultMarkets(isTeam)
	out := make([]models.Market, 0, len(defaults))
	for _, d := range defaults {
		def, ok := im.catalog.Lookup(d.MarketTypeID)
		if !ok {
			continue
		}
		out = append(out, models.Market{
			MarketTypeID: def.ID,
			Name:         d.Name,
			InputKind:    def.Input,
		})
	}
	return out
}
