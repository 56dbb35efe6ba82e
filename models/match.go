package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Match is one race players predict. BiathlonRaceID ties it to the provider.
type Match struct {
	bun.BaseModel `bun:"table:matches,alias:mt"`

	ID             int64     `bun:"id,pk,autoincrement" json:"id"`
	CategoryID     int64     `bun:"category_id,notnull" json:"categoryID"`
	Name           string    `bun:"name,notnull" json:"name"`
	BiathlonRaceID string    `bun:"biathlon_race_id,notnull,unique" json:"biathlonRaceID"`
	Discipline     string    `bun:"discipline,notnull" json:"discipline"`
	Gender         string    `bun:"gender,notnull" json:"gender"`
	IsTeam         bool      `bun:"is_team,notnull,default:false" json:"isTeam"`
	StartTime      time.Time `bun:"start_time,notnull" json:"startTime"`

	Category *Category `bun:"rel:belongs-to,join:category_id=id" json:"-"`
}

// Started reports whether the race has begun at the given instant.
func (m *Match) Started(now time.Time) bool {
	return !now.Before(m.StartTime)
}
