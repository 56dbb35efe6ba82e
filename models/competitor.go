package models

import (
	"github.com/uptrace/bun"

	"github.com/padraicbc/biathlonpicks/biathlon"
)

// Competitor is an athlete or national team from the provider roster.
// ExtraData keeps the provider bio, including the equipment list.
type Competitor struct {
	bun.BaseModel `bun:"table:competitors,alias:cmp"`

	IBUID     string                  `bun:"ibu_id,pk" json:"ibuID"`
	Name      string                  `bun:"name,notnull" json:"name"`
	Nat       string                  `bun:"nat" json:"nat"`
	Gender    string                  `bun:"gender" json:"gender"`
	IsTeam    bool                    `bun:"is_team,notnull,default:false" json:"isTeam"`
	ExtraData *biathlon.CompetitorBio `bun:"extra_data,type:jsonb" json:"extraData,omitempty"`
}

// SkiBrand returns the registered ski manufacturer, if the bio lists one.
func (c *Competitor) SkiBrand() (string, bool) {
	return c.ExtraData.EquipmentValue(biathlon.EquipmentSkis)
}
