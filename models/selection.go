package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// SelectionKey identifies a selection: one answer per profile per market.
type SelectionKey struct {
	MarketID  int64
	ProfileID uuid.UUID
}

// Selection is a player's answer to a market. Points stays nil until the
// market is resolved.
type Selection struct {
	bun.BaseModel `bun:"table:selections,alias:sel"`

	MarketID  int64     `bun:"market_id,pk" json:"marketID"`
	ProfileID uuid.UUID `bun:"profile_id,pk,type:uuid" json:"profileID"`
	ResultKey string    `bun:"result_key,notnull" json:"resultKey"`
	Type      InputKind `bun:"type,notnull" json:"type"`
	Points    *int      `bun:"points" json:"points"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`
}

func (s Selection) Key() SelectionKey {
	return SelectionKey{MarketID: s.MarketID, ProfileID: s.ProfileID}
}
