package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Category groups the races of one provider event (a World Cup stop, a championship).
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:cat"`

	ID              int64     `bun:"id,pk,autoincrement" json:"id"`
	Name            string    `bun:"name,notnull" json:"name"`
	Location        string    `bun:"location" json:"location"`
	BiathlonEventID string    `bun:"biathlon_event_id,notnull,unique" json:"biathlonEventID"`
	StartTime       time.Time `bun:"start_time,notnull" json:"startTime"`
	IsActive        bool      `bun:"is_active,notnull,default:true" json:"isActive"`
}
