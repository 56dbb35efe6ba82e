package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User is an admin API account with a bcrypt-hashed password. Players are
// identified by profile ids issued elsewhere and never sign in here.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        int       `bun:"id,pk,autoincrement" json:"id"`
	Username  string    `bun:"username,notnull,unique" json:"username"`
	Password  string    `bun:"password,notnull" json:"-"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}
