package store

import (
	"context"
	"fmt"

	"github.com/padraicbc/biathlonpicks/models"
)

func (s *Store) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	u := new(models.User)
	if err := s.db.NewSelect().Model(u).Where("username = ?", username).Scan(ctx); err != nil {
		return nil, notFound(err, "user "+username)
	}
	return u, nil
}

// CreateUser inserts an admin account, replacing the password of an existing
// one. The password must already be hashed.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	_, err := s.db.NewInsert().Model(u).
		On("CONFLICT (username) DO UPDATE SET password = EXCLUDED.password").
		Returning("id").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save user %s: %w", u.Username, err)
	}
	return nil
}
