// cmd/adduser/main.go
// Creates an admin user in the database.
//
// Usage:
//
//	go run ./cmd/adduser -username admin -password testing
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/padraicbc/biathlonpicks/config"
	bundb "github.com/padraicbc/biathlonpicks/db"
	"github.com/padraicbc/biathlonpicks/handlers"
	"github.com/padraicbc/biathlonpicks/models"
	"github.com/padraicbc/biathlonpicks/store"
)

func main() {
	username := flag.String("username", "", "username (required)")
	password := flag.String("password", "", "plain-text password (required)")
	flag.Parse()

	hash, err := handlers.HashPasswordForUser(*username, *password)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	cfg := config.Load()
	db, err := bundb.Setup(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := bundb.CreateTables(ctx, db, zap.NewNop()); err != nil {
		log.Fatal(err)
	}

	user := &models.User{
		Username: *username,
		Password: hash,
	}
	if err := store.New(db, zap.NewNop()).CreateUser(ctx, user); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("user %q saved (id %d)\n", user.Username, user.ID)
}
