// cmd/adduser/main.go
// Creates or updates a user in the database without going through the
// signup endpoint.
//
// Usage:
//
//	go run ./cmd/adduser -username root -name "Admin" -password sekret
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bloglist-backend/config"
	bundb "bloglist-backend/db"
	"bloglist-backend/models"
)

func main() {
	username := flag.String("username", "", "username (required, min length 3)")
	name := flag.String("name", "", "display name")
	password := flag.String("password", "", "plain-text password (required, min length 3)")
	flag.Parse()

	if len(*username) < 3 || len(*password) < 3 {
		log.Fatal("both -username and -password are required, 3 characters or longer")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt:", err)
	}

	cfg := config.Load()
	db := bundb.Setup(cfg)
	defer db.Close()

	if err := bundb.CreateTables(context.Background(), db); err != nil {
		log.Fatal("create tables:", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     *username,
		Name:         *name,
		PasswordHash: string(hash),
		BlogIDs:      []string{},
	}

	_, err = db.NewInsert().Model(user).
		On("CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash, name = EXCLUDED.name").
		Exec(context.Background())
	if err != nil {
		log.Fatal("insert user:", err)
	}

	fmt.Printf("user %q saved\n", *username)
}
