package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/school-erp/config"
	"github.com/oksasatya/school-erp/internal/application"
	pginfra "github.com/oksasatya/school-erp/internal/infrastructure/postgres"
	"github.com/oksasatya/school-erp/pkg/helpers"
)

// seed creates the first administrator account through the user service so
// the configured hash policy applies. Re-running with an existing username is a no-op.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	username := os.Getenv("SEED_USERNAME")
	password := os.Getenv("SEED_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("SEED_USERNAME and SEED_PASSWORD are required")
	}

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	hasher, err := helpers.NewPasswordHasher(cfg.HashCost, cfg.HashConcurrency)
	if err != nil {
		log.Fatalf("failed to init password hasher: %v", err)
	}
	repo := pginfra.NewUserRepository(pool)
	// seeding never issues tokens, so the signing secret may be empty here
	creds := application.NewCredentialService(repo, hasher, helpers.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL), logger)
	users := application.NewUserService(repo, creds, logger)

	u, err := users.Create(ctx, application.CreateUserInput{
		Username:  username,
		Password:  password,
		Email:     os.Getenv("SEED_EMAIL"),
		FirstName: "Administrator",
		IsActive:  true,
	})
	switch {
	case errors.Is(err, application.ErrUsernameTaken):
		logger.WithField("username", username).Info("seed user already exists")
	case err != nil:
		log.Fatalf("failed to seed user: %v", err)
	default:
		logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("seeded user")
	}
}
