package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/school-erp/config"
	"github.com/oksasatya/school-erp/internal/application"
	"github.com/oksasatya/school-erp/internal/domain/repository"
	"github.com/oksasatya/school-erp/pkg/helpers"
)

// Container holds the constructed components shared by the router modules.
// PGPool and Redis are nil when the corresponding backend is not configured.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	PGPool *pgxpool.Pool
	Redis  *redis.Client

	JWT    *helpers.JWTManager
	Hasher *helpers.PasswordHasher
	Users  repository.UserRepository

	Credentials *application.CredentialService
	UserService *application.UserService
}

// New wires the application services on top of the given infrastructure.
func New(cfg *config.Config, logger *logrus.Logger, pool *pgxpool.Pool, rdb *redis.Client,
	users repository.UserRepository, hasher *helpers.PasswordHasher, jwt *helpers.JWTManager) *Container {
	creds := application.NewCredentialService(users, hasher, jwt, logger)
	return &Container{
		Config:      cfg,
		Logger:      logger,
		PGPool:      pool,
		Redis:       rdb,
		JWT:         jwt,
		Hasher:      hasher,
		Users:       users,
		Credentials: creds,
		UserService: application.NewUserService(users, creds, logger),
	}
}
