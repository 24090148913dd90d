package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/school-erp/internal/domain/entity"
	repo "github.com/oksasatya/school-erp/internal/domain/repository"
	"github.com/oksasatya/school-erp/pkg/helpers"
)

const loginSuccessMessage = "Login successful"

// PasswordHasher is satisfied by *helpers.PasswordHasher.
type PasswordHasher interface {
	HashPassword(plain string) (string, error)
	CompareHashAndPassword(hash, plain string) bool
	// CompareDummy does the work of a real comparison and always reports false.
	CompareDummy(plain string) bool
}

// CredentialService owns password hashing on write and the login decision.
type CredentialService struct {
	Repo   repo.UserRepository
	Hasher PasswordHasher
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewCredentialService(repo repo.UserRepository, hasher PasswordHasher, jwt *helpers.JWTManager, logger *logrus.Logger) *CredentialService {
	return &CredentialService{Repo: repo, Hasher: hasher, JWT: jwt, Logger: logger}
}

type LoginResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// HashSecret returns a salted bcrypt hash of plain. Any failure, including an
// empty secret, is reported as ErrHashingFailure.
func (s *CredentialService) HashSecret(_ context.Context, plain string) (string, error) {
	if plain == "" {
		return "", ErrHashingFailure
	}
	hash, err := s.Hasher.HashPassword(plain)
	if err != nil {
		helpers.LogError(s.Logger, "hash password failed", err, nil)
		return "", ErrHashingFailure
	}
	return hash, nil
}

// Authenticate checks username/password against the directory and issues a token.
// Unknown users still pay for a full bcrypt comparison.
func (s *CredentialService) Authenticate(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := s.lookup(ctx, username)
	if err != nil {
		return nil, err
	}

	var ok bool
	if u == nil {
		ok = s.Hasher.CompareDummy(password)
	} else {
		ok = s.Hasher.CompareHashAndPassword(u.Password, password)
	}
	if u == nil || !ok {
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.JWT.GenerateToken(u.ID, u.Username)
	if err != nil {
		helpers.LogError(s.Logger, "sign token failed", err, logrus.Fields{"user_id": u.ID})
		return nil, ErrTokenSigning
	}
	return &LoginResult{Message: loginSuccessMessage, Token: token}, nil
}

// lookup returns (nil, nil) when the username is unknown.
func (s *CredentialService) lookup(ctx context.Context, username string) (*entity.User, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return nil, nil
	case err != nil:
		helpers.LogError(s.Logger, "user lookup failed", err, logrus.Fields{"username": username})
		return nil, ErrDirectoryUnavailable
	}
	return u, nil
}
