package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/school-erp/internal/domain/entity"
	repo "github.com/oksasatya/school-erp/internal/domain/repository"
	"github.com/oksasatya/school-erp/pkg/helpers"
)

// UserService is the user directory's write path. Every password that reaches
// storage goes through the CredentialService first.
type UserService struct {
	Repo        repo.UserRepository
	Credentials *CredentialService
	Logger      *logrus.Logger
}

func NewUserService(repo repo.UserRepository, creds *CredentialService, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Credentials: creds, Logger: logger}
}

type CreateUserInput struct {
	Username   string
	Password   string
	ProfilePic string
	Email      string
	FirstName  string
	LastName   string
	MobileNo   string
	Address    string
	IsActive   bool
}

// UpdateUserInput is a partial update: nil fields keep their stored value.
// An empty Password leaves the stored hash untouched.
type UpdateUserInput struct {
	Password   string
	ProfilePic *string
	Email      *string
	FirstName  *string
	LastName   *string
	MobileNo   *string
	Address    *string
	IsActive   *bool
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	hash, err := s.Credentials.HashSecret(ctx, in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username:   in.Username,
		Password:   hash,
		ProfilePic: in.ProfilePic,
		Email:      in.Email,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		MobileNo:   in.MobileNo,
		Address:    in.Address,
		IsActive:   in.IsActive,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		helpers.LogError(s.Logger, "create user failed", err, logrus.Fields{"username": in.Username})
		return nil, ErrDirectoryUnavailable
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupErr(err, id)
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		helpers.LogError(s.Logger, "list users failed", err, nil)
		return nil, ErrDirectoryUnavailable
	}
	return users, nil
}

func (s *UserService) Update(ctx context.Context, id int64, in UpdateUserInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupErr(err, id)
	}

	// Hash before touching u so a failure leaves nothing half-applied.
	// An empty Password tells the directory to keep the stored hash, so a
	// concurrent password change is never overwritten by a stale read.
	var hash string
	if in.Password != "" {
		if hash, err = s.Credentials.HashSecret(ctx, in.Password); err != nil {
			return nil, err
		}
	}
	u.Password = hash
	setIf(&u.ProfilePic, in.ProfilePic)
	setIf(&u.Email, in.Email)
	setIf(&u.FirstName, in.FirstName)
	setIf(&u.LastName, in.LastName)
	setIf(&u.MobileNo, in.MobileNo)
	setIf(&u.Address, in.Address)
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, s.mapLookupErr(err, id)
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		helpers.LogError(s.Logger, "delete user failed", err, logrus.Fields{"user_id": id})
		return ErrDirectoryUnavailable
	}
	return nil
}

func (s *UserService) mapLookupErr(err error, id int64) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrUserNotFound
	}
	helpers.LogError(s.Logger, "user directory error", err, logrus.Fields{"user_id": id})
	return ErrDirectoryUnavailable
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
