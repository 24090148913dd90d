package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/school-erp/internal/domain/entity"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository defines the interface for user-related database operations.
// Lookups that match nothing return ErrNotFound.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Update writes the profile columns; an empty u.Password keeps the stored hash.
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id int64) error
}
