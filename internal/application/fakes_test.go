package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/school-erp/internal/domain/entity"
	"github.com/oksasatya/school-erp/internal/infrastructure/memory"
	"github.com/oksasatya/school-erp/pkg/helpers"
)

// flakyRepo wraps the in-memory directory and fails selected calls.
type flakyRepo struct {
	*memory.UserRepository
	getErr    error
	createErr error
	updateErr error
	listErr   error
	deleteErr error
	updates   int
	lastSaved *entity.User

	beforeUpdate func()
}

func (f *flakyRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.UserRepository.GetByUsername(ctx, username)
}

func (f *flakyRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.UserRepository.GetByID(ctx, id)
}

func (f *flakyRepo) Create(ctx context.Context, u *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	return f.UserRepository.Create(ctx, u)
}

func (f *flakyRepo) Update(ctx context.Context, u *entity.User) error {
	if f.beforeUpdate != nil {
		f.beforeUpdate()
	}
	f.updates++
	saved := *u
	f.lastSaved = &saved
	if f.updateErr != nil {
		return f.updateErr
	}
	return f.UserRepository.Update(ctx, u)
}

func (f *flakyRepo) List(ctx context.Context) ([]*entity.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.UserRepository.List(ctx)
}

func (f *flakyRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.UserRepository.Delete(ctx, id)
}

// countingHasher records which comparisons the credential service performs.
type countingHasher struct {
	*helpers.PasswordHasher
	mu            sync.Mutex
	dummies       int
	compares      int
	emptyCompares int
}

func (h *countingHasher) CompareHashAndPassword(hash, plain string) bool {
	h.mu.Lock()
	h.compares++
	if hash == "" {
		h.emptyCompares++
	}
	h.mu.Unlock()
	return h.PasswordHasher.CompareHashAndPassword(hash, plain)
}

func (h *countingHasher) CompareDummy(plain string) bool {
	h.mu.Lock()
	h.dummies++
	h.mu.Unlock()
	return h.PasswordHasher.CompareDummy(plain)
}

type fixture struct {
	repo   *flakyRepo
	hasher *countingHasher
	jwt    *helpers.JWTManager
	creds  *CredentialService
	users  *UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	inner, err := helpers.NewPasswordHasher(bcrypt.MinCost, 4)
	require.NoError(t, err)
	hasher := &countingHasher{PasswordHasher: inner}
	repo := &flakyRepo{UserRepository: memory.NewUserRepository()}
	jwt := helpers.NewJWTManager("test-signing-secret", time.Hour)
	logger := helpers.NewDiscardLogger()
	creds := NewCredentialService(repo, hasher, jwt, logger)
	return &fixture{
		repo:   repo,
		hasher: hasher,
		jwt:    jwt,
		creds:  creds,
		users:  NewUserService(repo, creds, logger),
	}
}

func (f *fixture) createUser(t *testing.T, username, password string) *entity.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), CreateUserInput{Username: username, Password: password, IsActive: true})
	require.NoError(t, err)
	return u
}
