package helpers

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// DefaultHashCost matches the cost factor existing records were hashed with.
const DefaultHashCost = 10

const dummyPassword = "school-erp:unknown-identity"

// PasswordHasher hashes and verifies passwords with bcrypt.
// At most `concurrency` hash or compare operations run at the same time;
// callers beyond that wait for a free slot.
type PasswordHasher struct {
	cost  int
	slots *semaphore.Weighted
	dummy []byte
}

// NewPasswordHasher validates cost and precomputes the dummy hash used for unknown identities.
func NewPasswordHasher(cost, concurrency int) (*PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("precompute dummy hash: %w", err)
	}
	return &PasswordHasher{
		cost:  cost,
		slots: semaphore.NewWeighted(int64(concurrency)),
		dummy: dummy,
	}, nil
}

// Cost returns the configured bcrypt cost factor.
func (h *PasswordHasher) Cost() int { return h.cost }

func (h *PasswordHasher) acquire() func() {
	// Background never cancels, so Acquire only returns once a slot is free.
	_ = h.slots.Acquire(context.Background(), 1)
	return func() { h.slots.Release(1) }
}

// HashPassword hashes the plain text password using bcrypt with a fresh salt
func (h *PasswordHasher) HashPassword(plain string) (string, error) {
	release := h.acquire()
	defer release()
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password
func (h *PasswordHasher) CompareHashAndPassword(hash string, plain string) bool {
	release := h.acquire()
	defer release()
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// CompareDummy spends the same work as a real comparison and always reports a mismatch.
func (h *PasswordHasher) CompareDummy(plain string) bool {
	release := h.acquire()
	defer release()
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(plain))
	return false
}
