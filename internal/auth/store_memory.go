package auth

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MemStore keeps registered users in process memory only. Restarting the
// service forgets every account.
type MemStore struct {
	mu         sync.RWMutex
	cost       int
	byUsername map[string]User
}

func NewMemStore(bcryptCost int) *MemStore {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &MemStore{
		cost:       bcryptCost,
		byUsername: make(map[string]User),
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Create(ctx context.Context, username, password, id string) error {
	username = strings.TrimSpace(username)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byUsername[username]; ok {
		return ErrUserExists
	}

	s.byUsername[username] = User{ID: id, Username: username, Hash: hash}
	return nil
}

func (s *MemStore) Verify(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)

	s.mu.RLock()
	u, ok := s.byUsername[username]
	s.mu.RUnlock()

	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.Hash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}
