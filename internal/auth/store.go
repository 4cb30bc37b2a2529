package auth

import (
	"context"
	"errors"
)

var (
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials covers both unknown username and wrong
	// password so login failures never reveal which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	ID       string
	Username string
	Hash     []byte
}

type UserStore interface {
	Create(ctx context.Context, username, password, id string) error
	Verify(ctx context.Context, username, password string) (User, error)
	Ping(ctx context.Context) error
}
