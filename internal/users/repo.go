package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrInvalidInput  = errors.New("invalid user input")
	ErrGuestIdentity = errors.New("guest identities are not persisted")
)

type Repo interface {
	Upsert(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
}
