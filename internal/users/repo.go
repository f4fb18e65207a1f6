package users

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

type Repo interface {
	// Upsert stores identity fields from the OAuth provider. It never
	// touches the stored language preference.
	Upsert(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
	SetLanguage(ctx context.Context, userID, lang string) error
}
