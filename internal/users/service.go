package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidLanguage = errors.New("unsupported language")

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// UpsertFromAuth persists the identity returned by the OAuth provider.
func (s *Service) UpsertFromAuth(ctx context.Context, user User) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if strings.TrimSpace(user.ID) == "" || strings.TrimSpace(user.Email) == "" {
		return errors.New("user id and email are required")
	}
	return s.Repo.Upsert(ctx, user)
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

// SetLanguage stores the interface language and returns the updated user.
func (s *Service) SetLanguage(ctx context.Context, userID, lang string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	lang = strings.ToLower(strings.TrimSpace(lang))
	if !IsSupportedLanguage(lang) {
		return User{}, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
	}
	if err := s.Repo.SetLanguage(ctx, userID, lang); err != nil {
		return User{}, err
	}
	return s.Repo.GetByID(ctx, userID)
}
