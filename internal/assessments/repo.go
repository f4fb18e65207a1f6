package assessments

import "context"

// Repo persists at most one assessment per user; Upsert is last-write-wins.
type Repo interface {
	Upsert(ctx context.Context, a Assessment) (Assessment, error)
	GetByUser(ctx context.Context, userID string) (Assessment, error)
	Delete(ctx context.Context, userID string) error
	ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error)
}
