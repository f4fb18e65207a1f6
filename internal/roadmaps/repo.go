package roadmaps

import "context"

// Repo persists at most one roadmap per user.
type Repo interface {
	Save(ctx context.Context, rec Record) error
	GetByUser(ctx context.Context, userID string) (Record, error)
	// ClaimGuest moves the guest's roadmap to authedUserID. When both users
	// already have one, the most recently generated wins. Returns the number
	// of records moved.
	ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error)
}
