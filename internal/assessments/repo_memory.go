package assessments

import (
	"context"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]Assessment
	now   func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]Assessment), now: time.Now}
}

func (r *MemoryRepo) Upsert(ctx context.Context, a Assessment) (Assessment, error) {
	if err := ctx.Err(); err != nil {
		return Assessment{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now().UTC()
	if existing, ok := r.items[a.UserID]; ok {
		a.CreatedAt = existing.CreatedAt
	} else {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	r.items[a.UserID] = a
	return a, nil
}

func (r *MemoryRepo) GetByUser(ctx context.Context, userID string) (Assessment, error) {
	if err := ctx.Err(); err != nil {
		return Assessment{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[userID]
	if !ok {
		return Assessment{}, ErrNotFound
	}
	return a, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, userID)
	return nil
}

// restore puts back a previously stored assessment with its timestamps.
func (r *MemoryRepo) restore(a Assessment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[a.UserID] = a
}

// ClaimGuest moves the guest's assessment to authedUserID unless the
// authenticated user already has a more recent one.
func (r *MemoryRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	guest, ok := r.items[guestUserID]
	if !ok {
		return 0, nil
	}
	delete(r.items, guestUserID)
	if existing, ok := r.items[authedUserID]; ok && existing.UpdatedAt.After(guest.UpdatedAt) {
		return 0, nil
	}
	guest.UserID = authedUserID
	r.items[authedUserID] = guest
	return 1, nil
}
