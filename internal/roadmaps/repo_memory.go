package roadmaps

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{records: make(map[string]Record)}
}

func (r *MemoryRepo) Save(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.UserID] = rec
	return nil
}

func (r *MemoryRepo) GetByUser(ctx context.Context, userID string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[userID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *MemoryRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	guest, ok := r.records[guestUserID]
	if !ok {
		return 0, nil
	}
	delete(r.records, guestUserID)
	if existing, ok := r.records[authedUserID]; ok && existing.GeneratedAt.After(guest.GeneratedAt) {
		return 0, nil
	}
	guest.UserID = authedUserID
	r.records[authedUserID] = guest
	return 1, nil
}
