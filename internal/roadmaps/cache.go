package roadmaps

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"roadmap-backend/internal/shared/metrics"
	"roadmap-backend/internal/shared/telemetry"
	"roadmap-backend/internal/shared/util"
)

const cacheKeyPrefix = "roadmap:"

// CachedRepo is a read-through Redis cache in front of another Repo. Cache
// failures are logged and never fail the request.
type CachedRepo struct {
	Inner  Repo
	Client *redis.Client
	TTL    time.Duration
}

func NewCachedRepo(inner Repo, client *redis.Client, ttl time.Duration) *CachedRepo {
	return &CachedRepo{Inner: inner, Client: client, TTL: ttl}
}

func cacheKey(userID string) string {
	return cacheKeyPrefix + util.HashUserKey(userID)
}

func (r *CachedRepo) Save(ctx context.Context, rec Record) error {
	if err := r.Inner.Save(ctx, rec); err != nil {
		return err
	}
	r.store(ctx, rec)
	return nil
}

func (r *CachedRepo) GetByUser(ctx context.Context, userID string) (Record, error) {
	if r.Client == nil {
		return r.Inner.GetByUser(ctx, userID)
	}
	raw, err := r.Client.Get(ctx, cacheKey(userID)).Bytes()
	switch {
	case err == nil:
		var rec Record
		decodeErr := json.Unmarshal(raw, &rec)
		if decodeErr == nil {
			metrics.IncCacheRequest(metrics.CacheHit)
			return rec, nil
		}
		r.logFailure("roadmap.cache_decode_failed", userID, decodeErr)
	case errors.Is(err, redis.Nil):
		metrics.IncCacheRequest(metrics.CacheMiss)
	default:
		r.logFailure("roadmap.cache_get_failed", userID, err)
	}

	rec, err := r.Inner.GetByUser(ctx, userID)
	if err != nil {
		return Record{}, err
	}
	r.store(ctx, rec)
	return rec, nil
}

func (r *CachedRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	n, err := r.Inner.ClaimGuest(ctx, guestUserID, authedUserID)
	if err != nil {
		return 0, err
	}
	r.Invalidate(ctx, guestUserID, authedUserID)
	return n, nil
}

// Invalidate drops cached roadmaps for the given users.
func (r *CachedRepo) Invalidate(ctx context.Context, userIDs ...string) {
	if r.Client == nil || len(userIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, cacheKey(id))
	}
	if err := r.Client.Del(ctx, keys...).Err(); err != nil {
		telemetry.Warn("roadmap.cache_invalidate_failed", map[string]any{"error": err.Error()})
	}
}

func (r *CachedRepo) store(ctx context.Context, rec Record) {
	if r.Client == nil {
		return
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		r.logFailure("roadmap.cache_encode_failed", rec.UserID, err)
		return
	}
	if err := r.Client.Set(ctx, cacheKey(rec.UserID), payload, r.TTL).Err(); err != nil {
		r.logFailure("roadmap.cache_set_failed", rec.UserID, err)
	}
}

func (r *CachedRepo) logFailure(msg, userID string, err error) {
	metrics.IncCacheRequest(metrics.CacheError)
	telemetry.Warn(msg, map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})
}
