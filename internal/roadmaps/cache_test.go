package roadmaps

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadmap-backend/internal/roadmap"
)

func setupCache(t *testing.T) (*miniredis.Miniredis, *MemoryRepo, *CachedRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	inner := NewMemoryRepo()
	return mr, inner, NewCachedRepo(inner, client, time.Hour)
}

func sampleRecord(userID string) Record {
	return Record{
		UserID:         userID,
		Roadmap:        roadmap.PersonalizedRoadmap{UrgencyLevel: roadmap.UrgencyHigh, Summary: "s"},
		CatalogVersion: "test-1",
		GeneratedAt:    fixedNow,
	}
}

func TestCachedRepoSaveWritesThrough(t *testing.T) {
	mr, inner, repo := setupCache(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleRecord("u1")))

	_, err := inner.GetByUser(ctx, "u1")
	require.NoError(t, err)

	raw, err := mr.Get(cacheKey("u1"))
	require.NoError(t, err)
	var cached Record
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, roadmap.UrgencyHigh, cached.Roadmap.UrgencyLevel)
	assert.Equal(t, time.Hour, mr.TTL(cacheKey("u1")))
}

func TestCachedRepoReadThroughOnMiss(t *testing.T) {
	mr, inner, repo := setupCache(t)
	ctx := context.Background()

	require.NoError(t, inner.Save(ctx, sampleRecord("u1")))
	assert.False(t, mr.Exists(cacheKey("u1")))

	got, err := repo.GetByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "test-1", got.CatalogVersion)
	assert.True(t, mr.Exists(cacheKey("u1")))
}

func TestCachedRepoServesHitWithoutInner(t *testing.T) {
	mr, _, repo := setupCache(t)
	ctx := context.Background()

	payload, err := json.Marshal(sampleRecord("u1"))
	require.NoError(t, err)
	require.NoError(t, mr.Set(cacheKey("u1"), string(payload)))

	got, err := repo.GetByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.True(t, got.GeneratedAt.Equal(fixedNow))
}

func TestCachedRepoMissPropagatesNotFound(t *testing.T) {
	_, _, repo := setupCache(t)
	_, err := repo.GetByUser(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCachedRepoFallsBackOnCorruptEntry(t *testing.T) {
	mr, inner, repo := setupCache(t)
	ctx := context.Background()

	require.NoError(t, inner.Save(ctx, sampleRecord("u1")))
	require.NoError(t, mr.Set(cacheKey("u1"), "{not json"))

	got, err := repo.GetByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "test-1", got.CatalogVersion)

	raw, err := mr.Get(cacheKey("u1"))
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(raw)), "corrupt entry should be refreshed")
}

func TestCachedRepoFallsBackWhenRedisDown(t *testing.T) {
	mr, inner, repo := setupCache(t)
	ctx := context.Background()

	require.NoError(t, inner.Save(ctx, sampleRecord("u1")))
	mr.Close()

	got, err := repo.GetByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	require.NoError(t, repo.Save(ctx, sampleRecord("u2")))
	_, err = inner.GetByUser(ctx, "u2")
	require.NoError(t, err)
}

func TestCachedRepoClaimInvalidatesBothKeys(t *testing.T) {
	mr, _, repo := setupCache(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleRecord("guest:g1")))
	require.NoError(t, repo.Save(ctx, Record{UserID: "google:1", GeneratedAt: fixedNow.Add(-time.Hour)}))

	n, err := repo.ClaimGuest(ctx, "guest:g1", "google:1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, mr.Exists(cacheKey("guest:g1")))
	assert.False(t, mr.Exists(cacheKey("google:1")))

	got, err := repo.GetByUser(ctx, "google:1")
	require.NoError(t, err)
	assert.Equal(t, "test-1", got.CatalogVersion)
}

func TestServiceInvalidateCacheDropsKey(t *testing.T) {
	mr, _, repo := setupCache(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleRecord("u1")))
	require.True(t, mr.Exists(cacheKey("u1")))

	svc := NewService(repo, roadmap.Catalog{})
	svc.InvalidateCache(ctx, "u1")
	assert.False(t, mr.Exists(cacheKey("u1")))

	// plain repos have nothing to drop
	NewService(NewMemoryRepo(), roadmap.Catalog{}).InvalidateCache(ctx, "u1")
}

func TestCachedRepoWithoutClient(t *testing.T) {
	inner := NewMemoryRepo()
	repo := NewCachedRepo(inner, nil, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleRecord("u1")))
	got, err := repo.GetByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
}

func TestCacheKeyHidesUserID(t *testing.T) {
	key := cacheKey("google:123")
	assert.NotContains(t, key, "google")
	assert.Len(t, key, len(cacheKeyPrefix)+64)
}
