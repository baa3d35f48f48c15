package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/connectvan/backend/internal/catalog"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func newStore(t *testing.T, rdb *redis.Client) *CatalogStore {
	t.Helper()
	return NewCatalogStore(NewRedisBackend(rdb), zap.NewNop())
}

func TestCatalogStore_LoadSeedsWhenEmpty(t *testing.T) {
	_, rdb := newRedis(t)
	s := newStore(t, rdb)
	ctx := context.Background()

	drivers, err := s.Drivers(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.SeedDrivers(), drivers)

	partners, err := s.Partners(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.SeedPartners(), partners)

	hero, err := s.HeroImages(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.SeedHeroImages(), hero)
}

func TestCatalogStore_MalformedFallsBackToSeed(t *testing.T) {
	mr, rdb := newRedis(t)
	require.NoError(t, mr.Set(KeyDrivers, "{not json"))
	require.NoError(t, mr.Set(KeyPartners, "null"))
	require.NoError(t, mr.Set(KeyHeroImages, `[]`))

	s := newStore(t, rdb)
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	drivers, _ := s.Drivers(ctx)
	assert.Equal(t, catalog.SeedDrivers(), drivers)
	partners, _ := s.Partners(ctx)
	assert.Equal(t, catalog.SeedPartners(), partners)

	hero, _ := s.HeroImages(ctx)
	assert.Empty(t, hero, "an empty stored list is valid state, not corruption")
}

func TestCatalogStore_BackendErrorIsReturned(t *testing.T) {
	mr, rdb := newRedis(t)
	mr.SetError("LOADING")

	s := newStore(t, rdb)
	_, err := s.Drivers(context.Background())
	require.Error(t, err)

	mr.SetError("")
	drivers, err := s.Drivers(context.Background())
	require.NoError(t, err, "a failed load is retried on next access")
	assert.Len(t, drivers, 3)
}

func TestCatalogStore_RoundTrip(t *testing.T) {
	_, rdb := newRedis(t)
	ctx := context.Background()

	s := newStore(t, rdb)
	added := catalog.Driver{
		ID: "new", Name: "Novo", Email: "n@example.com", VehicleType: "Van",
		Neighborhoods: []string{"Lapa"}, Schools: []string{"Vera Cruz"},
		Description: "d", WhatsApp: "551100000000",
	}
	require.NoError(t, s.MutateDrivers(ctx, func(in []catalog.Driver) ([]catalog.Driver, error) {
		return append([]catalog.Driver{added}, in...), nil
	}))
	require.NoError(t, s.MutateHeroImages(ctx, func(in []string) ([]string, error) {
		return append(in, "data:image/png;base64,AAAA"), nil
	}))

	want, err := s.Snapshot(ctx)
	require.NoError(t, err)

	fresh := newStore(t, rdb)
	got, err := fresh.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "new", got.Drivers[0].ID)
}

func TestCatalogStore_FailedMutationLeavesStateUnchanged(t *testing.T) {
	mr, rdb := newRedis(t)
	s := newStore(t, rdb)
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	boom := errors.New("boom")
	err := s.MutateDrivers(ctx, func(in []catalog.Driver) ([]catalog.Driver, error) {
		in[0].Name = "changed in place"
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	drivers, _ := s.Drivers(ctx)
	assert.Equal(t, "Carlos Oliveira", drivers[0].Name)

	mr.SetError("READONLY")
	err = s.MutatePartners(ctx, func(in []catalog.Partner) ([]catalog.Partner, error) {
		return in[:1], nil
	})
	require.Error(t, err)
	mr.SetError("")

	partners, _ := s.Partners(ctx)
	assert.Len(t, partners, 3)
}

// failingBackend is an in-memory Backend whose writes to failKey error out.
type failingBackend struct {
	mu      sync.Mutex
	data    map[string][]byte
	failKey string
}

func (b *failingBackend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

func (b *failingBackend) Set(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if key == b.failKey {
		return errors.New("down")
	}
	b.data[key] = value
	return nil
}

func TestCatalogStore_FailedRestoreRollsBackWrittenKeys(t *testing.T) {
	backend := &failingBackend{data: map[string][]byte{}, failKey: KeyPartners}
	s := NewCatalogStore(backend, zap.NewNop())
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	var changes int
	s.Subscribe(func(Change) { changes++ })

	err := s.Restore(ctx, catalog.Snapshot{})
	require.Error(t, err)
	assert.Zero(t, changes)

	drivers, err := s.Drivers(ctx)
	require.NoError(t, err)
	assert.Len(t, drivers, 3)

	backend.failKey = ""
	durable, err := NewCatalogStore(backend, zap.NewNop()).Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.Seed(), durable)
}

func TestCatalogStore_AccessorsReturnCopies(t *testing.T) {
	_, rdb := newRedis(t)
	s := newStore(t, rdb)
	ctx := context.Background()

	drivers, _ := s.Drivers(ctx)
	drivers[0].Neighborhoods[0] = "hacked"
	hero, _ := s.HeroImages(ctx)
	hero[0] = "hacked"

	again, _ := s.Drivers(ctx)
	assert.Equal(t, "Itaim Bibi", again[0].Neighborhoods[0])
	heroAgain, _ := s.HeroImages(ctx)
	assert.NotEqual(t, "hacked", heroAgain[0])
}

func TestCatalogStore_Subscribe(t *testing.T) {
	_, rdb := newRedis(t)
	s := newStore(t, rdb)
	ctx := context.Background()

	var got []Change
	unsubscribe := s.Subscribe(func(c Change) { got = append(got, c) })

	require.NoError(t, s.MutateHeroImages(ctx, func(in []string) ([]string, error) { return in[:0], nil }))
	require.NoError(t, s.MutatePartners(ctx, func(in []catalog.Partner) ([]catalog.Partner, error) { return in, nil }))
	assert.Equal(t, []Change{{CollectionHeroImages}, {CollectionPartners}}, got)

	_ = s.MutateDrivers(ctx, func([]catalog.Driver) ([]catalog.Driver, error) { return nil, errors.New("no") })
	assert.Len(t, got, 2, "failed mutations are not published")

	unsubscribe()
	require.NoError(t, s.MutateDrivers(ctx, func(in []catalog.Driver) ([]catalog.Driver, error) { return in, nil }))
	assert.Len(t, got, 2)
}

func TestCatalogStore_Restore(t *testing.T) {
	_, rdb := newRedis(t)
	s := newStore(t, rdb)
	ctx := context.Background()

	var changes int
	s.Subscribe(func(Change) { changes++ })

	require.NoError(t, s.Restore(ctx, catalog.Snapshot{HeroImages: []string{"a"}}))
	assert.Equal(t, 3, changes)

	fresh := newStore(t, rdb)
	snap, err := fresh.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Drivers)
	assert.Empty(t, snap.Partners)
	assert.Equal(t, []string{"a"}, snap.HeroImages)
}

func TestSessionStore(t *testing.T) {
	mr, rdb := newRedis(t)
	s := NewSessionStore(rdb, time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "sid", "admin"))
	user, err := s.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "admin", user)

	mr.FastForward(2 * time.Minute)
	_, err = s.Get(ctx, "sid")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, s.Create(ctx, "sid2", "admin"))
	require.NoError(t, s.Delete(ctx, "sid2"))
	require.NoError(t, s.Delete(ctx, "sid2"))
	_, err = s.Get(ctx, "sid2")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
