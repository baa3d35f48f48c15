package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/connectvan/backend/internal/catalog"
)

// Durable keys of the three collections.
const (
	KeyDrivers    = "connectvan_drivers"
	KeyPartners   = "connectvan_partners"
	KeyHeroImages = "connectvan_hero_images"
)

// Collection names carried by Change.
const (
	CollectionDrivers    = "drivers"
	CollectionPartners   = "partners"
	CollectionHeroImages = "hero_images"
)

// Change is published to subscribers after a successful mutation.
type Change struct {
	Collection string `json:"collection"`
}

// CatalogStore is the single source of truth for drivers, partners and hero images.
// Every mutation is written through to the backend before it becomes visible.
type CatalogStore struct {
	backend Backend
	logger  *zap.Logger

	mu       sync.RWMutex
	loaded   bool
	drivers  []catalog.Driver
	partners []catalog.Partner
	hero     []string

	subMu   sync.Mutex
	subs    map[int]func(Change)
	nextSub int
}

func NewCatalogStore(backend Backend, logger *zap.Logger) *CatalogStore {
	return &CatalogStore{
		backend: backend,
		logger:  logger,
		subs:    make(map[int]func(Change)),
	}
}

// Load reads the three collections once. Absent or undecodable values fall back to
// the seed; backend errors are returned and leave the store unloaded.
func (s *CatalogStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *CatalogStore) loadLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	drivers, err := readCollection(ctx, s, KeyDrivers, catalog.SeedDrivers)
	if err != nil {
		return err
	}
	partners, err := readCollection(ctx, s, KeyPartners, catalog.SeedPartners)
	if err != nil {
		return err
	}
	hero, err := readCollection(ctx, s, KeyHeroImages, catalog.SeedHeroImages)
	if err != nil {
		return err
	}
	s.drivers, s.partners, s.hero = drivers, partners, hero
	s.loaded = true
	return nil
}

func readCollection[T any](ctx context.Context, s *CatalogStore, key string, seed func() []T) ([]T, error) {
	raw, err := s.backend.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return seed(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	var v []T
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		s.logger.Warn("stored collection unreadable, using seed", zap.String("key", key), zap.Error(err))
		return seed(), nil
	}
	return v, nil
}

// ensureLoaded upgrades to the write lock only on first access.
func (s *CatalogStore) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	return s.Load(ctx)
}

// Drivers returns a copy of the drivers collection, most recent first.
func (s *CatalogStore) Drivers(ctx context.Context) ([]catalog.Driver, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.CloneDrivers(s.drivers), nil
}

// Partners returns a copy of the partners collection.
func (s *CatalogStore) Partners(ctx context.Context) ([]catalog.Partner, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.ClonePartners(s.partners), nil
}

// HeroImages returns a copy of the hero collection in display order.
func (s *CatalogStore) HeroImages(ctx context.Context) ([]string, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.hero), nil
}

// Snapshot returns a consistent copy of all three collections.
func (s *CatalogStore) Snapshot(ctx context.Context) (catalog.Snapshot, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return catalog.Snapshot{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.Snapshot{
		Drivers:    catalog.CloneDrivers(s.drivers),
		Partners:   catalog.ClonePartners(s.partners),
		HeroImages: slices.Clone(s.hero),
	}, nil
}

// MutateDrivers applies fn to a copy of the drivers, saves the full result and publishes it.
// If fn or the save fails the stored collection is left unchanged.
func (s *CatalogStore) MutateDrivers(ctx context.Context, fn func([]catalog.Driver) ([]catalog.Driver, error)) error {
	err := s.mutate(ctx, func() error {
		next, err := fn(catalog.CloneDrivers(s.drivers))
		if err != nil {
			return err
		}
		if next == nil {
			next = []catalog.Driver{}
		}
		if err := s.save(ctx, KeyDrivers, next); err != nil {
			return err
		}
		s.drivers = next
		return nil
	})
	if err != nil {
		return err
	}
	s.notify(Change{Collection: CollectionDrivers})
	return nil
}

// MutatePartners is MutateDrivers for partners.
func (s *CatalogStore) MutatePartners(ctx context.Context, fn func([]catalog.Partner) ([]catalog.Partner, error)) error {
	err := s.mutate(ctx, func() error {
		next, err := fn(catalog.ClonePartners(s.partners))
		if err != nil {
			return err
		}
		if next == nil {
			next = []catalog.Partner{}
		}
		if err := s.save(ctx, KeyPartners, next); err != nil {
			return err
		}
		s.partners = next
		return nil
	})
	if err != nil {
		return err
	}
	s.notify(Change{Collection: CollectionPartners})
	return nil
}

// MutateHeroImages is MutateDrivers for the hero collection.
func (s *CatalogStore) MutateHeroImages(ctx context.Context, fn func([]string) ([]string, error)) error {
	err := s.mutate(ctx, func() error {
		next, err := fn(slices.Clone(s.hero))
		if err != nil {
			return err
		}
		if next == nil {
			next = []string{}
		}
		if err := s.save(ctx, KeyHeroImages, next); err != nil {
			return err
		}
		s.hero = next
		return nil
	})
	if err != nil {
		return err
	}
	s.notify(Change{Collection: CollectionHeroImages})
	return nil
}

type restoreWrite struct {
	key        string
	next, prev any
}

// Restore replaces all three collections. Collections are written one by one; if a
// write fails the keys already written get their previous values back and memory is
// left untouched.
func (s *CatalogStore) Restore(ctx context.Context, snap catalog.Snapshot) error {
	snap = snap.Clone()
	if snap.Drivers == nil {
		snap.Drivers = []catalog.Driver{}
	}
	if snap.Partners == nil {
		snap.Partners = []catalog.Partner{}
	}
	if snap.HeroImages == nil {
		snap.HeroImages = []string{}
	}
	err := s.mutate(ctx, func() error {
		writes := []restoreWrite{
			{key: KeyDrivers, next: snap.Drivers, prev: s.drivers},
			{key: KeyPartners, next: snap.Partners, prev: s.partners},
			{key: KeyHeroImages, next: snap.HeroImages, prev: s.hero},
		}
		for i, w := range writes {
			if err := s.save(ctx, w.key, w.next); err != nil {
				s.rollback(ctx, writes[:i])
				return err
			}
		}
		s.drivers, s.partners, s.hero = snap.Drivers, snap.Partners, snap.HeroImages
		return nil
	})
	if err != nil {
		return err
	}
	s.notify(Change{Collection: CollectionDrivers})
	s.notify(Change{Collection: CollectionPartners})
	s.notify(Change{Collection: CollectionHeroImages})
	return nil
}

// rollback rewrites the previous values of keys a failed Restore already overwrote.
func (s *CatalogStore) rollback(ctx context.Context, written []restoreWrite) {
	for i := len(written) - 1; i >= 0; i-- {
		if err := s.save(ctx, written[i].key, written[i].prev); err != nil {
			s.logger.Error("restore rollback failed, durable state diverges from memory",
				zap.String("key", written[i].key), zap.Error(err))
		}
	}
}

// mutate runs fn under the write lock after making sure the collections are loaded.
func (s *CatalogStore) mutate(ctx context.Context, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return err
	}
	return fn()
}

// save serializes the whole collection; there are no partial writes.
func (s *CatalogStore) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Subscribe registers fn for change notifications. Callbacks run synchronously
// after the store lock is released; the returned func removes the subscription.
func (s *CatalogStore) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *CatalogStore) notify(ch Change) {
	s.subMu.Lock()
	fns := make([]func(Change), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(ch)
	}
}
