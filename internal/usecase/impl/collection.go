// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	"solarsavers/internal/domain/entity"
	"solarsavers/internal/domain/repository"
	"solarsavers/internal/domain/service"

	"github.com/pkg/errors"
)

// persistedCollection is an ordered list mirrored to one durable key.
// Every mutation is written back before the lock is released.
type persistedCollection[T entity.Identifiable] struct {
	mu       sync.Mutex
	key      string
	label    string
	store    repository.KeyValueStore
	notifier service.Notifier
	logger   *slog.Logger
	items    []T
}

func newPersistedCollection[T entity.Identifiable](
	key, label string,
	store repository.KeyValueStore,
	notifier service.Notifier,
	logger *slog.Logger,
) *persistedCollection[T] {
	return &persistedCollection[T]{
		key:      key,
		label:    label,
		store:    store,
		notifier: notifier,
		logger:   logger.With(slog.String("collection", key)),
		items:    []T{},
	}
}

// initialize loads the stored list. Missing or unreadable data yields an empty list.
func (c *persistedCollection[T]) initialize(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = []T{}

	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			c.logger.Warn("Failed to read collection, starting empty", slog.Any("error", err))
		}

		return
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.logger.Warn("Stored collection is not valid JSON, starting empty", slog.Any("error", err))

		return
	}
	if items != nil {
		c.items = items
	}
	c.logger.Debug("Collection loaded", slog.Int("items", len(c.items)))
}

// mutate applies fn to a copy of the list. When fn reports a change the copy
// replaces the list and is persisted. It returns whether anything changed.
func (c *persistedCollection[T]) mutate(ctx context.Context, fn func(items []T) ([]T, bool)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, changed := fn(slices.Clone(c.items))
	if !changed {
		return false
	}
	if next == nil {
		next = []T{}
	}
	c.items = next
	c.persist(ctx)

	return true
}

// persist writes the list. A failed write is reported, the in-memory state stands.
func (c *persistedCollection[T]) persist(ctx context.Context) {
	raw, err := json.Marshal(c.items)
	if err != nil {
		c.logger.Error("Failed to encode collection", slog.Any("error", err))

		return
	}

	if err := c.store.Set(ctx, c.key, raw); err != nil {
		c.logger.Error("Failed to persist collection", slog.Any("error", err))
		c.notifier.Error("Could not save your " + c.label)
	}
}

func (c *persistedCollection[T]) snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.items)
}

func (c *persistedCollection[T]) contains(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return indexOf(c.items, id) >= 0
}

func (c *persistedCollection[T]) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

func (c *persistedCollection[T]) remove(ctx context.Context, id string) {
	c.mutate(ctx, func(items []T) ([]T, bool) {
		idx := indexOf(items, id)
		if idx < 0 {
			return items, false
		}

		return slices.Delete(items, idx, idx+1), true
	})
}

func (c *persistedCollection[T]) clear(ctx context.Context) {
	c.mutate(ctx, func([]T) ([]T, bool) {
		return []T{}, true
	})
}

func indexOf[T entity.Identifiable](items []T, id string) int {
	return slices.IndexFunc(items, func(it T) bool { return it.ItemID() == id })
}
