package impl

import (
	"context"
	"slices"
	"sync"

	"solarsavers/internal/domain/entity"
	domainerrors "solarsavers/internal/domain/errors"
	"solarsavers/internal/usecase"
)

// LoadFunc fetches a list. The flag reports that demo data was served.
type LoadFunc[T any] func(ctx context.Context) ([]T, bool, error)

// ListResource is the in-memory copy of one page's list.
// Close discards the copy; a Load that started before Close is dropped with ErrDisposed.
type ListResource[T any] struct {
	mu     sync.Mutex
	load   LoadFunc[T]
	items  []T
	loaded bool
	demo   bool
	gen    uint64
}

// NewListResource is the constructor for ListResource.
func NewListResource[T any](load LoadFunc[T]) *ListResource[T] {
	return &ListResource[T]{load: load}
}

// Load fetches the list and replaces the local copy. On error the copy is kept.
func (r *ListResource[T]) Load(ctx context.Context) ([]T, error) {
	r.mu.Lock()
	gen := r.gen
	r.mu.Unlock()

	items, demo, err := r.load(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen {
		return nil, domainerrors.ErrDisposed
	}
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	r.items = items
	r.loaded = true
	r.demo = demo

	return slices.Clone(r.items), nil
}

// Items returns the local copy without fetching.
func (r *ListResource[T]) Items() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.items)
}

// Loaded reports whether a Load has completed since the last Close.
func (r *ListResource[T]) Loaded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loaded
}

// Demo reports whether the copy came from demo data.
func (r *ListResource[T]) Demo() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.demo
}

// Apply changes the local copy in place of a server round trip.
func (r *ListResource[T]) Apply(fn func(items []T) []T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = fn(slices.Clone(r.items))
}

// Replace overwrites the local copy with an authoritative list.
func (r *ListResource[T]) Replace(items []T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = slices.Clone(items)
	r.loaded = true
	r.demo = false
}

// Close disposes the copy. Responses still in flight are ignored.
func (r *ListResource[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gen++
	r.items = nil
	r.loaded = false
	r.demo = false
}

// Closer is anything a session change should dispose.
type Closer interface {
	Close()
}

// closeOnSessionChange disposes page state whenever the identity changes,
// so a signed-out user never sees the previous user's lists.
func closeOnSessionChange(session usecase.SessionUsecase, resources ...Closer) {
	session.OnChange(func(entity.Session) {
		for _, r := range resources {
			r.Close()
		}
	})
}
