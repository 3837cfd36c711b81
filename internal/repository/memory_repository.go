package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jbweber/homelab/campus/internal/domain"
)

// MemoryRepository is a map-backed Repository. Ids are assigned from a
// per-repository counter starting at 1.
type MemoryRepository[T domain.Entity[T]] struct {
	mu     sync.RWMutex
	kind   string
	nextID int64
	items  map[int64]T
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository[T domain.Entity[T]](kind string) *MemoryRepository[T] {
	return &MemoryRepository[T]{
		kind:  kind,
		items: make(map[int64]T),
	}
}

// Save creates or updates an entity. Saving an id that is no longer present
// stores it again under that id.
func (r *MemoryRepository[T]) Save(ctx context.Context, entity T) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.Key()
	if id == 0 {
		r.nextID++
		id = r.nextID
		entity = entity.WithKey(id)
	} else if id > r.nextID {
		r.nextID = id
	}
	r.items[id] = entity
	return entity, nil
}

// FindByID retrieves an entity by its ID
func (r *MemoryRepository[T]) FindByID(ctx context.Context, id int64) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, ok := r.items[id]
	if !ok {
		return zero, fmt.Errorf("%s with ID %d: %w", r.kind, id, ErrNotFound)
	}
	return entity, nil
}

// FindAll retrieves all entities ordered by id
func (r *MemoryRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entities := make([]T, 0, len(r.items))
	for _, e := range r.items {
		entities = append(entities, e)
	}
	sort.Slice(entities, func(i, j int) bool {
		return entities[i].Key() < entities[j].Key()
	})
	return entities, nil
}

// DeleteByID deletes an entity by its ID
func (r *MemoryRepository[T]) DeleteByID(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%s with ID %d: %w", r.kind, id, ErrNotFound)
	}
	delete(r.items, id)
	return nil
}
