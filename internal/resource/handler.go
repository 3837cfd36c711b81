// Package resource implements the CRUD contract shared by every resource type.
//
// Get, Update and Delete resolve the id first and only act when the record
// exists, so a repository never sees a save or delete for a key it could not
// also find. The lookup and the act are separate repository calls with no
// lock spanning them.
package resource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jbweber/homelab/campus/internal/domain"
	"github.com/jbweber/homelab/campus/internal/repository"
)

// Handler implements list/get/create/update/delete for one resource type
type Handler[T domain.Entity[T]] struct {
	kind   string
	repo   repository.Repository[T, int64]
	logger *slog.Logger
}

// New creates a handler. kind names the entity in messages, e.g. "HelpRequest".
func New[T domain.Entity[T]](kind string, repo repository.Repository[T, int64], logger *slog.Logger) *Handler[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler[T]{
		kind:   kind,
		repo:   repo,
		logger: logger.With(slog.String("kind", kind)),
	}
}

// Kind returns the entity kind this handler serves
func (h *Handler[T]) Kind() string {
	return h.kind
}

// List returns every stored record in store order
func (h *Handler[T]) List(ctx context.Context) ([]T, error) {
	all, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", h.kind, err)
	}
	if all == nil {
		all = []T{}
	}
	return all, nil
}

// Get returns the record with the given id or a *NotFoundError
func (h *Handler[T]) Get(ctx context.Context, id int64) (T, error) {
	entity, err := h.repo.FindByID(ctx, id)
	if err != nil {
		var zero T
		if errors.Is(err, repository.ErrNotFound) {
			return zero, &NotFoundError{Kind: h.kind, ID: id}
		}
		return zero, fmt.Errorf("failed to get %s %d: %w", h.kind, id, err)
	}
	return entity, nil
}

// Create persists a new record. Any id on the input is discarded; the
// repository assigns one.
func (h *Handler[T]) Create(ctx context.Context, entity T) (T, error) {
	saved, err := h.repo.Save(ctx, entity.WithKey(0))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to create %s: %w", h.kind, err)
	}
	h.logger.InfoContext(ctx, "created resource", slog.Int64("id", saved.Key()))
	return saved, nil
}

// Update replaces the whole record stored under id with entity
func (h *Handler[T]) Update(ctx context.Context, id int64, entity T) (T, error) {
	var zero T
	if _, err := h.Get(ctx, id); err != nil {
		return zero, err
	}

	updated, err := h.repo.Save(ctx, entity.WithKey(id))
	if err != nil {
		return zero, fmt.Errorf("failed to update %s %d: %w", h.kind, id, err)
	}
	return updated, nil
}

// Delete removes the record stored under id and returns a confirmation message
func (h *Handler[T]) Delete(ctx context.Context, id int64) (string, error) {
	if _, err := h.Get(ctx, id); err != nil {
		return "", err
	}

	if err := h.repo.DeleteByID(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return "", fmt.Errorf("failed to delete %s %d: %w", h.kind, id, err)
		}
		// Removed by someone else after the lookup
		h.logger.DebugContext(ctx, "resource vanished before delete", slog.Int64("id", id))
	}
	return fmt.Sprintf("%s with id %d deleted", h.kind, id), nil
}
