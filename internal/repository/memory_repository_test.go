package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbweber/homelab/campus/internal/domain"
)

func TestMemoryRepository_CRUD(t *testing.T) {
	repos := NewMemoryRepositories()

	assertCRUD[domain.MenuItemReview](t, repos.MenuItemReviews,
		domain.MenuItemReview{ItemID: 1, Stars: 1, Comments: "First", DateReviewed: domain.NewLocalDateTime(2022, time.January, 3, 0, 0, 0)},
		domain.MenuItemReview{ItemID: 2, Stars: 2, Comments: "Second", DateReviewed: domain.NewLocalDateTime(2022, time.January, 4, 0, 0, 0)},
	)
	assertCRUD[domain.DiningCommons](t, repos.DiningCommons,
		domain.DiningCommons{Code: "ortega", Name: "Ortega"},
		domain.DiningCommons{Code: "dlg", Name: "De La Guerra"},
	)
}

func TestMemoryRepository_SaveKeepsExplicitID(t *testing.T) {
	repo := NewMemoryRepository[domain.Article]("article")
	ctx := context.Background()

	saved, err := repo.Save(ctx, domain.Article{ID: 10, Title: "explicit"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), saved.ID)

	next, err := repo.Save(ctx, domain.Article{Title: "assigned"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), next.ID)
}

func TestMemoryRepository_NotFoundMessage(t *testing.T) {
	repo := NewMemoryRepository[domain.HelpRequest]("help request")

	_, err := repo.FindByID(context.Background(), 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "help request with ID 7: entity not found", err.Error())
}

func TestMemoryRepository_CancelledContext(t *testing.T) {
	repo := NewMemoryRepository[domain.HelpRequest]("help request")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Save(ctx, domain.HelpRequest{})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.FindAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRepositories_CloseMemory(t *testing.T) {
	assert.NoError(t, NewMemoryRepositories().Close())
}
