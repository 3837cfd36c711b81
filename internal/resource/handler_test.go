package resource

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbweber/homelab/campus/internal/domain"
	"github.com/jbweber/homelab/campus/internal/repository"
)

// countingRepository wraps an in-memory repository and records calls
type countingRepository[T domain.Entity[T]] struct {
	inner *repository.MemoryRepository[T]
	err   error // returned by every call when set

	findAll, findByID, save, deleteByID int
}

func newCountingRepository[T domain.Entity[T]](kind string) *countingRepository[T] {
	return &countingRepository[T]{inner: repository.NewMemoryRepository[T](kind)}
}

func (r *countingRepository[T]) Save(ctx context.Context, entity T) (T, error) {
	r.save++
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.inner.Save(ctx, entity)
}

func (r *countingRepository[T]) FindByID(ctx context.Context, id int64) (T, error) {
	r.findByID++
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.inner.FindByID(ctx, id)
}

func (r *countingRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	r.findAll++
	if r.err != nil {
		return nil, r.err
	}
	return r.inner.FindAll(ctx)
}

func (r *countingRepository[T]) DeleteByID(ctx context.Context, id int64) error {
	r.deleteByID++
	if r.err != nil {
		return r.err
	}
	return r.inner.DeleteByID(ctx, id)
}

func (r *countingRepository[T]) calls() int {
	return r.findAll + r.findByID + r.save + r.deleteByID
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newReviewHandler() (*Handler[domain.MenuItemReview], *countingRepository[domain.MenuItemReview]) {
	repo := newCountingRepository[domain.MenuItemReview]("menu item review")
	return New[domain.MenuItemReview]("MenuItemReview", repo, quietLogger()), repo
}

func review(stars int, comments string) domain.MenuItemReview {
	return domain.MenuItemReview{
		ItemID:        27,
		ReviewerEmail: "cgaucho@ucsb.edu",
		Stars:         stars,
		DateReviewed:  domain.NewLocalDateTime(2022, time.January, 3, 0, 0, 0),
		Comments:      comments,
	}
}

func TestHandler_List_Empty(t *testing.T) {
	h, repo := newReviewHandler()

	all, err := h.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
	assert.Equal(t, 1, repo.findAll)
}

func TestHandler_List_ReturnsAll(t *testing.T) {
	h, _ := newReviewHandler()
	ctx := context.Background()

	first, err := h.Create(ctx, review(1, "First"))
	require.NoError(t, err)
	second, err := h.Create(ctx, review(5, "Second"))
	require.NoError(t, err)

	all, err := h.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.MenuItemReview{first, second}, all)
}

func TestHandler_Get_NotFound(t *testing.T) {
	repo := newCountingRepository[domain.HelpRequest]("help request")
	h := New[domain.HelpRequest]("HelpRequest", repo, quietLogger())

	_, err := h.Get(context.Background(), 7)
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "HelpRequest", notFound.Kind)
	assert.Equal(t, int64(7), notFound.ID)
	assert.Equal(t, "HelpRequest with id 7 not found", err.Error())
	assert.Equal(t, 0, repo.save+repo.deleteByID)
}

func TestHandler_CreateThenGet_RoundTrip(t *testing.T) {
	h, repo := newReviewHandler()
	ctx := context.Background()

	input := review(3, "ok")
	input.ID = 99 // ignored on create

	created, err := h.Create(ctx, input)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, int64(99), created.ID)
	assert.Equal(t, 1, repo.save)

	found, err := h.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestHandler_Update_Missing(t *testing.T) {
	h, repo := newReviewHandler()

	_, err := h.Update(context.Background(), 1, review(2, "Second"))
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "MenuItemReview with id 1 not found", err.Error())
	assert.Equal(t, 1, repo.findByID)
	assert.Equal(t, 0, repo.save)
}

func TestHandler_Update_ReplacesWholeRecord(t *testing.T) {
	h, _ := newReviewHandler()
	ctx := context.Background()

	original, err := h.Create(ctx, review(1, "First"))
	require.NoError(t, err)

	replacement := domain.MenuItemReview{
		ItemID:        31,
		ReviewerEmail: "ldelplaya@ucsb.edu",
		Stars:         2,
		DateReviewed:  domain.NewLocalDateTime(2023, time.May, 6, 7, 8, 9),
		Comments:      "Second",
	}

	updated, err := h.Update(ctx, original.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, replacement.WithKey(original.ID), updated)

	found, err := h.Get(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second", found.Comments)
	assert.Equal(t, updated, found)
}

func TestHandler_Update_IgnoresBodyID(t *testing.T) {
	h, _ := newReviewHandler()
	ctx := context.Background()

	original, err := h.Create(ctx, review(1, "First"))
	require.NoError(t, err)

	replacement := review(4, "Other")
	replacement.ID = 500

	updated, err := h.Update(ctx, original.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, original.ID, updated.ID)

	_, err = h.Get(ctx, 500)
	assert.Error(t, err)
}

func TestHandler_Delete_Existing(t *testing.T) {
	h, repo := newReviewHandler()
	ctx := context.Background()

	created, err := h.Create(ctx, review(1, "First"))
	require.NoError(t, err)

	msg, err := h.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "MenuItemReview with id 1 deleted", msg)
	assert.Equal(t, 1, repo.deleteByID)

	_, err = h.Get(ctx, created.ID)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestHandler_Delete_Missing(t *testing.T) {
	h, repo := newReviewHandler()

	msg, err := h.Delete(context.Background(), 1)
	assert.Empty(t, msg)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "MenuItemReview with id 1 not found", err.Error())
	assert.Equal(t, 0, repo.deleteByID)
	assert.Equal(t, 1, repo.calls())
}

func TestHandler_StorageFailure(t *testing.T) {
	h, repo := newReviewHandler()
	repo.err = errors.New("disk on fire")
	ctx := context.Background()

	_, err := h.List(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")

	_, err = h.Get(ctx, 1)
	require.Error(t, err)
	var notFound *NotFoundError
	assert.False(t, errors.As(err, &notFound), "storage failures must not look like not-found")

	_, err = h.Create(ctx, review(1, "x"))
	assert.ErrorIs(t, err, repo.err)

	_, err = h.Update(ctx, 1, review(1, "x"))
	assert.ErrorIs(t, err, repo.err)
	assert.Equal(t, 1, repo.save, "update must stop after the failed lookup")

	_, err = h.Delete(ctx, 1)
	assert.ErrorIs(t, err, repo.err)
	assert.Equal(t, 0, repo.deleteByID)
}

func TestHandler_SecondRecordUnaffectedByUpdate(t *testing.T) {
	h, _ := newReviewHandler()
	ctx := context.Background()

	first, err := h.Create(ctx, review(1, "First"))
	require.NoError(t, err)
	second, err := h.Create(ctx, review(5, "Untouched"))
	require.NoError(t, err)

	_, err = h.Update(ctx, first.ID, review(2, "Changed"))
	require.NoError(t, err)

	found, err := h.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, second, found)
}

func TestHandler_Kind(t *testing.T) {
	h := New[domain.Article]("Article", repository.NewMemoryRepository[domain.Article]("article"), nil)
	assert.Equal(t, "Article", h.Kind())
}
