package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagmark/tagmark/internal/domain"
	"github.com/tagmark/tagmark/internal/service"
	"github.com/tagmark/tagmark/internal/store"
	"github.com/tagmark/tagmark/internal/store/memory"
)

func seeded(t *testing.T, bookmarks ...*domain.Bookmark) *service.BookmarkService {
	t.Helper()
	s := memory.New()
	require.NoError(t, s.PutAll(context.Background(), bookmarks))
	return service.New(s)
}

func urls(bookmarks []*domain.Bookmark) []string {
	out := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		out = append(out, b.URL)
	}
	return out
}

func TestFindByTagsSupersetOnly(t *testing.T) {
	svc := seeded(t,
		domain.NewBookmark("o", "u1", "", "a", "b"),
		domain.NewBookmark("o", "u2", "", "a"),
		domain.NewBookmark("o", "u3", "", "b", "c"),
	)

	got, err := svc.FindByTags(context.Background(), "o", []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, got, 1, "a bookmark carrying only one required tag must be filtered out")
	assert.Equal(t, "u1", got[0].URL)
}

func TestFindByTagsSingleTag(t *testing.T) {
	svc := seeded(t,
		domain.NewBookmark("o", "u1", "", "a", "b"),
		domain.NewBookmark("o", "u2", "", "a"),
		domain.NewBookmark("o", "u3", "", "c"),
	)

	got, err := svc.FindByTags(context.Background(), "o", []string{"a"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"u1", "u2"}, urls(got))
}

func TestFindByTagsNormalizesRequiredTags(t *testing.T) {
	svc := seeded(t, domain.NewBookmark("o", "u1", "", "a", "b"))

	got, err := svc.FindByTags(context.Background(), "o", []string{" A ", "B", "b"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFindByTagsScopesOwner(t *testing.T) {
	svc := seeded(t,
		domain.NewBookmark("peter", "u1", "", "a"),
		domain.NewBookmark("work", "u1", "", "a"),
	)

	got, err := svc.FindByTags(context.Background(), "peter", []string{"a"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "peter", got[0].Owner)

	all, err := svc.FindByTags(context.Background(), "", []string{"a"})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFindByTitle(t *testing.T) {
	svc := seeded(t,
		domain.NewBookmark("o", "u1", "Go in Action"),
		domain.NewBookmark("o", "u2", "Rust in Action"),
		domain.NewBookmark("other", "u3", "Go elsewhere"),
	)

	got, err := svc.FindByTitle(context.Background(), "o", "go")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].URL)
}

func TestFindByTitleAndTags(t *testing.T) {
	svc := seeded(t,
		domain.NewBookmark("o", "u1", "Go in Action", "lang", "book"),
		domain.NewBookmark("o", "u2", "Go by Example", "lang"),
		domain.NewBookmark("o", "u3", "Cooking for two", "book"),
	)

	got, err := svc.FindByTitleAndTags(context.Background(), "o", "go", []string{"lang", "book"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].URL)
}

func TestFindAllTags(t *testing.T) {
	svc := seeded(t,
		domain.NewBookmark("o", "u1", "", "zeta", "alpha"),
		domain.NewBookmark("o", "u2", "", "alpha", "mid"),
		domain.NewBookmark("other", "u3", "", "foreign"),
	)

	got, err := svc.FindAllTags(context.Background(), "o")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, got)

	all, err := svc.FindAllTags(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "foreign", "mid", "zeta"}, all)
}

func TestDeleteByOwner(t *testing.T) {
	mem := memory.New()
	require.NoError(t, mem.PutAll(context.Background(), []*domain.Bookmark{
		domain.NewBookmark("peter", "u1", ""),
		domain.NewBookmark("peter", "u2", ""),
		domain.NewBookmark("work", "u1", ""),
	}))
	svc := service.New(mem)

	require.NoError(t, svc.DeleteByOwner(context.Background(), "peter"))

	assert.Equal(t, 1, mem.Count())
}

func TestDeleteBookmarkIdempotent(t *testing.T) {
	svc := seeded(t, domain.NewBookmark("o", "u1", ""))
	id := domain.NewBookmark("o", "u1", "").ID

	require.NoError(t, svc.DeleteBookmark(context.Background(), id))
	require.NoError(t, svc.DeleteBookmark(context.Background(), id))
}

func TestSaveUpsertsByIdentity(t *testing.T) {
	mem := memory.New()
	svc := service.New(mem)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, domain.NewBookmark("o", "u1", "first")))
	require.NoError(t, svc.Save(ctx, domain.NewBookmark("O", "u1", "second")))

	assert.Equal(t, 1, mem.Count())
}

// errStore lets single store calls fail, everything else is not expected
// to be reached.
type errStore struct {
	store.Store
	findByOwnerAndTagsAny func(ctx context.Context, owner string, tags []string) ([]*domain.Bookmark, error)
}

func (e *errStore) FindByOwnerAndTagsAny(ctx context.Context, owner string, tags []string) ([]*domain.Bookmark, error) {
	return e.findByOwnerAndTagsAny(ctx, owner, tags)
}

func TestStorageErrorsPropagateUnmodified(t *testing.T) {
	wantErr := errors.New("storage unavailable")
	svc := service.New(&errStore{
		findByOwnerAndTagsAny: func(context.Context, string, []string) ([]*domain.Bookmark, error) {
			return nil, wantErr
		},
	})

	_, err := svc.FindByTags(context.Background(), "o", []string{"a"})
	assert.ErrorIs(t, err, wantErr)
}

func TestFindByIDAbsent(t *testing.T) {
	svc := seeded(t)

	_, err := svc.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
