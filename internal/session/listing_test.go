package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagmark/tagmark/internal/domain"
)

// mockFinder records which engine operation was dispatched.
type mockFinder struct {
	findByTitleFunc        func(ctx context.Context, owner, text string) ([]*domain.Bookmark, error)
	findByTagsFunc         func(ctx context.Context, owner string, tags []string) ([]*domain.Bookmark, error)
	findByTitleAndTagsFunc func(ctx context.Context, owner, text string, tags []string) ([]*domain.Bookmark, error)
	findAllTagsFunc        func(ctx context.Context, owner string) ([]string, error)
}

func (m *mockFinder) FindByTitle(ctx context.Context, owner, text string) ([]*domain.Bookmark, error) {
	return m.findByTitleFunc(ctx, owner, text)
}

func (m *mockFinder) FindByTags(ctx context.Context, owner string, tags []string) ([]*domain.Bookmark, error) {
	return m.findByTagsFunc(ctx, owner, tags)
}

func (m *mockFinder) FindByTitleAndTags(ctx context.Context, owner, text string, tags []string) ([]*domain.Bookmark, error) {
	return m.findByTitleAndTagsFunc(ctx, owner, text, tags)
}

func (m *mockFinder) FindAllTags(ctx context.Context, owner string) ([]string, error) {
	return m.findAllTagsFunc(ctx, owner)
}

func TestBuildListingNoCriteria(t *testing.T) {
	finder := &mockFinder{
		findAllTagsFunc: func(_ context.Context, owner string) ([]string, error) {
			assert.Equal(t, "peter", owner)
			return []string{"blog", "go"}, nil
		},
	}

	listing, err := BuildListing(context.Background(), finder, NewSelection(), "peter")
	require.NoError(t, err)

	assert.Empty(t, listing.Bookmarks, "no criteria means no query, empty result")
	assert.Equal(t, []string{"blog", "go"}, listing.AvailableTags)
	assert.Empty(t, listing.SelectedTags)
}

func TestBuildListingDispatchesTagsOnly(t *testing.T) {
	b := domain.NewBookmark("peter", "u1", "", "go", "web")
	finder := &mockFinder{
		findByTagsFunc: func(_ context.Context, owner string, tags []string) ([]*domain.Bookmark, error) {
			assert.Equal(t, "peter", owner)
			assert.Equal(t, []string{"go"}, tags)
			return []*domain.Bookmark{b}, nil
		},
	}

	sel := NewSelection()
	sel.AddSelectedTag("go")

	listing, err := BuildListing(context.Background(), finder, sel, "peter")
	require.NoError(t, err)

	assert.Equal(t, []*domain.Bookmark{b}, listing.Bookmarks)
	assert.Equal(t, []string{"web"}, listing.AvailableTags,
		"selected tags must not be offered again")
	assert.Equal(t, []string{"go"}, listing.SelectedTags)
}

func TestBuildListingDispatchesTextOnly(t *testing.T) {
	b := domain.NewBookmark("peter", "u1", "Go blog", "go")
	finder := &mockFinder{
		findByTitleFunc: func(_ context.Context, owner, text string) ([]*domain.Bookmark, error) {
			assert.Equal(t, "go*blog", text)
			return []*domain.Bookmark{b}, nil
		},
	}

	sel := NewSelection()
	sel.SetSearchText("go*blog")

	listing, err := BuildListing(context.Background(), finder, sel, "peter")
	require.NoError(t, err)

	assert.Len(t, listing.Bookmarks, 1)
	assert.Equal(t, []string{"go"}, listing.AvailableTags)
	assert.Equal(t, "go*blog", listing.SearchText)
}

func TestBuildListingDispatchesTextAndTags(t *testing.T) {
	called := false
	finder := &mockFinder{
		findByTitleAndTagsFunc: func(_ context.Context, owner, text string, tags []string) ([]*domain.Bookmark, error) {
			called = true
			assert.Equal(t, "go", text)
			assert.Equal(t, []string{"web"}, tags)
			return []*domain.Bookmark{}, nil
		},
	}

	sel := NewSelection()
	sel.SetSearchText("go")
	sel.AddSelectedTag("web")

	listing, err := BuildListing(context.Background(), finder, sel, "peter")
	require.NoError(t, err)

	assert.True(t, called)
	assert.Empty(t, listing.Bookmarks)
	assert.Empty(t, listing.AvailableTags)
}

func TestBuildListingNarrowsPalette(t *testing.T) {
	finder := &mockFinder{
		findByTagsFunc: func(context.Context, string, []string) ([]*domain.Bookmark, error) {
			return []*domain.Bookmark{
				domain.NewBookmark("o", "u1", "", "go", "web", "http"),
				domain.NewBookmark("o", "u2", "", "go", "cli"),
			}, nil
		},
	}

	sel := NewSelection()
	sel.AddSelectedTag("go")

	listing, err := BuildListing(context.Background(), finder, sel, "o")
	require.NoError(t, err)

	assert.Equal(t, []string{"cli", "http", "web"}, listing.AvailableTags)
}

func TestBuildListingPropagatesEngineErrors(t *testing.T) {
	wantErr := errors.New("storage unavailable")
	finder := &mockFinder{
		findByTagsFunc: func(context.Context, string, []string) ([]*domain.Bookmark, error) {
			return nil, wantErr
		},
	}

	sel := NewSelection()
	sel.AddSelectedTag("go")

	_, err := BuildListing(context.Background(), finder, sel, "o")
	assert.ErrorIs(t, err, wantErr)
}
