// Package store defines the storage capability the bookmark service is
// built against. Every tags query is OR/any-match by contract; conjunctive
// narrowing happens in the service layer, never here.
package store

import (
	"context"
	"errors"
	"strings"

	"github.com/tagmark/tagmark/internal/domain"
)

// ErrNotFound is returned by GetByID when no bookmark has the given id.
var ErrNotFound = errors.New("bookmark not found")

// Store is the minimal surface a backing document store has to provide.
// Implementations must offer per-document atomic Put/Delete; Delete of an
// absent id is not an error.
type Store interface {
	Put(ctx context.Context, b *domain.Bookmark) error
	PutAll(ctx context.Context, bookmarks []*domain.Bookmark) error
	Delete(ctx context.Context, id string) error
	DeleteByIDs(ctx context.Context, ids []string) error
	DeleteAll(ctx context.Context) error

	GetByID(ctx context.Context, id string) (*domain.Bookmark, error)
	GetAll(ctx context.Context) ([]*domain.Bookmark, error)

	FindByOwner(ctx context.Context, owner string) ([]*domain.Bookmark, error)
	FindByTitleContaining(ctx context.Context, text string) ([]*domain.Bookmark, error)
	FindByOwnerAndTitleContaining(ctx context.Context, owner, text string) ([]*domain.Bookmark, error)
	FindByTagsAny(ctx context.Context, tags []string) ([]*domain.Bookmark, error)
	FindByOwnerAndTagsAny(ctx context.Context, owner string, tags []string) ([]*domain.Bookmark, error)
	FindByTitleContainingAndTagsAny(ctx context.Context, text string, tags []string) ([]*domain.Bookmark, error)
	FindByOwnerAndTitleContainingAndTagsAny(ctx context.Context, owner, text string, tags []string) ([]*domain.Bookmark, error)
}

// TitleContains implements the case-insensitive contains contract shared
// by the bundled store implementations. A '*' in the pattern matches any
// run of characters, so upstream wildcard shaping ("foo bar" -> "foo*bar")
// keeps working; the pieces must appear in order.
func TitleContains(title, pattern string) bool {
	if pattern == "" {
		return true
	}
	title = strings.ToLower(title)
	for _, part := range strings.Split(strings.ToLower(pattern), "*") {
		if part == "" {
			continue
		}
		idx := strings.Index(title, part)
		if idx < 0 {
			return false
		}
		title = title[idx+len(part):]
	}
	return true
}
