// Package service holds the bookmark query engine. It translates a
// request shape (owner, title substring, required tags) into an exact
// result set on top of a store whose multi-tag lookup is OR/any-match
// only: the store over-fetches a disjunctive superset and the engine
// keeps the bookmarks whose tag set is a superset of the required tags.
package service

import (
	"context"
	"sort"

	"github.com/tagmark/tagmark/internal/domain"
	"github.com/tagmark/tagmark/internal/store"
)

// BookmarkService is the query engine. It is stateless and safe for
// concurrent use; storage errors propagate unmodified, no retries.
type BookmarkService struct {
	store store.Store
}

// New creates a bookmark service on top of a store.
func New(s store.Store) *BookmarkService {
	return &BookmarkService{store: s}
}

// FindAll returns every bookmark in the store.
func (s *BookmarkService) FindAll(ctx context.Context) ([]*domain.Bookmark, error) {
	return s.store.GetAll(ctx)
}

// FindByID retrieves a single bookmark; store.ErrNotFound when absent.
func (s *BookmarkService) FindByID(ctx context.Context, id string) (*domain.Bookmark, error) {
	return s.store.GetByID(ctx, id)
}

// FindByOwner returns all bookmarks of one owner.
func (s *BookmarkService) FindByOwner(ctx context.Context, owner string) ([]*domain.Bookmark, error) {
	return s.store.FindByOwner(ctx, owner)
}

// FindByTitle returns the bookmarks whose title contains text
// (case-insensitive). An empty owner means no owner scoping.
func (s *BookmarkService) FindByTitle(ctx context.Context, owner, text string) ([]*domain.Bookmark, error) {
	if owner == "" {
		return s.store.FindByTitleContaining(ctx, text)
	}
	return s.store.FindByOwnerAndTitleContaining(ctx, owner, text)
}

// FindByTags returns the bookmarks whose tag set is a superset of the
// required tags. The store only answers "any of these tags", so the
// broad candidate set is narrowed here; do not remove the narrowing even
// on a store with native AND support.
func (s *BookmarkService) FindByTags(ctx context.Context, owner string, tags []string) ([]*domain.Bookmark, error) {
	required := domain.NormalizeTags(tags)

	var (
		candidates []*domain.Bookmark
		err        error
	)
	if owner == "" {
		candidates, err = s.store.FindByTagsAny(ctx, required)
	} else {
		candidates, err = s.store.FindByOwnerAndTagsAny(ctx, owner, required)
	}
	if err != nil {
		return nil, err
	}
	return keepSupersets(candidates, required), nil
}

// FindByTitleAndTags combines the title filter with required tags, with
// the same superset narrowing as FindByTags.
func (s *BookmarkService) FindByTitleAndTags(ctx context.Context, owner, text string, tags []string) ([]*domain.Bookmark, error) {
	required := domain.NormalizeTags(tags)

	var (
		candidates []*domain.Bookmark
		err        error
	)
	if owner == "" {
		candidates, err = s.store.FindByTitleContainingAndTagsAny(ctx, text, required)
	} else {
		candidates, err = s.store.FindByOwnerAndTitleContainingAndTagsAny(ctx, owner, text, required)
	}
	if err != nil {
		return nil, err
	}
	return keepSupersets(candidates, required), nil
}

// FindAllTags returns the distinct tags across the owner's bookmarks
// (all bookmarks when owner is empty), sorted ascending.
func (s *BookmarkService) FindAllTags(ctx context.Context, owner string) ([]string, error) {
	var (
		bookmarks []*domain.Bookmark
		err       error
	)
	if owner == "" {
		bookmarks, err = s.store.GetAll(ctx)
	} else {
		bookmarks, err = s.store.FindByOwner(ctx, owner)
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, b := range bookmarks {
		for _, tag := range b.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// Save stores a bookmark, upserting by identity.
func (s *BookmarkService) Save(ctx context.Context, b *domain.Bookmark) error {
	return s.store.Put(ctx, b)
}

// SaveAll stores multiple bookmarks.
func (s *BookmarkService) SaveAll(ctx context.Context, bookmarks []*domain.Bookmark) error {
	return s.store.PutAll(ctx, bookmarks)
}

// DeleteBookmark removes a bookmark by id. Absent ids are a no-op.
func (s *BookmarkService) DeleteBookmark(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// DeleteByOwner removes every bookmark of one owner.
func (s *BookmarkService) DeleteByOwner(ctx context.Context, owner string) error {
	bookmarks, err := s.store.FindByOwner(ctx, owner)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		ids = append(ids, b.ID)
	}
	return s.store.DeleteByIDs(ctx, ids)
}

// DeleteAll removes every bookmark in the store.
func (s *BookmarkService) DeleteAll(ctx context.Context) error {
	return s.store.DeleteAll(ctx)
}

// keepSupersets is the conjunctive post-filter over an any-match
// candidate set.
func keepSupersets(candidates []*domain.Bookmark, required []string) []*domain.Bookmark {
	out := make([]*domain.Bookmark, 0, len(candidates))
	for _, b := range candidates {
		if b.HasAllTags(required) {
			out = append(out, b)
		}
	}
	return out
}
