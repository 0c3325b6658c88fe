package redis

import (
	"context"
	"fmt"

	"github.com/tagmark/tagmark/internal/domain"
	"github.com/tagmark/tagmark/internal/store"
)

// FindByOwner returns every bookmark in the owner's index set.
func (s *Store) FindByOwner(ctx context.Context, owner string) ([]*domain.Bookmark, error) {
	ids, err := s.client.SMembers(ctx, OwnerKey(owner)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get owner index: %w", err)
	}
	return s.fetchMany(ctx, ids)
}

// FindByTitleContaining filters the full document set on the
// case-insensitive contains contract. Titles are not indexed, so this is
// a fetch-and-filter.
func (s *Store) FindByTitleContaining(ctx context.Context, text string) ([]*domain.Bookmark, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterTitle(all, text), nil
}

// FindByOwnerAndTitleContaining filters the owner's bookmarks by title.
func (s *Store) FindByOwnerAndTitleContaining(ctx context.Context, owner, text string) ([]*domain.Bookmark, error) {
	byOwner, err := s.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	return filterTitle(byOwner, text), nil
}

// FindByTagsAny returns every bookmark carrying at least one of the given
// tags: the union of the tag index sets. Conjunctive narrowing is the
// service layer's job.
func (s *Store) FindByTagsAny(ctx context.Context, tags []string) ([]*domain.Bookmark, error) {
	if len(tags) == 0 {
		return []*domain.Bookmark{}, nil
	}
	ids, err := s.client.SUnion(ctx, TagKeys(tags)...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tag indexes: %w", err)
	}
	return s.fetchMany(ctx, ids)
}

// FindByOwnerAndTagsAny is FindByTagsAny scoped to one owner.
func (s *Store) FindByOwnerAndTagsAny(ctx context.Context, owner string, tags []string) ([]*domain.Bookmark, error) {
	any, err := s.FindByTagsAny(ctx, tags)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Bookmark, 0, len(any))
	for _, b := range any {
		if b.Owner == owner {
			out = append(out, b)
		}
	}
	return out, nil
}

// FindByTitleContainingAndTagsAny narrows the tags-any candidates by title.
func (s *Store) FindByTitleContainingAndTagsAny(ctx context.Context, text string, tags []string) ([]*domain.Bookmark, error) {
	any, err := s.FindByTagsAny(ctx, tags)
	if err != nil {
		return nil, err
	}
	return filterTitle(any, text), nil
}

// FindByOwnerAndTitleContainingAndTagsAny combines all three criteria.
func (s *Store) FindByOwnerAndTitleContainingAndTagsAny(ctx context.Context, owner, text string, tags []string) ([]*domain.Bookmark, error) {
	byOwner, err := s.FindByOwnerAndTagsAny(ctx, owner, tags)
	if err != nil {
		return nil, err
	}
	return filterTitle(byOwner, text), nil
}

func filterTitle(bookmarks []*domain.Bookmark, text string) []*domain.Bookmark {
	out := make([]*domain.Bookmark, 0, len(bookmarks))
	for _, b := range bookmarks {
		if store.TitleContains(b.Title, text) {
			out = append(out, b)
		}
	}
	return out
}
