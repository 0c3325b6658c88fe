// Package memory provides an in-process Store used by the test harness
// and by the storage-free dev mode. Reads are strongly consistent.
package memory

import (
	"context"
	"sync"

	"github.com/tagmark/tagmark/internal/domain"
	"github.com/tagmark/tagmark/internal/store"
)

// Store keeps bookmarks in a mutex-guarded map keyed by id. All results
// are deep copies, callers never observe shared state.
type Store struct {
	mu        sync.RWMutex
	bookmarks map[string]*domain.Bookmark
}

// New creates an empty memory store.
func New() *Store {
	return &Store{
		bookmarks: make(map[string]*domain.Bookmark),
	}
}

var _ store.Store = (*Store)(nil)

// Put stores a copy of the bookmark, replacing any previous document
// with the same id.
func (s *Store) Put(_ context.Context, b *domain.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookmarks[b.ID] = b.Clone()
	return nil
}

// PutAll stores copies of all given bookmarks.
func (s *Store) PutAll(_ context.Context, bookmarks []*domain.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range bookmarks {
		s.bookmarks[b.ID] = b.Clone()
	}
	return nil
}

// Delete removes a bookmark. Absent ids are not an error.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.bookmarks, id)
	return nil
}

// DeleteByIDs removes all given ids, skipping absent ones.
func (s *Store) DeleteByIDs(_ context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		delete(s.bookmarks, id)
	}
	return nil
}

// DeleteAll empties the store.
func (s *Store) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookmarks = make(map[string]*domain.Bookmark)
	return nil
}

// GetByID returns a copy of the bookmark or store.ErrNotFound.
func (s *Store) GetByID(_ context.Context, id string) (*domain.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookmarks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return b.Clone(), nil
}

// GetAll returns copies of every stored bookmark.
func (s *Store) GetAll(_ context.Context) ([]*domain.Bookmark, error) {
	return s.collect(func(*domain.Bookmark) bool { return true }), nil
}

func (s *Store) FindByOwner(_ context.Context, owner string) ([]*domain.Bookmark, error) {
	return s.collect(func(b *domain.Bookmark) bool {
		return b.Owner == owner
	}), nil
}

func (s *Store) FindByTitleContaining(_ context.Context, text string) ([]*domain.Bookmark, error) {
	return s.collect(func(b *domain.Bookmark) bool {
		return store.TitleContains(b.Title, text)
	}), nil
}

func (s *Store) FindByOwnerAndTitleContaining(_ context.Context, owner, text string) ([]*domain.Bookmark, error) {
	return s.collect(func(b *domain.Bookmark) bool {
		return b.Owner == owner && store.TitleContains(b.Title, text)
	}), nil
}

func (s *Store) FindByTagsAny(_ context.Context, tags []string) ([]*domain.Bookmark, error) {
	return s.collect(func(b *domain.Bookmark) bool {
		return hasAnyTag(b, tags)
	}), nil
}

func (s *Store) FindByOwnerAndTagsAny(_ context.Context, owner string, tags []string) ([]*domain.Bookmark, error) {
	return s.collect(func(b *domain.Bookmark) bool {
		return b.Owner == owner && hasAnyTag(b, tags)
	}), nil
}

func (s *Store) FindByTitleContainingAndTagsAny(_ context.Context, text string, tags []string) ([]*domain.Bookmark, error) {
	return s.collect(func(b *domain.Bookmark) bool {
		return store.TitleContains(b.Title, text) && hasAnyTag(b, tags)
	}), nil
}

func (s *Store) FindByOwnerAndTitleContainingAndTagsAny(_ context.Context, owner, text string, tags []string) ([]*domain.Bookmark, error) {
	return s.collect(func(b *domain.Bookmark) bool {
		return b.Owner == owner && store.TitleContains(b.Title, text) && hasAnyTag(b, tags)
	}), nil
}

// collect snapshots every bookmark matching the predicate.
func (s *Store) collect(match func(*domain.Bookmark) bool) []*domain.Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Bookmark, 0, len(s.bookmarks))
	for _, b := range s.bookmarks {
		if match(b) {
			out = append(out, b.Clone())
		}
	}
	return out
}

// hasAnyTag implements the OR/any-match tag contract.
func hasAnyTag(b *domain.Bookmark, tags []string) bool {
	for _, tag := range tags {
		if b.HasTag(tag) {
			return true
		}
	}
	return false
}

// Count returns the number of stored bookmarks.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.bookmarks)
}
