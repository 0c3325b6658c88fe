// Package redis implements the bookmark store on Redis. Each bookmark is
// a JSON document under its own key; membership, per-owner and per-tag
// index sets keep the query side cheap. A single Redis instance with
// atomic per-document SET gives read-after-write consistency.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tagmark/tagmark/internal/domain"
	"github.com/tagmark/tagmark/internal/store"
)

// Store handles Redis operations for bookmarks.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

var _ store.Store = (*Store)(nil)

// Put stores a bookmark and maintains the membership, owner and tag
// index sets. Tag entries that disappeared since the last save of the
// same document are scrubbed.
func (s *Store) Put(ctx context.Context, b *domain.Bookmark) error {
	prev, err := s.GetByID(ctx, b.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}

	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal bookmark: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, BookmarkKey(b.ID), data, 0)
	pipe.SAdd(ctx, AllBookmarksKey(), b.ID)
	pipe.SAdd(ctx, OwnerKey(b.Owner), b.ID)
	for _, tag := range b.Tags {
		pipe.SAdd(ctx, TagKey(tag), b.ID)
	}
	if prev != nil {
		for _, tag := range prev.Tags {
			if !b.HasTag(tag) {
				pipe.SRem(ctx, TagKey(tag), b.ID)
			}
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save bookmark: %w", err)
	}
	return nil
}

// PutAll stores multiple bookmarks. Index scrubbing works the same as in
// Put, one pre-read per document.
func (s *Store) PutAll(ctx context.Context, bookmarks []*domain.Bookmark) error {
	for _, b := range bookmarks {
		if err := s.Put(ctx, b); err != nil {
			return fmt.Errorf("failed to save bookmark %s: %w", b.ID, err)
		}
	}
	return nil
}

// Delete removes a bookmark and its index entries. Deleting an absent id
// is a no-op, not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	b, err := s.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, BookmarkKey(id))
	pipe.SRem(ctx, AllBookmarksKey(), id)
	pipe.SRem(ctx, OwnerKey(b.Owner), id)
	for _, tag := range b.Tags {
		pipe.SRem(ctx, TagKey(tag), id)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	return nil
}

// DeleteByIDs removes all given bookmarks, skipping absent ids.
func (s *Store) DeleteByIDs(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if err := s.Delete(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// DeleteAll removes every bookmark and all index sets.
func (s *Store) DeleteAll(ctx context.Context) error {
	ids, err := s.client.SMembers(ctx, AllBookmarksKey()).Result()
	if err != nil {
		return fmt.Errorf("failed to get bookmark IDs: %w", err)
	}
	return s.DeleteByIDs(ctx, ids)
}

// GetByID retrieves a bookmark by id, store.ErrNotFound when absent.
func (s *Store) GetByID(ctx context.Context, id string) (*domain.Bookmark, error) {
	data, err := s.client.Get(ctx, BookmarkKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}

	var b domain.Bookmark
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookmark: %w", err)
	}
	return &b, nil
}

// GetAll retrieves every bookmark.
func (s *Store) GetAll(ctx context.Context) ([]*domain.Bookmark, error) {
	ids, err := s.client.SMembers(ctx, AllBookmarksKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmark IDs: %w", err)
	}
	return s.fetchMany(ctx, ids)
}

// fetchMany loads bookmark documents via MGET. IDs whose document has
// vanished between the index read and the fetch are skipped.
func (s *Store) fetchMany(ctx context.Context, ids []string) ([]*domain.Bookmark, error) {
	if len(ids) == 0 {
		return []*domain.Bookmark{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, BookmarkKey(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookmarks: %w", err)
	}

	bookmarks := make([]*domain.Bookmark, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var b domain.Bookmark
		if err := json.Unmarshal([]byte(raw), &b); err != nil {
			continue
		}
		bookmarks = append(bookmarks, &b)
	}
	return bookmarks, nil
}
