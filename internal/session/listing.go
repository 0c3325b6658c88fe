package session

import (
	"context"
	"sort"

	"github.com/tagmark/tagmark/internal/domain"
)

// Finder is the slice of the query engine the listing assembly needs.
type Finder interface {
	FindByTitle(ctx context.Context, owner, text string) ([]*domain.Bookmark, error)
	FindByTags(ctx context.Context, owner string, tags []string) ([]*domain.Bookmark, error)
	FindByTitleAndTags(ctx context.Context, owner, text string, tags []string) ([]*domain.Bookmark, error)
	FindAllTags(ctx context.Context, owner string) ([]string, error)
}

// Listing is one assembled view over an owner's bookmarks: the matching
// bookmarks plus the tag palette to offer next.
type Listing struct {
	Bookmarks     []*domain.Bookmark `json:"bookmarks"`
	AvailableTags []string           `json:"availableTags"`
	SelectedTags  []string           `json:"selectedTags"`
	SearchText    string             `json:"searchText"`
}

// BuildListing assembles the listing for the session's current selection.
//
// Without active criteria the bookmark list stays empty and the palette
// is the owner's full tag set. With criteria the query engine is
// dispatched on the precedence table (tags only, text only, both) and
// the palette becomes the tags of the returned bookmarks minus the
// already-selected ones, so the palette narrows as the selection grows.
func BuildListing(ctx context.Context, finder Finder, sel *Selection, owner string) (*Listing, error) {
	selectedTags, searchText := sel.Snapshot()

	listing := &Listing{
		Bookmarks:     []*domain.Bookmark{},
		AvailableTags: []string{},
		SelectedTags:  selectedTags,
		SearchText:    searchText,
	}

	if len(selectedTags) == 0 && searchText == "" {
		tags, err := finder.FindAllTags(ctx, owner)
		if err != nil {
			return nil, err
		}
		listing.AvailableTags = tags
		return listing, nil
	}

	var (
		bookmarks []*domain.Bookmark
		err       error
	)
	switch {
	case searchText == "":
		bookmarks, err = finder.FindByTags(ctx, owner, selectedTags)
	case len(selectedTags) == 0:
		bookmarks, err = finder.FindByTitle(ctx, owner, searchText)
	default:
		bookmarks, err = finder.FindByTitleAndTags(ctx, owner, searchText, selectedTags)
	}
	if err != nil {
		return nil, err
	}

	listing.Bookmarks = bookmarks
	listing.AvailableTags = availableTags(bookmarks, selectedTags)
	return listing, nil
}

// availableTags is the distinct union of tags on the returned bookmarks
// minus the already-selected ones, sorted for stable display.
func availableTags(bookmarks []*domain.Bookmark, selected []string) []string {
	chosen := make(map[string]struct{}, len(selected))
	for _, tag := range selected {
		chosen[tag] = struct{}{}
	}

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, b := range bookmarks {
		for _, tag := range b.Tags {
			if _, ok := chosen[tag]; ok {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	sort.Strings(out)
	return out
}
