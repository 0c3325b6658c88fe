package seed

import (
	"fmt"

	"github.com/tagmark/tagmark/internal/domain"
)

// Mapper converts fixture entries into domain bookmarks.
type Mapper struct{}

// NewMapper creates a seed mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapOwner converts one owner's fixture entries. Entries without a url
// are skipped; ids derive from (owner, url) like everywhere else.
func (m *Mapper) MapOwner(fixtures OwnerFixtures) ([]*domain.Bookmark, error) {
	if fixtures.Owner == "" {
		return nil, fmt.Errorf("seed fixtures without owner")
	}

	bookmarks := make([]*domain.Bookmark, 0, len(fixtures.Bookmarks))
	for _, entry := range fixtures.Bookmarks {
		if entry.URL == "" {
			continue
		}
		bookmarks = append(bookmarks, domain.NewBookmark(
			fixtures.Owner, entry.URL, entry.Title, entry.Tags...))
	}
	return bookmarks, nil
}
