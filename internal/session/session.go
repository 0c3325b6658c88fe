// Package session holds the per-session selection state that drives
// incremental query refinement: the chosen tags, the search text and the
// assembly of a bookmark listing from them.
package session

import (
	"sort"
	"sync"
	"time"

	"github.com/tagmark/tagmark/internal/domain"
)

// Selection is the mutable selection state of one session. A session may
// receive concurrent requests (double-submitted forms), so every
// transition is serialized by the per-instance mutex and reads hand out
// copies, never the live set.
type Selection struct {
	mu           sync.Mutex
	createdAt    time.Time
	selectedTags map[string]struct{}
	searchText   string
}

// NewSelection creates an empty selection. The creation time is fixed
// here and survives ClearSelection.
func NewSelection() *Selection {
	return &Selection{
		createdAt:    time.Now(),
		selectedTags: make(map[string]struct{}),
	}
}

// AddSelectedTag adds a tag to the selected set. Blank tags are ignored;
// adding an already-selected tag is a no-op. Never fails.
func (s *Selection) AddSelectedTag(tag string) {
	tag = domain.NormalizeTag(tag)
	if tag == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedTags[tag] = struct{}{}
}

// RemoveSelectedTag removes a tag from the selected set. Blank or absent
// tags are ignored. Never fails.
func (s *Selection) RemoveSelectedTag(tag string) {
	tag = domain.NormalizeTag(tag)
	if tag == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.selectedTags, tag)
}

// SetSearchText replaces the search text. Whitespace-to-wildcard shaping
// is the caller's business; the selection stores what it is given.
func (s *Selection) SetSearchText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchText = text
}

// ClearSelection empties the selected tags and the search text. The
// creation time is untouched.
func (s *Selection) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchText = ""
	s.selectedTags = make(map[string]struct{})
}

// HasSelectCriteria reports whether any filter is active: at least one
// selected tag or a non-blank search text.
func (s *Selection) HasSelectCriteria() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selectedTags) > 0 || s.searchText != ""
}

// SelectedTags returns a sorted copy of the selected tags.
func (s *Selection) SelectedTags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedTagsLocked()
}

// SearchText returns the current search text, empty when unset.
func (s *Selection) SearchText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchText
}

// CreatedAt returns the immutable creation time.
func (s *Selection) CreatedAt() time.Time {
	return s.createdAt
}

// Snapshot returns the selected tags and search text as one consistent
// observation, so a caller dispatching a query does not mix two states.
func (s *Selection) Snapshot() (tags []string, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedTagsLocked(), s.searchText
}

func (s *Selection) sortedTagsLocked() []string {
	tags := make([]string, 0, len(s.selectedTags))
	for tag := range s.selectedTags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
