package domain

import (
	"crypto/md5" //nolint:gosec // identity fingerprint, not a security boundary
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Bookmark represents a stored URL belonging to a single owner.
// Identity is derived from (owner, url): two bookmarks with the same
// lowercased owner and the same url are the same bookmark, whatever
// their title or tags.
type Bookmark struct {
	// ID is the canonical unique identifier.
	// Derived as hex(md5(lowercase(owner) + "-" + url)), 32 lowercase
	// hex characters. Recomputed whenever owner or url change.
	ID string `json:"id"`

	// Owner is the account the bookmark belongs to.
	// Always stored lowercased.
	Owner string `json:"owner"`

	// URL is stored as the caller supplied it, no normalization.
	URL string `json:"url"`

	// Title is free text.
	Title string `json:"title"`

	// Tags is kept sorted ascending with set semantics: every entry is
	// trimmed and lowercased, never empty, never duplicated. Mutate via
	// AddTag/ClearTags only.
	Tags []string `json:"tags,omitempty"`
}

// NewBookmark builds a bookmark with a derived ID. Tags run through the
// shared normalizer; blank tags are dropped silently.
func NewBookmark(owner, url, title string, tags ...string) *Bookmark {
	b := &Bookmark{
		Owner: strings.ToLower(owner),
		URL:   url,
		Title: title,
	}
	b.rekey()
	for _, tag := range tags {
		b.AddTag(tag)
	}
	return b
}

// SetOwner stores the lowercased owner and recomputes the ID.
func (b *Bookmark) SetOwner(owner string) {
	b.Owner = strings.ToLower(owner)
	b.rekey()
}

// SetURL stores the url as-is and recomputes the ID.
func (b *Bookmark) SetURL(url string) {
	b.URL = url
	b.rekey()
}

// rekey derives the ID from the current (owner, url) pair. Deterministic
// and stable across restarts, which upsert-by-identity relies on.
func (b *Bookmark) rekey() {
	sum := md5.Sum([]byte(strings.ToLower(b.Owner) + "-" + b.URL)) //nolint:gosec
	b.ID = hex.EncodeToString(sum[:])
}

// AddTag normalizes the tag and inserts it into the tag set. Blank and
// duplicate tags are absorbed silently. Returns the bookmark for chaining.
func (b *Bookmark) AddTag(tag string) *Bookmark {
	tag = NormalizeTag(tag)
	if tag == "" {
		return b
	}
	i := sort.SearchStrings(b.Tags, tag)
	if i < len(b.Tags) && b.Tags[i] == tag {
		return b
	}
	b.Tags = append(b.Tags, "")
	copy(b.Tags[i+1:], b.Tags[i:])
	b.Tags[i] = tag
	return b
}

// ClearTags empties the tag set. The ID is untouched.
func (b *Bookmark) ClearTags() {
	b.Tags = nil
}

// HasTag reports whether the bookmark carries the given (normalized) tag.
func (b *Bookmark) HasTag(tag string) bool {
	tag = NormalizeTag(tag)
	i := sort.SearchStrings(b.Tags, tag)
	return i < len(b.Tags) && b.Tags[i] == tag
}

// HasAllTags reports whether the bookmark's tag set is a superset of tags.
func (b *Bookmark) HasAllTags(tags []string) bool {
	for _, tag := range tags {
		if !b.HasTag(tag) {
			return false
		}
	}
	return true
}

// JoinedTags returns the tags sorted ascending, joined with ", ".
// Round-trips through ParseTags (order aside).
func (b *Bookmark) JoinedTags() string {
	return strings.Join(b.Tags, ", ")
}

// Equal reports identity equality: same ID, nothing else considered.
func (b *Bookmark) Equal(other *Bookmark) bool {
	return other != nil && b.ID == other.ID
}

// Clone returns a deep copy, so stores can hand out snapshots without
// exposing shared tag slices.
func (b *Bookmark) Clone() *Bookmark {
	c := *b
	if b.Tags != nil {
		c.Tags = append([]string(nil), b.Tags...)
	}
	return &c
}

func (b *Bookmark) String() string {
	return fmt.Sprintf("Bookmark(owner=%q url=%q title=%q id=%s tags=%v)",
		b.Owner, b.URL, b.Title, b.ID, b.Tags)
}
