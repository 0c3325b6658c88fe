package redis

const (
	// KeyPrefixBookmark is the prefix for bookmark document keys
	KeyPrefixBookmark = "tagmark:bookmark:"
	// KeyAllBookmarks is the key for the set of all bookmark IDs
	KeyAllBookmarks = "tagmark:bookmarks:all"
	// KeyPrefixOwner is the prefix for per-owner index sets
	KeyPrefixOwner = "tagmark:owner:"
	// KeyPrefixTag is the prefix for per-tag index sets
	KeyPrefixTag = "tagmark:tag:"
)

// BookmarkKey returns the Redis key for a bookmark document
func BookmarkKey(id string) string {
	return KeyPrefixBookmark + id
}

// AllBookmarksKey returns the Redis key for the set of all bookmark IDs
func AllBookmarksKey() string {
	return KeyAllBookmarks
}

// OwnerKey returns the Redis key for an owner's index set
func OwnerKey(owner string) string {
	return KeyPrefixOwner + owner
}

// TagKey returns the Redis key for a tag's index set
func TagKey(tag string) string {
	return KeyPrefixTag + tag
}

// TagKeys returns the index set keys for a list of tags
func TagKeys(tags []string) []string {
	keys := make([]string, 0, len(tags))
	for _, tag := range tags {
		keys = append(keys, TagKey(tag))
	}
	return keys
}
