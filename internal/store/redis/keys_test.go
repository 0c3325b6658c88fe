package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "tagmark:bookmark:abc123", BookmarkKey("abc123"))
	assert.Equal(t, "tagmark:owner:peter", OwnerKey("peter"))
	assert.Equal(t, "tagmark:tag:go", TagKey("go"))
	assert.Equal(t,
		[]string{"tagmark:tag:docs", "tagmark:tag:go"},
		TagKeys([]string{"docs", "go"}))
}
