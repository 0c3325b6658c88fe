package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "abc", NormalizeTag(" ABC "))
	assert.Equal(t, "", NormalizeTag("   "))
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, nil},
		{"blanks only", []string{"", "  "}, nil},
		{"dedup and sort", []string{"B", "a", "b", " A "}, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.in))
		})
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"commas", "a,b,c", []string{"a", "b", "c"}},
		{"semicolons", "a;b", []string{"a", "b"}},
		{"whitespace", "a b\tc", []string{"a", "b", "c"}},
		{"mixed separators", "a, b;  c", []string{"a", "b", "c"}},
		{"joined form", "hello, world", []string{"hello", "world"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.in))
		})
	}
}

func TestBookmarkEditRoundTrip(t *testing.T) {
	b := NewBookmark("owner", "https://x.com", "title", "world", "hello")
	e := NewBookmarkEdit(b)

	assert.Equal(t, b.ID, e.OriginalID)
	assert.Equal(t, "hello, world", e.TagsAsString)

	rebuilt := e.Bookmark()
	assert.True(t, b.Equal(rebuilt))
	assert.Equal(t, b.Tags, rebuilt.Tags)
}

func TestBookmarkEditRekeysOnURLChange(t *testing.T) {
	b := NewBookmark("owner", "https://x.com", "title")
	e := NewBookmarkEdit(b)
	e.URL = "https://y.com"

	rebuilt := e.Bookmark()
	assert.False(t, b.Equal(rebuilt))
	assert.Equal(t, b.ID, e.OriginalID, "original id must survive for delete-then-save")
}
