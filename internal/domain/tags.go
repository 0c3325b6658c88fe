package domain

import (
	"sort"
	"strings"
)

// NormalizeTag applies the shared tag rule: trim surrounding whitespace
// and lowercase. An empty result means the tag must be dropped.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// NormalizeTags normalizes every tag, drops blanks, dedups and returns
// the result sorted ascending.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = NormalizeTag(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}

// ParseTags splits a display string on commas, semicolons and whitespace
// and normalizes the parts. Inverse of Bookmark.JoinedTags up to order.
func ParseTags(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	return NormalizeTags(parts)
}
