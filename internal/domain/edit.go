package domain

// BookmarkEdit is the editable form of a bookmark: tags travel as a
// single joined string so they can round-trip through an edit form or a
// JSON payload. OriginalID keeps the pre-edit identity so an update that
// changes the url can delete the old document.
type BookmarkEdit struct {
	OriginalID   string `json:"originalId"`
	Owner        string `json:"owner"`
	URL          string `json:"url" validate:"required"`
	Title        string `json:"title"`
	TagsAsString string `json:"tagsAsString"`
}

// NewBookmarkEdit initializes the edit form from an existing bookmark.
func NewBookmarkEdit(b *Bookmark) *BookmarkEdit {
	return &BookmarkEdit{
		OriginalID:   b.ID,
		Owner:        b.Owner,
		URL:          b.URL,
		Title:        b.Title,
		TagsAsString: b.JoinedTags(),
	}
}

// Bookmark builds a fresh bookmark from the edited data, parsing the
// joined tag string back into a tag set.
func (e *BookmarkEdit) Bookmark() *Bookmark {
	return NewBookmark(e.Owner, e.URL, e.Title, ParseTags(e.TagsAsString)...)
}
