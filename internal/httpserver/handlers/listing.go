package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"github.com/tagmark/tagmark/internal/httpserver/deps"
	"github.com/tagmark/tagmark/internal/httpserver/mw"
	"github.com/tagmark/tagmark/internal/logger"
	"github.com/tagmark/tagmark/internal/session"
)

// nonWord collapses runs of anything that is not a word character, so
// "go web" matches a title like "go-web" or "go_web".
var nonWord = regexp.MustCompile(`\W+`)

// Listing serves the session's current bookmark listing. Optional
// selectTag / deselectTag query parameters mutate the selection before
// the listing is assembled, so a tag click is one GET.
func Listing(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel := mw.Selection(r.Context())

		if tag := r.URL.Query().Get("selectTag"); tag != "" {
			sel.AddSelectedTag(tag)
		}
		if tag := r.URL.Query().Get("deselectTag"); tag != "" {
			sel.RemoveSelectedTag(tag)
		}

		respondListing(w, r, d, sel)
	}
}

type searchRequest struct {
	Text string `json:"text"`
}

// Search sets the session's search text and serves the new listing.
// The text is normalized so punctuation and whitespace act as
// wildcards between the remaining word segments.
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel := mw.Selection(r.Context())

		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}

		text := strings.TrimSpace(req.Text)
		if text != "" {
			text = nonWord.ReplaceAllString(text, "*")
		}
		sel.SetSearchText(text)

		d.Logger.Debug("search text set", logger.String("text", text))
		respondListing(w, r, d, sel)
	}
}

// ClearSelection resets tags and search text and serves the full
// listing again.
func ClearSelection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel := mw.Selection(r.Context())
		sel.ClearSelection()
		respondListing(w, r, d, sel)
	}
}

type tagsResponse struct {
	Tags []string `json:"tags"`
}

// Tags serves the owner's distinct tags, independent of the session.
func Tags(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := d.Service.FindAllTags(r.Context(), mw.Owner(r.Context()))
		if err != nil {
			d.Logger.Error("failed to list tags", logger.Error(err))
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, tagsResponse{Tags: tags})
	}
}

func respondListing(w http.ResponseWriter, r *http.Request, d deps.Deps, sel *session.Selection) {
	listing, err := session.BuildListing(r.Context(), d.Service, sel, mw.Owner(r.Context()))
	if err != nil {
		d.Logger.Error("failed to build listing", logger.Error(err))
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}
