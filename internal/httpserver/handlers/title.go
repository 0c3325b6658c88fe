package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tagmark/tagmark/internal/httpserver/deps"
	"github.com/tagmark/tagmark/internal/httpserver/mw"
	"github.com/tagmark/tagmark/internal/logger"
)

type titleRequest struct {
	URL string `json:"url"`
}

type titleResponse struct {
	Title string `json:"title"`
}

// Title fetches the page title for a url so the client can pre-fill an
// edit form. A page without a usable title answers 204.
func Title(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Scraper == nil {
			writeError(w, http.StatusServiceUnavailable, "title scraping disabled")
			return
		}

		var req titleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
			writeError(w, http.StatusBadRequest, "url is required")
			return
		}

		title, err := d.Scraper.Title(r.Context(), req.URL)
		if err != nil {
			d.Logger.Debug("title scrape failed",
				logger.String("url", req.URL),
				logger.String("owner", mw.Owner(r.Context())),
				logger.Error(err))
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if title == "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, titleResponse{Title: title})
	}
}
