package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/tagmark/tagmark/internal/domain"
	"github.com/tagmark/tagmark/internal/httpserver/deps"
	"github.com/tagmark/tagmark/internal/httpserver/mw"
	"github.com/tagmark/tagmark/internal/logger"
)

var validate = validator.New()

// GetBookmark serves one bookmark of the authenticated owner as an
// editable form.
func GetBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := d.Service.FindByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if b.Owner != mw.Owner(r.Context()) {
			writeError(w, http.StatusNotFound, "bookmark not found")
			return
		}
		writeJSON(w, http.StatusOK, domain.NewBookmarkEdit(b))
	}
}

// SaveBookmark creates or updates a bookmark from an edit payload. The
// owner always comes from the authenticated user, never the payload. A
// url change moves the bookmark to a new identity, so the document
// under the original id is deleted first.
func SaveBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner := mw.Owner(ctx)

		var edit domain.BookmarkEdit
		if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}
		edit.Owner = owner
		edit.URL = strings.TrimSpace(edit.URL)
		if edit.URL != "" && !strings.Contains(edit.URL, "://") {
			edit.URL = "http://" + edit.URL
		}
		if err := validate.Struct(&edit); err != nil {
			writeError(w, http.StatusBadRequest, "url is required")
			return
		}

		b := edit.Bookmark()

		if edit.OriginalID != "" && edit.OriginalID != b.ID {
			prev, err := d.Service.FindByID(ctx, edit.OriginalID)
			if err == nil && prev.Owner == owner {
				if err := d.Service.DeleteBookmark(ctx, edit.OriginalID); err != nil {
					d.Logger.Error("failed to delete replaced bookmark",
						logger.String("id", edit.OriginalID),
						logger.Error(err))
					writeStoreError(w, err)
					return
				}
			}
		}

		if err := d.Service.Save(ctx, b); err != nil {
			d.Logger.Error("failed to save bookmark",
				logger.String("id", b.ID),
				logger.Error(err))
			writeStoreError(w, err)
			return
		}

		d.Logger.Info("saved bookmark",
			logger.String("id", b.ID),
			logger.String("owner", b.Owner),
			logger.String("url", b.URL))
		writeJSON(w, http.StatusOK, b)
	}
}

// DeleteBookmark removes one bookmark of the authenticated owner.
// Deleting an absent id still answers 204.
func DeleteBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		b, err := d.Service.FindByID(ctx, id)
		if err == nil && b.Owner != mw.Owner(ctx) {
			writeError(w, http.StatusNotFound, "bookmark not found")
			return
		}

		if err := d.Service.DeleteBookmark(ctx, id); err != nil {
			writeStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
