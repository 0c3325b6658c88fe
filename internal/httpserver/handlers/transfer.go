package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/tagmark/tagmark/internal/domain"
	"github.com/tagmark/tagmark/internal/httpserver/deps"
	"github.com/tagmark/tagmark/internal/httpserver/mw"
	"github.com/tagmark/tagmark/internal/logger"
)

// uploadEntry is one bookmark in an upload payload. Owner and id fields
// from the client are ignored.
type uploadEntry struct {
	URL   string   `json:"url"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

type uploadResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

const maxScrapeConcurrency = 8

// Upload imports a JSON array of bookmarks for the authenticated owner.
// Identities are recomputed server-side. Entries without a title get one
// scraped from the page when scraping is enabled; a failed scrape never
// fails the import.
func Upload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner := mw.Owner(ctx)

		var entries []uploadEntry
		if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}

		bookmarks := make([]*domain.Bookmark, 0, len(entries))
		skipped := 0
		for _, e := range entries {
			if e.URL == "" {
				skipped++
				continue
			}
			bookmarks = append(bookmarks, domain.NewBookmark(owner, e.URL, e.Title, e.Tags...))
		}

		if d.TitleScrapeOnAdd && d.Scraper != nil {
			scrapeMissingTitles(ctx, d, bookmarks)
		}

		if err := d.Service.SaveAll(ctx, bookmarks); err != nil {
			d.Logger.Error("failed to import bookmarks", logger.Error(err))
			writeStoreError(w, err)
			return
		}

		d.Logger.Info("imported bookmarks",
			logger.String("owner", owner),
			logger.Int("imported", len(bookmarks)),
			logger.Int("skipped", skipped))
		writeJSON(w, http.StatusOK, uploadResponse{Imported: len(bookmarks), Skipped: skipped})
	}
}

// scrapeMissingTitles fills empty titles concurrently, best effort.
func scrapeMissingTitles(ctx context.Context, d deps.Deps, bookmarks []*domain.Bookmark) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxScrapeConcurrency)

	for _, b := range bookmarks {
		if b.Title != "" {
			continue
		}
		b := b
		g.Go(func() error {
			title, err := d.Scraper.Title(ctx, b.URL)
			if err != nil {
				d.Logger.Debug("title scrape failed",
					logger.String("url", b.URL),
					logger.Error(err))
				return nil
			}
			b.Title = title
			return nil
		})
	}
	_ = g.Wait()
}

// Dump serves every bookmark of the authenticated owner as a JSON
// array, the inverse of Upload.
func Dump(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookmarks, err := d.Service.FindByOwner(r.Context(), mw.Owner(r.Context()))
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, bookmarks)
	}
}
