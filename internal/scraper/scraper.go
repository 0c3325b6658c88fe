// Package scraper fetches the <title> of a web page so new bookmarks
// can be pre-filled with something better than the raw url.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Scraper fetches page titles over HTTP.
type Scraper struct {
	client    *http.Client
	userAgent string
}

// New creates a title scraper. A zero timeout falls back to 5s so a
// slow site cannot stall bookmark creation.
func New(timeout time.Duration, userAgent string) *Scraper {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Scraper{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Title fetches the page and returns its trimmed <title> text. An empty
// string with nil error means the page has no usable title.
func (s *Scraper) Title(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build title request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}

	return strings.TrimSpace(doc.Find("title").First().Text()), nil
}
