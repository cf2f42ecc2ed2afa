package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/enarroied/get-amm/internal/config"
)

// The current dataset release is published as a link whose href carries
// this marker on the catalogue page.
const archiveMarker = "-utf8.zip"

var ErrArchiveLinkNotFound = errors.New("no link matching " + archiveMarker + " on the catalogue page")

type Locator struct {
	cfg        config.Config
	httpClient *http.Client
}

func NewLocator(cfg config.Config) *Locator {
	return &Locator{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutMs) * time.Millisecond},
	}
}

// FindArchiveURL scans the catalogue page anchors in document order and
// returns the first href containing the archive marker.
func (l *Locator) FindArchiveURL(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.CatalogueURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch catalogue page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("catalogue page status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse catalogue page: %w", err)
	}

	found := ""
	doc.Find("a").EachWithBreak(func(_ int, anchor *goquery.Selection) bool {
		href, ok := anchor.Attr("href")
		if ok && strings.Contains(href, archiveMarker) {
			found = href
			return false
		}
		return true
	})

	if found == "" {
		return "", ErrArchiveLinkNotFound
	}
	return found, nil
}
