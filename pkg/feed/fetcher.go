// Package feed retrieves RSS/Atom sources and selects the next entry to
// publish for a tenant.
package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
)

// Entry is a single parsed feed entry
type Entry struct {
	Title     string
	Link      string
	Summary   string
	Published time.Time // zero when the source gave no timestamp
}

// HTTPFetcher fetches RSS/Atom feeds via HTTP
type HTTPFetcher struct {
	parser    *gofeed.Parser
	sanitizer *bluemonday.Policy
	timeout   time.Duration
}

// NewHTTPFetcher creates a new feed fetcher
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		parser:    gofeed.NewParser(),
		sanitizer: bluemonday.StrictPolicy(),
		timeout:   timeout,
	}
}

// Fetch retrieves and parses a feed from the given URL. Summaries are
// stripped of HTML markup and collapsed to single-space text.
func (f *HTTPFetcher) Fetch(ctx context.Context, feedURL string) ([]Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	parsed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entry := Entry{
			Title: item.Title,
			Link:  item.Link,
		}

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}
		entry.Summary = f.cleanText(summary)

		if item.PublishedParsed != nil {
			entry.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			entry.Published = *item.UpdatedParsed
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// cleanText strips HTML tags and normalizes whitespace to single spaces
func (f *HTTPFetcher) cleanText(s string) string {
	if s == "" {
		return ""
	}
	plain := f.sanitizer.Sanitize(s)
	return strings.Join(strings.Fields(plain), " ")
}
