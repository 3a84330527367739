package feed

import (
	"context"

	"github.com/go-pkgz/lgr"

	"github.com/galodniy13-art/tg-autoposter-saas/pkg/dedup"
	"github.com/galodniy13-art/tg-autoposter-saas/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher

// Fetcher retrieves and parses RSS/Atom feeds
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]Entry, error)
}

// Selector picks the next feed entry to publish for a tenant
type Selector struct {
	fetcher Fetcher
}

// NewSelector creates a selector over the given fetcher
func NewSelector(fetcher Fetcher) *Selector {
	return &Selector{fetcher: fetcher}
}

// PickNewestUnseen scans all configured sources of a tenant and returns the
// single best unseen entry by (published time, title), or nil when every
// source is empty, unreadable or fully deduplicated. A failing source is
// logged and treated as empty, it never aborts the scan of the others.
func (s *Selector) PickNewestUnseen(ctx context.Context, tenant *domain.Tenant) *domain.Candidate {
	var best *domain.Candidate

	for _, feedURL := range tenant.Feeds {
		entries, err := s.fetcher.Fetch(ctx, feedURL)
		if err != nil {
			lgr.Printf("[WARN] tenant %d: feed %s unavailable: %v", tenant.ID, feedURL, err)
			continue
		}

		limit := tenant.FetchEntriesPerFeed
		if limit <= 0 || limit > len(entries) {
			limit = len(entries)
		}

		for _, entry := range entries[:limit] {
			if entry.Link == "" {
				continue
			}
			link := dedup.Normalize(entry.Link)
			if tenant.IsSeen(link) {
				continue
			}

			candidate := domain.Candidate{
				Published: entry.Published,
				Title:     entry.Title,
				Link:      link,
				FeedURL:   feedURL,
			}
			if best == nil || candidate.Better(*best) {
				c := candidate
				best = &c
			}
		}
	}

	return best
}

// ExtractSummary re-fetches the candidate's source and returns the cleaned
// summary of the entry whose normalized link matches. Empty string when the
// entry is gone or the source fails, the caller copes with a bare title.
func (s *Selector) ExtractSummary(ctx context.Context, candidate *domain.Candidate, limit int) string {
	entries, err := s.fetcher.Fetch(ctx, candidate.FeedURL)
	if err != nil {
		lgr.Printf("[WARN] summary lookup failed for %s: %v", candidate.FeedURL, err)
		return ""
	}

	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}
	for _, entry := range entries[:limit] {
		if entry.Link == "" {
			continue
		}
		if dedup.Normalize(entry.Link) == candidate.Link {
			return entry.Summary
		}
	}
	return ""
}
