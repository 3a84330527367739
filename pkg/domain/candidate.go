package domain

import "time"

// Candidate is an unseen feed entry picked for publishing. Produced fresh
// on each selection pass, never persisted.
type Candidate struct {
	Published time.Time // zero when the source gave no timestamp
	Title     string
	Link      string // normalized, used as the dedup key
	FeedURL   string // source the entry came from
}

// Better reports whether c outranks other by the selection key
// (published time, then title). Entries with a real timestamp always
// outrank timestamp-less ones because the zero time sorts lowest.
func (c Candidate) Better(other Candidate) bool {
	if !c.Published.Equal(other.Published) {
		return c.Published.After(other.Published)
	}
	return c.Title > other.Title
}
