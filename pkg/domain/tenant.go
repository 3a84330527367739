package domain

import (
	"time"
)

// Mode defines how posts are produced for a tenant
type Mode string

const (
	ModeRSS     Mode = "rss"     // rewrite items from configured feeds
	ModeCreator Mode = "creator" // original posts from the creator profile
)

// Valid reports whether the mode is one of the known values
func (m Mode) Valid() bool {
	return m == ModeRSS || m == ModeCreator
}

// Tenant holds the full per-user state of the autoposter. One record per
// registered telegram user, mutated by command handlers and by the autopost
// loop after each publish attempt.
type Tenant struct {
	ID   int64 `json:"id"`
	Mode Mode  `json:"mode"`

	Channel        string   `json:"channel,omitempty"` // @channelname, must be set before posting
	Feeds          []string `json:"feeds,omitempty"`
	SeenLinks      []string `json:"seen_links,omitempty"` // normalized, FIFO-capped at MaxDedupe
	CreatorProfile string   `json:"creator_profile,omitempty"`
	StylePrompt    string   `json:"style_prompt,omitempty"`

	AutopostEnabled bool `json:"autopost_enabled"`
	IntervalMinutes int  `json:"interval_minutes"`

	ScheduleEnabled   bool     `json:"schedule_enabled"`
	ScheduleSlots     []string `json:"schedule_slots,omitempty"` // HH:MM, 24h
	LastSlotDate      string   `json:"last_slot_date,omitempty"` // YYYY-MM-DD of last fired slot
	LastSlotTime      string   `json:"last_slot_time,omitempty"` // HH:MM of last fired slot

	DailyLimit     int    `json:"daily_limit"`
	DailyCount     int    `json:"daily_count"`
	DailyResetDate string `json:"daily_reset_date"` // YYYY-MM-DD

	SubscriptionUntil string `json:"subscription_until,omitempty"` // YYYY-MM-DD, inclusive

	MaxDedupe         int `json:"max_dedupe"`
	FetchEntriesPerFeed int `json:"fetch_entries_per_feed"`
}

// Defaults describes the initial values for a freshly created tenant
type Defaults struct {
	IntervalMinutes     int
	DailyLimit          int
	MaxDedupe           int
	FetchEntriesPerFeed int
}

// NewTenant creates a tenant record with default settings
func NewTenant(id int64, d Defaults) *Tenant {
	return &Tenant{
		ID:                  id,
		Mode:                ModeRSS,
		AutopostEnabled:     false,
		IntervalMinutes:     d.IntervalMinutes,
		DailyLimit:          d.DailyLimit,
		DailyResetDate:      DateString(time.Now()),
		MaxDedupe:           d.MaxDedupe,
		FetchEntriesPerFeed: d.FetchEntriesPerFeed,
	}
}

// DateString formats a time as the calendar date used in tenant records
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// EnsureDailyCounter resets the daily counter when the stored date is not
// today. Safe to call on every access, mutates only on rollover.
func (t *Tenant) EnsureDailyCounter(now time.Time) {
	today := DateString(now)
	if t.DailyResetDate != today {
		t.DailyResetDate = today
		t.DailyCount = 0
	}
}

// CanPostMore reports whether the tenant is under the daily quota,
// resetting the counter first if the calendar day rolled over
func (t *Tenant) CanPostMore(now time.Time) bool {
	t.EnsureDailyCounter(now)
	return t.DailyCount < t.DailyLimit
}

// BumpDailyCount increments the daily counter after a confirmed publish
func (t *Tenant) BumpDailyCount(now time.Time) {
	t.EnsureDailyCounter(now)
	t.DailyCount++
}

// SubscriptionActive reports whether the tenant has a subscription valid
// through today. Date-only comparison, the last day is inclusive.
func (t *Tenant) SubscriptionActive(now time.Time) bool {
	if t.SubscriptionUntil == "" {
		return false
	}
	until, err := time.Parse("2006-01-02", t.SubscriptionUntil)
	if err != nil {
		return false
	}
	return DateString(now) <= DateString(until)
}

// IsSeen checks whether a normalized link was already published
func (t *Tenant) IsSeen(link string) bool {
	for _, l := range t.SeenLinks {
		if l == link {
			return true
		}
	}
	return false
}

// RecordSeen appends a normalized link to the seen window and evicts the
// oldest entries beyond MaxDedupe. FIFO on insertion order, not access.
// Re-recording a link already in the window is a no-op, a repeated link
// must not occupy a second slot.
func (t *Tenant) RecordSeen(link string) {
	if t.IsSeen(link) {
		return
	}
	t.SeenLinks = append(t.SeenLinks, link)
	if t.MaxDedupe > 0 && len(t.SeenLinks) > t.MaxDedupe {
		t.SeenLinks = t.SeenLinks[len(t.SeenLinks)-t.MaxDedupe:]
	}
}

// UseSchedule reports whether fixed-slot cadence drives this tenant.
// Takes precedence over the interval cadence when enabled with slots.
func (t *Tenant) UseSchedule() bool {
	return t.ScheduleEnabled && len(t.ScheduleSlots) > 0
}

// SlotFired reports whether the given HH:MM slot already fired today
func (t *Tenant) SlotFired(now time.Time, slot string) bool {
	return t.LastSlotDate == DateString(now) && t.LastSlotTime == slot
}

// MarkSlotFired records that a slot fired, preventing a re-fire within the
// same minute window across ticks
func (t *Tenant) MarkSlotFired(now time.Time, slot string) {
	t.LastSlotDate = DateString(now)
	t.LastSlotTime = slot
}

// HasSlot checks membership of an HH:MM value in the configured slots
func (t *Tenant) HasSlot(slot string) bool {
	for _, s := range t.ScheduleSlots {
		if s == slot {
			return true
		}
	}
	return false
}
