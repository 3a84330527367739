package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenant_DailyCounter(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	t.Run("resets on date rollover", func(t *testing.T) {
		tenant := &Tenant{DailyLimit: 10, DailyCount: 10, DailyResetDate: "2025-06-01"}
		assert.True(t, tenant.CanPostMore(now), "quota should reset on a new day")
		assert.Equal(t, 0, tenant.DailyCount)
		assert.Equal(t, "2025-06-02", tenant.DailyResetDate)
	})

	t.Run("blocks when limit reached today", func(t *testing.T) {
		tenant := &Tenant{DailyLimit: 2, DailyCount: 2, DailyResetDate: "2025-06-02"}
		assert.False(t, tenant.CanPostMore(now))
	})

	t.Run("bump increments within the day", func(t *testing.T) {
		tenant := &Tenant{DailyLimit: 10, DailyResetDate: "2025-06-02"}
		tenant.BumpDailyCount(now)
		tenant.BumpDailyCount(now)
		assert.Equal(t, 2, tenant.DailyCount)
		assert.True(t, tenant.DailyCount <= tenant.DailyLimit)
	})
}

func TestTenant_SubscriptionActive(t *testing.T) {
	now := time.Date(2025, 6, 2, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name  string
		until string
		want  bool
	}{
		{"not set", "", false},
		{"expired yesterday", "2025-06-01", false},
		{"last day inclusive", "2025-06-02", true},
		{"valid future", "2025-12-31", true},
		{"malformed date", "not-a-date", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tenant := &Tenant{SubscriptionUntil: tt.until}
			assert.Equal(t, tt.want, tenant.SubscriptionActive(now))
		})
	}
}

func TestTenant_SeenLinks(t *testing.T) {
	t.Run("record and check", func(t *testing.T) {
		tenant := &Tenant{MaxDedupe: 100}
		assert.False(t, tenant.IsSeen("https://example.com/a"))
		tenant.RecordSeen("https://example.com/a")
		assert.True(t, tenant.IsSeen("https://example.com/a"))
	})

	t.Run("repeat record is a no-op", func(t *testing.T) {
		tenant := &Tenant{MaxDedupe: 3}
		tenant.RecordSeen("https://example.com/a")
		tenant.RecordSeen("https://example.com/b")
		tenant.RecordSeen("https://example.com/a")
		assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, tenant.SeenLinks,
			"repeated link must not take a second slot")

		// the repeat must not cost an eviction either
		tenant.RecordSeen("https://example.com/c")
		assert.True(t, tenant.IsSeen("https://example.com/a"), "oldest entry survives, window not full")
	})

	t.Run("fifo eviction keeps newest entries in order", func(t *testing.T) {
		tenant := &Tenant{MaxDedupe: 3}
		for i := 1; i <= 4; i++ {
			tenant.RecordSeen(fmt.Sprintf("https://example.com/%d", i))
		}
		require.Len(t, tenant.SeenLinks, 3)
		assert.Equal(t, []string{
			"https://example.com/2",
			"https://example.com/3",
			"https://example.com/4",
		}, tenant.SeenLinks)
		assert.False(t, tenant.IsSeen("https://example.com/1"), "oldest entry evicted")
	})
}

func TestTenant_ScheduleSlots(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	tenant := &Tenant{ScheduleEnabled: true, ScheduleSlots: []string{"09:00", "18:30"}}
	assert.True(t, tenant.UseSchedule())
	assert.True(t, tenant.HasSlot("09:00"))
	assert.False(t, tenant.HasSlot("10:00"))

	assert.False(t, tenant.SlotFired(now, "09:00"))
	tenant.MarkSlotFired(now, "09:00")
	assert.True(t, tenant.SlotFired(now, "09:00"))

	// same slot next day is allowed again
	tomorrow := now.Add(24 * time.Hour)
	assert.False(t, tenant.SlotFired(tomorrow, "09:00"))
}

func TestCandidate_Better(t *testing.T) {
	day1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	t.Run("newer timestamp wins", func(t *testing.T) {
		a := Candidate{Title: "A", Link: "http://x/1", Published: day1}
		b := Candidate{Title: "B", Link: "http://x/2", Published: day2}
		assert.True(t, b.Better(a))
		assert.False(t, a.Better(b))
	})

	t.Run("timestamped outranks timestamp-less", func(t *testing.T) {
		dated := Candidate{Title: "A", Published: day1}
		undated := Candidate{Title: "Z"}
		assert.True(t, dated.Better(undated))
	})

	t.Run("title breaks ties", func(t *testing.T) {
		a := Candidate{Title: "A", Published: day1}
		b := Candidate{Title: "B", Published: day1}
		assert.True(t, b.Better(a))
	})
}
