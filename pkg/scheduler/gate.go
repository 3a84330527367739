package scheduler

import (
	"sync"
	"time"

	"github.com/galodniy13-art/tg-autoposter-saas/pkg/domain"
)

// Gate decides whether a tenant may post right now. All checks are hard
// gates applied in order, a failing check means not permitted and nothing
// is mutated. The interval clock lives only in process memory: a restart
// resets it, dedup and quota state stay persisted.
type Gate struct {
	mu       sync.Mutex
	lastPost map[int64]time.Time
}

// NewGate creates a gate with an empty last-post clock
func NewGate() *Gate {
	return &Gate{lastPost: make(map[int64]time.Time)}
}

// Permits applies the ordered eligibility checks: autopost switch,
// subscription validity, daily quota (self-resetting on date rollover),
// configuration completeness, and the cadence gate. Fixed-slot cadence
// takes precedence over the interval when schedule is enabled with slots.
func (g *Gate) Permits(tenant *domain.Tenant, now time.Time) bool {
	if !tenant.AutopostEnabled {
		return false
	}
	if !tenant.SubscriptionActive(now) {
		return false
	}
	if !tenant.CanPostMore(now) {
		return false
	}
	if tenant.Channel == "" {
		return false
	}
	if tenant.Mode == domain.ModeRSS && len(tenant.Feeds) == 0 {
		return false
	}

	if tenant.UseSchedule() {
		slot := now.Format("15:04")
		return tenant.HasSlot(slot) && !tenant.SlotFired(now, slot)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	prev, ok := g.lastPost[tenant.ID]
	if !ok {
		return true
	}
	return now.Sub(prev) >= time.Duration(tenant.IntervalMinutes)*time.Minute
}

// RecordPost stamps the in-memory last-post time after a confirmed publish
func (g *Gate) RecordPost(tenantID int64, now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastPost[tenantID] = now
}
