package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/galodniy13-art/tg-autoposter-saas/pkg/domain"
)

//go:generate moq -out mocks/tenant_store.go -pkg mocks -skip-ensure -fmt goimports . TenantStore
//go:generate moq -out mocks/selector.go -pkg mocks -skip-ensure -fmt goimports . Selector
//go:generate moq -out mocks/composer.go -pkg mocks -skip-ensure -fmt goimports . Composer
//go:generate moq -out mocks/publisher.go -pkg mocks -skip-ensure -fmt goimports . Publisher

// TenantStore interface for scheduler operations
type TenantStore interface {
	Load(ctx context.Context, id int64) (*domain.Tenant, error)
	Update(ctx context.Context, id int64, fn func(*domain.Tenant) error) (*domain.Tenant, error)
	List(ctx context.Context) ([]int64, error)
}

// Selector interface for picking fresh feed entries
type Selector interface {
	PickNewestUnseen(ctx context.Context, tenant *domain.Tenant) *domain.Candidate
	ExtractSummary(ctx context.Context, candidate *domain.Candidate, limit int) string
}

// Composer interface for building post text
type Composer interface {
	Rewrite(ctx context.Context, tenant *domain.Tenant, title, summary, link string) (string, error)
	Original(ctx context.Context, tenant *domain.Tenant) (string, error)
}

// Publisher interface for delivering posts to channels
type Publisher interface {
	Publish(ctx context.Context, channel, text string) error
}

// ErrNoFreshEntries is returned when every feed entry is already seen or empty
var ErrNoFreshEntries = errors.New("no fresh entries")

// Scheduler drives the autopost loop: every tick it walks all tenants,
// runs the eligibility gate and publishes at most one post per eligible
// tenant. Dedup and quota state mutate only after a confirmed publish,
// so a failed send never consumes a link or a quota unit.
type Scheduler struct {
	store        TenantStore
	selector     Selector
	composer     Composer
	publisher    Publisher
	gate         *Gate
	tickInterval time.Duration
	wg           sync.WaitGroup
	cancel       context.CancelFunc
}

// Config holds scheduler configuration
type Config struct {
	TickInterval time.Duration
}

// NewScheduler creates a new scheduler instance
func NewScheduler(store TenantStore, selector Selector, composer Composer, publisher Publisher, cfg Config) *Scheduler {
	if cfg.TickInterval == 0 {
		cfg.TickInterval = time.Minute
	}
	return &Scheduler{
		store:        store,
		selector:     selector,
		composer:     composer,
		publisher:    publisher,
		gate:         NewGate(),
		tickInterval: cfg.TickInterval,
	}
}

// Start begins the autopost loop
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.tickWorker(ctx)

	lgr.Printf("[INFO] scheduler started with tick interval %v", s.tickInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) tickWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	// run immediately on start
	s.processTick(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.processTick(ctx)
		}
	}
}

// processTick walks all tenants, one tenant's failure never blocks the rest
func (s *Scheduler) processTick(ctx context.Context) {
	ids, err := s.store.List(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to list tenants: %v", err)
		return
	}

	now := time.Now()
	for _, id := range ids {
		if ctx.Err() != nil {
			return
		}
		if err := s.processTenant(ctx, id, now); err != nil {
			lgr.Printf("[ERROR] autopost for tenant %d: %v", id, err)
		}
	}
}

// processTenant publishes at most one post for a single tenant. The gate
// is checked on a freshly loaded snapshot, the post is composed and sent,
// and only a confirmed publish mutates dedup, quota and slot state.
// A panic from a collaborator is contained here, it costs this tenant's
// attempt but never the tick.
func (s *Scheduler) processTenant(ctx context.Context, id int64, now time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.processTenantOnce(ctx, id, now)
}

func (s *Scheduler) processTenantOnce(ctx context.Context, id int64, now time.Time) error {
	tenant, err := s.store.Load(ctx, id)
	if err != nil {
		return fmt.Errorf("load tenant: %w", err)
	}

	if !s.gate.Permits(tenant, now) {
		return nil
	}

	if err := s.publishOnce(ctx, tenant, now, tenant.UseSchedule()); err != nil {
		if errors.Is(err, ErrNoFreshEntries) {
			lgr.Printf("[DEBUG] no fresh entries for tenant %d", id)
			return nil
		}
		return err
	}

	lgr.Printf("[INFO] posted to %s for tenant %d (mode %s)", tenant.Channel, id, tenant.Mode)
	return nil
}

// RunOnce forces a single autopost attempt for one tenant regardless of
// cadence. Used by the manual fetch command: subscription, quota and
// configuration gates still apply, only the interval/slot timing is skipped.
func (s *Scheduler) RunOnce(ctx context.Context, id int64) (bool, error) {
	now := time.Now()
	tenant, err := s.store.Load(ctx, id)
	if err != nil {
		return false, fmt.Errorf("load tenant: %w", err)
	}

	switch {
	case !tenant.SubscriptionActive(now):
		return false, nil
	case !tenant.CanPostMore(now):
		return false, nil
	case tenant.Channel == "":
		return false, nil
	case tenant.Mode == domain.ModeRSS && len(tenant.Feeds) == 0:
		return false, nil
	}

	if err := s.publishOnce(ctx, tenant, now, false); err != nil {
		return false, err
	}
	return true, nil
}

// Preview renders the post the tenant's mode would produce right now,
// without sending it or touching dedup, quota or slot state
func (s *Scheduler) Preview(ctx context.Context, tenant *domain.Tenant) (string, error) {
	text, _, err := s.compose(ctx, tenant)
	return text, err
}

// compose builds the post text for the tenant's mode; for RSS mode it also
// returns the normalized link to record after a confirmed publish
func (s *Scheduler) compose(ctx context.Context, tenant *domain.Tenant) (text, seenLink string, err error) {
	switch tenant.Mode {
	case domain.ModeRSS:
		candidate := s.selector.PickNewestUnseen(ctx, tenant)
		if candidate == nil {
			return "", "", ErrNoFreshEntries
		}
		summary := s.selector.ExtractSummary(ctx, candidate, tenant.FetchEntriesPerFeed)
		text, err = s.composer.Rewrite(ctx, tenant, candidate.Title, summary, candidate.Link)
		if err != nil {
			return "", "", fmt.Errorf("compose rss post: %w", err)
		}
		return text, candidate.Link, nil
	case domain.ModeCreator:
		text, err = s.composer.Original(ctx, tenant)
		if err != nil {
			return "", "", fmt.Errorf("compose creator post: %w", err)
		}
		return text, "", nil
	default:
		return "", "", fmt.Errorf("unknown mode %q", tenant.Mode)
	}
}

// publishOnce composes a post for the tenant's mode, sends it, and on a
// confirmed publish persists the dedup/quota/slot mutations and stamps the
// interval clock.
func (s *Scheduler) publishOnce(ctx context.Context, tenant *domain.Tenant, now time.Time, markSlot bool) error {
	text, seenLink, err := s.compose(ctx, tenant)
	if err != nil {
		return err
	}

	if err := s.publisher.Publish(ctx, tenant.Channel, text); err != nil {
		return fmt.Errorf("publish to %s: %w", tenant.Channel, err)
	}

	slot := ""
	if markSlot {
		slot = now.Format("15:04")
	}

	if _, err := s.store.Update(ctx, tenant.ID, func(t *domain.Tenant) error {
		if seenLink != "" {
			t.RecordSeen(seenLink)
		}
		t.BumpDailyCount(now)
		if slot != "" {
			t.MarkSlotFired(now, slot)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("persist post state: %w", err)
	}
	s.gate.RecordPost(tenant.ID, now)
	return nil
}
