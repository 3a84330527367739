package bot

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/galodniy13-art/tg-autoposter-saas/pkg/domain"
	"github.com/galodniy13-art/tg-autoposter-saas/pkg/scheduler"
)

var slotRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

const (
	minInterval = 5
	maxInterval = 1440
)

// handleCommand dispatches a single command to its handler and returns the
// reply text. Unknown commands get a short hint, handler errors are logged
// and turned into a generic failure reply.
func (b *Bot) handleCommand(ctx context.Context, userID int64, command, args string) string {
	args = strings.TrimSpace(args)

	var reply string
	var err error
	switch command {
	case "start":
		reply, err = b.cmdStart(ctx, userID)
	case "status":
		reply, err = b.cmdStatus(ctx, userID)
	case "mode":
		reply, err = b.cmdMode(ctx, userID, args)
	case "setchannel":
		reply, err = b.cmdSetChannel(ctx, userID, args)
	case "unsetchannel":
		reply, err = b.cmdUnsetChannel(ctx, userID)
	case "addfeed":
		reply, err = b.cmdAddFeed(ctx, userID, args)
	case "feeds":
		reply, err = b.cmdFeeds(ctx, userID)
	case "delfeed":
		reply, err = b.cmdDelFeed(ctx, userID, args)
	case "clearfeeds":
		reply, err = b.cmdClearFeeds(ctx, userID)
	case "setstyle":
		reply, err = b.cmdSetStyle(ctx, userID, args)
	case "showstyle":
		reply, err = b.cmdShowStyle(ctx, userID)
	case "resetstyle":
		reply, err = b.cmdResetStyle(ctx, userID)
	case "setprofile":
		reply, err = b.cmdSetProfile(ctx, userID, args)
	case "schedule":
		reply, err = b.cmdSchedule(ctx, userID, args)
	case "interval":
		reply, err = b.cmdInterval(ctx, userID, args)
	case "autoposton":
		reply, err = b.cmdAutopost(ctx, userID, true)
	case "autopostoff":
		reply, err = b.cmdAutopost(ctx, userID, false)
	case "previewonce":
		reply, err = b.cmdPreviewOnce(ctx, userID)
	case "fetchonce":
		reply, err = b.cmdFetchOnce(ctx, userID)
	case "activate":
		reply, err = b.cmdActivate(ctx, userID, args)
	case "deactivate":
		reply, err = b.cmdDeactivate(ctx, userID, args)
	case "setlimit":
		reply, err = b.cmdSetLimit(ctx, userID, args)
	case "setinterval":
		reply, err = b.cmdSetInterval(ctx, userID, args)
	default:
		return "Unknown command, see /start for the list."
	}

	if err != nil {
		lgr.Printf("[ERROR] command /%s for user %d: %v", command, userID, err)
		return "Something went wrong, try again later."
	}
	return reply
}

func (b *Bot) cmdStart(ctx context.Context, userID int64) (string, error) {
	if _, err := b.store.Load(ctx, userID); err != nil {
		return "", fmt.Errorf("load tenant: %w", err)
	}
	return "Autoposter at your service.\n\n" +
		"Setup: /mode, /setchannel, /addfeed (rss) or /setprofile (creator), /setstyle.\n" +
		"Cadence: /interval, /schedule add HH:MM, /autoposton.\n" +
		"Check: /status, /previewonce, /fetchonce.\n\n" +
		"Subscription required for posting: " + b.payContacts, nil
}

func (b *Bot) cmdStatus(ctx context.Context, userID int64) (string, error) {
	tenant, err := b.store.Load(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load tenant: %w", err)
	}

	now := time.Now()
	sub := "inactive"
	if tenant.SubscriptionActive(now) {
		sub = "active until " + tenant.SubscriptionUntil
	}
	auto := "off"
	if tenant.AutopostEnabled {
		auto = "on"
	}
	cadence := fmt.Sprintf("every %d min", tenant.IntervalMinutes)
	if tenant.UseSchedule() {
		cadence = "at " + strings.Join(tenant.ScheduleSlots, ", ")
	}
	channel := tenant.Channel
	if channel == "" {
		channel = "not set"
	}
	tenant.EnsureDailyCounter(now)

	return fmt.Sprintf("Mode: %s\nChannel: %s\nFeeds: %d\nAutopost: %s (%s)\nToday: %d/%d posts\nSubscription: %s",
		tenant.Mode, channel, len(tenant.Feeds), auto, cadence,
		tenant.DailyCount, tenant.DailyLimit, sub), nil
}

func (b *Bot) cmdMode(ctx context.Context, userID int64, args string) (string, error) {
	mode := domain.Mode(strings.ToLower(args))
	if !mode.Valid() {
		return "Usage: /mode rss | creator", nil
	}
	if _, err := b.store.Update(ctx, userID, func(t *domain.Tenant) error {
		t.Mode = mode
		return nil
	}); err != nil {
		return "", err
	}
	return fmt.Sprintf("Mode set to %s.", mode), nil
}

func (b *Bot) cmdSetChannel(ctx context.Context, userID int64, args string) (string, error) {
	if args == "" || !strings.HasPrefix(args, "@") {
		return "Usage: /setchannel @yourchannel (the bot must be its administrator)", nil
	}
	if err := b.verifier.VerifyChannelAdmin(ctx, args); err != nil {
		lgr.Printf("[WARN] channel verification failed for user %d, channel %s: %v", userID, args, err)
		return "Can't post to " + args + ": add the bot as a channel administrator first.", nil
	}
	if _, err := b.store.Update(ctx, userID, func(t *domain.Tenant) error {
		t.Channel = args
		return nil
	}); err != nil {
		return "", err
	}
	return "Channel set to " + args + ".", nil
}

func (b *Bot) cmdUnsetChannel(ctx context.Context, userID int64) (string, error) {
	if _, err := b.store.Update(ctx, userID, func(t *domain.Tenant) error {
		t.Channel = ""
		return nil
	}); err != nil {
		return "", err
	}
	return "Channel removed, autoposting is paused until a new one is set.", nil
}

func (b *Bot) cmdAddFeed(ctx context.Context, userID int64, args string) (string, error) {
	if !strings.HasPrefix(args, "http://") && !strings.HasPrefix(args, "https://") {
		return "Usage: /addfeed https://example.com/rss", nil
	}
	var count int
	if _, err := b.store.Update(ctx, userID, func(t *domain.Tenant) error {
		for _, f := range t.Feeds {
			if f == args {
				return nil
			}
		}
		t.Feeds = append(t.Feeds, args)
		count = len(t.Feeds)
		return nil
	}); err != nil {
		return "", err
	}
	if count == 0 {
		return "This feed is already in the list.", nil
	}
	return fmt.Sprintf("Feed added, %d total.", count), nil
}

func (b *Bot) cmdFeeds(ctx context.Context, userID int64) (string, error) {
	tenant, err := b.store.Load(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(tenant.Feeds) == 0 {
		return "No feeds yet, add one with /addfeed.", nil
	}
	var sb strings.Builder
	sb.WriteString("Feeds:\n")
	for i, f := range tenant.Feeds {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, f)
	}
	return sb.String(), nil
}

// cmdDelFeed removes a feed by its /feeds list number or by exact URL
func (b *Bot) cmdDelFeed(ctx context.Context, userID int64, args string) (string, error) {
	if args == "" {
		return "Usage: /delfeed <number from /feeds> or /delfeed <url>", nil
	}
	removed := false
	if _, err := b.store.Update(ctx, userID, func(t *domain.Tenant) error {
		idx := -1
		if n, err := strconv.Atoi(args); err == nil && n >= 1 && n <= len(t.Feeds) {
			idx = n - 1
		} else {
			for i, f := range t.Feeds {
				if f == args {
					idx = i
					break
				}
			}
		}
		if idx < 0 {
			return nil
		}
		t.Feeds = append(t.Feeds[:idx], t.Feeds[idx+1:]...)
		removed = true
		return nil
	}); err != nil {
		return "", err
	}
	if !removed {
		return "No such feed, check /feeds.", nil
	}
	return "Feed removed.", nil
}

func (b *Bot) cmdClearFeeds(ctx context.Context, userID int64) (string, error) {
	if _, err := b.store.Update(ctx, userID, func(t *domain.Tenant) error {
		t.Feeds = nil
		return nil
	}); err != nil {
		return "", err
	}
	return "All feeds removed.", nil
}

func (b *Bot) cmdSetStyle(ctx context.Context, userID int64, args string) (string, error) {
	if args == "" {
		return "Usage: /setstyle <how the posts should sound>", nil
	}
	if _, err := b.store.Update(ctx, userID, func(t *domain.Tenant) error {
		t.StylePrompt = args
		return nil
	}); err != nil {
		return "", err
	}
	return "Style saved.", nil
}

func (b *Bot) cmdShowStyle(ctx context.Context, userID int64) (string, error) {
	tenant, err := b.store.Load(ctx, userID)
	if err != nil {
		return "", err
	}
	if tenant.StylePrompt == "" {
		return "No custom style, the default one is in effect. Set yours with /setstyle.", nil
	}
	return "Current style:\n" + tenant.StylePrompt, nil
}

func (b *Bot) cmdResetStyle(ctx context.Context, userID int64) (string, error) {
	if _, err := b.store.Update(ctx, userID, func(t *domain.Tenant) error {
		t.StylePrompt = ""
		return nil
	}); err != nil {
		return "", err
	}
	return "Style reset to default.", nil
}

func (b *Bot) cmdSetProfile(ctx context.Context, userID int64, args string) (string, error) {
	if args == "" {
		return "Usage: /setprofile <who you are and what you post about>", nil
	}
	if _, err := b.store.Update(ctx, userID, func(t *domain.Tenant) error {
		t.CreatorProfile = args
		return nil
	}); err != nil {
		return "", err
	}
	return "Creator profile saved.", nil
}

// cmdSchedule manages fixed posting slots: add/remove HH:MM, clear, on, off.
// When enabled with at least one slot, slots replace the interval cadence.
func (b *Bot) cmdSchedule(ctx context.Context, userID int64, args string) (string, error) {
	usage := "Usage: /schedule add HH:MM | remove HH:MM | clear | on | off"
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return usage, nil
	}

	switch fields[0] {
	case "add":
		if len(fields) != 2 || !slotRe.MatchString(fields[1]) {
			return usage, nil
		}
		slot := fields[1]
		added := false
		if _, err := b.store.Update(ctx, userID, func(t *domain.Tenant) error {
			if t.HasSlot(slot) {
				return nil
			}
			t.ScheduleSlots = append(t.ScheduleSlots, slot)
			added = true
			return nil
		}); err != nil {
			return "", err
		}
		if !added {
			return "Slot " + slot + " is already in the schedule.", nil
		}
		return "Slot " + slot + " added. Enable with /schedule on.", nil
	case "remove":
		if len(fields) != 2 {
			return usage, nil
		}
		slot := fields[1]
		removed := false
		if _, err := b.store.Update(ctx, userID, func(t *domain.Tenant) error {
			for i, s := range t.ScheduleSlots {
				if s == slot {
					t.ScheduleSlots = append(t.ScheduleSlots[:i], t.ScheduleSlots[i+1:]...)
					removed = true
					return nil
				}
			}
			return nil
		}); err != nil {
			return "", err
		}
		if !removed {
			return "No such slot in the schedule.", nil
		}
		return "Slot " + slot + " removed.", nil
	case "clear":
		if _, err := b.store.Update(ctx, userID, func(t *domain.Tenant) error {
			t.ScheduleSlots = nil
			t.ScheduleEnabled = false
			return nil
		}); err != nil {
			return "", err
		}
		return "Schedule cleared, interval cadence is back in effect.", nil
	case "on", "off":
		enable := fields[0] == "on"
		var slots int
		if _, err := b.store.Update(ctx, userID, func(t *domain.Tenant) error {
			t.ScheduleEnabled = enable
			slots = len(t.ScheduleSlots)
			return nil
		}); err != nil {
			return "", err
		}
		if enable && slots == 0 {
			return "Schedule enabled but has no slots, add some with /schedule add HH:MM.", nil
		}
		if enable {
			return "Schedule enabled, posting at fixed times.", nil
		}
		return "Schedule disabled, interval cadence is back in effect.", nil
	default:
		return usage, nil
	}
}

func (b *Bot) cmdInterval(ctx context.Context, userID int64, args string) (string, error) {
	n, err := strconv.Atoi(args)
	if err != nil || n < minInterval || n > maxInterval {
		return fmt.Sprintf("Usage: /interval <minutes>, %d to %d.", minInterval, maxInterval), nil
	}
	if _, err := b.store.Update(ctx, userID, func(t *domain.Tenant) error {
		t.IntervalMinutes = n
		return nil
	}); err != nil {
		return "", err
	}
	return fmt.Sprintf("Posting every %d minutes.", n), nil
}

func (b *Bot) cmdAutopost(ctx context.Context, userID int64, enable bool) (string, error) {
	tenant, err := b.store.Update(ctx, userID, func(t *domain.Tenant) error {
		t.AutopostEnabled = enable
		return nil
	})
	if err != nil {
		return "", err
	}
	if !enable {
		return "Autoposting is off.", nil
	}
	if !tenant.SubscriptionActive(time.Now()) {
		return "Autoposting is on, but your subscription is inactive. Contact " + b.payContacts + " to activate.", nil
	}
	return "Autoposting is on.", nil
}

func (b *Bot) cmdPreviewOnce(ctx context.Context, userID int64) (string, error) {
	tenant, err := b.store.Load(ctx, userID)
	if err != nil {
		return "", err
	}
	if tenant.Mode == domain.ModeRSS && len(tenant.Feeds) == 0 {
		return "Add at least one feed first: /addfeed.", nil
	}

	text, err := b.previewer.Preview(ctx, tenant)
	if err != nil {
		if errors.Is(err, scheduler.ErrNoFreshEntries) {
			return "Nothing fresh in your feeds right now.", nil
		}
		return "", fmt.Errorf("preview: %w", err)
	}
	return "Preview (not published):\n\n" + text, nil
}

func (b *Bot) cmdFetchOnce(ctx context.Context, userID int64) (string, error) {
	posted, err := b.runner.RunOnce(ctx, userID)
	if err != nil {
		if errors.Is(err, scheduler.ErrNoFreshEntries) {
			return "Nothing fresh in your feeds right now.", nil
		}
		return "", fmt.Errorf("post now: %w", err)
	}
	if !posted {
		return "Can't post: check subscription, channel, feeds and the daily limit in /status.", nil
	}
	return "Posted.", nil
}
