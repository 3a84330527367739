package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/galodniy13-art/tg-autoposter-saas/pkg/domain"
)

// admin commands operate on another user's record, caller must be in the
// configured allow-list

func (b *Bot) cmdActivate(ctx context.Context, callerID int64, args string) (string, error) {
	if !b.isAdmin(callerID) {
		return "Admins only.", nil
	}
	targetID, days, ok := parseIDAndNumber(args)
	if !ok || days < 1 {
		return "Usage: /activate <user_id> <days>", nil
	}
	until := domain.DateString(time.Now().AddDate(0, 0, days))
	if _, err := b.store.Update(ctx, targetID, func(t *domain.Tenant) error {
		t.SubscriptionUntil = until
		return nil
	}); err != nil {
		return "", err
	}
	return fmt.Sprintf("User %d activated until %s.", targetID, until), nil
}

func (b *Bot) cmdDeactivate(ctx context.Context, callerID int64, args string) (string, error) {
	if !b.isAdmin(callerID) {
		return "Admins only.", nil
	}
	targetID, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil {
		return "Usage: /deactivate <user_id>", nil
	}
	if _, err := b.store.Update(ctx, targetID, func(t *domain.Tenant) error {
		t.SubscriptionUntil = ""
		t.AutopostEnabled = false
		return nil
	}); err != nil {
		return "", err
	}
	return fmt.Sprintf("User %d deactivated.", targetID), nil
}

func (b *Bot) cmdSetLimit(ctx context.Context, callerID int64, args string) (string, error) {
	if !b.isAdmin(callerID) {
		return "Admins only.", nil
	}
	targetID, limit, ok := parseIDAndNumber(args)
	if !ok || limit < 1 {
		return "Usage: /setlimit <user_id> <posts_per_day>", nil
	}
	if _, err := b.store.Update(ctx, targetID, func(t *domain.Tenant) error {
		t.DailyLimit = limit
		return nil
	}); err != nil {
		return "", err
	}
	return fmt.Sprintf("User %d daily limit set to %d.", targetID, limit), nil
}

func (b *Bot) cmdSetInterval(ctx context.Context, callerID int64, args string) (string, error) {
	if !b.isAdmin(callerID) {
		return "Admins only.", nil
	}
	targetID, minutes, ok := parseIDAndNumber(args)
	if !ok || minutes < minInterval || minutes > maxInterval {
		return fmt.Sprintf("Usage: /setinterval <user_id> <minutes>, %d to %d.", minInterval, maxInterval), nil
	}
	if _, err := b.store.Update(ctx, targetID, func(t *domain.Tenant) error {
		t.IntervalMinutes = minutes
		return nil
	}); err != nil {
		return "", err
	}
	return fmt.Sprintf("User %d interval set to %d minutes.", targetID, minutes), nil
}

// parseIDAndNumber splits "<user_id> <n>" command arguments
func parseIDAndNumber(args string) (id int64, n int, ok bool) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return 0, 0, false
	}
	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	n, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false
	}
	return id, n, true
}
