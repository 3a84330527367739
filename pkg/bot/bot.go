package bot

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/galodniy13-art/tg-autoposter-saas/pkg/domain"
)

//go:generate moq -out mocks/telegram_api.go -pkg mocks -skip-ensure -fmt goimports . TelegramAPI
//go:generate moq -out mocks/tenant_store.go -pkg mocks -skip-ensure -fmt goimports . TenantStore
//go:generate moq -out mocks/previewer.go -pkg mocks -skip-ensure -fmt goimports . Previewer
//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner
//go:generate moq -out mocks/channel_verifier.go -pkg mocks -skip-ensure -fmt goimports . ChannelVerifier

// TelegramAPI is the slice of the bot client the command loop needs
type TelegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// TenantStore interface for command handlers
type TenantStore interface {
	Load(ctx context.Context, id int64) (*domain.Tenant, error)
	Update(ctx context.Context, id int64, fn func(*domain.Tenant) error) (*domain.Tenant, error)
}

// Previewer renders the next post without publishing or mutating state
type Previewer interface {
	Preview(ctx context.Context, tenant *domain.Tenant) (string, error)
}

// Runner forces a single immediate autopost attempt, cadence skipped
type Runner interface {
	RunOnce(ctx context.Context, id int64) (bool, error)
}

// ChannelVerifier checks that the bot can post to a channel
type ChannelVerifier interface {
	VerifyChannelAdmin(ctx context.Context, channel string) error
}

// Params holds the bot's collaborators and settings
type Params struct {
	API         TelegramAPI
	Store       TenantStore
	Previewer   Previewer
	Runner      Runner
	Verifier    ChannelVerifier
	Admins      []int64
	PayContacts string
	Timeout     time.Duration // long-poll timeout
}

// Bot runs the telegram command loop: one tenant record per chatting user,
// every command is a thin read or read-modify-write over the store
type Bot struct {
	api         TelegramAPI
	store       TenantStore
	previewer   Previewer
	runner      Runner
	verifier    ChannelVerifier
	admins      map[int64]bool
	payContacts string
	timeout     time.Duration
}

// New creates a bot from its collaborators
func New(p Params) *Bot {
	admins := make(map[int64]bool, len(p.Admins))
	for _, id := range p.Admins {
		admins[id] = true
	}
	if p.Timeout == 0 {
		p.Timeout = 30 * time.Second
	}
	return &Bot{
		api:         p.API,
		store:       p.Store,
		previewer:   p.Previewer,
		runner:      p.Runner,
		verifier:    p.Verifier,
		admins:      admins,
		payContacts: p.PayContacts,
		timeout:     p.Timeout,
	}
}

// Run consumes updates until the context is canceled
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(b.timeout.Seconds())
	updates := b.api.GetUpdatesChan(u)

	lgr.Printf("[INFO] bot started, long-poll timeout %v", b.timeout)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			lgr.Printf("[INFO] bot stopped")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		msg := update.Message
		reply := b.handleCommand(ctx, msg.From.ID, msg.Command(), msg.CommandArguments())
		b.reply(msg.Chat.ID, reply, msg.Command() == "start")
	}
}

// handleCallback maps inline menu buttons onto the same command handlers
func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		lgr.Printf("[WARN] callback ack failed: %v", err)
	}
	if cb.Message == nil {
		return
	}
	reply := b.handleCommand(ctx, cb.From.ID, cb.Data, "")
	b.reply(cb.Message.Chat.ID, reply, false)
}

func (b *Bot) reply(chatID int64, text string, withMenu bool) {
	if text == "" {
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if withMenu {
		msg.ReplyMarkup = mainMenu()
	}
	if _, err := b.api.Send(msg); err != nil {
		lgr.Printf("[WARN] reply to chat %d failed: %v", chatID, err)
	}
}

func mainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Status", "status"),
			tgbotapi.NewInlineKeyboardButtonData("👀 Preview", "previewonce"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Autopost on", "autoposton"),
			tgbotapi.NewInlineKeyboardButtonData("⏸ Autopost off", "autopostoff"),
		),
	)
}

func (b *Bot) isAdmin(userID int64) bool {
	return b.admins[userID]
}
