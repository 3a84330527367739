package publisher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

//go:generate moq -out mocks/telegram_api.go -pkg mocks -skip-ensure -fmt goimports . TelegramAPI

// TelegramAPI is the slice of the bot client the publisher needs
type TelegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetChatAdministrators(config tgbotapi.ChatAdministratorsConfig) ([]tgbotapi.ChatMember, error)
}

// Telegram delivers posts to channels through the bot API. Sends are
// retried with backoff, permanent API rejections abort the retry loop.
type Telegram struct {
	api   TelegramAPI
	botID int64
}

// NewTelegram creates a publisher over an authorized bot client
func NewTelegram(api TelegramAPI, botID int64) *Telegram {
	return &Telegram{api: api, botID: botID}
}

// sendTimeout bounds a single publish round trip. A hung telegram
// connection must time out instead of stalling the tick for every
// tenant behind it.
const sendTimeout = 30 * time.Second

// HTTPClient returns the client for the publishing bot API connection.
// It carries a hard timeout, so it must not be shared with the long-poll
// update client which holds connections open for the poll window.
func HTTPClient() *http.Client {
	return &http.Client{Timeout: sendTimeout}
}

// errPermanent marks API rejections that a retry cannot fix
var errPermanent = errors.New("permanent telegram error")

// Publish sends text to the channel, channel is the @username handle.
// Returns nil only on confirmed delivery.
func (p *Telegram) Publish(ctx context.Context, channel, text string) error {
	msg := tgbotapi.NewMessageToChannel(channel, text)

	retrier := repeater.NewBackoff(3, 200*time.Millisecond, repeater.WithMaxDelay(3*time.Second))
	err := retrier.Do(ctx, func() error {
		if _, err := p.api.Send(msg); err != nil {
			if isPermanentError(err) {
				return fmt.Errorf("%w: %s", errPermanent, err)
			}
			return err // retry
		}
		return nil
	}, errPermanent)
	if err != nil {
		return fmt.Errorf("send to %s: %w", channel, err)
	}
	return nil
}

// VerifyChannelAdmin checks that the bot is an administrator of the channel,
// a precondition for posting there
func (p *Telegram) VerifyChannelAdmin(ctx context.Context, channel string) error {
	admins, err := p.api.GetChatAdministrators(tgbotapi.ChatAdministratorsConfig{
		ChatConfig: tgbotapi.ChatConfig{SuperGroupUsername: channel},
	})
	if err != nil {
		return fmt.Errorf("get administrators of %s: %w", channel, err)
	}
	for _, m := range admins {
		if m.User != nil && m.User.ID == p.botID {
			return nil
		}
	}
	return fmt.Errorf("bot is not an administrator of %s", channel)
}

// isPermanentError reports whether the API rejection cannot be fixed by a
// retry: bad channel, missing rights, oversized or malformed message
func isPermanentError(err error) bool {
	s := strings.ToLower(err.Error())
	for _, marker := range []string{
		"chat not found",
		"not enough rights",
		"bot is not a member",
		"bot was kicked",
		"message is too long",
		"have no rights to send",
	} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
