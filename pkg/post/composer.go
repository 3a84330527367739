// Package post turns selected content into channel-ready messages. Two
// variants share the generation backend: rewriting a feed entry and
// composing an original post from a creator profile.
package post

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/galodniy13-art/tg-autoposter-saas/pkg/domain"
)

//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator

// MaxPostLen caps every published message, link included
const MaxPostLen = 900

// Generator produces text from a system style prompt and user content
type Generator interface {
	Generate(ctx context.Context, systemStyle, userContent string) (string, error)
}

// fallbacks when the tenant configured nothing
const (
	defaultStyle = "You are the author of a telegram channel.\n" +
		"Write naturally, like a human.\n" +
		"Never invent facts.\n"
	defaultProfile = "An expert/blogger writing short useful posts for their audience."
	emptyPostText  = "📌 In short: the source gives few details."
)

var (
	urlRe       = regexp.MustCompile(`https?://\S+`)
	numberingRe = regexp.MustCompile(`(?m)^\s*\d+\s*[\)\.\-:]\s*`)
	linkLabelRe = regexp.MustCompile(`(?im)^\s*(ссылка|link)\s*:\s*.*$`)
	linkStubRe  = regexp.MustCompile(`(?im)^\s*\[\s*link\s*\]\s*$`)
	blankRunsRe = regexp.MustCompile(`\n{3,}`)
)

// Composer renders posts for tenants via the generation backend
type Composer struct {
	generator    Generator
	defaultStyle string // config-level style used when the tenant has no override
}

// NewComposer creates a composer. An empty style falls back to a built-in
// neutral prompt.
func NewComposer(generator Generator, style string) *Composer {
	if style == "" {
		style = defaultStyle
	}
	return &Composer{generator: generator, defaultStyle: style}
}

// Rewrite produces a rewritten post for a feed entry. The backend's output
// is sanitized and the canonical link is appended exactly once at the end,
// then the whole message is capped at MaxPostLen.
func (c *Composer) Rewrite(ctx context.Context, tenant *domain.Tenant, title, summary, link string) (string, error) {
	userContent := fmt.Sprintf(
		"Title: %s\nSummary: %s\nSource URL: %s\n\n"+
			"Rewrite this as a natural short Telegram post in the system style. "+
			"Do not invent facts beyond the summary. Include the source URL once at the end.",
		collapseSpaces(title), collapseSpaces(summary), link)

	text, err := c.generator.Generate(ctx, c.styleFor(tenant), userContent)
	if err != nil {
		return "", fmt.Errorf("rewrite post for tenant %d: %w", tenant.ID, err)
	}

	return Sanitize(text, link), nil
}

// Original produces a creator-mode post from the tenant's profile. No link
// is appended, the backend is expected to produce self-contained text.
func (c *Composer) Original(ctx context.Context, tenant *domain.Tenant) (string, error) {
	profile := strings.TrimSpace(tenant.CreatorProfile)
	if profile == "" {
		profile = defaultProfile
	}

	userContent := fmt.Sprintf(
		"Write one original Telegram post in the system style. "+
			"Natural tone, no external news, no links.\n\nCreator profile:\n%s\n", profile)

	text, err := c.generator.Generate(ctx, c.styleFor(tenant), userContent)
	if err != nil {
		return "", fmt.Errorf("original post for tenant %d: %w", tenant.ID, err)
	}

	return truncate(strings.TrimSpace(text), MaxPostLen), nil
}

// styleFor resolves the system style: tenant override, then configured
// default, then the built-in fallback baked into defaultStyle
func (c *Composer) styleFor(tenant *domain.Tenant) string {
	if s := strings.TrimSpace(tenant.StylePrompt); s != "" {
		return s
	}
	return c.defaultStyle
}

// Sanitize cleans raw backend output for the rewrite variant: every URL
// the model echoed back is removed (exactly one canonical link is appended
// here, never one invented by the model), leading enumeration markers and
// leftover link labels are stripped, runs of blank lines collapsed. Empty
// results fall back to a placeholder sentence. The link is appended last
// and the total is capped at MaxPostLen.
func Sanitize(text, link string) string {
	t := strings.ReplaceAll(text, "\r", "")
	t = urlRe.ReplaceAllString(t, "")
	t = numberingRe.ReplaceAllString(t, "")
	t = linkLabelRe.ReplaceAllString(t, "")
	t = linkStubRe.ReplaceAllString(t, "")
	t = blankRunsRe.ReplaceAllString(t, "\n\n")
	t = strings.TrimSpace(t)

	if t == "" {
		t = emptyPostText
	}

	return truncate(t+"\n\n🔗 "+link, MaxPostLen)
}

// collapseSpaces flattens a string to single-space separated words
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts a string to at most n runes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
