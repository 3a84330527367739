package post_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galodniy13-art/tg-autoposter-saas/pkg/domain"
	"github.com/galodniy13-art/tg-autoposter-saas/pkg/post"
	"github.com/galodniy13-art/tg-autoposter-saas/pkg/post/mocks"
)

func TestSanitize(t *testing.T) {
	link := "https://example.com/story"

	t.Run("strips echoed urls and numbering", func(t *testing.T) {
		raw := "1. Big news today https://evil.example.com/tracker\nMore details inside."
		got := post.Sanitize(raw, link)

		assert.NotContains(t, got, "evil.example.com")
		assert.False(t, strings.HasPrefix(got, "1."), "numbering prefix must be removed")
		assert.Equal(t, 1, strings.Count(got, "https://"), "exactly one link, the appended one")
		assert.True(t, strings.HasSuffix(got, "🔗 "+link))
		assert.LessOrEqual(t, len([]rune(got)), post.MaxPostLen)
	})

	t.Run("strips link labels and stubs", func(t *testing.T) {
		raw := "Solid post text.\nLink: see below\n[link]\nСсылка: тут"
		got := post.Sanitize(raw, link)
		lower := strings.ToLower(got)
		assert.NotContains(t, lower, "link:")
		assert.NotContains(t, lower, "[link]")
		assert.NotContains(t, lower, "ссылка:")
		assert.Contains(t, got, "Solid post text.")
	})

	t.Run("collapses blank line runs", func(t *testing.T) {
		raw := "para one\n\n\n\n\npara two"
		got := post.Sanitize(raw, link)
		assert.Contains(t, got, "para one\n\npara two")
	})

	t.Run("placeholder on empty result", func(t *testing.T) {
		got := post.Sanitize("https://only.a.link/here", link)
		assert.Contains(t, got, "📌")
		assert.True(t, strings.HasSuffix(got, "🔗 "+link))
	})

	t.Run("caps at max length after appending link", func(t *testing.T) {
		raw := strings.Repeat("слово ", 400) // long multibyte text
		got := post.Sanitize(raw, link)
		assert.Equal(t, post.MaxPostLen, len([]rune(got)))
	})
}

func TestComposer_Rewrite(t *testing.T) {
	tenant := &domain.Tenant{ID: 1, StylePrompt: "tenant style"}

	t.Run("builds prompt and sanitizes output", func(t *testing.T) {
		mockGen := &mocks.GeneratorMock{
			GenerateFunc: func(ctx context.Context, systemStyle, userContent string) (string, error) {
				assert.Equal(t, "tenant style", systemStyle)
				assert.Contains(t, userContent, "Title: Big News")
				assert.Contains(t, userContent, "Summary: short summary")
				assert.Contains(t, userContent, "https://example.com/story")
				return "2) Rewritten text https://echoed.example.com/x", nil
			},
		}

		composer := post.NewComposer(mockGen, "config style")
		got, err := composer.Rewrite(context.Background(), tenant, "Big News", "short summary", "https://example.com/story")
		require.NoError(t, err)

		assert.Contains(t, got, "Rewritten text")
		assert.NotContains(t, got, "echoed.example.com")
		assert.True(t, strings.HasSuffix(got, "🔗 https://example.com/story"))
		assert.Len(t, mockGen.GenerateCalls(), 1)
	})

	t.Run("config style when tenant has no override", func(t *testing.T) {
		mockGen := &mocks.GeneratorMock{
			GenerateFunc: func(ctx context.Context, systemStyle, userContent string) (string, error) {
				assert.Equal(t, "config style", systemStyle)
				return "text", nil
			},
		}
		plain := &domain.Tenant{ID: 2}
		_, err := post.NewComposer(mockGen, "config style").Rewrite(context.Background(), plain, "T", "S", "https://x/1")
		require.NoError(t, err)
	})

	t.Run("backend failure propagates", func(t *testing.T) {
		wantErr := errors.New("backend down")
		mockGen := &mocks.GeneratorMock{
			GenerateFunc: func(ctx context.Context, systemStyle, userContent string) (string, error) {
				return "", wantErr
			},
		}
		_, err := post.NewComposer(mockGen, "").Rewrite(context.Background(), tenant, "T", "S", "https://x/1")
		require.ErrorIs(t, err, wantErr)
	})
}

func TestComposer_Original(t *testing.T) {
	t.Run("uses creator profile, no link appended", func(t *testing.T) {
		mockGen := &mocks.GeneratorMock{
			GenerateFunc: func(ctx context.Context, systemStyle, userContent string) (string, error) {
				assert.Contains(t, userContent, "nutrition coach")
				return "An original creator post.", nil
			},
		}

		tenant := &domain.Tenant{ID: 3, Mode: domain.ModeCreator, CreatorProfile: "nutrition coach"}
		got, err := post.NewComposer(mockGen, "").Original(context.Background(), tenant)
		require.NoError(t, err)
		assert.Equal(t, "An original creator post.", got)
		assert.NotContains(t, got, "🔗")
	})

	t.Run("generic profile fallback when unset", func(t *testing.T) {
		mockGen := &mocks.GeneratorMock{
			GenerateFunc: func(ctx context.Context, systemStyle, userContent string) (string, error) {
				assert.Contains(t, userContent, "expert/blogger")
				return "text", nil
			},
		}
		tenant := &domain.Tenant{ID: 4, Mode: domain.ModeCreator}
		_, err := post.NewComposer(mockGen, "").Original(context.Background(), tenant)
		require.NoError(t, err)
	})

	t.Run("capped at max length", func(t *testing.T) {
		mockGen := &mocks.GeneratorMock{
			GenerateFunc: func(ctx context.Context, systemStyle, userContent string) (string, error) {
				return strings.Repeat("a", 2000), nil
			},
		}
		tenant := &domain.Tenant{ID: 5, Mode: domain.ModeCreator}
		got, err := post.NewComposer(mockGen, "").Original(context.Background(), tenant)
		require.NoError(t, err)
		assert.Len(t, []rune(got), post.MaxPostLen)
	})
}
