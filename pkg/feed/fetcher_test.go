package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	rssContent := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Test Feed</title>
	<link>http://example.com</link>
	<description>Test Description</description>
	<item>
		<title>Test Article 1</title>
		<link>http://example.com/article1</link>
		<description><![CDATA[<p>Article   1 <b>description</b></p>]]></description>
		<pubDate>Mon, 02 Jan 2006 15:04:05 -0700</pubDate>
		<guid>http://example.com/article1</guid>
	</item>
	<item>
		<title>Test Article 2</title>
		<link>http://example.com/article2</link>
		<description>Article 2 description</description>
	</item>
</channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssContent))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(5 * time.Second)
	entries, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// html stripped and whitespace collapsed in summary
	assert.Equal(t, "Test Article 1", entries[0].Title)
	assert.Equal(t, "http://example.com/article1", entries[0].Link)
	assert.Equal(t, "Article 1 description", entries[0].Summary)
	assert.False(t, entries[0].Published.IsZero())

	// second item has no pubDate, published stays zero
	assert.Equal(t, "Test Article 2", entries[1].Title)
	assert.True(t, entries[1].Published.IsZero())
}

func TestHTTPFetcher_FetchErrors(t *testing.T) {
	t.Run("unreachable server", func(t *testing.T) {
		fetcher := NewHTTPFetcher(time.Second)
		_, err := fetcher.Fetch(context.Background(), "http://127.0.0.1:1/feed")
		require.Error(t, err)
	})

	t.Run("not a feed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html><body>not a feed</body></html>"))
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(time.Second)
		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})
}
