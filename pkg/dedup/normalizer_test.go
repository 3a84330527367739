package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "utm parameters stripped",
			in:   "https://example.com/news/1?utm_source=rss&utm_medium=feed",
			want: "https://example.com/news/1",
		},
		{
			name: "utm prefix beyond known list",
			in:   "https://example.com/a?utm_whatever=x&id=5",
			want: "https://example.com/a?id=5",
		},
		{
			name: "banned non-utm trackers",
			in:   "https://example.com/a?fbclid=abc&gclid=def&page=2",
			want: "https://example.com/a?page=2",
		},
		{
			name: "bbc at_ parameters",
			in:   "https://bbc.co.uk/news?at_medium=RSS&at_campaign=rss",
			want: "https://bbc.co.uk/news",
		},
		{
			name: "fragment dropped",
			in:   "https://example.com/a?id=1#section",
			want: "https://example.com/a?id=1",
		},
		{
			name: "query keys sorted deterministically",
			in:   "https://example.com/a?b=2&a=1",
			want: "https://example.com/a?a=1&b=2",
		},
		{
			name: "no query untouched",
			in:   "https://example.com/plain/path",
			want: "https://example.com/plain/path",
		},
		{
			name: "mixed case tracking key",
			in:   "https://example.com/a?UTM_Source=rss&id=1",
			want: "https://example.com/a?id=1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_TrackingVariantsCollapse(t *testing.T) {
	variants := []string{
		"https://example.com/story?id=42",
		"https://example.com/story?id=42&utm_source=feedly",
		"https://example.com/story?utm_campaign=daily&id=42&fbclid=xyz",
		"https://example.com/story?id=42#ref",
	}

	want := Normalize(variants[0])
	for _, v := range variants {
		assert.Equal(t, want, Normalize(v), "variant %s must normalize identically", v)
	}
}
