// Package dedup canonicalizes article URLs so the same story distributed
// with different tracking parameters dedupes to a single key.
package dedup

import (
	"net/url"
	"strings"
)

// tracking parameters stripped regardless of the utm_ prefix rule
var bannedParams = map[string]struct{}{
	"at_medium":      {},
	"at_campaign":    {},
	"at_bbc_team":    {},
	"at_link_origin": {},
	"fbclid":         {},
	"gclid":          {},
	"igshid":         {},
	"mc_cid":         {},
	"mc_eid":         {},
	"utm_source":     {},
	"utm_medium":     {},
	"utm_campaign":   {},
	"utm_term":       {},
	"utm_content":    {},
}

// Normalize strips tracking query parameters and the fragment from a URL
// and re-serializes the remaining query with sorted keys, so any two links
// differing only in tracking noise map to the same string. Unparseable
// input is returned as-is, it still works as an opaque dedup key.
func Normalize(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	q := u.Query()
	for key := range q {
		kl := strings.ToLower(key)
		if _, banned := bannedParams[kl]; banned || strings.HasPrefix(kl, "utm_") {
			q.Del(key)
		}
	}

	// url.Values.Encode sorts keys, keeping the result deterministic
	u.RawQuery = q.Encode()
	u.Fragment = ""
	return u.String()
}
