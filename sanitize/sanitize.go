// Package sanitize strips markup from user-supplied text before it is
// stored or redisplayed. The policy allows no tags or attributes at all;
// script and style bodies are dropped entirely.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Clean returns text with all tags and attributes removed. Idempotent.
func Clean(raw string) string {
	return strings.TrimSpace(policy.Sanitize(raw))
}
