package adapters

import (
	"strings"
	"time"
)

// createdLayouts covers the "created" values the service returns: RFC 3339
// with optional fraction, and millisecond ISO 8601 with a compact zone.
var createdLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999Z0700",
}

// parseCreated returns the zero time for empty or unrecognised input.
func parseCreated(value string) time.Time {
	trimmed := strings.TrimSpace(value)
	for _, layout := range createdLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
