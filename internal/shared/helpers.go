// Package shared provides common utility functions used across multiple
// packages in the artifact-cleaner codebase.
package shared

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// PublishDateLayout renders creation dates in the medium form shown next to
// each version, e.g. "Mar 12, 2019".
const PublishDateLayout = "Jan 2, 2006"

// FormatPublishDate formats a version creation time for console output.
func FormatPublishDate(t time.Time) string {
	return t.Local().Format(PublishDateLayout)
}

// StatusMessage extracts the reason phrase from an HTTP status line such as
// "404 Not Found", falling back to the standard text for the code.
func StatusMessage(status string, code int) string {
	message := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(status), strconv.Itoa(code)))
	if message != "" {
		return message
	}
	if text := http.StatusText(code); text != "" {
		return text
	}
	return strconv.Itoa(code)
}
