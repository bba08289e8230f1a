package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var whitespace = regexp.MustCompile(`\s+`)

var invalidChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// Filename fallbacks when a part sanitizes to nothing.
const (
	FallbackTitle    = "Reporte"
	FallbackIncident = "CMC"
)

// SanitizeFilename trims the value, turns whitespace runs into underscores,
// drops every character outside [A-Za-z0-9_-] and truncates to 100 chars.
func SanitizeFilename(value string) string {
	s := whitespace.ReplaceAllString(strings.TrimSpace(value), "_")
	s = invalidChars.ReplaceAllString(s, "")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns {title}_{incident}_{unixMillis}.docx.
func BuildFilename(title, incident string, now time.Time) string {
	t := SanitizeFilename(title)
	if t == "" {
		t = FallbackTitle
	}
	i := SanitizeFilename(incident)
	if i == "" {
		i = FallbackIncident
	}
	return fmt.Sprintf("%s_%s_%d.docx", t, i, now.UnixMilli())
}
