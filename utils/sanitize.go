package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy  = bluemonday.UGCPolicy()
	textPolicy = bluemonday.StrictPolicy()
)

// Sanitize cleans server-supplied HTML content (recipe descriptions) to prevent XSS.
func Sanitize(input string) string {
	return ugcPolicy.Sanitize(input)
}

// SanitizeText strips all markup from fields rendered as plain text
// (comment and reply bodies, usernames).
func SanitizeText(input string) string {
	return strings.TrimSpace(textPolicy.Sanitize(input))
}
