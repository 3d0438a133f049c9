package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Text strips all markup from raw and trims the result.
// Entities produced by the policy are decoded so the value stays plain text.
func Text(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := policy().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func policy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
