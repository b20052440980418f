package advisor

import (
	"strings"

	"startup-companion-be/internal/constant"
)

// Classify matches a user message against the domain keyword sets and returns
// the first domain (in priority order) with any keyword hit. The comparison is
// a case-insensitive substring check, so "incorporation" matches a message
// about "pre-incorporation checks" too.
func Classify(message string) (Domain, bool) {
	lower := strings.ToLower(message)
	for _, d := range domains {
		for _, kw := range d.Keywords {
			if strings.Contains(lower, kw) {
				return d, true
			}
		}
	}
	return Domain{}, false
}

// WantsDocument reports whether a message asks for a downloadable document,
// which makes the registration specialist generate a guide alongside its reply.
func WantsDocument(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range constant.DocumentKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
