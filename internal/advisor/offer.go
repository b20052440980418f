package advisor

import (
	"fmt"
	"strings"

	"startup-companion-be/internal/constant"
)

// OfferSentence builds the handoff question appended to a dashboard reply
// when a message classifies into a specialist domain. It embeds both the
// marker phrase and the domain label so DetectOffer can recover the domain
// from reply text alone.
func OfferSentence(d Domain) string {
	return fmt.Sprintf("%s you with our %s specialist?", constant.OfferMarkerPhrase, d.Label)
}

// IsAffirmative reports whether a user message accepts a pending offer.
// Matching is case-insensitive substring containment over a fixed token list.
func IsAffirmative(message string) bool {
	lower := strings.ToLower(message)
	for _, token := range constant.AffirmativeTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// DetectOffer recovers a pending handoff offer from assistant reply text.
// Used as a fallback when the caller supplies raw history instead of a
// session with a recorded pending offer. Only replies carrying the marker
// phrase count; the domain is the first (priority order) whose label appears.
func DetectOffer(assistantReply string) (Domain, bool) {
	if !strings.Contains(assistantReply, constant.OfferMarkerPhrase) {
		return Domain{}, false
	}
	for _, d := range domains {
		if strings.Contains(assistantReply, d.Label) {
			return d, true
		}
	}
	return Domain{}, false
}
