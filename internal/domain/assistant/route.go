package assistant

import (
	"regexp"
	"strings"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/flight"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/intent"
)

const cityPattern = `(\p{L}+(?:\s\p{L}+){0,2})`

var routePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(?:from\s+)?` + cityPattern + `\s+to\s+` + cityPattern + `$`),
	regexp.MustCompile(`^(?:من\s+)?` + cityPattern + `\s+(?:إلى|الى)\s+` + cityPattern + `$`),
}

// routeStopwords are words that never appear in a city name; they keep
// sentences such as "how to check in" out of the manual route.
var routeStopwords = map[string]struct{}{
	"to": {}, "from": {}, "i": {}, "want": {}, "need": {}, "go": {}, "going": {}, "fly": {},
	"travel": {}, "how": {}, "what": {}, "where": {}, "when": {}, "why": {}, "who": {},
	"which": {}, "is": {}, "are": {}, "a": {}, "an": {}, "the": {}, "me": {}, "my": {},
	"flight": {}, "flights": {}, "book": {}, "booking": {}, "ticket": {}, "tickets": {},
	"welcome": {}, "time": {}, "refund": {}, "back": {}, "please": {}, "can": {}, "do": {},
	"من": {}, "إلى": {}, "الى": {}, "رحلة": {}, "رحلات": {}, "أريد": {}, "حجز": {}, "كيف": {},
}

// ExtractRoute matches "<city> to <city>" and "from <city> to <city>"
// (and the Arabic equivalents) on the normalized utterance.
func ExtractRoute(text string) (flight.SearchArgs, bool) {
	normalized := intent.Normalize(text)
	for _, pattern := range routePatterns {
		m := pattern.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		from, to := m[1], m[2]
		if !plausibleCity(from) || !plausibleCity(to) || from == to {
			return flight.SearchArgs{}, false
		}
		return flight.SearchArgs{FromCity: from, ToCity: to}, true
	}
	return flight.SearchArgs{}, false
}

func plausibleCity(city string) bool {
	for _, word := range strings.Fields(city) {
		if _, stop := routeStopwords[word]; stop {
			return false
		}
	}
	return city != ""
}
