// Package locale picks the response language for an utterance.
//
// Detection is a script check, not a language-ID model: any rune from the
// Arabic block selects Arabic, everything else is English. Mixed-script text
// with a single Arabic letter is therefore answered in Arabic.
package locale

// Locale identifies the response language and retrieval corpus side.
type Locale string

const (
	English Locale = "en"
	Arabic  Locale = "ar"
)

const (
	arabicBlockStart = '؀'
	arabicBlockEnd   = 'ۿ'
)

// Detect classifies text by script. The empty string is English.
func Detect(text string) Locale {
	for _, r := range text {
		if r >= arabicBlockStart && r <= arabicBlockEnd {
			return Arabic
		}
	}
	return English
}

// Pick returns en or ar depending on l, defaulting to en.
func Pick(l Locale, en, ar string) string {
	if l == Arabic {
		return ar
	}
	return en
}
