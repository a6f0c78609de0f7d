package faq

import "github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"

const (
	disclaimerEN = "\n\nℹ️ This answer is based on closest available information."
	disclaimerAR = "\n\nℹ️ هذه الإجابة مبنية على أقرب معلومات متاحة."
)

// Disclaimer is appended to low-confidence answers.
func Disclaimer(loc locale.Locale) string {
	return locale.Pick(loc, disclaimerEN, disclaimerAR)
}
