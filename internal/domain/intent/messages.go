package intent

import "github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"

const (
	greetingEN = "Hello! How can I help you with flights?"
	greetingAR = "مرحباً! كيف يمكنني مساعدتك في الرحلات؟"

	refusalEN = "I'm sorry — I only help with flight booking, baggage, refunds, schedules or travel-related queries."
	refusalAR = "عذراً — أستطيع المساعدة فقط في حجز الرحلات والأمتعة والاسترداد والمواعيد والاستفسارات المتعلقة بالسفر."
)

// GreetingReply is the canned answer to small talk.
func GreetingReply(loc locale.Locale) string {
	return locale.Pick(loc, greetingEN, greetingAR)
}

// RefusalReply is the canned answer to off-topic requests.
func RefusalReply(loc locale.Locale) string {
	return locale.Pick(loc, refusalEN, refusalAR)
}
