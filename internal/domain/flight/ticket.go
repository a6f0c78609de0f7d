package flight

import (
	"fmt"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"
)

const ticketTemplateEN = `✈️ Booking Confirmed!

PNR: %s
Passenger: %s
Flight ID: %d
Booking Date: %s
Status: %s`

const ticketTemplateAR = `✈️ تم تأكيد الحجز!

رقم الحجز (PNR): %s
اسم المسافر: %s
رقم الرحلة: %d
تاريخ الحجز: %s
الحالة: %s`

// RenderTicket formats a ticket with the locale's labels. Field values are
// written verbatim.
func RenderTicket(loc locale.Locale, t Ticket) string {
	status := t.Status
	if status == "" {
		status = StatusConfirmed
	}
	tmpl := locale.Pick(loc, ticketTemplateEN, ticketTemplateAR)
	return fmt.Sprintf(tmpl, t.PNR, t.Passenger, t.FlightID, t.BookingDate, status)
}
