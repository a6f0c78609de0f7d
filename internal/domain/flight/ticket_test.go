package flight

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"
)

func sampleTicket() Ticket {
	return Ticket{PNR: "FL-010124-12345", Passenger: "Ali", FlightID: 7, BookingDate: "010124", Status: StatusConfirmed}
}

func TestRenderTicketEnglish(t *testing.T) {
	want := "✈️ Booking Confirmed!\n\n" +
		"PNR: FL-010124-12345\n" +
		"Passenger: Ali\n" +
		"Flight ID: 7\n" +
		"Booking Date: 010124\n" +
		"Status: CONFIRMED"
	require.Equal(t, want, RenderTicket(locale.English, sampleTicket()))
}

func TestRenderTicketArabic(t *testing.T) {
	out := RenderTicket(locale.Arabic, sampleTicket())

	require.Contains(t, out, "تم تأكيد الحجز")
	for _, field := range []string{"FL-010124-12345", "Ali", "رقم الرحلة: 7", "010124", "CONFIRMED"} {
		require.Contains(t, out, field)
	}
	require.NotContains(t, out, "Passenger:")
}

func TestRenderTicketDefaultsStatus(t *testing.T) {
	ticket := sampleTicket()
	ticket.Status = ""
	require.Contains(t, RenderTicket(locale.English, ticket), "Status: CONFIRMED")
}

func TestResultPayloadShapes(t *testing.T) {
	raw, err := json.Marshal(BookResult{Ticket: &Ticket{PNR: "FL-010124-12345", FlightID: 7, Passenger: "Ali", BookingDate: "010124", Status: StatusConfirmed}})
	require.NoError(t, err)
	require.JSONEq(t, `{"ticket":{"pnr":"FL-010124-12345","flight_id":7,"passenger":"Ali","booking_date":"010124","status":"CONFIRMED"}}`, string(raw))

	raw, err = json.Marshal(SearchResult{Error: "No flights found"})
	require.NoError(t, err)
	require.JSONEq(t, `{"error":"No flights found"}`, string(raw))
	require.True(t, SearchResult{Error: "x"}.Failed())
}
