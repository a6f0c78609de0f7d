package flight

import (
	"context"
	"encoding/json"
)

// StatusConfirmed is the only status a local booking produces.
const StatusConfirmed = "CONFIRMED"

// SearchArgs are the search_flights action arguments.
type SearchArgs struct {
	FromCity string `json:"from_city"`
	ToCity   string `json:"to_city"`
}

// SearchResult is either the inventory payload or an error message.
// Flights is kept opaque.
type SearchResult struct {
	Flights json.RawMessage `json:"flights,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Failed reports whether the search produced an error payload.
func (r SearchResult) Failed() bool {
	return r.Error != ""
}

// BookArgs are the book_flight action arguments.
type BookArgs struct {
	FlightID      int    `json:"flight_id"`
	PassengerName string `json:"passenger_name"`
}

// Ticket is the booking confirmation rendered to the passenger.
type Ticket struct {
	PNR         string `json:"pnr"`
	FlightID    int    `json:"flight_id"`
	Passenger   string `json:"passenger"`
	BookingDate string `json:"booking_date"`
	Status      string `json:"status"`
}

// BookResult is either a ticket or an error message.
type BookResult struct {
	Ticket *Ticket `json:"ticket,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// Searcher executes search_flights.
type Searcher interface {
	SearchFlights(ctx context.Context, args SearchArgs) SearchResult
}

// Booker executes book_flight.
type Booker interface {
	BookFlight(ctx context.Context, args BookArgs) BookResult
}
