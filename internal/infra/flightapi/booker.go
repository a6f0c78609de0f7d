package flightapi

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/flight"
	"github.com/Rajveer-VIT/flight-chatbot-backend/pkg/util"
)

const (
	pnrMin = 10000
	pnrMax = 99999
)

// LocalBooker issues confirmation tickets without a reservation backend.
type LocalBooker struct {
	now    func() time.Time
	mu     sync.Mutex
	rng    *rand.Rand
	logger *slog.Logger
}

// NewLocalBooker builds a booker on the wall clock.
func NewLocalBooker(logger *slog.Logger) *LocalBooker {
	return newLocalBooker(util.NowUTC, rand.New(rand.NewSource(time.Now().UnixNano())), logger)
}

func newLocalBooker(now func() time.Time, rng *rand.Rand, logger *slog.Logger) *LocalBooker {
	return &LocalBooker{
		now:    now,
		rng:    rng,
		logger: logger.With("component", "flightapi.booker"),
	}
}

// BookFlight returns a CONFIRMED ticket with a FL-DDMMYY-NNNNN reference.
func (b *LocalBooker) BookFlight(_ context.Context, args flight.BookArgs) flight.BookResult {
	if args.FlightID <= 0 || args.PassengerName == "" {
		return flight.BookResult{Error: "flight_id and passenger_name are required"}
	}
	dateCode := util.DateCode(b.now())

	b.mu.Lock()
	serial := pnrMin + b.rng.Intn(pnrMax-pnrMin+1)
	b.mu.Unlock()

	ticket := &flight.Ticket{
		PNR:         fmt.Sprintf("FL-%s-%d", dateCode, serial),
		FlightID:    args.FlightID,
		Passenger:   args.PassengerName,
		BookingDate: dateCode,
		Status:      flight.StatusConfirmed,
	}
	b.logger.Info("flight booked", "pnr", ticket.PNR, "flight_id", ticket.FlightID)
	return flight.BookResult{Ticket: ticket}
}
