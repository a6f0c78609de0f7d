package flightapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/flight"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSearchFlightsPassesInventoryThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/flights/search", r.URL.Path)
		require.Equal(t, "new york", r.URL.Query().Get("from"))
		require.Equal(t, "doha", r.URL.Query().Get("to"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":7,"airline":"QR"}]`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL+"/", time.Second, testLogger())
	require.NoError(t, err)

	res := client.SearchFlights(context.Background(), flight.SearchArgs{FromCity: "new york", ToCity: "doha"})
	require.False(t, res.Failed())
	require.JSONEq(t, `[{"id":7,"airline":"QR"}]`, string(res.Flights))
}

func TestSearchFlightsNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nothing", http.StatusNotFound)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, time.Second, testLogger())
	require.NoError(t, err)

	res := client.SearchFlights(context.Background(), flight.SearchArgs{FromCity: "a", ToCity: "b"})
	require.Equal(t, flight.SearchResult{Error: "No flights found"}, res)
}

func TestSearchFlightsInvalidPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, time.Second, testLogger())
	require.NoError(t, err)

	res := client.SearchFlights(context.Background(), flight.SearchArgs{FromCity: "a", ToCity: "b"})
	require.Equal(t, "invalid response from flight service", res.Error)
}

func TestSearchFlightsTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client, err := NewClient(srv.URL, 50*time.Millisecond, testLogger())
	require.NoError(t, err)

	res := client.SearchFlights(context.Background(), flight.SearchArgs{FromCity: "a", ToCity: "b"})
	require.Equal(t, flight.SearchResult{Error: "flight service unavailable"}, res)
}

func TestSearchFlightsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := NewClient(url, time.Second, testLogger())
	require.NoError(t, err)

	res := client.SearchFlights(context.Background(), flight.SearchArgs{FromCity: "a", ToCity: "b"})
	require.Equal(t, "flight service unavailable", res.Error)
}

func TestNewClientValidates(t *testing.T) {
	_, err := NewClient("  ", 0, testLogger())
	require.Error(t, err)

	client, err := NewClient("http://example.com", 0, testLogger())
	require.NoError(t, err)
	require.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}
