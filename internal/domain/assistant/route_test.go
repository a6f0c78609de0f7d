package assistant

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/flight"
)

func TestExtractRoute(t *testing.T) {
	cases := []struct {
		in   string
		want flight.SearchArgs
	}{
		{in: "jaipur to doha", want: flight.SearchArgs{FromCity: "jaipur", ToCity: "doha"}},
		{in: "From Jaipur to Doha?", want: flight.SearchArgs{FromCity: "jaipur", ToCity: "doha"}},
		{in: "new york to abu dhabi", want: flight.SearchArgs{FromCity: "new york", ToCity: "abu dhabi"}},
		{in: "من الدوحة إلى دبي", want: flight.SearchArgs{FromCity: "الدوحة", ToCity: "دبي"}},
		{in: "الرياض الى جدة", want: flight.SearchArgs{FromCity: "الرياض", ToCity: "جدة"}},
	}
	for _, tc := range cases {
		got, ok := ExtractRoute(tc.in)
		require.True(t, ok, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestExtractRouteRejectsSentences(t *testing.T) {
	for _, in := range []string{
		"how to check in",
		"i want to go to paris",
		"book a flight to dubai",
		"welcome to doha",
		"doha to doha",
		"flight 7 to doha",
		"what is the baggage allowance",
		"",
	} {
		_, ok := ExtractRoute(in)
		require.False(t, ok, in)
	}
}
