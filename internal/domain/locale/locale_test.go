package locale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Locale
	}{
		{name: "empty", in: "", want: English},
		{name: "latin", in: "Book a flight to Doha", want: English},
		{name: "arabic", in: "مرحبا", want: Arabic},
		{name: "mixed script", in: "flight to دبي please", want: Arabic},
		{name: "digits only", in: "12345", want: English},
		{name: "arabic block end", in: "ۿ", want: Arabic},
		{name: "just outside block", in: "܀", want: English},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Detect(tc.in))
		})
	}
}

func TestPick(t *testing.T) {
	require.Equal(t, "hi", Pick(English, "hi", "مرحبا"))
	require.Equal(t, "مرحبا", Pick(Arabic, "hi", "مرحبا"))
	require.Equal(t, "hi", Pick(Locale("fr"), "hi", "مرحبا"))
}
