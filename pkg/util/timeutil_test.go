package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateCode(t *testing.T) {
	ts := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)
	require.Equal(t, "010124", DateCode(ts))
	require.Equal(t, "311299", DateCode(time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

func TestNowUTCIsUTC(t *testing.T) {
	require.Equal(t, time.UTC, NowUTC().Location())
}
