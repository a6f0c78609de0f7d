package util

import "time"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DateCode renders a day as DDMMYY, the format used in booking references.
func DateCode(t time.Time) string {
	return t.Format("020106")
}
