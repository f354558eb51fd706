// Package timeutil provides utility functions for presenting elapsed practice
// time.
package timeutil

import "fmt"

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

// SplitSeconds expresses a seconds value in hours, minutes and seconds.
// Hours are not capped at a day.
func SplitSeconds(total int) (hrs, mins, secs int) {
	if total < 0 {
		total = 0
	}

	hrs = total / secondsInAnHour
	rem := total % secondsInAnHour
	mins = rem / secondsInAMinute
	secs = rem % secondsInAMinute

	return
}

// FormatDuration renders a seconds value as "HHh MMm SSs". Each component is
// padded to two digits; an hour count past 99 is printed in full.
func FormatDuration(total int) string {
	h, m, s := SplitSeconds(total)

	return fmt.Sprintf("%02dh %02dm %02ds", h, m, s)
}
