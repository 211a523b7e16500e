// Package duration parses and formats countdown durations in the
// mm:ss / hh:mm:ss notation the timer accepts.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// pattern matches an optional hh: prefix followed by mm:ss. Each field is
// range-checked by the pattern itself, not normalized afterwards.
var pattern = regexp.MustCompile(`^(?:([01][0-9]|2[0-3]):)?([0-5][0-9]):([0-5][0-9])$`)

// Parse converts user input into a duration. Exactly two shapes are
// accepted: "mm:ss" (5 characters) and "hh:mm:ss" (8 characters), with
// hours 00-23 and minutes/seconds 00-59. Anything else, including
// out-of-range fields like "00:90", yields ok == false.
func Parse(s string) (time.Duration, bool) {
	if len(s) != 5 && len(s) != 8 {
		return 0, false
	}
	groups := pattern.FindStringSubmatch(s)
	if groups == nil {
		return 0, false
	}

	var hours int
	if groups[1] != "" {
		hours, _ = strconv.Atoi(groups[1])
	}
	minutes, _ := strconv.Atoi(groups[2])
	seconds, _ := strconv.Atoi(groups[3])

	total := 3600*hours + 60*minutes + seconds
	return time.Duration(total) * time.Second, true
}

// Format renders a duration as "hh:mm:ss", or "mm:ss" when it is under an
// hour. Fields are zero-padded to two digits; hours are not capped at 23,
// so long-running values keep formatting. Negative durations clamp to
// "00:00".
func Format(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h == 0 {
		return fmt.Sprintf("%02d:%02d", m, s)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
