// Package timex provides clock-of-day parsing and the duration arithmetic
// used for shift lengths. Shifts never cross midnight, so a clock value is
// just hours and minutes; dates are handled separately as ISO strings.
package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/clinicops/timekeeper/internal/common"
)

// DateLayout is the ISO calendar date format used in the store ("2006-01-02").
const DateLayout = "2006-01-02"

// Clock is a clock-of-day value with minute granularity.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a "HH:MM" string into a Clock. Hour must be 0-23 and
// minute 0-59; anything else fails with common.ErrBadClock.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Clock{}, fmt.Errorf("%w: %q", common.ErrBadClock, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", common.ErrBadClock, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", common.ErrBadClock, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("%w: %q", common.ErrBadClock, s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

// String formats the clock back to "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns the clock position as minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// After reports whether c is strictly later in the day than other.
func (c Clock) After(other Clock) bool {
	return c.Minutes() > other.Minutes()
}

// Hours returns out - in as signed fractional hours: whole hours plus
// minutes/60. Callers that require a positive shift must check before
// calling; a negative result is returned as-is.
func Hours(in, out Clock) float64 {
	diff := out.Minutes() - in.Minutes()
	return float64(diff/60) + float64(diff%60)/60
}

// HoursBetween parses both clock strings and returns their signed
// fractional-hour difference.
func HoursBetween(inTime, outTime string) (float64, error) {
	in, err := ParseClock(inTime)
	if err != nil {
		return 0, err
	}
	out, err := ParseClock(outTime)
	if err != nil {
		return 0, err
	}
	return Hours(in, out), nil
}

// FormatHours renders fractional hours the shortest way: "8" for 8.0,
// "8.25" for a quarter past. Report output depends on this shape.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// ParseDate parses an ISO calendar date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders t as an ISO calendar date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
