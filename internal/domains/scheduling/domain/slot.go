package domain

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar date format used across the appointment book.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate = errors.New("date must be a calendar date in YYYY-MM-DD form")
	ErrInvalidSlot = errors.New("time range is not a bookable slot")
)

// slots is the fixed set of hour-long display slots offered by the booking
// form, 07:00 through 20:00. Slots are opaque strings, not instants; the
// conflict check compares them by equality.
var slots = func() []string {
	out := make([]string, 0, 13)
	for hour := 7; hour < 20; hour++ {
		out = append(out, fmt.Sprintf("%02d:00 - %02d:00", hour, hour+1))
	}
	return out
}()

var slotSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		set[slot] = struct{}{}
	}
	return set
}()

// Slots returns the bookable hour slots in display order.
func Slots() []string {
	return append([]string(nil), slots...)
}

// ValidateDate checks the calendar date format.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// ValidateSlot checks membership in the enumerated slot set.
func ValidateSlot(timeRange string) error {
	if _, ok := slotSet[timeRange]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, timeRange)
	}
	return nil
}
