package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidClock = errors.New("invalid time format, expected HH:MM")

const minutesPerDay = 24 * 60

// Clock is a wall-clock time of day with no attached date. Profile schedules
// are pure times of day, so a full time.Time (which would pin a date and a
// zone) is the wrong tool here.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a "HH:MM" string into a Clock. Anything that is not two
// colon-separated integers is rejected.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Clock{}, ErrInvalidClock
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Clock{}, ErrInvalidClock
	}

	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Clock{}, ErrInvalidClock
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

// Offset returns the clock shifted by the given signed hour and minute
// deltas, wrapping around midnight in both directions. A negative minute
// delta that borrows from the hour and then pushes it below zero still
// normalizes into [0,23].
func (c Clock) Offset(hours, minutes int) Clock {
	total := (c.Hour+hours)*60 + c.Minute + minutes

	total %= minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}

	return Clock{Hour: total / 60, Minute: total % 60}
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
