package event

import (
	"fmt"
	"time"
)

// ErrInvalidDateTime is returned for malformed date or time strings. Every
// predicate built on top of parsing treats it as "never matches", so a
// corrupt event can neither overlap nor satisfy a filter.
var ErrInvalidDateTime = fmt.Errorf("invalid date or time")

const dateTimeLayout = "2006-01-02 15:04"

// DateRange is the half-open interval [Start, End) an event occupies.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateTime combines a YYYY-MM-DD date and an HH:MM time of day into a
// single instant. Out-of-range components (month 13, hour 25, Feb 30) and
// empty strings yield ErrInvalidDateTime.
func ParseDateTime(date string, hm string) (time.Time, error) {
	if date == "" || hm == "" {
		return time.Time{}, ErrInvalidDateTime
	}
	t, err := time.ParseInLocation(dateTimeLayout, date+" "+hm, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q", ErrInvalidDateTime, date, hm)
	}
	return t, nil
}

// ToDateRange converts e's date and time-of-day fields into a DateRange.
func ToDateRange(e Event) (DateRange, error) {
	start, err := ParseDateTime(e.Date, e.StartTime)
	if err != nil {
		return DateRange{}, err
	}
	end, err := ParseDateTime(e.Date, e.EndTime)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{Start: start, End: end}, nil
}

// IsOverlapping reports whether a and b occupy intersecting time ranges.
// Ranges are half-open, so touching endpoints do not overlap. Events with
// malformed date or time fields never overlap anything.
func IsOverlapping(a, b Event) bool {
	ra, err := ToDateRange(a)
	if err != nil {
		return false
	}
	rb, err := ToDateRange(b)
	if err != nil {
		return false
	}
	return ra.Start.Before(rb.End) && rb.Start.Before(ra.End)
}

// FindOverlapping returns every member of events that overlaps candidate,
// in input order. The candidate itself is excluded by ID when present.
func FindOverlapping(candidate Event, events []Event) []Event {
	overlapping := make([]Event, 0)
	for _, e := range events {
		if e.ID != "" && e.ID == candidate.ID {
			continue
		}
		if IsOverlapping(candidate, e) {
			overlapping = append(overlapping, e)
		}
	}
	return overlapping
}
