package event

import (
	"strings"
	"time"

	"github.com/dalyeok/dalyeok/pkg/calendar"
)

// View selects the date window used when filtering events.
type View string

const (
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

const dateLayout = "2006-01-02"

// Filtered returns the events that fall inside ref's week or month window
// and, when query is non-empty, contain query case-insensitively in their
// title, description, or location. Input order is preserved.
func Filtered(events []Event, query string, ref time.Time, view View) []Event {
	windowed := inView(events, ref, view)
	if query == "" {
		return windowed
	}

	q := strings.ToLower(query)
	matched := make([]Event, 0, len(windowed))
	for _, e := range windowed {
		if matchesQuery(e, q) {
			matched = append(matched, e)
		}
	}
	return matched
}

// EventsOnDay returns the events whose date has the given day-of-month.
// Only the day component is compared; callers are expected to have scoped
// events to a single month already (typically one cell of a month grid).
// Days outside [1,31] yield an empty result.
func EventsOnDay(events []Event, day int) []Event {
	matched := make([]Event, 0)
	if day < 1 || day > 31 {
		return matched
	}
	for _, e := range events {
		t, err := time.ParseInLocation(dateLayout, e.Date, time.UTC)
		if err != nil {
			continue
		}
		if t.Day() == day {
			matched = append(matched, e)
		}
	}
	return matched
}

func matchesQuery(e Event, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(e.Title), loweredQuery) ||
		strings.Contains(strings.ToLower(e.Description), loweredQuery) ||
		strings.Contains(strings.ToLower(e.Location), loweredQuery)
}

func inView(events []Event, ref time.Time, view View) []Event {
	kept := make([]Event, 0, len(events))
	switch view {
	case ViewWeek:
		week := calendar.WeekDates(ref)
		windowStart := week[0]
		windowEnd := week[len(week)-1].AddDate(0, 0, 1)
		for _, e := range events {
			d, err := time.ParseInLocation(dateLayout, e.Date, ref.Location())
			if err != nil {
				continue
			}
			if !d.Before(windowStart) && d.Before(windowEnd) {
				kept = append(kept, e)
			}
		}
	case ViewMonth:
		for _, e := range events {
			d, err := time.ParseInLocation(dateLayout, e.Date, ref.Location())
			if err != nil {
				continue
			}
			if d.Year() == ref.Year() && d.Month() == ref.Month() {
				kept = append(kept, e)
			}
		}
	default:
		kept = append(kept, events...)
	}
	return kept
}
