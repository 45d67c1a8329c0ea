package event

import (
	"fmt"
	"time"

	"github.com/dalyeok/dalyeok/pkg/calendar"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
)

// maxOccurrences caps a single expansion so an over-wide horizon cannot
// produce an unbounded series.
const maxOccurrences = 1000

// ExpandRecurrence materializes a repeating event template into concrete
// Event records, one per occurrence, up to and including horizon. Every
// occurrence shares one RepeatID so a series can be addressed as a group.
// A template with RepeatNone yields just the template itself.
//
// Monthly and yearly rules follow RRULE semantics: months without the
// template's day-of-month (and Feb 29 outside leap years) are skipped
// rather than clamped.
func ExpandRecurrence(template Event, horizon time.Time) ([]Event, error) {
	if template.Repeat.Type == RepeatNone || template.Repeat.Type == "" {
		return []Event{template}, nil
	}

	start, err := ParseDateTime(template.Date, template.StartTime)
	if err != nil {
		return nil, fmt.Errorf("cannot expand recurrence: %w", err)
	}

	freq, err := repeatFrequency(template.Repeat.Type)
	if err != nil {
		return nil, err
	}

	interval := template.Repeat.Interval
	if interval < 1 {
		interval = 1
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:     freq,
		Interval: interval,
		Dtstart:  start,
		Until:    horizon,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build recurrence rule: %w", err)
	}

	occurrenceTimes := rule.All()
	if len(occurrenceTimes) > maxOccurrences {
		occurrenceTimes = occurrenceTimes[:maxOccurrences]
	}

	repeatID := template.RepeatID
	if repeatID == "" {
		repeatID = uuid.NewString()
	}

	occurrences := make([]Event, 0, len(occurrenceTimes))
	for _, t := range occurrenceTimes {
		occurrence := template
		occurrence.Date = calendar.FormatDate(t)
		occurrence.RepeatID = repeatID
		occurrences = append(occurrences, occurrence)
	}
	return occurrences, nil
}

func repeatFrequency(t RepeatType) (rrule.Frequency, error) {
	switch t {
	case RepeatDaily:
		return rrule.DAILY, nil
	case RepeatWeekly:
		return rrule.WEEKLY, nil
	case RepeatMonthly:
		return rrule.MONTHLY, nil
	case RepeatYearly:
		return rrule.YEARLY, nil
	default:
		return 0, fmt.Errorf("unknown repeat type: %q", t)
	}
}
