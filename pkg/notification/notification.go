package notification

import (
	"fmt"
	"time"

	"github.com/dalyeok/dalyeok/pkg/event"
)

// Notification is one rendered reminder for an event, held in memory until
// the user dismisses it.
type Notification struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// UpcomingEvents returns the events whose notification lead window contains
// now and that have not been notified yet. The window is half-open:
// [start - NotificationTime minutes, start). Events with malformed date or
// time fields never qualify.
func UpcomingEvents(events []event.Event, now time.Time, notified map[string]bool) []event.Event {
	upcoming := make([]event.Event, 0)
	for _, e := range events {
		if notified[e.ID] {
			continue
		}
		start, err := event.ParseDateTime(e.Date, e.StartTime)
		if err != nil {
			continue
		}
		windowStart := start.Add(-time.Duration(e.NotificationTime) * time.Minute)
		if !now.Before(windowStart) && now.Before(start) {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming
}

// Message renders the reminder text for an event.
func Message(e event.Event) string {
	return fmt.Sprintf("%d분 후 %s 일정이 시작됩니다.", e.NotificationTime, e.Title)
}
