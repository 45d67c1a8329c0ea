package event

// RepeatType identifies the recurrence rule of an event.
type RepeatType string

const (
	RepeatNone    RepeatType = "none"
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
	RepeatYearly  RepeatType = "yearly"
)

// Repeat describes how often an event recurs. Interval is the number of
// units (days, weeks, ...) between occurrences.
type Repeat struct {
	Type     RepeatType
	Interval int
}

// Event is a single dated occurrence on the calendar. A repeating event is
// materialized into independent Event records sharing one RepeatID, so
// everything downstream (filtering, overlap, notifications) only ever sees
// concrete instances.
//
// Date is YYYY-MM-DD; StartTime and EndTime are HH:MM within that date.
// Events are treated as immutable: an edit produces a new record with the
// same ID.
type Event struct {
	ID          string
	Title       string
	Description string
	Location    string
	Category    string
	Date        string
	StartTime   string
	EndTime     string
	Repeat      Repeat
	RepeatID    string
	// NotificationTime is the reminder lead time in minutes before StartTime.
	NotificationTime int
}
