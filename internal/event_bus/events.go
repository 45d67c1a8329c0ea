package event_bus

// ScheduleCreatedPayload describes a stored calendar event. For a repeating
// event one payload is published per materialized occurrence.
type ScheduleCreatedPayload struct {
	ID       string
	Title    string
	Date     string
	RepeatID string
}

// ScheduleDeletedPayload identifies a removed calendar event.
type ScheduleDeletedPayload struct {
	ID string
}
