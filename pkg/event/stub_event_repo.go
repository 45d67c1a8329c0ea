package event

import (
	"context"

	"github.com/google/uuid"
)

// StubEventRepository is an in-memory EventRepository for tests. It keeps
// insertion order, matching the ordering guarantees of the SQL
// implementation for same-day events.
type StubEventRepository struct {
	Events []Event
}

func (s *StubEventRepository) ListEvents(ctx context.Context) ([]Event, error) {
	events := make([]Event, len(s.Events))
	copy(events, s.Events)
	return events, nil
}

func (s *StubEventRepository) GetEvent(ctx context.Context, id string) (*Event, error) {
	for i := range s.Events {
		if s.Events[i].ID == id {
			e := s.Events[i]
			return &e, nil
		}
	}
	return nil, ErrEventNotFound
}

func (s *StubEventRepository) StoreEvent(ctx context.Context, event Event) (Event, error) {
	event.ID = uuid.NewString()
	s.Events = append(s.Events, event)
	return event, nil
}

func (s *StubEventRepository) UpdateEvent(ctx context.Context, id string, event Event) (Event, error) {
	for i := range s.Events {
		if s.Events[i].ID == id {
			event.ID = id
			s.Events[i] = event
			return event, nil
		}
	}
	return Event{}, ErrEventNotFound
}

func (s *StubEventRepository) DeleteEvent(ctx context.Context, id string) error {
	for i := range s.Events {
		if s.Events[i].ID == id {
			s.Events = append(s.Events[:i], s.Events[i+1:]...)
			return nil
		}
	}
	return ErrEventNotFound
}

func (s *StubEventRepository) Cleanup() {
	s.Events = []Event{}
}
