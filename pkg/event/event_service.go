package event

import (
	"context"
	"fmt"
	"time"

	"github.com/dalyeok/dalyeok/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

var ErrEventNotFound = fmt.Errorf("event not found")

type EventService interface {
	ListEvents(ctx context.Context) ([]Event, error)
	Search(ctx context.Context, query string, ref time.Time, view View) ([]Event, error)
	CreateEvent(ctx context.Context, draft Event) (Event, error)
	UpdateEvent(ctx context.Context, id string, patch Event) (Event, error)
	DeleteEvent(ctx context.Context, id string) error
	FindOverlapping(ctx context.Context, draft Event) ([]Event, error)
}

type EventServiceImpl struct {
	repo          EventRepository
	bus           *event_bus.EventBus
	horizonMonths int
}

func NewEventService(repo EventRepository, bus *event_bus.EventBus, horizonMonths int) *EventServiceImpl {
	return &EventServiceImpl{repo: repo, bus: bus, horizonMonths: horizonMonths}
}

func (s *EventServiceImpl) ListEvents(ctx context.Context) ([]Event, error) {
	return s.repo.ListEvents(ctx)
}

// Search applies the week/month window around ref and the free-text query
// to the stored events.
func (s *EventServiceImpl) Search(ctx context.Context, query string, ref time.Time, view View) ([]Event, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return Filtered(events, query, ref, view), nil
}

// CreateEvent stores the draft. A repeating draft is first materialized
// into concrete occurrences up to the configured horizon; every occurrence
// is stored as an independent event sharing one repeat group id. The
// returned event is the first stored occurrence.
func (s *EventServiceImpl) CreateEvent(ctx context.Context, draft Event) (Event, error) {
	occurrences := []Event{draft}

	if draft.Repeat.Type != RepeatNone && draft.Repeat.Type != "" {
		start, err := ParseDateTime(draft.Date, draft.StartTime)
		if err != nil {
			log.Warnf("repeating event with unparseable start, storing single occurrence: %v", err)
		} else {
			horizon := start.AddDate(0, s.horizonMonths, 0)
			occurrences, err = ExpandRecurrence(draft, horizon)
			if err != nil {
				return Event{}, fmt.Errorf("failed to expand recurrence: %w", err)
			}
		}
	}

	stored := make([]Event, 0, len(occurrences))
	for _, occurrence := range occurrences {
		storedEvent, err := s.repo.StoreEvent(ctx, occurrence)
		if err != nil {
			return Event{}, fmt.Errorf("failed to store event: %w", err)
		}
		stored = append(stored, storedEvent)
		s.publishCreated(ctx, storedEvent)
	}

	log.Debugf("Created %d occurrence(s) for event %q", len(stored), draft.Title)
	return stored[0], nil
}

func (s *EventServiceImpl) UpdateEvent(ctx context.Context, id string, patch Event) (Event, error) {
	return s.repo.UpdateEvent(ctx, id, patch)
}

func (s *EventServiceImpl) DeleteEvent(ctx context.Context, id string) error {
	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return err
	}
	if s.bus != nil {
		if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.ScheduleDeleted, event_bus.ScheduleDeletedPayload{ID: id})); err != nil {
			log.Errorf("failed to publish %s: %v", event_bus.ScheduleDeleted, err)
		}
	}
	return nil
}

// FindOverlapping returns the stored events whose time range intersects the
// draft's, for double-booking warnings before a save.
func (s *EventServiceImpl) FindOverlapping(ctx context.Context, draft Event) ([]Event, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return FindOverlapping(draft, events), nil
}

func (s *EventServiceImpl) publishCreated(ctx context.Context, e Event) {
	if s.bus == nil {
		return
	}
	payload := event_bus.ScheduleCreatedPayload{ID: e.ID, Title: e.Title, Date: e.Date, RepeatID: e.RepeatID}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.ScheduleCreated, payload)); err != nil {
		log.Errorf("failed to publish %s: %v", event_bus.ScheduleCreated, err)
	}
}
