package notification

import (
	"fmt"
	"sync"

	"github.com/dalyeok/dalyeok/internal/utils"
	"github.com/dalyeok/dalyeok/pkg/event"
	log "github.com/sirupsen/logrus"
)

var ErrNoSuchNotification = fmt.Errorf("no notification at given position")

// Scheduler tracks which events have fired a reminder during the current
// session. Each event goes Pending -> Notified exactly once; the notified
// set is never persisted and resets with the process. The mutex enforces
// the single-writer discipline for hosts that drive ticks concurrently.
type Scheduler struct {
	mu            sync.Mutex
	clock         utils.Clock
	notifications []Notification
	notified      map[string]bool
}

func NewScheduler(clock utils.Clock) *Scheduler {
	return &Scheduler{
		clock:         clock,
		notifications: make([]Notification, 0),
		notified:      make(map[string]bool),
	}
}

// Tick evaluates the notification windows of events at the clock's current
// time and returns the newly created notifications. Re-running a tick at
// the same time with unchanged state emits nothing, so an external driver
// can call it as often as it likes.
func (s *Scheduler) Tick(events []event.Event) []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	created := make([]Notification, 0)
	for _, e := range UpcomingEvents(events, now, s.notified) {
		n := Notification{ID: e.ID, Message: Message(e)}
		s.notifications = append(s.notifications, n)
		s.notified[e.ID] = true
		created = append(created, n)
		log.Debugf("notification created for event %s", e.ID)
	}
	return created
}

// Notifications returns a snapshot of the active notifications in creation
// order.
func (s *Scheduler) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]Notification, len(s.notifications))
	copy(snapshot, s.notifications)
	return snapshot
}

// NotifiedIDs returns the ids of all events that have fired this session,
// including those whose notifications were since dismissed.
func (s *Scheduler) NotifiedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.notified))
	for id := range s.notified {
		ids = append(ids, id)
	}
	return ids
}

// Dismiss removes the notification at the given position. The event stays
// in the notified set, so dismissal does not re-arm the reminder.
func (s *Scheduler) Dismiss(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.notifications) {
		return ErrNoSuchNotification
	}
	s.notifications = append(s.notifications[:index], s.notifications[index+1:]...)
	return nil
}

// DropEvent removes any active notifications for the given event id, e.g.
// after the event itself was deleted. The notified mark is kept.
func (s *Scheduler) DropEvent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
}
