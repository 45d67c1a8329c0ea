package app

import (
	"database/sql"
	"fmt"

	"github.com/dalyeok/dalyeok/internal/config"
	"github.com/dalyeok/dalyeok/internal/event_bus"
	"github.com/dalyeok/dalyeok/internal/utils"
	"github.com/dalyeok/dalyeok/pkg/event"
	"github.com/dalyeok/dalyeok/pkg/holiday"
	"github.com/dalyeok/dalyeok/pkg/notification"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus   *event_bus.EventBus
	Clock utils.Clock

	EventRepo    event.EventRepository
	EventService event.EventService
	EventHandler *event.EventHandler

	Scheduler           *notification.Scheduler
	NotificationHandler *notification.Handler

	HolidayService *holiday.Service
	HolidayHandler *holiday.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.EventRepo = event.NewEventRepo(db)
	deps.EventService = event.NewEventService(deps.EventRepo, deps.Bus, cfg.Recurrence.HorizonMonths)
	deps.EventHandler = event.NewEventHandler(deps.EventService, deps.Clock)

	deps.Scheduler = notification.NewScheduler(deps.Clock)
	deps.NotificationHandler = notification.NewHandler(deps.Scheduler)

	// A deleted event should not linger in the notification list.
	deps.Bus.Subscribe(event_bus.ScheduleDeleted, func(e event_bus.Event) error {
		payload, ok := e.Data.(event_bus.ScheduleDeletedPayload)
		if !ok {
			return nil
		}
		deps.Scheduler.DropEvent(payload.ID)
		return nil
	})

	holidayService, err := holiday.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	deps.HolidayService = holidayService
	deps.HolidayHandler = holiday.NewHandler(holidayService)

	return deps, nil
}
