package event_bus

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBus(t *testing.T) {
	t.Run("delivers to subscribers of the type", func(t *testing.T) {
		bus := NewEventBus()

		var received []any
		bus.Subscribe(ScheduleCreated, func(e Event) error {
			received = append(received, e.Data)
			return nil
		})

		err := bus.Publish(NewEvent(context.Background(), ScheduleCreated, "payload"))

		assert.NoError(t, err)
		assert.Equal(t, []any{"payload"}, received)
	})

	t.Run("other types are not delivered", func(t *testing.T) {
		bus := NewEventBus()

		delivered := 0
		bus.Subscribe(ScheduleDeleted, func(Event) error {
			delivered++
			return nil
		})

		assert.NoError(t, bus.Publish(NewEvent(context.Background(), ScheduleCreated, nil)))
		assert.Zero(t, delivered)
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		bus := NewEventBus()

		delivered := 0
		unsubscribe := bus.Subscribe(ScheduleCreated, func(Event) error {
			delivered++
			return nil
		})

		assert.NoError(t, bus.Publish(NewEvent(context.Background(), ScheduleCreated, nil)))
		unsubscribe()
		assert.NoError(t, bus.Publish(NewEvent(context.Background(), ScheduleCreated, nil)))

		assert.Equal(t, 1, delivered)
	})

	t.Run("handler errors are joined and later handlers still run", func(t *testing.T) {
		bus := NewEventBus()

		bus.Subscribe(ScheduleCreated, func(Event) error {
			return fmt.Errorf("first failed")
		})
		ran := false
		bus.Subscribe(ScheduleCreated, func(Event) error {
			ran = true
			return nil
		})

		err := bus.Publish(NewEvent(context.Background(), ScheduleCreated, nil))

		assert.Error(t, err)
		assert.ErrorContains(t, err, "first failed")
		assert.True(t, ran)
	})

	t.Run("a panicking handler becomes an error", func(t *testing.T) {
		bus := NewEventBus()
		bus.Subscribe(ScheduleCreated, func(Event) error {
			panic("boom")
		})

		err := bus.Publish(NewEvent(context.Background(), ScheduleCreated, nil))
		assert.ErrorContains(t, err, "boom")
	})

	t.Run("cancelled context aborts the publish", func(t *testing.T) {
		bus := NewEventBus()
		delivered := 0
		bus.Subscribe(ScheduleCreated, func(Event) error {
			delivered++
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := bus.Publish(NewEvent(ctx, ScheduleCreated, nil))
		assert.Error(t, err)
		assert.Zero(t, delivered)
	})

	t.Run("event without a context falls back to background", func(t *testing.T) {
		e := Event{Type: ScheduleCreated}
		assert.Equal(t, context.Background(), e.Context())
	})
}
