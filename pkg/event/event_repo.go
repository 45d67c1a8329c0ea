package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// EventRepository stores concrete event occurrences. Implementations assign
// the ID on store.
type EventRepository interface {
	ListEvents(ctx context.Context) ([]Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	StoreEvent(ctx context.Context, event Event) (Event, error)
	UpdateEvent(ctx context.Context, id string, event Event) (Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

type EventRepositoryImpl struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepositoryImpl {
	return &EventRepositoryImpl{db: db}
}

const eventColumns = `id, title, description, location, category, event_date, start_time, end_time, repeat_type, repeat_interval, repeat_id, notification_time`

func (r *EventRepositoryImpl) ListEvents(ctx context.Context) ([]Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY event_date, start_time, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query events: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	events := make([]Event, 0, 10)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *EventRepositoryImpl) GetEvent(ctx context.Context, id string) (*Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not scan row: %w", err)
		log.Error(err)
		return nil, err
	}
	return &e, nil
}

func (r *EventRepositoryImpl) StoreEvent(ctx context.Context, event Event) (Event, error) {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return Event{}, err
	}
	defer stmt.Close()

	event.ID = uuid.NewString()
	_, err = stmt.ExecContext(ctx, event.ID, event.Title, event.Description, event.Location, event.Category,
		event.Date, event.StartTime, event.EndTime, string(event.Repeat.Type), event.Repeat.Interval,
		nullableString(event.RepeatID), event.NotificationTime)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return Event{}, err
	}

	return event, nil
}

func (r *EventRepositoryImpl) UpdateEvent(ctx context.Context, id string, event Event) (Event, error) {
	query := `UPDATE events
			  SET title = $1, description = $2, location = $3, category = $4, event_date = $5,
			      start_time = $6, end_time = $7, repeat_type = $8, repeat_interval = $9,
			      repeat_id = $10, notification_time = $11
			  WHERE id = $12`

	result, err := r.db.ExecContext(ctx, query, event.Title, event.Description, event.Location, event.Category,
		event.Date, event.StartTime, event.EndTime, string(event.Repeat.Type), event.Repeat.Interval,
		nullableString(event.RepeatID), event.NotificationTime, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return Event{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Event{}, fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected == 0 {
		return Event{}, ErrEventNotFound
	}

	event.ID = id
	return event, nil
}

func (r *EventRepositoryImpl) DeleteEvent(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrEventNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (Event, error) {
	var e Event
	var repeatType string
	var repeatID sql.NullString
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.Category, &e.Date, &e.StartTime,
		&e.EndTime, &repeatType, &e.Repeat.Interval, &repeatID, &e.NotificationTime)
	if err != nil {
		return Event{}, err
	}
	e.Repeat.Type = RepeatType(repeatType)
	if repeatID.Valid {
		e.RepeatID = repeatID.String
	}
	return e, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
