package notify

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Tezay/mariam/internal/events"
)

// Job is one claimed announcement together with the event it
// announces.
type Job struct {
	NotificationID int
	Event          events.Event
}

// Queue is the worker's view of the notification table.
type Queue interface {
	// FetchPending claims the oldest queued notification. A nil job
	// with nil error means the queue is empty, which is NOT an error.
	FetchPending(ctx context.Context) (*Job, error)
	MarkSent(ctx context.Context, notificationID int) error
	MarkFailed(ctx context.Context, notificationID int, reason string) error
}

// --------------------------------------------------
// PostgresQueue
// --------------------------------------------------

type PostgresQueue struct {
	db *pgxpool.Pool
}

func NewPostgresQueue(db *pgxpool.Pool) *PostgresQueue {
	return &PostgresQueue{db: db}
}

// FetchPending claims the next queued notification. The row is flipped
// to SENDING inside the claiming transaction, so concurrent workers
// never pick the same job.
func (q *PostgresQueue) FetchPending(ctx context.Context) (*Job, error) {
	tx, err := q.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var job Job
	err = tx.QueryRow(ctx, `
		SELECT
			n.id,
			e.id,
			e.restaurant_id,
			e.title,
			COALESCE(e.description, ''),
			COALESCE(e.location, ''),
			COALESCE(e.image_url, ''),
			e.starts_at,
			e.ends_at
		FROM event_notifications n
		JOIN events e ON e.id = n.event_id
		WHERE n.status = $1
		ORDER BY n.created_at
		LIMIT 1
		FOR UPDATE OF n SKIP LOCKED
	`, events.NotificationQueued).Scan(
		&job.NotificationID,
		&job.Event.ID,
		&job.Event.RestaurantID,
		&job.Event.Title,
		&job.Event.Description,
		&job.Event.Location,
		&job.Event.ImageURL,
		&job.Event.StartsAt,
		&job.Event.EndsAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		// Empty queue is the normal case.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE event_notifications SET status = 'SENDING' WHERE id = $1
	`, job.NotificationID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &job, nil
}

func (q *PostgresQueue) MarkSent(ctx context.Context, notificationID int) error {
	_, err := q.db.Exec(ctx, `
		UPDATE event_notifications
		SET status = $1, sent_at = $2, error = NULL
		WHERE id = $3
	`, events.NotificationSent, time.Now(), notificationID)
	return err
}

func (q *PostgresQueue) MarkFailed(ctx context.Context, notificationID int, reason string) error {
	_, err := q.db.Exec(ctx, `
		UPDATE event_notifications
		SET status = $1, error = $2
		WHERE id = $3
	`, events.NotificationFailed, reason, notificationID)
	return err
}
