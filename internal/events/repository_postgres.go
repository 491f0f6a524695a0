package events

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const eventColumns = `
	id,
	restaurant_id,
	title,
	COALESCE(description, ''),
	COALESCE(location, ''),
	COALESCE(image_url, ''),
	starts_at,
	ends_at,
	published,
	notify_on_publish,
	created_at,
	updated_at
`

// --------------------------------------------------
// Create
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, e *Event) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO events (
			restaurant_id,
			title,
			description,
			location,
			image_url,
			starts_at,
			ends_at,
			notify_on_publish
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at, updated_at
	`,
		e.RestaurantID,
		e.Title,
		e.Description,
		e.Location,
		e.ImageURL,
		e.StartsAt,
		e.EndsAt,
		e.NotifyOnPublish,
	).Scan(
		&e.ID,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
}

// --------------------------------------------------
// Update
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, e *Event) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE events
		SET title = $1,
		    description = $2,
		    location = $3,
		    image_url = $4,
		    starts_at = $5,
		    ends_at = $6,
		    notify_on_publish = $7,
		    updated_at = now()
		WHERE id = $8
	`,
		e.Title,
		e.Description,
		e.Location,
		e.ImageURL,
		e.StartsAt,
		e.EndsAt,
		e.NotifyOnPublish,
		e.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Event, error) {
	row := r.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)

	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *PostgresRepository) ListByRestaurant(ctx context.Context, restaurantID int) ([]*Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE restaurant_id = $1
		ORDER BY starts_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *PostgresRepository) ListUpcomingPublished(ctx context.Context, restaurantID int, now time.Time) ([]*Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE restaurant_id = $1
		  AND published = TRUE
		  AND COALESCE(ends_at, starts_at) >= $2
		ORDER BY starts_at ASC
	`, restaurantID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// --------------------------------------------------
// Publish / Delete
// --------------------------------------------------
func (r *PostgresRepository) SetPublished(ctx context.Context, id int, published bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE events SET published = $1, updated_at = now() WHERE id = $2
	`, published, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Notifications
// --------------------------------------------------
func (r *PostgresRepository) EnqueueNotification(ctx context.Context, eventID int) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO event_notifications (event_id, status) VALUES ($1, $2)
	`, eventID, NotificationQueued)
	return err
}

// --------------------------------------------------
// Scan helpers
// --------------------------------------------------

func scanEvent(row pgx.Row) (*Event, error) {
	var e Event
	err := row.Scan(
		&e.ID,
		&e.RestaurantID,
		&e.Title,
		&e.Description,
		&e.Location,
		&e.ImageURL,
		&e.StartsAt,
		&e.EndsAt,
		&e.Published,
		&e.NotifyOnPublish,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEvents(rows pgx.Rows) ([]*Event, error) {
	var events []*Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
