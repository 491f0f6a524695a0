package events

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("event not found")

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, e *Event) error
	Update(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id int) (*Event, error)
	ListByRestaurant(ctx context.Context, restaurantID int) ([]*Event, error)

	// ListUpcomingPublished returns published events that have not
	// ended before now, soonest first.
	ListUpcomingPublished(ctx context.Context, restaurantID int, now time.Time) ([]*Event, error)

	SetPublished(ctx context.Context, id int, published bool) error
	Delete(ctx context.Context, id int) error

	EnqueueNotification(ctx context.Context, eventID int) error
}
