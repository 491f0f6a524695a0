package menu

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	GetByDate(ctx context.Context, restaurantID int, date string) (*Menu, error)
	ListByRange(ctx context.Context, restaurantID int, from, to string) ([]*Menu, error)

	// Upsert creates the menu row for (restaurant, date) if missing and
	// replaces its item list wholesale.
	Upsert(ctx context.Context, m *Menu) error

	Publish(ctx context.Context, menuID int, userID string) error
	Delete(ctx context.Context, menuID int) error
}
