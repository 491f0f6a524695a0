package gallery

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("gallery image not found")

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, img *Image) error
	GetByID(ctx context.Context, id int) (*Image, error)
	ListByRestaurant(ctx context.Context, restaurantID int) ([]*Image, error)
	Delete(ctx context.Context, id int) error
}
