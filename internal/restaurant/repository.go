package restaurant

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, restaurant *Restaurant) error
	List(ctx context.Context) ([]*Restaurant, error)
	GetByID(ctx context.Context, id int) (*Restaurant, error)

	// FirstActive is the "resolve default restaurant" collaborator:
	// callers that receive no explicit restaurant id invoke it once and
	// thread the result down.
	FirstActive(ctx context.Context) (*Restaurant, error)
}
