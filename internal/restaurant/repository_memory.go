package restaurant

import (
	"context"
	"time"
)

type InMemoryRepository struct {
	restaurants []*Restaurant
	nextID      int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(ctx context.Context, restaurant *Restaurant) error {
	restaurant.ID = r.nextID
	r.nextID++
	restaurant.CreatedAt = time.Now()
	r.restaurants = append(r.restaurants, restaurant)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Restaurant, error) {
	return r.restaurants, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int) (*Restaurant, error) {
	for _, res := range r.restaurants {
		if res.ID == id {
			return res, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) FirstActive(ctx context.Context) (*Restaurant, error) {
	for _, res := range r.restaurants {
		if res.IsActive {
			return res, nil
		}
	}
	return nil, ErrNotFound
}
