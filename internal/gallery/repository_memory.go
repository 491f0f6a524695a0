package gallery

import (
	"context"
	"sort"
	"time"
)

type InMemoryRepository struct {
	images map[int]*Image
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		images: make(map[int]*Image),
		nextID: 1,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, img *Image) error {
	img.ID = r.nextID
	r.nextID++
	img.CreatedAt = time.Now()
	r.images[img.ID] = img
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int) (*Image, error) {
	img, ok := r.images[id]
	if !ok {
		return nil, ErrNotFound
	}
	return img, nil
}

func (r *InMemoryRepository) ListByRestaurant(ctx context.Context, restaurantID int) ([]*Image, error) {
	var images []*Image
	for _, img := range r.images {
		if img.RestaurantID == restaurantID {
			images = append(images, img)
		}
	}
	sort.Slice(images, func(i, j int) bool {
		if images[i].DisplayOrder != images[j].DisplayOrder {
			return images[i].DisplayOrder < images[j].DisplayOrder
		}
		return images[i].ID < images[j].ID
	})
	return images, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int) error {
	if _, ok := r.images[id]; !ok {
		return ErrNotFound
	}
	delete(r.images, id)
	return nil
}
