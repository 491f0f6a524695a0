package menu

import (
	"context"
	"time"
)

type InMemoryRepository struct {
	menus  map[int]*Menu
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		menus:  make(map[int]*Menu),
		nextID: 1,
	}
}

func (r *InMemoryRepository) GetByDate(
	ctx context.Context,
	restaurantID int,
	date string,
) (*Menu, error) {
	for _, m := range r.menus {
		if m.RestaurantID == restaurantID && m.Date == date {
			return m, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) ListByRange(
	ctx context.Context,
	restaurantID int,
	from, to string,
) ([]*Menu, error) {
	var menus []*Menu
	for _, m := range r.menus {
		if m.RestaurantID == restaurantID && m.Date >= from && m.Date <= to {
			menus = append(menus, m)
		}
	}
	return menus, nil
}

func (r *InMemoryRepository) Upsert(ctx context.Context, m *Menu) error {
	existing, err := r.GetByDate(ctx, m.RestaurantID, m.Date)
	if err == nil {
		existing.Items = m.Items
		existing.ChefNote = m.ChefNote
		existing.UpdatedAt = time.Now()
		m.ID = existing.ID
		return nil
	}

	m.ID = r.nextID
	r.nextID++
	m.Status = StatusDraft
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	r.menus[m.ID] = m
	return nil
}

func (r *InMemoryRepository) Publish(ctx context.Context, menuID int, userID string) error {
	m, ok := r.menus[menuID]
	if !ok {
		return ErrNotFound
	}

	now := time.Now()
	m.Status = StatusPublished
	m.PublishedAt = &now
	m.PublishedBy = &userID
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, menuID int) error {
	if _, ok := r.menus[menuID]; !ok {
		return ErrNotFound
	}
	delete(r.menus, menuID)
	return nil
}
