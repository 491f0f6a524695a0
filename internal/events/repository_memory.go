package events

import (
	"context"
	"sort"
	"time"
)

// InMemoryRepository backs the event service in tests.
type InMemoryRepository struct {
	events        map[int]*Event
	Notifications []Notification
	nextID        int
	nextNotifID   int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		events:      make(map[int]*Event),
		nextID:      1,
		nextNotifID: 1,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, e *Event) error {
	e.ID = r.nextID
	r.nextID++
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	r.events[e.ID] = e
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, e *Event) error {
	stored, ok := r.events[e.ID]
	if !ok {
		return ErrNotFound
	}

	stored.Title = e.Title
	stored.Description = e.Description
	stored.Location = e.Location
	stored.ImageURL = e.ImageURL
	stored.StartsAt = e.StartsAt
	stored.EndsAt = e.EndsAt
	stored.NotifyOnPublish = e.NotifyOnPublish
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int) (*Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

func (r *InMemoryRepository) ListByRestaurant(ctx context.Context, restaurantID int) ([]*Event, error) {
	var events []*Event
	for _, e := range r.events {
		if e.RestaurantID == restaurantID {
			events = append(events, e)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartsAt.After(events[j].StartsAt)
	})
	return events, nil
}

func (r *InMemoryRepository) ListUpcomingPublished(ctx context.Context, restaurantID int, now time.Time) ([]*Event, error) {
	var events []*Event
	for _, e := range r.events {
		if e.RestaurantID != restaurantID || !e.Published {
			continue
		}
		end := e.StartsAt
		if e.EndsAt != nil {
			end = *e.EndsAt
		}
		if end.Before(now) {
			continue
		}
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartsAt.Before(events[j].StartsAt)
	})
	return events, nil
}

func (r *InMemoryRepository) SetPublished(ctx context.Context, id int, published bool) error {
	e, ok := r.events[id]
	if !ok {
		return ErrNotFound
	}
	e.Published = published
	e.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int) error {
	if _, ok := r.events[id]; !ok {
		return ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *InMemoryRepository) EnqueueNotification(ctx context.Context, eventID int) error {
	r.Notifications = append(r.Notifications, Notification{
		ID:        r.nextNotifID,
		EventID:   eventID,
		Status:    NotificationQueued,
		CreatedAt: time.Now(),
	})
	r.nextNotifID++
	return nil
}
