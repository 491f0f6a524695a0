package events

import (
	"context"
	"errors"
	"time"

	"github.com/Tezay/mariam/internal/audit"
)

type Service struct {
	repo  Repository
	audit audit.Recorder
}

func NewService(repo Repository, recorder audit.Recorder) *Service {
	return &Service{repo: repo, audit: recorder}
}

func (s *Service) CreateEvent(ctx context.Context, userID string, e *Event) error {
	if err := validateEvent(e); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return err
	}

	return s.audit.Record(ctx, audit.Entry{
		UserID:     userID,
		Action:     audit.ActionEventCreate,
		TargetType: "event",
		TargetID:   e.ID,
	})
}

func (s *Service) UpdateEvent(ctx context.Context, userID string, e *Event) error {
	if err := validateEvent(e); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return err
	}

	return s.audit.Record(ctx, audit.Entry{
		UserID:     userID,
		Action:     audit.ActionEventUpdate,
		TargetType: "event",
		TargetID:   e.ID,
	})
}

// PublishEvent marks the event visible and, when the event asks for
// it, queues one announcement for the notify worker.
func (s *Service) PublishEvent(ctx context.Context, userID string, eventID int) error {
	e, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	alreadyPublished := e.Published

	if err := s.repo.SetPublished(ctx, eventID, true); err != nil {
		return err
	}

	// Republishing must not queue a second announcement.
	if e.NotifyOnPublish && !alreadyPublished {
		if err := s.repo.EnqueueNotification(ctx, eventID); err != nil {
			return err
		}
	}

	return s.audit.Record(ctx, audit.Entry{
		UserID:     userID,
		Action:     audit.ActionEventUpdate,
		TargetType: "event",
		TargetID:   eventID,
		Details:    map[string]any{"published": true},
	})
}

func (s *Service) UnpublishEvent(ctx context.Context, userID string, eventID int) error {
	if err := s.repo.SetPublished(ctx, eventID, false); err != nil {
		return err
	}

	return s.audit.Record(ctx, audit.Entry{
		UserID:     userID,
		Action:     audit.ActionEventUpdate,
		TargetType: "event",
		TargetID:   eventID,
		Details:    map[string]any{"published": false},
	})
}

func (s *Service) DeleteEvent(ctx context.Context, userID string, eventID int) error {
	if err := s.repo.Delete(ctx, eventID); err != nil {
		return err
	}

	return s.audit.Record(ctx, audit.Entry{
		UserID:     userID,
		Action:     audit.ActionEventDelete,
		TargetType: "event",
		TargetID:   eventID,
	})
}

func (s *Service) GetEvent(ctx context.Context, eventID int) (*Event, error) {
	return s.repo.GetByID(ctx, eventID)
}

func (s *Service) ListEvents(ctx context.Context, restaurantID int) ([]*Event, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

// ListPublicEvents is the unauthenticated view: published, not yet
// over.
func (s *Service) ListPublicEvents(ctx context.Context, restaurantID int) ([]*Event, error) {
	return s.repo.ListUpcomingPublished(ctx, restaurantID, time.Now())
}

func validateEvent(e *Event) error {
	if e.Title == "" {
		return errors.New("title is required")
	}
	if e.StartsAt.IsZero() {
		return errors.New("starts_at is required")
	}
	if e.EndsAt != nil && e.EndsAt.Before(e.StartsAt) {
		return errors.New("ends_at is before starts_at")
	}
	return nil
}
