package menu

import (
	"context"
	"errors"
	"fmt"
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

// --------------------------------------------------
// Save menu (create or replace items)
// --------------------------------------------------
func (s *Service) SaveMenu(ctx context.Context, userID string, m *Menu) error {
	if err := validateMenu(m); err != nil {
		return err
	}

	if err := s.repo.Upsert(ctx, m); err != nil {
		return err
	}

	_ = s.audit.Record(ctx, audit.Entry{
		UserID:     userID,
		Action:     audit.ActionMenuUpdate,
		TargetType: "menu",
		TargetID:   m.ID,
		Details:    map[string]any{"date": m.Date, "items": len(m.Items)},
	})

	return nil
}

// --------------------------------------------------
// Publish menu
// --------------------------------------------------
func (s *Service) PublishMenu(ctx context.Context, userID string, menuID int) error {
	if err := s.repo.Publish(ctx, menuID, userID); err != nil {
		return err
	}

	_ = s.audit.Record(ctx, audit.Entry{
		UserID:     userID,
		Action:     audit.ActionMenuPublish,
		TargetType: "menu",
		TargetID:   menuID,
	})

	return nil
}

// --------------------------------------------------
// Delete menu
// --------------------------------------------------
func (s *Service) DeleteMenu(ctx context.Context, userID string, menuID int) error {
	if err := s.repo.Delete(ctx, menuID); err != nil {
		return err
	}

	_ = s.audit.Record(ctx, audit.Entry{
		UserID:     userID,
		Action:     audit.ActionMenuDelete,
		TargetType: "menu",
		TargetID:   menuID,
	})

	return nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------
func (s *Service) GetMenu(ctx context.Context, restaurantID int, date string) (*Menu, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q", date)
	}
	return s.repo.GetByDate(ctx, restaurantID, date)
}

func (s *Service) ListMenus(ctx context.Context, restaurantID int, from, to string) ([]*Menu, error) {
	if _, err := time.Parse(DateLayout, from); err != nil {
		return nil, fmt.Errorf("invalid date %q", from)
	}
	if _, err := time.Parse(DateLayout, to); err != nil {
		return nil, fmt.Errorf("invalid date %q", to)
	}
	return s.repo.ListByRange(ctx, restaurantID, from, to)
}

// GetPublishedMenu backs the public read path: draft menus stay invisible.
func (s *Service) GetPublishedMenu(ctx context.Context, restaurantID int, date string) (*Menu, error) {
	m, err := s.GetMenu(ctx, restaurantID, date)
	if err != nil {
		return nil, err
	}
	if m.Status != StatusPublished {
		return nil, ErrNotFound
	}
	return m, nil
}

// ListPublishedMenus is the public range read, typically one week.
func (s *Service) ListPublishedMenus(ctx context.Context, restaurantID int, from, to string) ([]*Menu, error) {
	menus, err := s.ListMenus(ctx, restaurantID, from, to)
	if err != nil {
		return nil, err
	}

	published := make([]*Menu, 0, len(menus))
	for _, m := range menus {
		if m.Status == StatusPublished {
			published = append(published, m)
		}
	}
	return published, nil
}

func validateMenu(m *Menu) error {
	if m.RestaurantID == 0 {
		return errors.New("restaurant id is required")
	}
	if _, err := time.Parse(DateLayout, m.Date); err != nil {
		return fmt.Errorf("invalid date %q", m.Date)
	}
	for _, item := range m.Items {
		if item.Category == "" {
			return errors.New("item category is required")
		}
		if item.Name == "" {
			return errors.New("item name is required")
		}
	}
	return nil
}
