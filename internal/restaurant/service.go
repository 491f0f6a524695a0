package restaurant

import (
	"context"
	"errors"

	"github.com/Tezay/mariam/internal/audit"
)

type Service struct {
	repo  Repository
	audit audit.Recorder
}

func NewService(repo Repository, recorder audit.Recorder) *Service {
	return &Service{repo: repo, audit: recorder}
}

func (s *Service) CreateRestaurant(
	ctx context.Context,
	userID string,
	name, code, address string,
) (*Restaurant, error) {

	if name == "" || code == "" {
		return nil, errors.New("name and code are required")
	}

	restaurant := &Restaurant{
		Name:     name,
		Code:     code,
		Address:  address,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, audit.Entry{
		UserID:     userID,
		Action:     audit.ActionRestaurantCreate,
		TargetType: "restaurant",
		TargetID:   restaurant.ID,
	}); err != nil {
		return nil, err
	}

	return restaurant, nil
}

func (s *Service) ListRestaurants(ctx context.Context) ([]*Restaurant, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetRestaurant(ctx context.Context, id int) (*Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}

// Resolve returns the restaurant for an explicit id, or the first
// active restaurant when no id is supplied.
func (s *Service) Resolve(ctx context.Context, id *int) (*Restaurant, error) {
	if id != nil {
		return s.repo.GetByID(ctx, *id)
	}
	return s.repo.FirstActive(ctx)
}
