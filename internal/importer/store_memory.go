package importer

import (
	"context"
	"errors"

	"github.com/Tezay/mariam/internal/audit"
	"github.com/Tezay/mariam/internal/menu"
)

// --------------------------------------------------
// InMemoryMenuStore
// --------------------------------------------------

// InMemoryMenuStore applies imports against an in-memory menu
// repository. Handy for tests; makes no atomicity promise.
type InMemoryMenuStore struct {
	menus menu.Repository
	audit audit.Recorder
}

func NewInMemoryMenuStore(menus menu.Repository, recorder audit.Recorder) *InMemoryMenuStore {
	return &InMemoryMenuStore{menus: menus, audit: recorder}
}

func (s *InMemoryMenuStore) FindExisting(ctx context.Context, restaurantID int, date string) (*menu.Menu, error) {
	existing, err := s.menus.GetByDate(ctx, restaurantID, date)
	if err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return existing, nil
}

func (s *InMemoryMenuStore) Commit(ctx context.Context, restaurantID int, menus []BuiltMenu, opts CommitOptions) (ImportCounts, error) {
	var counts ImportCounts

	for _, built := range menus {
		existing, err := s.FindExisting(ctx, restaurantID, built.DateISO)
		if err != nil {
			return ImportCounts{}, err
		}

		items := toMenuItems(built.Items)

		target := &menu.Menu{
			RestaurantID: restaurantID,
			Date:         built.DateISO,
			Status:       menu.StatusDraft,
			Items:        items,
		}

		if existing != nil {
			switch opts.Policy {
			case PolicySkip:
				counts.Skipped++
				continue
			case PolicyReplace:
				counts.Replaced++
			case PolicyMerge:
				target.Items = append(append([]menu.MenuItem{}, existing.Items...), items...)
				counts.Replaced++
			}
			target.ID = existing.ID
			target.Status = existing.Status
			target.ChefNote = existing.ChefNote
		} else {
			counts.Imported++
		}

		if err := s.menus.Upsert(ctx, target); err != nil {
			return ImportCounts{}, err
		}

		if opts.AutoPublish {
			if err := s.menus.Publish(ctx, target.ID, opts.UserID); err != nil {
				return ImportCounts{}, err
			}
		}
	}

	err := s.audit.Record(ctx, audit.Entry{
		UserID:     opts.UserID,
		Action:     audit.ActionCSVImport,
		TargetType: "menu",
		IPAddress:  opts.IPAddress,
		Details: map[string]any{
			"filename":       opts.Filename,
			"imported_count": counts.Imported,
			"replaced_count": counts.Replaced,
			"skipped_count":  counts.Skipped,
			"auto_publish":   opts.AutoPublish,
		},
	})
	if err != nil {
		return ImportCounts{}, err
	}

	return counts, nil
}

func toMenuItems(items []BuiltItem) []menu.MenuItem {
	converted := make([]menu.MenuItem, 0, len(items))
	for _, item := range items {
		converted = append(converted, menu.MenuItem{
			Category:       item.Category,
			Name:           item.Name,
			Order:          item.Order,
			Tags:           item.Tags,
			Certifications: item.Certifications,
		})
	}
	return converted
}
