package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Tezay/mariam/internal/audit"
	"github.com/Tezay/mariam/internal/menu"
)

// --------------------------------------------------
// PostgresMenuStore
// --------------------------------------------------

// PostgresMenuStore writes confirmed imports into the menus tables.
// Reads go through the menu repository; the commit path runs its own
// transaction because the whole batch and the audit row must land
// together.
type PostgresMenuStore struct {
	db    *pgxpool.Pool
	menus menu.Repository
}

func NewPostgresMenuStore(db *pgxpool.Pool, menus menu.Repository) *PostgresMenuStore {
	return &PostgresMenuStore{db: db, menus: menus}
}

func (s *PostgresMenuStore) FindExisting(ctx context.Context, restaurantID int, date string) (*menu.Menu, error) {
	existing, err := s.menus.GetByDate(ctx, restaurantID, date)
	if err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return existing, nil
}

func (s *PostgresMenuStore) Commit(ctx context.Context, restaurantID int, menus []BuiltMenu, opts CommitOptions) (ImportCounts, error) {
	var counts ImportCounts

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return counts, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, built := range menus {
		var menuID int
		err := tx.QueryRow(ctx,
			`SELECT id FROM menus WHERE restaurant_id = $1 AND date = $2`,
			restaurantID, built.DateISO,
		).Scan(&menuID)

		exists := err == nil
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return ImportCounts{}, fmt.Errorf("failed to look up menu for %s: %w", built.DateISO, err)
		}

		if exists {
			switch opts.Policy {
			case PolicySkip:
				counts.Skipped++
				continue
			case PolicyReplace:
				if _, err := tx.Exec(ctx, `DELETE FROM menu_items WHERE menu_id = $1`, menuID); err != nil {
					return ImportCounts{}, fmt.Errorf("failed to clear items for %s: %w", built.DateISO, err)
				}
				counts.Replaced++
			case PolicyMerge:
				counts.Replaced++
			}
		} else {
			err := tx.QueryRow(ctx,
				`INSERT INTO menus (restaurant_id, date, status) VALUES ($1, $2, $3) RETURNING id`,
				restaurantID, built.DateISO, menu.StatusDraft,
			).Scan(&menuID)
			if err != nil {
				return ImportCounts{}, fmt.Errorf("failed to create menu for %s: %w", built.DateISO, err)
			}
			counts.Imported++
		}

		for _, item := range built.Items {
			_, err := tx.Exec(ctx,
				`INSERT INTO menu_items (menu_id, category, name, item_order, tags, certifications)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				menuID, item.Category, item.Name, item.Order, item.Tags, item.Certifications,
			)
			if err != nil {
				return ImportCounts{}, fmt.Errorf("failed to insert item for %s: %w", built.DateISO, err)
			}
		}

		if opts.AutoPublish {
			_, err := tx.Exec(ctx,
				`UPDATE menus
				 SET status = $1, published_at = now(), published_by = $2, updated_at = now()
				 WHERE id = $3`,
				menu.StatusPublished, opts.UserID, menuID,
			)
			if err != nil {
				return ImportCounts{}, fmt.Errorf("failed to publish menu for %s: %w", built.DateISO, err)
			}
		}
	}

	details, err := json.Marshal(map[string]any{
		"filename":       opts.Filename,
		"imported_count": counts.Imported,
		"replaced_count": counts.Replaced,
		"skipped_count":  counts.Skipped,
		"auto_publish":   opts.AutoPublish,
	})
	if err != nil {
		return ImportCounts{}, fmt.Errorf("failed to encode audit details: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO audit_logs (user_id, action, target_type, details, ip_address)
		 VALUES ($1, $2, 'menu', $3, $4)`,
		opts.UserID, audit.ActionCSVImport, details, nullable(opts.IPAddress),
	)
	if err != nil {
		return ImportCounts{}, fmt.Errorf("failed to record audit entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return ImportCounts{}, fmt.Errorf("failed to commit import: %w", err)
	}

	return counts, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
