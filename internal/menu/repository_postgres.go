package menu

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("menu not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// GET MENU BY (RESTAURANT, DATE)
// --------------------------------------------------
func (r *PostgresRepository) GetByDate(
	ctx context.Context,
	restaurantID int,
	date string,
) (*Menu, error) {

	var m Menu
	err := r.db.QueryRow(ctx, `
		SELECT
			id,
			restaurant_id,
			to_char(date, 'YYYY-MM-DD'),
			status,
			COALESCE(chef_note, ''),
			published_at,
			published_by,
			created_at,
			updated_at
		FROM menus
		WHERE restaurant_id = $1
		  AND date = $2
	`, restaurantID, date).Scan(
		&m.ID,
		&m.RestaurantID,
		&m.Date,
		&m.Status,
		&m.ChefNote,
		&m.PublishedAt,
		&m.PublishedBy,
		&m.CreatedAt,
		&m.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	m.Items = items

	return &m, nil
}

// --------------------------------------------------
// LIST MENUS IN DATE RANGE
// --------------------------------------------------
func (r *PostgresRepository) ListByRange(
	ctx context.Context,
	restaurantID int,
	from, to string,
) ([]*Menu, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			restaurant_id,
			to_char(date, 'YYYY-MM-DD'),
			status,
			COALESCE(chef_note, ''),
			published_at,
			published_by,
			created_at,
			updated_at
		FROM menus
		WHERE restaurant_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date
	`, restaurantID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []*Menu

	for rows.Next() {
		var m Menu
		if err := rows.Scan(
			&m.ID,
			&m.RestaurantID,
			&m.Date,
			&m.Status,
			&m.ChefNote,
			&m.PublishedAt,
			&m.PublishedBy,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		menus = append(menus, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, m := range menus {
		items, err := r.loadItems(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		m.Items = items
	}

	return menus, nil
}

// --------------------------------------------------
// UPSERT MENU + REPLACE ITEMS (ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) Upsert(ctx context.Context, m *Menu) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO menus (restaurant_id, date, status, chef_note)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		ON CONFLICT ON CONSTRAINT uq_menu_restaurant_date
		DO UPDATE SET
			chef_note = NULLIF($4, ''),
			updated_at = now()
		RETURNING id
	`, m.RestaurantID, m.Date, StatusDraft, m.ChefNote).Scan(&m.ID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM menu_items WHERE menu_id = $1
	`, m.ID); err != nil {
		return err
	}

	for _, item := range m.Items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO menu_items (menu_id, category, name, item_order, tags, certifications)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, m.ID, item.Category, item.Name, item.Order, item.Tags, item.Certifications); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// PUBLISH MENU
// --------------------------------------------------
func (r *PostgresRepository) Publish(ctx context.Context, menuID int, userID string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menus
		SET status = $1,
		    published_at = now(),
		    published_by = $2,
		    updated_at = now()
		WHERE id = $3
	`, StatusPublished, userID, menuID)

	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// --------------------------------------------------
// DELETE MENU
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, menuID int) error {
	cmd, err := r.db.Exec(ctx, `
		DELETE FROM menus WHERE id = $1
	`, menuID)

	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) loadItems(ctx context.Context, menuID int) ([]MenuItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, menu_id, category, name, item_order, tags, certifications
		FROM menu_items
		WHERE menu_id = $1
		ORDER BY category, item_order, id
	`, menuID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []MenuItem{}
	for rows.Next() {
		var item MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.MenuID,
			&item.Category,
			&item.Name,
			&item.Order,
			&item.Tags,
			&item.Certifications,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
