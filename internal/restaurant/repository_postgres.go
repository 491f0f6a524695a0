package restaurant

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("restaurant not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create a new restaurant
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, restaurant *Restaurant) error {
	var categories []byte
	if len(restaurant.MenuCategories) > 0 {
		var err error
		categories, err = json.Marshal(restaurant.MenuCategories)
		if err != nil {
			return err
		}
	}

	query := `
		INSERT INTO restaurants (
			name,
			code,
			address,
			is_active,
			menu_categories
		)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		restaurant.Name,
		restaurant.Code,
		restaurant.Address,
		restaurant.IsActive,
		categories,
	).Scan(&restaurant.ID, &restaurant.CreatedAt)
}

// --------------------------------------------------
// List all restaurants
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]*Restaurant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			name,
			code,
			COALESCE(address, ''),
			is_active,
			menu_categories,
			created_at
		FROM restaurants
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*Restaurant

	for rows.Next() {
		res, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, res)
	}

	return restaurants, rows.Err()
}

// --------------------------------------------------
// Get restaurant by id
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Restaurant, error) {
	row := r.db.QueryRow(ctx, `
		SELECT
			id,
			name,
			code,
			COALESCE(address, ''),
			is_active,
			menu_categories,
			created_at
		FROM restaurants
		WHERE id = $1
	`, id)

	res, err := scanRestaurant(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return res, err
}

// --------------------------------------------------
// First active restaurant (default resolution)
// --------------------------------------------------
func (r *PostgresRepository) FirstActive(ctx context.Context) (*Restaurant, error) {
	row := r.db.QueryRow(ctx, `
		SELECT
			id,
			name,
			code,
			COALESCE(address, ''),
			is_active,
			menu_categories,
			created_at
		FROM restaurants
		WHERE is_active = TRUE
		ORDER BY id
		LIMIT 1
	`)

	res, err := scanRestaurant(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return res, err
}

func scanRestaurant(row pgx.Row) (*Restaurant, error) {
	var res Restaurant
	var categories []byte

	if err := row.Scan(
		&res.ID,
		&res.Name,
		&res.Code,
		&res.Address,
		&res.IsActive,
		&categories,
		&res.CreatedAt,
	); err != nil {
		return nil, err
	}

	if len(categories) > 0 {
		if err := json.Unmarshal(categories, &res.MenuCategories); err != nil {
			return nil, err
		}
	}

	return &res, nil
}
