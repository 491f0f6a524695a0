package gallery

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, img *Image) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO gallery_images (
			restaurant_id,
			storage_key,
			url,
			filename,
			caption,
			display_order
		)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at
	`,
		img.RestaurantID,
		img.StorageKey,
		img.URL,
		img.Filename,
		img.Caption,
		img.DisplayOrder,
	).Scan(
		&img.ID,
		&img.CreatedAt,
	)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Image, error) {
	var img Image
	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, storage_key, url,
		       COALESCE(filename, ''), COALESCE(caption, ''),
		       display_order, created_at
		FROM gallery_images
		WHERE id = $1
	`, id).Scan(
		&img.ID,
		&img.RestaurantID,
		&img.StorageKey,
		&img.URL,
		&img.Filename,
		&img.Caption,
		&img.DisplayOrder,
		&img.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &img, nil
}

func (r *PostgresRepository) ListByRestaurant(ctx context.Context, restaurantID int) ([]*Image, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, storage_key, url,
		       COALESCE(filename, ''), COALESCE(caption, ''),
		       display_order, created_at
		FROM gallery_images
		WHERE restaurant_id = $1
		ORDER BY display_order, id
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []*Image
	for rows.Next() {
		var img Image
		if err := rows.Scan(
			&img.ID,
			&img.RestaurantID,
			&img.StorageKey,
			&img.URL,
			&img.Filename,
			&img.Caption,
			&img.DisplayOrder,
			&img.CreatedAt,
		); err != nil {
			return nil, err
		}
		images = append(images, &img)
	}
	return images, rows.Err()
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
