package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	usersSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'viewer',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, usersSQL); err != nil {
		return err
	}

	// -------------------------------
	// RESTAURANTS
	// -------------------------------
	restaurantsSQL := `
		CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			code VARCHAR(20) UNIQUE NOT NULL,
			address VARCHAR(200),
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			menu_categories JSONB,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, restaurantsSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENUS + ITEMS
	// -------------------------------
	menusSQL := `
		CREATE TABLE IF NOT EXISTS menus (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'draft',
			chef_note VARCHAR(300),
			published_at TIMESTAMP,
			published_by UUID REFERENCES users(id),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT uq_menu_restaurant_date UNIQUE (restaurant_id, date)
		);

		CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			menu_id INT NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
			category VARCHAR(50) NOT NULL,
			name VARCHAR(200) NOT NULL,
			item_order INT NOT NULL DEFAULT 0,
			tags TEXT[] NOT NULL DEFAULT '{}',
			certifications TEXT[] NOT NULL DEFAULT '{}'
		);

		CREATE INDEX IF NOT EXISTS idx_menus_date ON menus(date);
	`
	if _, err := pool.Exec(ctx, menusSQL); err != nil {
		return err
	}

	// -------------------------------
	// IMPORT SESSIONS
	// -------------------------------
	importSessionsSQL := `
		CREATE TABLE IF NOT EXISTS import_sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			filename VARCHAR(255) NOT NULL,
			columns JSONB NOT NULL,
			rows JSONB NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			expires_at TIMESTAMP NOT NULL
		)
	`
	if _, err := pool.Exec(ctx, importSessionsSQL); err != nil {
		return err
	}

	// -------------------------------
	// EVENTS + NOTIFICATION QUEUE
	// -------------------------------
	eventsSQL := `
		CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			title VARCHAR(200) NOT NULL,
			description TEXT,
			location VARCHAR(200),
			image_url VARCHAR(500),
			starts_at TIMESTAMP NOT NULL,
			ends_at TIMESTAMP,
			published BOOLEAN NOT NULL DEFAULT FALSE,
			notify_on_publish BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS event_notifications (
			id SERIAL PRIMARY KEY,
			event_id INT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			status VARCHAR(20) NOT NULL DEFAULT 'QUEUED',
			error TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			sent_at TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, eventsSQL); err != nil {
		return err
	}

	// -------------------------------
	// GALLERY
	// -------------------------------
	gallerySQL := `
		CREATE TABLE IF NOT EXISTS gallery_images (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			storage_key VARCHAR(500) NOT NULL,
			url VARCHAR(500) NOT NULL,
			filename VARCHAR(255),
			caption VARCHAR(300),
			display_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, gallerySQL); err != nil {
		return err
	}

	// -------------------------------
	// AUDIT LOG
	// -------------------------------
	auditSQL := `
		CREATE TABLE IF NOT EXISTS audit_logs (
			id SERIAL PRIMARY KEY,
			user_id UUID,
			action VARCHAR(50) NOT NULL,
			target_type VARCHAR(50),
			target_id INT,
			details JSONB,
			ip_address VARCHAR(45),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_audit_logs_action ON audit_logs(action);
		CREATE INDEX IF NOT EXISTS idx_audit_logs_created_at ON audit_logs(created_at);
	`
	if _, err := pool.Exec(ctx, auditSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
