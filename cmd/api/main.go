package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Tezay/mariam/internal/audit"
	"github.com/Tezay/mariam/internal/auth"
	"github.com/Tezay/mariam/internal/db"
	"github.com/Tezay/mariam/internal/events"
	"github.com/Tezay/mariam/internal/gallery"
	"github.com/Tezay/mariam/internal/importer"
	"github.com/Tezay/mariam/internal/menu"
	"github.com/Tezay/mariam/internal/restaurant"
	"github.com/Tezay/mariam/internal/router"
	"github.com/Tezay/mariam/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	restaurantRepo := restaurant.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	eventRepo := events.NewPostgresRepository(pgDB)
	galleryRepo := gallery.NewPostgresRepository(pgDB)
	auditRepo := audit.NewPostgresRecorder(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	restaurantService := restaurant.NewService(restaurantRepo, auditRepo)
	menuService := menu.NewService(menuRepo, auditRepo)
	eventService := events.NewService(eventRepo, auditRepo)
	galleryService := gallery.NewService(galleryRepo, r2Client, auditRepo)

	importService := importer.NewService(
		importer.NewPostgresSessionStore(pgDB),
		importer.NewPostgresMenuStore(pgDB, menuRepo),
	)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Handlers{
		Auth:       auth.NewHandler(authService, auditRepo),
		Restaurant: restaurant.NewHandler(restaurantService),
		Menu:       menu.NewHandler(menuService),
		Importer:   importer.NewHandler(importService, restaurantService),
		Events:     events.NewHandler(eventService),
		Gallery:    gallery.NewHandler(galleryService),
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("🚀 API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server stopped:", err)
	}
}
