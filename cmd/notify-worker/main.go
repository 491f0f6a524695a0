package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Tezay/mariam/internal/db"
	"github.com/Tezay/mariam/internal/notify"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	log.Println("📣 Notify worker starting...")

	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}
	webhookURL := os.Getenv("NOTIFY_WEBHOOK_URL")
	if webhookURL == "" {
		log.Fatal("NOTIFY_WEBHOOK_URL is not set in .env")
	}

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	log.Println("✅ Connected to PostgreSQL")

	worker := notify.NewWorker(
		notify.NewPostgresQueue(pgDB),
		notify.NewWebhookSender(webhookURL),
	)

	log.Println("✅ Notify worker initialized and running...")
	log.Println("Delivering event announcements every 2 seconds. Press Ctrl+C to stop.")

	worker.Run(context.Background(), 2*time.Second)
}
