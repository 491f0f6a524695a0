package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Tezay/mariam/internal/events"
)

// Sender delivers one announcement somewhere.
type Sender interface {
	Send(ctx context.Context, event events.Event) error
}

// --------------------------------------------------
// WebhookSender
// --------------------------------------------------

// WebhookSender posts the announcement as JSON to a configured URL,
// typically a chat integration or a push relay.
type WebhookSender struct {
	URL    string
	Client *http.Client
}

func NewWebhookSender(url string) *WebhookSender {
	return &WebhookSender{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *WebhookSender) Send(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(map[string]any{
		"type":          "event_published",
		"event_id":      event.ID,
		"restaurant_id": event.RestaurantID,
		"title":         event.Title,
		"description":   event.Description,
		"location":      event.Location,
		"image_url":     event.ImageURL,
		"starts_at":     event.StartsAt,
		"ends_at":       event.EndsAt,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
