package audit

import "time"

// Recorded actions
const (
	ActionLogin            = "login"
	ActionMenuCreate       = "menu_create"
	ActionMenuUpdate       = "menu_update"
	ActionMenuPublish      = "menu_publish"
	ActionMenuDelete       = "menu_delete"
	ActionCSVImport        = "csv_import"
	ActionEventCreate      = "event_create"
	ActionEventUpdate      = "event_update"
	ActionEventDelete      = "event_delete"
	ActionRestaurantCreate = "restaurant_create"
	ActionGalleryUpload    = "gallery_upload"
)

// Entry is one audit-log row.
type Entry struct {
	ID         int            `json:"id"`
	UserID     string         `json:"user_id,omitempty"`
	Action     string         `json:"action"`
	TargetType string         `json:"target_type,omitempty"`
	TargetID   int            `json:"target_id,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	IPAddress  string         `json:"ip_address,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
