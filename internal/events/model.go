package events

import "time"

// --------------------------------------------------
// EVENT
// --------------------------------------------------

// Event is a dated announcement shown alongside the menus: theme
// weeks, special dinners, closures.
type Event struct {
	ID           int    `json:"id"`
	RestaurantID int    `json:"restaurant_id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Location     string `json:"location,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`

	StartsAt time.Time  `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`

	Published       bool `json:"published"`
	NotifyOnPublish bool `json:"notify_on_publish"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --------------------------------------------------
// NOTIFICATION QUEUE
// --------------------------------------------------

// Notification statuses
const (
	NotificationQueued = "QUEUED"
	NotificationSent   = "SENT"
	NotificationFailed = "FAILED"
)

// Notification is one queued announcement delivery. Rows are claimed
// and flipped to SENT or FAILED by the notify worker.
type Notification struct {
	ID        int        `json:"id"`
	EventID   int        `json:"event_id"`
	Status    string     `json:"status"`
	Error     string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
}
