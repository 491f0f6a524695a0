package menu

import "time"

// DateLayout is the wire format for menu dates.
const DateLayout = "2006-01-02"

// Menu statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Menu is the menu of one restaurant for one date. The
// (restaurant_id, date) pair is unique.
type Menu struct {
	ID           int        `json:"id"`
	RestaurantID int        `json:"restaurant_id"`
	Date         string     `json:"date"`
	Status       string     `json:"status"`
	ChefNote     string     `json:"chef_note,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	PublishedBy  *string    `json:"published_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Items        []MenuItem `json:"items"`
}

// MenuItem is one dish of a menu. Items are always replaced wholesale
// when a menu's list is rewritten, never merged field-by-field.
type MenuItem struct {
	ID             int      `json:"id"`
	MenuID         int      `json:"menu_id"`
	Category       string   `json:"category"`
	Name           string   `json:"name"`
	Order          int      `json:"order"`
	Tags           []string `json:"tags"`
	Certifications []string `json:"certifications"`
}
