package gallery

import "time"

// Image is one photo shown on a restaurant's public page.
type Image struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	StorageKey   string    `json:"-"`
	URL          string    `json:"url"`
	Filename     string    `json:"filename,omitempty"`
	Caption      string    `json:"caption,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
