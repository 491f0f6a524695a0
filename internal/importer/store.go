package importer

import (
	"context"

	"github.com/Tezay/mariam/internal/menu"
)

// --------------------------------------------------
// Duplicate policies
// --------------------------------------------------

const (
	PolicySkip    = "skip"
	PolicyReplace = "replace"
	PolicyMerge   = "merge"
)

// ValidPolicy reports whether p names a duplicate policy.
func ValidPolicy(p string) bool {
	return p == PolicySkip || p == PolicyReplace || p == PolicyMerge
}

// --------------------------------------------------
// Menu store
// --------------------------------------------------

// ImportCounts summarizes one confirmed import.
type ImportCounts struct {
	Imported int `json:"imported_count"`
	Replaced int `json:"replaced_count"`
	Skipped  int `json:"skipped_count"`
}

// CommitOptions carries everything Commit needs besides the menus.
type CommitOptions struct {
	Policy      string
	AutoPublish bool
	UserID      string
	Filename    string
	IPAddress   string
}

// MenuStore is where confirmed imports land. Commit applies the whole
// batch and its audit record atomically: either every menu is written
// or none is.
type MenuStore interface {
	// FindExisting returns the stored menu for the restaurant and date,
	// or nil when there is none.
	FindExisting(ctx context.Context, restaurantID int, date string) (*menu.Menu, error)

	Commit(ctx context.Context, restaurantID int, menus []BuiltMenu, opts CommitOptions) (ImportCounts, error)
}
