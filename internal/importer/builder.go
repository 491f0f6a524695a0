package importer

import (
	"regexp"
	"strings"
	"time"

	"github.com/Tezay/mariam/internal/menu"
	"github.com/Tezay/mariam/internal/taxonomy"
)

// --------------------------------------------------
// Built menus
// --------------------------------------------------

// BuiltItem is one dish extracted from a cell, classified and cleaned.
type BuiltItem struct {
	Category       string   `json:"category"`
	Name           string   `json:"name"`
	Order          int      `json:"order"`
	Tags           []string `json:"tags"`
	Certifications []string `json:"certifications"`
}

// BuiltMenu is one day's menu assembled from a file row, before it is
// written anywhere. Existing is filled during preview when a menu for
// the same restaurant and date is already stored.
type BuiltMenu struct {
	Date         time.Time   `json:"-"`
	DateISO      string      `json:"date"`
	DateDisplay  string      `json:"date_display"`
	Items        []BuiltItem `json:"items"`
	HasDuplicate bool        `json:"has_duplicate"`
	Existing     *menu.Menu  `json:"existing_menu,omitempty"`
}

// Cells hold several dishes separated by commas or line breaks.
var cellSplitPattern = regexp.MustCompile(`[,\n]+`)

// BuildMenus turns parsed rows into menus using the validated mapping
// and date settings. Rows that yield no date or no items are dropped
// silently. The function is pure: same inputs, same output.
func BuildMenus(rows []map[string]string, mapping ColumnMapping, settings DateSettings) []BuiltMenu {
	dateColumn := mapping.DateColumn()
	categories := mapping.CategoryBindings()

	current := settings.Start
	var menus []BuiltMenu

	for _, row := range rows {
		var menuDate time.Time

		if settings.Mode == ModeFromFile {
			if dateColumn == "" {
				continue
			}
			parsed, ok := ParseDate(row[dateColumn], settings.Format)
			if !ok {
				continue
			}
			menuDate = parsed
		} else {
			if settings.SkipWeekends {
				current = skipWeekend(current)
			}
			menuDate = current
			current = current.AddDate(0, 0, 1)
		}

		items := buildItems(row, categories, settings.AutoDetectTags)
		if len(items) == 0 {
			continue
		}

		menus = append(menus, BuiltMenu{
			Date:        menuDate,
			DateISO:     menuDate.Format(menu.DateLayout),
			DateDisplay: menuDate.Format("Monday 02/01/2006"),
			Items:       items,
		})
	}

	return menus
}

func buildItems(row map[string]string, categories []ColumnBinding, autoDetect bool) []BuiltItem {
	var items []BuiltItem

	for _, binding := range categories {
		cell := strings.TrimSpace(row[binding.Column])
		if cell == "" {
			continue
		}

		for order, segment := range cellSplitPattern.Split(cell, -1) {
			name := strings.TrimSpace(segment)
			if name == "" {
				continue
			}

			item := BuiltItem{
				Category:       binding.CategoryID,
				Order:          order,
				Tags:           []string{},
				Certifications: []string{},
			}

			// A vegetarian column makes every dish in it vegetarian,
			// whether or not keyword detection is on.
			if binding.CategoryID == taxonomy.CategoryVG {
				item.Tags = append(item.Tags, taxonomy.TagVegetarian)
			}

			if autoDetect {
				tags, certifications := taxonomy.DetectTags(name)
				item.Tags = mergeUnique(item.Tags, tags)
				item.Certifications = mergeUnique(item.Certifications, certifications)
			}

			item.Name = taxonomy.CleanItemName(name)
			if item.Name == "" {
				continue
			}

			items = append(items, item)
		}
	}

	return items
}

func skipWeekend(t time.Time) time.Time {
	for t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

func mergeUnique(existing, extra []string) []string {
	for _, value := range extra {
		seen := false
		for _, have := range existing {
			if have == value {
				seen = true
				break
			}
		}
		if !seen {
			existing = append(existing, value)
		}
	}
	return existing
}
