package importer

import (
	"fmt"

	"github.com/Tezay/mariam/internal/taxonomy"
)

// --------------------------------------------------
// Column mapping
// --------------------------------------------------

const (
	FieldDate     = "date"
	FieldCategory = "category"
)

// ColumnBinding assigns one source column to a menu field. Category
// bindings carry the category the column's items belong to.
type ColumnBinding struct {
	Column     string `json:"column"`
	Field      string `json:"field"`
	CategoryID string `json:"category_id,omitempty"`
}

// ColumnMapping is an ordered list of bindings. Order matters: items
// are emitted category by category in mapping order.
type ColumnMapping []ColumnBinding

// Validate checks every binding once, so downstream code can trust the
// mapping without re-checking.
func (m ColumnMapping) Validate() error {
	if len(m) == 0 {
		return fmt.Errorf("column mapping is empty")
	}

	dateCount := 0
	for i, binding := range m {
		if binding.Column == "" {
			return fmt.Errorf("binding %d has no column", i)
		}
		switch binding.Field {
		case FieldDate:
			dateCount++
			if dateCount > 1 {
				return fmt.Errorf("only one column can be mapped to the date field")
			}
		case FieldCategory:
			if binding.CategoryID == "" {
				return fmt.Errorf("binding for column %q has no category", binding.Column)
			}
		default:
			return fmt.Errorf("binding for column %q has unknown field %q", binding.Column, binding.Field)
		}
	}

	return nil
}

// DateColumn returns the column bound to the date field, or "".
func (m ColumnMapping) DateColumn() string {
	for _, binding := range m {
		if binding.Field == FieldDate {
			return binding.Column
		}
	}
	return ""
}

// CategoryBindings returns the category bindings in mapping order.
func (m ColumnMapping) CategoryBindings() []ColumnBinding {
	var bindings []ColumnBinding
	for _, binding := range m {
		if binding.Field == FieldCategory {
			bindings = append(bindings, binding)
		}
	}
	return bindings
}

// --------------------------------------------------
// Mapping advisor
// --------------------------------------------------

type CategorySuggestion struct {
	Column     string `json:"column"`
	CategoryID string `json:"category_id"`
}

type MappingSuggestion struct {
	DateColumn string               `json:"date_column,omitempty"`
	Categories []CategorySuggestion `json:"categories"`
}

// SuggestMapping proposes a mapping from column names alone. Column
// order and first-match keyword tables make the suggestion
// deterministic for a given header row.
func SuggestMapping(columns []string) MappingSuggestion {
	suggestion := MappingSuggestion{
		DateColumn: taxonomy.SuggestDateColumn(columns),
		Categories: []CategorySuggestion{},
	}

	for _, column := range columns {
		if column == suggestion.DateColumn {
			continue
		}
		if categoryID := taxonomy.SuggestCategory(column); categoryID != "" {
			suggestion.Categories = append(suggestion.Categories, CategorySuggestion{
				Column:     column,
				CategoryID: categoryID,
			})
		}
	}

	return suggestion
}
