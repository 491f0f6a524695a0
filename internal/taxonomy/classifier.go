package taxonomy

import (
	"regexp"
	"strings"
)

var inlineTagPattern = regexp.MustCompile(`(?i)\s*[(\[](vg|végétarien|bio|halal|sans porc|local)[)\]]`)

// DetectTags scans free text for dietary tag and certification keywords.
// Matching is case-insensitive substring matching; every keyword set is
// checked independently, so one string can carry several tags.
func DetectTags(text string) (tags []string, certifications []string) {
	lower := strings.ToLower(text)

	for _, set := range DietaryTagKeywords {
		for _, kw := range set.Keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, set.ID)
				break
			}
		}
	}

	for _, set := range CertificationKeywords {
		for _, kw := range set.Keywords {
			if strings.Contains(lower, kw) {
				certifications = append(certifications, set.ID)
				break
			}
		}
	}

	return tags, certifications
}

// CleanItemName strips decorative emojis and inline tag shorthand like
// "(vg)" or "[bio]" from a display name. Pure text cleanup, no
// classification.
func CleanItemName(name string) string {
	for _, emoji := range decorativeEmojis {
		name = strings.ReplaceAll(name, emoji, "")
	}

	name = inlineTagPattern.ReplaceAllString(name, "")

	return strings.TrimSpace(name)
}

// SuggestDateColumn returns the first column whose lowercased name
// contains a date-related substring, or "" when none matches.
func SuggestDateColumn(columns []string) string {
	for _, col := range columns {
		lower := strings.ToLower(strings.TrimSpace(col))
		for _, pattern := range DateColumnPatterns {
			if strings.Contains(lower, pattern) {
				return col
			}
		}
	}
	return ""
}

// SuggestCategory returns the category id bound to a column name, or ""
// when no category pattern matches. First matching category wins, so
// suggestions are stable for a given column list.
func SuggestCategory(column string) string {
	lower := strings.ToLower(strings.TrimSpace(column))
	for _, set := range CategoryColumnPatterns {
		for _, pattern := range set.Keywords {
			if strings.Contains(lower, pattern) {
				return set.ID
			}
		}
	}
	return ""
}
