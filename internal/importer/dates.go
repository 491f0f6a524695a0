package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/Tezay/mariam/internal/menu"
)

// --------------------------------------------------
// Date formats
// --------------------------------------------------

// Supported date formats, tried in declaration order. Labels use the
// day/month/year letter convention so the frontend can show them
// directly.
var dateFormats = []struct {
	Label  string
	Layout string
}{
	{"YYYY-MM-DD", "2006-01-02"},
	{"DD/MM/YYYY", "02/01/2006"},
	{"DD-MM-YYYY", "02-01-2006"},
	{"DD.MM.YYYY", "02.01.2006"},
	{"MM/DD/YYYY", "01/02/2006"},
	{"YYYY/MM/DD", "2006/01/02"},
}

func layoutForLabel(label string) string {
	for _, format := range dateFormats {
		if format.Label == label {
			return format.Layout
		}
	}
	return ""
}

// DetectDateFormat returns the label of the first format parsing the
// sample value, or "" when none does.
func DetectDateFormat(sample string) string {
	sample = strings.TrimSpace(sample)
	if sample == "" {
		return ""
	}
	for _, format := range dateFormats {
		if _, err := time.Parse(format.Layout, sample); err == nil {
			return format.Label
		}
	}
	return ""
}

// ParseDate parses a cell value into a date. An explicit format label
// is tried first; auto-detection over all formats is the fallback.
// Empty cells and unparseable values both report ok=false.
func ParseDate(value, formatLabel string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	if layout := layoutForLabel(formatLabel); layout != "" {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}

	for _, format := range dateFormats {
		if parsed, err := time.Parse(format.Layout, value); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// --------------------------------------------------
// Date configuration
// --------------------------------------------------

// Date assignment modes.
const (
	ModeFromFile  = "from_file"
	ModeAlignWeek = "align_week"
	ModeStartDate = "start_date"
)

// DateConfig is the wire form of the date settings sent with preview
// and confirm requests. Pointer fields distinguish "absent" from
// "false".
type DateConfig struct {
	Mode           string `json:"mode"`
	StartDate      string `json:"start_date,omitempty"`
	SkipWeekends   *bool  `json:"skip_weekends,omitempty"`
	DateFormat     string `json:"date_format,omitempty"`
	AutoDetectTags *bool  `json:"auto_detect_tags,omitempty"`
}

// DateSettings is the validated, fully defaulted form consumed by the
// menu builder.
type DateSettings struct {
	Mode           string
	Start          time.Time
	SkipWeekends   bool
	Format         string
	AutoDetectTags bool
}

// Validate resolves defaults and rejects unusable values. Called once
// at the request boundary so the builder never sees a bad config.
func (c DateConfig) Validate() (DateSettings, error) {
	settings := DateSettings{
		Mode:           c.Mode,
		SkipWeekends:   true,
		AutoDetectTags: true,
		Format:         c.DateFormat,
	}

	if settings.Mode == "" {
		settings.Mode = ModeFromFile
	}
	switch settings.Mode {
	case ModeFromFile, ModeAlignWeek, ModeStartDate:
	default:
		return DateSettings{}, fmt.Errorf("unknown date mode %q", settings.Mode)
	}

	if c.SkipWeekends != nil {
		settings.SkipWeekends = *c.SkipWeekends
	}
	if c.AutoDetectTags != nil {
		settings.AutoDetectTags = *c.AutoDetectTags
	}

	if c.DateFormat != "" && layoutForLabel(c.DateFormat) == "" {
		return DateSettings{}, fmt.Errorf("unknown date format %q", c.DateFormat)
	}

	if settings.Mode != ModeFromFile {
		start := time.Now()
		if c.StartDate != "" {
			parsed, err := time.Parse(menu.DateLayout, c.StartDate)
			if err != nil {
				return DateSettings{}, fmt.Errorf("invalid start date %q, expected YYYY-MM-DD", c.StartDate)
			}
			start = parsed
		}
		settings.Start = start
	}

	return settings, nil
}
