package importer

import (
	"testing"
	"time"
)

func TestDetectDateFormat(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"2025-01-06", "YYYY-MM-DD"},
		{"06/01/2025", "DD/MM/YYYY"},
		{"06-01-2025", "DD-MM-YYYY"},
		{"06.01.2025", "DD.MM.YYYY"},
		{"2025/01/06", "YYYY/MM/DD"},
		{"lundi", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := DetectDateFormat(tc.value); got != tc.want {
			t.Errorf("DetectDateFormat(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestDetectDateFormatPrefersDayFirst(t *testing.T) {
	// 06/01/2025 parses as both DD/MM and MM/DD; declaration order
	// makes the day-first reading win.
	if got := DetectDateFormat("06/01/2025"); got != "DD/MM/YYYY" {
		t.Errorf("got %q, want DD/MM/YYYY", got)
	}
}

func TestParseDateExplicitFormatFirst(t *testing.T) {
	parsed, ok := ParseDate("01/06/2025", "MM/DD/YYYY")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if parsed.Month() != time.January || parsed.Day() != 6 {
		t.Errorf("got %v, want January 6", parsed)
	}
}

func TestParseDateFallsBackToAutoDetect(t *testing.T) {
	parsed, ok := ParseDate("2025-01-06", "DD/MM/YYYY")
	if !ok {
		t.Fatal("expected fallback parse to succeed")
	}
	if parsed.Format("2006-01-02") != "2025-01-06" {
		t.Errorf("got %v", parsed)
	}
}

func TestParseDateEmptyCell(t *testing.T) {
	if _, ok := ParseDate("   ", ""); ok {
		t.Error("blank cell must not parse")
	}
}

func TestDateConfigDefaults(t *testing.T) {
	settings, err := DateConfig{}.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if settings.Mode != ModeFromFile {
		t.Errorf("default mode = %q, want from_file", settings.Mode)
	}
	if !settings.SkipWeekends || !settings.AutoDetectTags {
		t.Error("skip_weekends and auto_detect_tags must default to true")
	}
}

func TestDateConfigRejectsUnknownMode(t *testing.T) {
	if _, err := (DateConfig{Mode: "sideways"}).Validate(); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestDateConfigRejectsBadStartDate(t *testing.T) {
	cfg := DateConfig{Mode: ModeStartDate, StartDate: "06/01/2025"}
	if _, err := cfg.Validate(); err == nil {
		t.Error("expected error for non-ISO start date")
	}
}

func TestDateConfigAlignWeekKeepsSuppliedStart(t *testing.T) {
	// 2025-01-08 is a Wednesday. align_week anchors the walk at the
	// caller-supplied date, exactly like start_date.
	cfg := DateConfig{Mode: ModeAlignWeek, StartDate: "2025-01-08"}
	settings, err := cfg.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := settings.Start.Format("2006-01-02"); got != "2025-01-08" {
		t.Errorf("start = %s, want the supplied 2025-01-08", got)
	}
}

func TestColumnMappingValidate(t *testing.T) {
	valid := ColumnMapping{
		{Column: "Date", Field: FieldDate},
		{Column: "Plat", Field: FieldCategory, CategoryID: "plat"},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid mapping rejected: %v", err)
	}

	cases := []struct {
		name    string
		mapping ColumnMapping
	}{
		{"empty", ColumnMapping{}},
		{"missing column", ColumnMapping{{Field: FieldDate}}},
		{"unknown field", ColumnMapping{{Column: "X", Field: "color"}}},
		{"category without id", ColumnMapping{{Column: "X", Field: FieldCategory}}},
		{"two date columns", ColumnMapping{
			{Column: "A", Field: FieldDate},
			{Column: "B", Field: FieldDate},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.mapping.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSuggestMapping(t *testing.T) {
	suggestion := SuggestMapping([]string{"Jour", "Entrées", "Plat principal", "Option VG", "Desserts", "Notes"})

	if suggestion.DateColumn != "Jour" {
		t.Errorf("date column = %q, want Jour", suggestion.DateColumn)
	}

	want := map[string]string{
		"Entrées":        "entree",
		"Plat principal": "plat",
		"Option VG":      "vg",
		"Desserts":       "dessert",
	}
	if len(suggestion.Categories) != len(want) {
		t.Fatalf("got %d category suggestions, want %d", len(suggestion.Categories), len(want))
	}
	for _, cat := range suggestion.Categories {
		if want[cat.Column] != cat.CategoryID {
			t.Errorf("column %q suggested as %q, want %q", cat.Column, cat.CategoryID, want[cat.Column])
		}
	}
}
