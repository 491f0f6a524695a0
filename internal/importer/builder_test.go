package importer

import (
	"testing"
	"time"

	"github.com/Tezay/mariam/internal/taxonomy"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return parsed
}

func platMapping() ColumnMapping {
	return ColumnMapping{
		{Column: "Plat", Field: FieldCategory, CategoryID: taxonomy.CategoryPlat},
	}
}

func TestBuildMenusSequentialSkipsWeekends(t *testing.T) {
	var rows []map[string]string
	for i := 0; i < 7; i++ {
		rows = append(rows, map[string]string{"Plat": "Plat du jour"})
	}

	settings := DateSettings{
		Mode:         ModeStartDate,
		Start:        mustDate(t, "2025-01-06"), // a Monday
		SkipWeekends: true,
	}

	menus := BuildMenus(rows, platMapping(), settings)
	if len(menus) != 7 {
		t.Fatalf("got %d menus, want 7", len(menus))
	}

	want := []string{
		"2025-01-06", "2025-01-07", "2025-01-08", "2025-01-09", "2025-01-10",
		"2025-01-13", "2025-01-14",
	}
	for i, menu := range menus {
		if menu.DateISO != want[i] {
			t.Errorf("menu %d date = %s, want %s", i, menu.DateISO, want[i])
		}
	}
}

func TestBuildMenusAlignWeekAnchorsAtSuppliedStart(t *testing.T) {
	rows := []map[string]string{{"Plat": "Plat"}, {"Plat": "Autre plat"}}

	settings, err := DateConfig{Mode: ModeAlignWeek, StartDate: "2025-01-08"}.Validate() // a Wednesday
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	menus := BuildMenus(rows, platMapping(), settings)
	if len(menus) != 2 {
		t.Fatalf("got %d menus, want 2", len(menus))
	}
	if menus[0].DateISO != "2025-01-08" || menus[1].DateISO != "2025-01-09" {
		t.Errorf("dates = %s, %s, want the walk to start at 2025-01-08", menus[0].DateISO, menus[1].DateISO)
	}
}

func TestBuildMenusSequentialSkipsInitialWeekend(t *testing.T) {
	rows := []map[string]string{{"Plat": "Plat"}}

	settings := DateSettings{
		Mode:         ModeStartDate,
		Start:        mustDate(t, "2025-01-04"), // a Saturday
		SkipWeekends: true,
	}

	menus := BuildMenus(rows, platMapping(), settings)
	if len(menus) != 1 {
		t.Fatalf("got %d menus, want 1", len(menus))
	}
	if menus[0].DateISO != "2025-01-06" {
		t.Errorf("date = %s, want the following Monday", menus[0].DateISO)
	}
}

func TestBuildMenusFromFileDropsBadDates(t *testing.T) {
	rows := []map[string]string{
		{"Date": "2025-01-06", "Plat": "Steak"},
		{"Date": "pas une date", "Plat": "Poisson"},
		{"Date": "2025-01-08", "Plat": "Gratin"},
	}

	mapping := ColumnMapping{
		{Column: "Date", Field: FieldDate},
		{Column: "Plat", Field: FieldCategory, CategoryID: taxonomy.CategoryPlat},
	}

	menus := BuildMenus(rows, mapping, DateSettings{Mode: ModeFromFile, AutoDetectTags: true})
	if len(menus) != 2 {
		t.Fatalf("got %d menus, want 2", len(menus))
	}
	if menus[0].DateISO != "2025-01-06" || menus[1].DateISO != "2025-01-08" {
		t.Errorf("dates = %s, %s", menus[0].DateISO, menus[1].DateISO)
	}
}

func TestBuildMenusFromFileWithoutDateColumn(t *testing.T) {
	rows := []map[string]string{{"Plat": "Steak"}}

	menus := BuildMenus(rows, platMapping(), DateSettings{Mode: ModeFromFile})
	if len(menus) != 0 {
		t.Fatalf("got %d menus, want none without a date column", len(menus))
	}
}

func TestBuildMenusSplitsCellsWithOrder(t *testing.T) {
	rows := []map[string]string{
		{"Date": "2025-01-06", "Plat": "Steak, Frites\nSalade verte"},
	}

	mapping := ColumnMapping{
		{Column: "Date", Field: FieldDate},
		{Column: "Plat", Field: FieldCategory, CategoryID: taxonomy.CategoryPlat},
	}

	menus := BuildMenus(rows, mapping, DateSettings{Mode: ModeFromFile})
	if len(menus) != 1 {
		t.Fatalf("got %d menus, want 1", len(menus))
	}

	items := menus[0].Items
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	wantNames := []string{"Steak", "Frites", "Salade verte"}
	for i, item := range items {
		if item.Name != wantNames[i] {
			t.Errorf("item %d name = %q, want %q", i, item.Name, wantNames[i])
		}
		if item.Order != i {
			t.Errorf("item %d order = %d, want %d", i, item.Order, i)
		}
	}
}

func TestBuildMenusDropsItemsCleanedToNothing(t *testing.T) {
	// "(vg)" is pure shorthand, so cleaning leaves an empty name.
	rows := []map[string]string{
		{"Date": "2025-01-06", "Plat": "Steak frites, (vg)"},
	}

	mapping := ColumnMapping{
		{Column: "Date", Field: FieldDate},
		{Column: "Plat", Field: FieldCategory, CategoryID: taxonomy.CategoryPlat},
	}

	menus := BuildMenus(rows, mapping, DateSettings{Mode: ModeFromFile})
	if len(menus) != 1 {
		t.Fatalf("got %d menus, want 1", len(menus))
	}
	items := menus[0].Items
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Name != "Steak frites" || items[0].Order != 0 {
		t.Errorf("item = %q order %d, want \"Steak frites\" order 0", items[0].Name, items[0].Order)
	}
}

func TestBuildMenusVegetarianColumnForcesTag(t *testing.T) {
	rows := []map[string]string{
		{"Date": "2025-01-06", "VG": "Curry de légumes"},
	}

	mapping := ColumnMapping{
		{Column: "Date", Field: FieldDate},
		{Column: "VG", Field: FieldCategory, CategoryID: taxonomy.CategoryVG},
	}

	// Detection off: the column assignment alone must tag the dish.
	menus := BuildMenus(rows, mapping, DateSettings{Mode: ModeFromFile, AutoDetectTags: false})
	if len(menus) != 1 || len(menus[0].Items) != 1 {
		t.Fatal("expected one menu with one item")
	}

	tags := menus[0].Items[0].Tags
	if len(tags) != 1 || tags[0] != taxonomy.TagVegetarian {
		t.Errorf("tags = %v, want [vegetarian]", tags)
	}
}

func TestBuildMenusDetectsTagsAndCleansNames(t *testing.T) {
	rows := []map[string]string{
		{"Date": "2025-01-06", "Plat": "Poulet bio (sans porc)"},
	}

	mapping := ColumnMapping{
		{Column: "Date", Field: FieldDate},
		{Column: "Plat", Field: FieldCategory, CategoryID: taxonomy.CategoryPlat},
	}

	menus := BuildMenus(rows, mapping, DateSettings{Mode: ModeFromFile, AutoDetectTags: true})
	item := menus[0].Items[0]

	if item.Name != "Poulet bio" {
		t.Errorf("name = %q, want inline marker stripped", item.Name)
	}

	hasTag := func(values []string, want string) bool {
		for _, v := range values {
			if v == want {
				return true
			}
		}
		return false
	}
	if !hasTag(item.Tags, taxonomy.TagPorkFree) {
		t.Errorf("tags = %v, want pork_free", item.Tags)
	}
	if !hasTag(item.Certifications, taxonomy.CertBio) {
		t.Errorf("certifications = %v, want bio", item.Certifications)
	}
}

func TestBuildMenusDropsRowsWithoutItems(t *testing.T) {
	rows := []map[string]string{
		{"Date": "2025-01-06", "Plat": "   "},
		{"Date": "2025-01-07", "Plat": "Steak"},
	}

	mapping := ColumnMapping{
		{Column: "Date", Field: FieldDate},
		{Column: "Plat", Field: FieldCategory, CategoryID: taxonomy.CategoryPlat},
	}

	menus := BuildMenus(rows, mapping, DateSettings{Mode: ModeFromFile})
	if len(menus) != 1 {
		t.Fatalf("got %d menus, want 1", len(menus))
	}
	if menus[0].DateISO != "2025-01-07" {
		t.Errorf("kept menu date = %s", menus[0].DateISO)
	}
}

func TestBuildMenusIsDeterministic(t *testing.T) {
	rows := []map[string]string{
		{"Date": "2025-01-06", "Plat": "Steak, Frites", "Entree": "Soupe"},
	}

	mapping := ColumnMapping{
		{Column: "Date", Field: FieldDate},
		{Column: "Entree", Field: FieldCategory, CategoryID: taxonomy.CategoryEntree},
		{Column: "Plat", Field: FieldCategory, CategoryID: taxonomy.CategoryPlat},
	}

	settings := DateSettings{Mode: ModeFromFile, AutoDetectTags: true}
	first := BuildMenus(rows, mapping, settings)

	for i := 0; i < 5; i++ {
		again := BuildMenus(rows, mapping, settings)
		if len(again) != len(first) {
			t.Fatal("menu count changed between runs")
		}
		for j := range again {
			if again[j].DateISO != first[j].DateISO || len(again[j].Items) != len(first[j].Items) {
				t.Fatal("menus changed between runs")
			}
			for k := range again[j].Items {
				if again[j].Items[k].Name != first[j].Items[k].Name {
					t.Fatal("item order changed between runs")
				}
			}
		}
	}
}
