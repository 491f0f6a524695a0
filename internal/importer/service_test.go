package importer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Tezay/mariam/internal/audit"
	"github.com/Tezay/mariam/internal/menu"
	"github.com/Tezay/mariam/internal/taxonomy"
)

// --------------------------------------------------
// Fixtures
// --------------------------------------------------

type fixture struct {
	service  *Service
	sessions *InMemorySessionStore
	menus    *menu.InMemoryRepository
	audit    *audit.InMemoryRecorder
}

func newFixture() *fixture {
	sessions := NewInMemorySessionStore()
	menus := menu.NewInMemoryRepository()
	recorder := audit.NewInMemoryRecorder()

	return &fixture{
		service:  NewService(sessions, NewInMemoryMenuStore(menus, recorder)),
		sessions: sessions,
		menus:    menus,
		audit:    recorder,
	}
}

const weekCSV = `Date;Plat
2025-01-06;Steak frites
2025-01-07;Poisson du jour
2025-01-08;Gratin dauphinois
2025-01-09;Poulet basquaise
2025-01-10;Couscous
`

func weekMapping() ColumnMapping {
	return ColumnMapping{
		{Column: "Date", Field: FieldDate},
		{Column: "Plat", Field: FieldCategory, CategoryID: taxonomy.CategoryPlat},
	}
}

func upload(t *testing.T, f *fixture, userID, filename, content string) *UploadResult {
	t.Helper()
	result, err := f.service.Upload(context.Background(), userID, filename, []byte(content))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	return result
}

func seedMenu(t *testing.T, f *fixture, restaurantID int, date string, names ...string) {
	t.Helper()
	m := &menu.Menu{RestaurantID: restaurantID, Date: date}
	for i, name := range names {
		m.Items = append(m.Items, menu.MenuItem{
			Category: taxonomy.CategoryPlat,
			Name:     name,
			Order:    i,
		})
	}
	if err := f.menus.Upsert(context.Background(), m); err != nil {
		t.Fatalf("seed menu: %v", err)
	}
}

// --------------------------------------------------
// Upload
// --------------------------------------------------

func TestUploadCSV(t *testing.T) {
	f := newFixture()

	result := upload(t, f, "user-1", "menus.csv", weekCSV)

	if result.FileID == "" {
		t.Error("expected a file id")
	}
	if len(result.Columns) != 2 || result.Columns[0] != "Date" || result.Columns[1] != "Plat" {
		t.Errorf("columns = %v", result.Columns)
	}
	if result.RowCount != 5 {
		t.Errorf("row count = %d, want 5", result.RowCount)
	}
	if result.DetectedDelimiter != ";" {
		t.Errorf("delimiter = %q, want ;", result.DetectedDelimiter)
	}
	if result.DetectedDateFormat != "YYYY-MM-DD" {
		t.Errorf("date format = %q, want YYYY-MM-DD", result.DetectedDateFormat)
	}
	if result.AutoMapping.DateColumn != "Date" {
		t.Errorf("suggested date column = %q", result.AutoMapping.DateColumn)
	}
	if len(result.AutoMapping.Categories) != 1 || result.AutoMapping.Categories[0].CategoryID != taxonomy.CategoryPlat {
		t.Errorf("suggested categories = %v", result.AutoMapping.Categories)
	}
}

func TestUploadLimitsPreviewRows(t *testing.T) {
	f := newFixture()

	var b strings.Builder
	b.WriteString("Date;Plat\n")
	for i := 0; i < 25; i++ {
		b.WriteString("2025-01-06;Plat du jour\n")
	}

	result := upload(t, f, "user-1", "big.csv", b.String())

	if result.RowCount != 25 {
		t.Errorf("row count = %d, want 25", result.RowCount)
	}
	if len(result.PreviewRows) != 10 {
		t.Errorf("preview rows = %d, want 10", len(result.PreviewRows))
	}
}

func TestUploadRejectsUnknownExtension(t *testing.T) {
	f := newFixture()

	_, err := f.service.Upload(context.Background(), "user-1", "menus.pdf", []byte("whatever"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestUploadRejectsHeaderOnlyFile(t *testing.T) {
	f := newFixture()

	_, err := f.service.Upload(context.Background(), "user-1", "empty.csv", []byte("Date;Plat\n"))
	if !errors.Is(err, ErrNoRows) {
		t.Errorf("err = %v, want ErrNoRows", err)
	}
}

// --------------------------------------------------
// Sessions
// --------------------------------------------------

func TestSessionIsOwnerScoped(t *testing.T) {
	f := newFixture()

	result := upload(t, f, "user-1", "menus.csv", weekCSV)

	_, err := f.service.Preview(context.Background(), "user-2", result.FileID, 1, weekMapping(), DateConfig{})
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound for another user", err)
	}
}

func TestSessionExpires(t *testing.T) {
	f := newFixture()

	result := upload(t, f, "user-1", "menus.csv", weekCSV)

	now := time.Now()
	f.sessions.Now = func() time.Time { return now.Add(31 * time.Minute) }

	_, err := f.service.Preview(context.Background(), "user-1", result.FileID, 1, weekMapping(), DateConfig{})
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound after expiry", err)
	}
}

// --------------------------------------------------
// Preview
// --------------------------------------------------

func TestPreviewMarksDuplicates(t *testing.T) {
	f := newFixture()
	seedMenu(t, f, 1, "2025-01-06", "Ancien plat")
	seedMenu(t, f, 1, "2025-01-08", "Ancien gratin")

	result := upload(t, f, "user-1", "menus.csv", weekCSV)

	preview, err := f.service.Preview(context.Background(), "user-1", result.FileID, 1, weekMapping(), DateConfig{})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}

	if preview.TotalCount != 5 || preview.NewCount != 3 || preview.DuplicatesCount != 2 {
		t.Errorf("counts = %d total, %d new, %d duplicates", preview.TotalCount, preview.NewCount, preview.DuplicatesCount)
	}

	for _, built := range preview.Menus {
		isDup := built.DateISO == "2025-01-06" || built.DateISO == "2025-01-08"
		if built.HasDuplicate != isDup {
			t.Errorf("menu %s duplicate flag = %v", built.DateISO, built.HasDuplicate)
		}
		if isDup && built.Existing == nil {
			t.Errorf("menu %s missing existing menu", built.DateISO)
		}
	}
}

func TestPreviewWritesNothing(t *testing.T) {
	f := newFixture()

	result := upload(t, f, "user-1", "menus.csv", weekCSV)

	if _, err := f.service.Preview(context.Background(), "user-1", result.FileID, 1, weekMapping(), DateConfig{}); err != nil {
		t.Fatalf("Preview: %v", err)
	}

	if _, err := f.menus.GetByDate(context.Background(), 1, "2025-01-06"); !errors.Is(err, menu.ErrNotFound) {
		t.Error("preview must not persist menus")
	}
}

// --------------------------------------------------
// Confirm
// --------------------------------------------------

func TestConfirmSkipPolicy(t *testing.T) {
	f := newFixture()
	seedMenu(t, f, 1, "2025-01-06", "Ancien plat")
	seedMenu(t, f, 1, "2025-01-08", "Ancien gratin")

	result := upload(t, f, "user-1", "menus.csv", weekCSV)

	confirmed, err := f.service.Confirm(context.Background(), "user-1", result.FileID, 1, weekMapping(), DateConfig{}, PolicySkip, false, "")
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	if confirmed.Imported != 3 || confirmed.Replaced != 0 || confirmed.Skipped != 2 {
		t.Errorf("counts = %+v, want 3 imported, 0 replaced, 2 skipped", confirmed.ImportCounts)
	}

	// Skipped menus keep their previous items.
	existing, err := f.menus.GetByDate(context.Background(), 1, "2025-01-06")
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if len(existing.Items) != 1 || existing.Items[0].Name != "Ancien plat" {
		t.Errorf("skipped menu was modified: %v", existing.Items)
	}
}

func TestConfirmReplacePolicy(t *testing.T) {
	f := newFixture()
	seedMenu(t, f, 1, "2025-01-06", "Ancien plat", "Autre plat")

	result := upload(t, f, "user-1", "menus.csv", weekCSV)

	confirmed, err := f.service.Confirm(context.Background(), "user-1", result.FileID, 1, weekMapping(), DateConfig{}, PolicyReplace, false, "")
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	if confirmed.Imported != 4 || confirmed.Replaced != 1 {
		t.Errorf("counts = %+v, want 4 imported, 1 replaced", confirmed.ImportCounts)
	}

	replaced, err := f.menus.GetByDate(context.Background(), 1, "2025-01-06")
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if len(replaced.Items) != 1 || replaced.Items[0].Name != "Steak frites" {
		t.Errorf("replaced menu items = %v", replaced.Items)
	}
}

func TestConfirmPersistsPreviewedItems(t *testing.T) {
	f := newFixture()

	const csv = `Date;Plat;Option VG
2025-01-06;Poulet bio (sans porc);Curry de légumes
2025-01-07;Poisson du jour;Tofu grillé
`
	mapping := ColumnMapping{
		{Column: "Date", Field: FieldDate},
		{Column: "Plat", Field: FieldCategory, CategoryID: taxonomy.CategoryPlat},
		{Column: "Option VG", Field: FieldCategory, CategoryID: taxonomy.CategoryVG},
	}

	result := upload(t, f, "user-1", "menus.csv", csv)

	preview, err := f.service.Preview(context.Background(), "user-1", result.FileID, 1, mapping, DateConfig{})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if _, err := f.service.Confirm(context.Background(), "user-1", result.FileID, 1, mapping, DateConfig{}, PolicySkip, false, ""); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	// What confirm persists is exactly what preview showed.
	for _, built := range preview.Menus {
		stored, err := f.menus.GetByDate(context.Background(), 1, built.DateISO)
		if err != nil {
			t.Fatalf("GetByDate %s: %v", built.DateISO, err)
		}
		if len(stored.Items) != len(built.Items) {
			t.Fatalf("%s: %d stored items, preview had %d", built.DateISO, len(stored.Items), len(built.Items))
		}
		for i, want := range built.Items {
			got := stored.Items[i]
			if got.Name != want.Name || got.Category != want.Category || got.Order != want.Order {
				t.Errorf("%s item %d = %s/%s/%d, want %s/%s/%d",
					built.DateISO, i, got.Category, got.Name, got.Order, want.Category, want.Name, want.Order)
			}
			if !equalStrings(got.Tags, want.Tags) {
				t.Errorf("%s item %q tags = %v, want %v", built.DateISO, want.Name, got.Tags, want.Tags)
			}
			if !equalStrings(got.Certifications, want.Certifications) {
				t.Errorf("%s item %q certifications = %v, want %v", built.DateISO, want.Name, got.Certifications, want.Certifications)
			}
		}
	}

	// The fixture data exercises the classifier, so the comparison is
	// not over empty sets.
	first := preview.Menus[0].Items[0]
	if !equalStrings(first.Tags, []string{taxonomy.TagPorkFree}) {
		t.Errorf("tags = %v, want [%s]", first.Tags, taxonomy.TagPorkFree)
	}
	if !equalStrings(first.Certifications, []string{taxonomy.CertBio}) {
		t.Errorf("certifications = %v, want [%s]", first.Certifications, taxonomy.CertBio)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestConfirmMergePolicyAppends(t *testing.T) {
	f := newFixture()
	seedMenu(t, f, 1, "2025-01-06", "Ancien plat")

	result := upload(t, f, "user-1", "menus.csv", weekCSV)

	_, err := f.service.Confirm(context.Background(), "user-1", result.FileID, 1, weekMapping(), DateConfig{}, PolicyMerge, false, "")
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	merged, err := f.menus.GetByDate(context.Background(), 1, "2025-01-06")
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if len(merged.Items) != 2 {
		t.Fatalf("merged items = %d, want 2", len(merged.Items))
	}
	if merged.Items[0].Name != "Ancien plat" || merged.Items[1].Name != "Steak frites" {
		t.Errorf("merged items = %v, %v", merged.Items[0].Name, merged.Items[1].Name)
	}
}

func TestConfirmRecordsAuditEntry(t *testing.T) {
	f := newFixture()

	result := upload(t, f, "user-1", "menus.csv", weekCSV)

	if _, err := f.service.Confirm(context.Background(), "user-1", result.FileID, 1, weekMapping(), DateConfig{}, PolicySkip, false, "10.0.0.1"); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	if len(f.audit.Entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(f.audit.Entries))
	}

	entry := f.audit.Entries[0]
	if entry.Action != audit.ActionCSVImport {
		t.Errorf("action = %q", entry.Action)
	}
	if entry.UserID != "user-1" || entry.IPAddress != "10.0.0.1" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Details["filename"] != "menus.csv" {
		t.Errorf("details = %v", entry.Details)
	}
	if entry.Details["imported_count"] != 5 {
		t.Errorf("imported_count = %v, want 5", entry.Details["imported_count"])
	}
}

func TestConfirmConsumesSession(t *testing.T) {
	f := newFixture()

	result := upload(t, f, "user-1", "menus.csv", weekCSV)

	if _, err := f.service.Confirm(context.Background(), "user-1", result.FileID, 1, weekMapping(), DateConfig{}, PolicySkip, false, ""); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	_, err := f.service.Confirm(context.Background(), "user-1", result.FileID, 1, weekMapping(), DateConfig{}, PolicySkip, false, "")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound after consumption", err)
	}
}

func TestConfirmAutoPublish(t *testing.T) {
	f := newFixture()

	result := upload(t, f, "user-1", "menus.csv", weekCSV)

	if _, err := f.service.Confirm(context.Background(), "user-1", result.FileID, 1, weekMapping(), DateConfig{}, PolicySkip, true, ""); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	published, err := f.menus.GetByDate(context.Background(), 1, "2025-01-06")
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if published.Status != menu.StatusPublished {
		t.Errorf("status = %q, want published", published.Status)
	}
	if published.PublishedBy == nil || *published.PublishedBy != "user-1" {
		t.Error("published_by not stamped")
	}
}

func TestConfirmRejectsUnknownPolicy(t *testing.T) {
	f := newFixture()

	result := upload(t, f, "user-1", "menus.csv", weekCSV)

	_, err := f.service.Confirm(context.Background(), "user-1", result.FileID, 1, weekMapping(), DateConfig{}, "overwrite-everything", false, "")
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("err = %v, want ErrInvalidRequest", err)
	}
}
