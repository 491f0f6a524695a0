package importer

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseCSVShortRows(t *testing.T) {
	table, err := ParseCSV("Date;Entree;Plat\n2025-01-06;Soupe", ';')
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}

	if len(table.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(table.Rows))
	}
	row := table.Rows[0]
	if row["Plat"] != "" {
		t.Errorf("missing cell = %q, want empty", row["Plat"])
	}
	if row["Entree"] != "Soupe" {
		t.Errorf("Entree = %q", row["Entree"])
	}
}

func TestParseCSVNormalizesLineEndings(t *testing.T) {
	table, err := ParseCSV("Date;Plat\r\n2025-01-06;Steak\r2025-01-07;Poisson", ';')
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Errorf("rows = %d, want 2", len(table.Rows))
	}
}

func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(file.GetActiveSheetIndex())
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buffer.Bytes()
}

func TestParseExcel(t *testing.T) {
	raw := buildWorkbook(t, [][]any{
		{"Date", "Plat"},
		{"2025-01-06", "Steak frites"},
		{"", ""},
		{"2025-01-07", "Poisson"},
	})

	table, err := ParseExcel(raw)
	if err != nil {
		t.Fatalf("ParseExcel: %v", err)
	}

	if len(table.Columns) != 2 {
		t.Fatalf("columns = %v", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2 (empty row dropped)", len(table.Rows))
	}
	if table.Rows[1]["Plat"] != "Poisson" {
		t.Errorf("Plat = %q", table.Rows[1]["Plat"])
	}
}

func TestParseExcelNamesBlankHeaders(t *testing.T) {
	raw := buildWorkbook(t, [][]any{
		{"Date", ""},
		{"2025-01-06", "Steak"},
	})

	table, err := ParseExcel(raw)
	if err != nil {
		t.Fatalf("ParseExcel: %v", err)
	}

	if len(table.Columns) != 2 || table.Columns[1] != "Column_2" {
		t.Errorf("columns = %v, want placeholder name", table.Columns)
	}
	if table.Rows[0]["Column_2"] != "Steak" {
		t.Errorf("cell = %q", table.Rows[0]["Column_2"])
	}
}

func TestParseExcelRejectsGarbage(t *testing.T) {
	if _, err := ParseExcel([]byte("definitely not a zip archive")); err == nil {
		t.Error("expected error for non-xlsx content")
	}
}
