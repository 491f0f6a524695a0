package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// --------------------------------------------------
// Errors
// --------------------------------------------------

var (
	ErrUnsupportedFormat = errors.New("unsupported file format, use CSV or Excel")
	ErrNoColumns         = errors.New("file has no readable columns")
	ErrNoRows            = errors.New("file has no data rows")
)

// --------------------------------------------------
// RawTable
// --------------------------------------------------

// RawTable is the uniform in-memory shape of an uploaded file. The
// first file row becomes Columns, every following row becomes a map
// keyed by column name. Cell values are kept as raw strings.
type RawTable struct {
	Columns []string
	Rows    []map[string]string
}

// ParseCSV parses decoded CSV text using the given delimiter. Rows may
// carry fewer fields than the header; missing cells read as empty.
func ParseCSV(text string, delimiter rune) (*RawTable, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to parse csv content: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoColumns
	}

	columns := records[0]
	table := &RawTable{Columns: columns}

	for _, record := range records[1:] {
		row := make(map[string]string, len(columns))
		for i, column := range columns {
			if i < len(record) {
				row[column] = record[i]
			} else {
				row[column] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// ParseExcel parses an xlsx workbook, reading the active sheet. Blank
// header cells get a Column_N placeholder so every cell stays
// addressable; rows with no content at all are dropped.
func ParseExcel(raw []byte) (*RawTable, error) {
	file, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("unable to open spreadsheet: %w", err)
	}
	defer file.Close()

	sheet := file.GetSheetName(file.GetActiveSheetIndex())
	records, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return nil, ErrNoColumns
	}

	var columns []string
	for i, header := range records[0] {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		columns = append(columns, header)
	}

	table := &RawTable{Columns: columns}

	for _, record := range records[1:] {
		row := make(map[string]string, len(columns))
		empty := true
		for i, column := range columns {
			value := ""
			if i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			if value != "" {
				empty = false
			}
			row[column] = value
		}
		if empty {
			continue
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
