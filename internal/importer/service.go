package importer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidRequest marks client mistakes: bad mappings, bad date
// configs, unparseable files.
var ErrInvalidRequest = errors.New("invalid import request")

// --------------------------------------------------
// Service
// --------------------------------------------------

// Service orchestrates the three-step import flow: upload parses the
// file into a session, preview builds menus without writing, confirm
// applies them with a duplicate policy.
type Service struct {
	sessions SessionStore
	store    MenuStore
}

func NewService(sessions SessionStore, store MenuStore) *Service {
	return &Service{sessions: sessions, store: store}
}

// --------------------------------------------------
// Upload
// --------------------------------------------------

const previewRowLimit = 10
const dateSampleLimit = 5

type UploadResult struct {
	FileID             string              `json:"file_id"`
	Filename           string              `json:"filename"`
	Columns            []string            `json:"columns"`
	PreviewRows        []map[string]string `json:"preview_rows"`
	RowCount           int                 `json:"row_count"`
	DetectedDelimiter  string              `json:"detected_delimiter,omitempty"`
	DetectedDateFormat string              `json:"detected_date_format,omitempty"`
	AutoMapping        MappingSuggestion   `json:"auto_mapping"`
}

// Upload parses the raw file, stores it as a session owned by userID
// and returns everything the mapping UI needs. Expired sessions are
// swept opportunistically on every upload.
func (s *Service) Upload(ctx context.Context, userID, filename string, raw []byte) (*UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	_ = s.sessions.SweepExpired(ctx)

	var table *RawTable
	var delimiter string

	switch ext {
	case ".csv":
		text := DecodeText(raw)
		detected := DetectDelimiter(text)
		parsed, err := ParseCSV(text, detected)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		table = parsed
		delimiter = string(detected)
	case ".xlsx", ".xls":
		parsed, err := ParseExcel(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		table = parsed
	default:
		return nil, ErrUnsupportedFormat
	}

	if len(table.Columns) == 0 {
		return nil, ErrNoColumns
	}
	if len(table.Rows) == 0 {
		return nil, ErrNoRows
	}

	token, err := s.sessions.Create(ctx, userID, filename, table.Columns, table.Rows, DefaultSessionTTL)
	if err != nil {
		return nil, err
	}

	suggestion := SuggestMapping(table.Columns)

	result := &UploadResult{
		FileID:            token,
		Filename:          filename,
		Columns:           table.Columns,
		PreviewRows:       table.Rows[:min(previewRowLimit, len(table.Rows))],
		RowCount:          len(table.Rows),
		DetectedDelimiter: delimiter,
		AutoMapping:       suggestion,
	}

	if suggestion.DateColumn != "" {
		result.DetectedDateFormat = detectFormatFromRows(table.Rows, suggestion.DateColumn)
	}

	return result, nil
}

// detectFormatFromRows probes the first non-empty sample values of the
// date column.
func detectFormatFromRows(rows []map[string]string, dateColumn string) string {
	samples := 0
	for _, row := range rows {
		if samples >= dateSampleLimit {
			break
		}
		value := strings.TrimSpace(row[dateColumn])
		if value == "" {
			continue
		}
		samples++
		if format := DetectDateFormat(value); format != "" {
			return format
		}
	}
	return ""
}

// --------------------------------------------------
// Preview
// --------------------------------------------------

type PreviewResult struct {
	Menus           []BuiltMenu `json:"menus"`
	TotalCount      int         `json:"total_count"`
	NewCount        int         `json:"new_count"`
	DuplicatesCount int         `json:"duplicates_count"`
}

// Preview builds menus from the session without writing anything, and
// annotates every menu that collides with a stored one.
func (s *Service) Preview(ctx context.Context, userID, token string, restaurantID int, mapping ColumnMapping, config DateConfig) (*PreviewResult, error) {
	session, err := s.sessions.GetValid(ctx, token, userID)
	if err != nil {
		return nil, err
	}

	if err := mapping.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	settings, err := config.Validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	menus := BuildMenus(session.Rows, mapping, settings)

	result := &PreviewResult{
		Menus:      menus,
		TotalCount: len(menus),
	}

	for i := range menus {
		existing, err := s.store.FindExisting(ctx, restaurantID, menus[i].DateISO)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			menus[i].HasDuplicate = true
			menus[i].Existing = existing
			result.DuplicatesCount++
		} else {
			result.NewCount++
		}
	}

	return result, nil
}

// --------------------------------------------------
// Confirm
// --------------------------------------------------

type ConfirmResult struct {
	ImportCounts
	Message string `json:"message"`
}

// Confirm builds menus from the session and writes them under the
// given duplicate policy. The session is consumed only after the write
// succeeds, so a failed confirm can be retried.
func (s *Service) Confirm(ctx context.Context, userID, token string, restaurantID int, mapping ColumnMapping, config DateConfig, policy string, autoPublish bool, ipAddress string) (*ConfirmResult, error) {
	session, err := s.sessions.GetValid(ctx, token, userID)
	if err != nil {
		return nil, err
	}

	if err := mapping.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	settings, err := config.Validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	if policy == "" {
		policy = PolicySkip
	}
	if !ValidPolicy(policy) {
		return nil, fmt.Errorf("%w: unknown duplicate action %q", ErrInvalidRequest, policy)
	}

	menus := BuildMenus(session.Rows, mapping, settings)

	counts, err := s.store.Commit(ctx, restaurantID, menus, CommitOptions{
		Policy:      policy,
		AutoPublish: autoPublish,
		UserID:      userID,
		Filename:    session.Filename,
		IPAddress:   ipAddress,
	})
	if err != nil {
		return nil, err
	}

	_ = s.sessions.Delete(ctx, token)

	return &ConfirmResult{
		ImportCounts: counts,
		Message:      fmt.Sprintf("%d menu(s) imported, %d replaced, %d skipped", counts.Imported, counts.Replaced, counts.Skipped),
	}, nil
}
