package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// --------------------------------------------------
// PostgresSessionStore
// --------------------------------------------------

type PostgresSessionStore struct {
	db *pgxpool.Pool
}

func NewPostgresSessionStore(db *pgxpool.Pool) *PostgresSessionStore {
	return &PostgresSessionStore{db: db}
}

func (s *PostgresSessionStore) Create(ctx context.Context, userID, filename string, columns []string, rows []map[string]string, ttl time.Duration) (string, error) {
	columnsJSON, err := json.Marshal(columns)
	if err != nil {
		return "", fmt.Errorf("failed to encode columns: %w", err)
	}
	rowsJSON, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("failed to encode rows: %w", err)
	}

	token := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO import_sessions (id, user_id, filename, columns, rows, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = s.db.Exec(ctx, query, token, userID, filename, columnsJSON, rowsJSON, now, now.Add(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to create import session: %w", err)
	}

	return token, nil
}

func (s *PostgresSessionStore) GetValid(ctx context.Context, token, userID string) (*Session, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, ErrSessionNotFound
	}

	query := `
		SELECT id, user_id, filename, columns, rows, created_at, expires_at
		FROM import_sessions
		WHERE id = $1 AND user_id = $2 AND expires_at > now()
	`

	var session Session
	var columnsJSON, rowsJSON []byte

	err := s.db.QueryRow(ctx, query, token, userID).Scan(
		&session.ID,
		&session.UserID,
		&session.Filename,
		&columnsJSON,
		&rowsJSON,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load import session: %w", err)
	}

	if err := json.Unmarshal(columnsJSON, &session.Columns); err != nil {
		return nil, fmt.Errorf("failed to decode columns: %w", err)
	}
	if err := json.Unmarshal(rowsJSON, &session.Rows); err != nil {
		return nil, fmt.Errorf("failed to decode rows: %w", err)
	}

	return &session, nil
}

func (s *PostgresSessionStore) Delete(ctx context.Context, token string) error {
	if _, err := uuid.Parse(token); err != nil {
		return nil
	}
	_, err := s.db.Exec(ctx, `DELETE FROM import_sessions WHERE id = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete import session: %w", err)
	}
	return nil
}

func (s *PostgresSessionStore) SweepExpired(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DELETE FROM import_sessions WHERE expires_at <= now()`)
	if err != nil {
		return fmt.Errorf("failed to sweep import sessions: %w", err)
	}
	return nil
}
