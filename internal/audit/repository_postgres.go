package audit

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRecorder struct {
	db *pgxpool.Pool
}

func NewPostgresRecorder(db *pgxpool.Pool) *PostgresRecorder {
	return &PostgresRecorder{db: db}
}

func (r *PostgresRecorder) Record(ctx context.Context, entry Entry) error {
	var details []byte
	if entry.Details != nil {
		var err error
		details, err = json.Marshal(entry.Details)
		if err != nil {
			return err
		}
	}

	var userID *string
	if entry.UserID != "" {
		userID = &entry.UserID
	}

	var targetType *string
	if entry.TargetType != "" {
		targetType = &entry.TargetType
	}

	var targetID *int
	if entry.TargetID != 0 {
		targetID = &entry.TargetID
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO audit_logs (user_id, action, target_type, target_id, details, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, userID, entry.Action, targetType, targetID, details, entry.IPAddress)

	return err
}
