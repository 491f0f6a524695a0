package importer

import (
	"context"
	"errors"
	"time"
)

// --------------------------------------------------
// Import sessions
// --------------------------------------------------

// DefaultSessionTTL is how long an uploaded file stays available
// between upload and confirm.
const DefaultSessionTTL = 30 * time.Minute

var ErrSessionNotFound = errors.New("import session not found or expired")

// Session holds a parsed upload between the upload call and the
// preview/confirm calls. Sessions are owned by the uploading user and
// expire after DefaultSessionTTL.
type Session struct {
	ID        string
	UserID    string
	Filename  string
	Columns   []string
	Rows      []map[string]string
	CreatedAt time.Time
	ExpiresAt time.Time
}

type SessionStore interface {
	Create(ctx context.Context, userID, filename string, columns []string, rows []map[string]string, ttl time.Duration) (string, error)
	// GetValid returns the session only when it exists, belongs to
	// userID and has not expired. Everything else is ErrSessionNotFound.
	GetValid(ctx context.Context, token, userID string) (*Session, error)
	Delete(ctx context.Context, token string) error
	SweepExpired(ctx context.Context) error
}
