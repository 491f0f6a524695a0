package audit

import "context"

// Recorder is the audit-log sink consumed by the other packages.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}
