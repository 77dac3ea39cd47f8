package audit

import "context"

// Recorder appends audit entries. Record is fire and forget: failures
// are logged and swallowed so a broken audit trail never fails the
// workflow that produced it.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
	List(ctx context.Context, page, limit int) ([]Entry, int64, error)
}
