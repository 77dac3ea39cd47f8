package audit

import "context"

type AuditLogRepository interface {
	Append(ctx context.Context, entry Entry) error
	List(ctx context.Context, page, limit int) ([]Entry, int64, error)
}
