package audit

import (
	"context"
	"log/slog"

	"github.com/peoplecore/hrm-backend-go/internal/domain/audit"
)

type RecorderImpl struct {
	audit.AuditLogRepository
}

func NewRecorder(repo audit.AuditLogRepository) audit.Recorder {
	return &RecorderImpl{AuditLogRepository: repo}
}

// Record implements audit.Recorder. A failed append is logged and
// swallowed; the audit trail never fails the workflow that produced it.
func (r *RecorderImpl) Record(ctx context.Context, entry audit.Entry) {
	// the entry must outlive a request context that is about to end
	if err := r.AuditLogRepository.Append(context.WithoutCancel(ctx), entry); err != nil {
		slog.Error("Failed to append audit entry",
			"action", entry.Action,
			"entity", entry.Entity,
			"error", err,
		)
	}
}

// List implements audit.Recorder.
func (r *RecorderImpl) List(ctx context.Context, page, limit int) ([]audit.Entry, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return r.AuditLogRepository.List(ctx, page, limit)
}
