package http

import (
	"net/http"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/audit"
	"github.com/peoplecore/hrm-backend-go/internal/domain/dashboard"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	AuditLogs(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	auditor          audit.Recorder
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, auditor audit.Recorder) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
		auditor:          auditor,
	}
}

// Stats implements DashboardHandler.
func (h *dashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

type auditLogResponse struct {
	ID        string  `json:"id"`
	Username  *string `json:"username,omitempty"`
	Action    string  `json:"action"`
	Entity    string  `json:"entity"`
	EntityID  *string `json:"entityId,omitempty"`
	Details   *string `json:"details,omitempty"`
	IPAddress *string `json:"ipAddress,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// AuditLogs implements DashboardHandler.
func (h *dashboardHandlerImpl) AuditLogs(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	entries, total, err := h.auditor.List(r.Context(), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]auditLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, auditLogResponse{
			ID:        e.ID,
			Username:  e.Username,
			Action:    e.Action,
			Entity:    e.Entity,
			EntityID:  e.EntityID,
			Details:   e.Details,
			IPAddress: e.IPAddress,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}
	response.SuccessWithMeta(w, out, response.PageMeta(page, limit, total))
}
