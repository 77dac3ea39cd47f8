package http

import (
	"encoding/json"
	"net/http"

	"github.com/peoplecore/hrm-backend-go/internal/domain/setting"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
)

type SettingHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type settingHandlerImpl struct {
	settingService setting.SettingService
}

func NewSettingHandler(settingService setting.SettingService) SettingHandler {
	return &settingHandlerImpl{settingService: settingService}
}

type officeSettingResponse struct {
	ID                  string  `json:"id"`
	OfficeName          string  `json:"officeName"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	AllowedRadiusMeters int     `json:"allowedRadiusMeters"`
}

func toSettingResponse(s setting.OfficeSetting) officeSettingResponse {
	return officeSettingResponse{
		ID:                  s.ID,
		OfficeName:          s.OfficeName,
		Latitude:            s.Latitude,
		Longitude:           s.Longitude,
		AllowedRadiusMeters: s.AllowedRadiusMeters,
	}
}

// Get implements SettingHandler.
func (h *settingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	office, err := h.settingService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if office == nil {
		response.Success(w, nil)
		return
	}
	response.Success(w, toSettingResponse(*office))
}

// Update implements SettingHandler.
func (h *settingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req setting.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UpdatedBy = middleware.UserID(r)

	updated, err := h.settingService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, toSettingResponse(updated))
}
