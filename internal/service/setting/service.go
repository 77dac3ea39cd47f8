package setting

import (
	"context"
	"fmt"

	"github.com/peoplecore/hrm-backend-go/internal/domain/audit"
	"github.com/peoplecore/hrm-backend-go/internal/domain/setting"
)

type SettingServiceImpl struct {
	setting.OfficeSettingRepository
	auditor audit.Recorder
}

func NewSettingService(repo setting.OfficeSettingRepository, auditor audit.Recorder) setting.SettingService {
	return &SettingServiceImpl{
		OfficeSettingRepository: repo,
		auditor:                 auditor,
	}
}

// Get implements setting.SettingService.
func (s *SettingServiceImpl) Get(ctx context.Context) (*setting.OfficeSetting, error) {
	return s.OfficeSettingRepository.Get(ctx)
}

// Update implements setting.SettingService.
func (s *SettingServiceImpl) Update(ctx context.Context, req setting.UpdateRequest) (setting.OfficeSetting, error) {
	if err := req.Validate(); err != nil {
		return setting.OfficeSetting{}, err
	}

	updated, err := s.OfficeSettingRepository.Upsert(ctx, setting.OfficeSetting{
		OfficeName:          req.OfficeName,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		AllowedRadiusMeters: req.AllowedRadiusMeters,
	})
	if err != nil {
		return setting.OfficeSetting{}, fmt.Errorf("failed to save office settings: %w", err)
	}

	details := fmt.Sprintf("Office %q at %v,%v radius %dm", updated.OfficeName, updated.Latitude, updated.Longitude, updated.AllowedRadiusMeters)
	s.auditor.Record(ctx, audit.Entry{
		UserID:   &req.UpdatedBy,
		Action:   audit.ActionUpdateSettings,
		Entity:   "office_settings",
		EntityID: &updated.ID,
		Details:  &details,
	})

	return updated, nil
}
