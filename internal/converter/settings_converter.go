package converter

import (
	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
)

// SettingsToResponse converts a UserSettings entity to SettingsResponse DTO
func SettingsToResponse(settings *entity.UserSettings) *dto.SettingsResponse {
	if settings == nil {
		return nil
	}

	return &dto.SettingsResponse{
		DarkMode:             settings.DarkMode,
		Language:             settings.Language,
		NotificationsEnabled: settings.NotificationsEnabled,
	}
}
