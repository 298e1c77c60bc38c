package dto

// Request DTOs

type UpdateSettingsRequest struct {
	DarkMode             *bool  `json:"dark_mode" validate:"omitempty"`
	Language             string `json:"language" validate:"omitempty,max=10"`
	NotificationsEnabled *bool  `json:"notifications_enabled" validate:"omitempty"`
}

// Response DTOs

type SettingsResponse struct {
	DarkMode             bool   `json:"dark_mode"`
	Language             string `json:"language"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}
