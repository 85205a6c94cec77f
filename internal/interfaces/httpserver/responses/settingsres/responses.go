package settingsres

import (
	"fixster-server/internal/domain/usersettings"
)

// SettingsResponse represents a user's settings row
type SettingsResponse struct {
	Object          string         `json:"object"`
	ActiveProjectID *string        `json:"active_project_id"`
	Preferences     map[string]any `json:"preferences"`
	UpdatedAt       int64          `json:"updated_at"`
}

// NewSettingsResponse creates a response from domain settings
func NewSettingsResponse(settings *usersettings.UserSettings) *SettingsResponse {
	prefs := settings.Preferences
	if prefs == nil {
		prefs = map[string]any{}
	}
	return &SettingsResponse{
		Object:          "user_settings",
		ActiveProjectID: settings.ActiveProjectID,
		Preferences:     prefs,
		UpdatedAt:       settings.UpdatedAt.UnixMilli(),
	}
}
