package settingshandler

import (
	"context"

	"fixster-server/internal/domain/usersettings"
	"fixster-server/internal/interfaces/httpserver/requests/settingsreq"
	"fixster-server/internal/interfaces/httpserver/responses/settingsres"
	"fixster-server/internal/utils/platformerrors"
)

type SettingsHandler struct {
	settingsService *usersettings.Service
}

func NewSettingsHandler(settingsService *usersettings.Service) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings returns the user's settings, creating defaults on first access.
func (h *SettingsHandler) GetSettings(
	ctx context.Context,
	userID string,
) (*settingsres.SettingsResponse, error) {
	settings, err := h.settingsService.Get(ctx, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to get settings")
	}

	return settingsres.NewSettingsResponse(settings), nil
}

// SetActiveProject points the user at a project, or clears the pointer when
// project_id is null.
func (h *SettingsHandler) SetActiveProject(
	ctx context.Context,
	userID string,
	req settingsreq.SetActiveProjectRequest,
) (*settingsres.SettingsResponse, error) {
	settings, err := h.settingsService.SetActiveProject(ctx, userID, req.ProjectID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to set active project")
	}

	return settingsres.NewSettingsResponse(settings), nil
}

// UpdatePreferences merges the given preference keys into the stored set.
func (h *SettingsHandler) UpdatePreferences(
	ctx context.Context,
	userID string,
	req settingsreq.UpdatePreferencesRequest,
) (*settingsres.SettingsResponse, error) {
	settings, err := h.settingsService.UpdatePreferences(ctx, userID, req.Preferences)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to update preferences")
	}

	return settingsres.NewSettingsResponse(settings), nil
}
