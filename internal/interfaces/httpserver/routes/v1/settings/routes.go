package settings

import (
	"github.com/gin-gonic/gin"

	"fixster-server/internal/interfaces/httpserver/handlers/settingshandler"
	"fixster-server/internal/interfaces/httpserver/middlewares"
	"fixster-server/internal/interfaces/httpserver/requests/settingsreq"
	"fixster-server/internal/interfaces/httpserver/responses"
	"fixster-server/internal/utils/platformerrors"
)

type SettingsRoute struct {
	handler *settingshandler.SettingsHandler
}

func NewSettingsRoute(handler *settingshandler.SettingsHandler) *SettingsRoute {
	return &SettingsRoute{
		handler: handler,
	}
}

// RegisterRoutes registers user settings routes
func (r *SettingsRoute) RegisterRoutes(rg gin.IRouter) {
	settings := rg.Group("/settings")
	settings.GET("", r.getSettings)
	settings.PUT("/active-project", r.setActiveProject)
	settings.PATCH("/preferences", r.updatePreferences)
}

func (r *SettingsRoute) getSettings(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	userID := middlewares.GetUserID(reqCtx)
	if userID == "" {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "settings-get-001")
		return
	}

	response, err := r.handler.GetSettings(ctx, userID)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to get settings")
		return
	}

	reqCtx.JSON(200, response)
}

func (r *SettingsRoute) setActiveProject(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	userID := middlewares.GetUserID(reqCtx)
	if userID == "" {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "settings-active-001")
		return
	}

	var req settingsreq.SetActiveProjectRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "settings-active-002")
		return
	}

	response, err := r.handler.SetActiveProject(ctx, userID, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to set active project")
		return
	}

	reqCtx.JSON(200, response)
}

func (r *SettingsRoute) updatePreferences(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	userID := middlewares.GetUserID(reqCtx)
	if userID == "" {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "settings-prefs-001")
		return
	}

	var req settingsreq.UpdatePreferencesRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "settings-prefs-002")
		return
	}

	response, err := r.handler.UpdatePreferences(ctx, userID, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to update preferences")
		return
	}

	reqCtx.JSON(200, response)
}
