package settingsreq

// SetActiveProjectRequest points the user's editor at a project. A null
// project_id clears the pointer.
type SetActiveProjectRequest struct {
	ProjectID *string `json:"project_id"`
}

// UpdatePreferencesRequest merges the given keys into stored preferences.
type UpdatePreferencesRequest struct {
	Preferences map[string]any `json:"preferences" binding:"required"`
}
