package usersettings

import (
	"context"
	"time"

	"fixster-server/internal/utils/platformerrors"
)

// Service manages per-user settings. Reads create defaults on first use so
// callers never see a NotFound for their own settings.
type Service struct {
	repo Repository
}

// NewService creates a new user settings service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the user's settings, creating defaults on first read.
func (s *Service) Get(ctx context.Context, userID string) (*UserSettings, error) {
	settings, err := s.repo.GetByUserID(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load user settings")
	}

	settings = NewUserSettings(userID)
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create user settings")
	}
	return settings, nil
}

// SetActiveProject points the user's dashboard at the given project. A nil
// projectID clears the pointer.
func (s *Service) SetActiveProject(ctx context.Context, userID string, projectID *string) (*UserSettings, error) {
	settings, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings.ActiveProjectID = projectID
	settings.UpdatedAt = time.Now()
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to save user settings")
	}
	return settings, nil
}

// ClearActiveProject drops the pointer when it references projectID. Called
// by the project service on deletion.
func (s *Service) ClearActiveProject(ctx context.Context, userID, projectID string) error {
	settings, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if settings.ActiveProjectID == nil || *settings.ActiveProjectID != projectID {
		return nil
	}
	_, err = s.SetActiveProject(ctx, userID, nil)
	return err
}

// UpdatePreferences merges the given keys into the stored preferences blob.
func (s *Service) UpdatePreferences(ctx context.Context, userID string, prefs map[string]any) (*UserSettings, error) {
	settings, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if settings.Preferences == nil {
		settings.Preferences = map[string]any{}
	}
	for k, v := range prefs {
		settings.Preferences[k] = v
	}

	settings.UpdatedAt = time.Now()
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to save user settings")
	}
	return settings, nil
}
