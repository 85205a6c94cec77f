package project

import (
	"context"
	"time"

	"fixster-server/internal/utils/idgen"
	"fixster-server/internal/utils/platformerrors"
)

// ActiveProjectClearer drops a user's active-project pointer when it
// references the given project. Implemented by the user settings service.
type ActiveProjectClearer interface {
	ClearActiveProject(ctx context.Context, userID, projectID string) error
}

// Service handles business logic for projects and their chat histories.
type Service struct {
	repo    Repository
	pointer ActiveProjectClearer
}

// NewService creates a new project service.
func NewService(repo Repository, pointer ActiveProjectClearer) *Service {
	return &Service{
		repo:    repo,
		pointer: pointer,
	}
}

// Create allocates a new project with a fresh public ID and empty chat history.
func (s *Service) Create(ctx context.Context, userID, name, description, code string, status Status) (*Project, error) {
	if err := validateProjectInput(name, status); err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, err.Error(), err, "")
	}

	publicID, err := idgen.GenerateSecureID("proj", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to generate project ID")
	}

	proj := NewProject(publicID, userID, name, description, code, status)
	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create project")
	}

	return proj, nil
}

// Get retrieves a project by public ID, validating ownership.
func (s *Service) Get(ctx context.Context, userID, projectID string) (*Project, error) {
	proj, err := s.repo.GetByPublicIDAndUserID(ctx, projectID, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "project not found")
	}
	return proj, nil
}

// List returns all of a user's projects, newest-updated first. A user with
// no stored projects gets an empty slice, not an error.
func (s *Service) List(ctx context.Context, userID string) ([]*Project, error) {
	projects, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list projects")
	}
	if projects == nil {
		projects = []*Project{}
	}
	return projects, nil
}

// Update merges the provided fields into the stored project and bumps
// UpdatedAt. CreatedAt is never touched and UpdatedAt never moves backwards.
func (s *Service) Update(ctx context.Context, userID, projectID string, fields UpdateFields) (*Project, error) {
	proj, err := s.Get(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	if fields.Name != nil {
		proj.Name = *fields.Name
	}
	if fields.Description != nil {
		proj.Description = *fields.Description
	}
	if fields.Code != nil {
		proj.Code = *fields.Code
	}
	if fields.Status != nil {
		if !fields.Status.Valid() {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "invalid project status", nil, "")
		}
		proj.Status = *fields.Status
	}
	if fields.ChatHistory != nil {
		proj.ChatHistory = *fields.ChatHistory
	}

	if now := time.Now(); now.After(proj.UpdatedAt) {
		proj.UpdatedAt = now
	}

	if err := s.repo.Update(ctx, proj); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update project")
	}

	return proj, nil
}

// AppendMessage assigns a fresh message ID and timestamp, appends the
// message to the project's chat history and persists via the update path.
func (s *Service) AppendMessage(ctx context.Context, userID, projectID string, msg Message) (*Project, error) {
	if !msg.Sender.Valid() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "invalid message sender", nil, "")
	}

	proj, err := s.Get(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	msgID, err := idgen.GenerateSecureID("msg", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to generate message ID")
	}
	msg.ID = msgID
	msg.Timestamp = time.Now().UnixMilli()

	history := append(append([]Message{}, proj.ChatHistory...), msg)
	return s.Update(ctx, userID, projectID, UpdateFields{ChatHistory: &history})
}

// Delete removes a project. It is idempotent: deleting an absent project is
// not an error. Any active-project pointer referencing it is cleared.
func (s *Service) Delete(ctx context.Context, userID, projectID string) error {
	if err := s.repo.Delete(ctx, projectID, userID); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to delete project")
	}

	if s.pointer != nil {
		if err := s.pointer.ClearActiveProject(ctx, userID, projectID); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to clear active project pointer")
		}
	}

	return nil
}

// PurgeDeleted hard-deletes soft-deleted projects older than the retention window.
func (s *Service) PurgeDeleted(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	purged, err := s.repo.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		return 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to purge deleted projects")
	}
	return purged, nil
}
