package projecthandler

import (
	"context"
	"strings"

	"fixster-server/internal/domain/project"
	"fixster-server/internal/infrastructure/metrics"
	"fixster-server/internal/interfaces/httpserver/requests/projectreq"
	"fixster-server/internal/interfaces/httpserver/responses/projectres"
	"fixster-server/internal/utils/platformerrors"
)

type ProjectHandler struct {
	projectService *project.Service
}

func NewProjectHandler(projectService *project.Service) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(
	ctx context.Context,
	userID string,
	req projectreq.CreateProjectRequest,
) (*projectres.ProjectResponse, error) {
	req.Name = strings.TrimSpace(req.Name)

	proj, err := h.projectService.Create(ctx, userID, req.Name, req.Description, req.Code, project.Status(req.Status))
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to create project")
	}

	metrics.ProjectsCreatedTotal.Inc()
	return projectres.NewProjectResponse(proj), nil
}

// GetProject retrieves a single project
func (h *ProjectHandler) GetProject(
	ctx context.Context,
	userID string,
	projectID string,
) (*projectres.ProjectResponse, error) {
	proj, err := h.projectService.Get(ctx, userID, projectID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to get project")
	}

	return projectres.NewProjectResponse(proj), nil
}

// ListProjects lists all projects for a user
func (h *ProjectHandler) ListProjects(
	ctx context.Context,
	userID string,
) (*projectres.ProjectListResponse, error) {
	projects, err := h.projectService.List(ctx, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list projects")
	}

	return projectres.NewProjectListResponse(projects), nil
}

// UpdateProject updates a project
func (h *ProjectHandler) UpdateProject(
	ctx context.Context,
	userID string,
	projectID string,
	req projectreq.UpdateProjectRequest,
) (*projectres.ProjectResponse, error) {
	fields := project.UpdateFields{
		Description: req.Description,
		Code:        req.Code,
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		fields.Name = &trimmed
	}
	if req.Status != nil {
		status := project.Status(*req.Status)
		fields.Status = &status
	}

	proj, err := h.projectService.Update(ctx, userID, projectID, fields)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to update project")
	}

	return projectres.NewProjectResponse(proj), nil
}

// AppendMessage appends one chat message to a project's history
func (h *ProjectHandler) AppendMessage(
	ctx context.Context,
	userID string,
	projectID string,
	req projectreq.AppendMessageRequest,
) (*projectres.ProjectResponse, error) {
	msg := project.Message{
		Text:   req.Text,
		Sender: project.Sender(req.Sender),
		Type:   req.Type,
		Status: req.Status,
	}

	proj, err := h.projectService.AppendMessage(ctx, userID, projectID, msg)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to append message")
	}

	metrics.MessagesAppendedTotal.Inc()
	return projectres.NewProjectResponse(proj), nil
}

// DeleteProject deletes a project
func (h *ProjectHandler) DeleteProject(
	ctx context.Context,
	userID string,
	projectID string,
) (*projectres.ProjectDeletedResponse, error) {
	if err := h.projectService.Delete(ctx, userID, projectID); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to delete project")
	}

	return projectres.NewProjectDeletedResponse(projectID), nil
}
