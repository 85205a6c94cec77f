package projects

import (
	"github.com/gin-gonic/gin"

	"fixster-server/internal/interfaces/httpserver/handlers/projecthandler"
	"fixster-server/internal/interfaces/httpserver/middlewares"
	"fixster-server/internal/interfaces/httpserver/requests/projectreq"
	"fixster-server/internal/interfaces/httpserver/responses"
	"fixster-server/internal/utils/platformerrors"
)

type ProjectRoute struct {
	handler *projecthandler.ProjectHandler
}

func NewProjectRoute(handler *projecthandler.ProjectHandler) *ProjectRoute {
	return &ProjectRoute{
		handler: handler,
	}
}

// RegisterRoutes registers project routes
func (r *ProjectRoute) RegisterRoutes(rg gin.IRouter) {
	projects := rg.Group("/projects")
	projects.POST("", r.createProject)
	projects.GET("", r.listProjects)
	projects.GET("/:project_id", r.getProject)
	projects.PATCH("/:project_id", r.updateProject)
	projects.DELETE("/:project_id", r.deleteProject)
	projects.POST("/:project_id/messages", r.appendMessage)
}

func (r *ProjectRoute) createProject(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	userID := middlewares.GetUserID(reqCtx)
	if userID == "" {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "proj-create-001")
		return
	}

	var req projectreq.CreateProjectRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "proj-create-002")
		return
	}

	response, err := r.handler.CreateProject(ctx, userID, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to create project")
		return
	}

	reqCtx.JSON(201, response)
}

func (r *ProjectRoute) listProjects(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	userID := middlewares.GetUserID(reqCtx)
	if userID == "" {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "proj-list-001")
		return
	}

	response, err := r.handler.ListProjects(ctx, userID)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to list projects")
		return
	}

	reqCtx.JSON(200, response)
}

func (r *ProjectRoute) getProject(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	userID := middlewares.GetUserID(reqCtx)
	if userID == "" {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "proj-get-001")
		return
	}

	projectID := reqCtx.Param("project_id")

	response, err := r.handler.GetProject(ctx, userID, projectID)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to get project")
		return
	}

	reqCtx.JSON(200, response)
}

func (r *ProjectRoute) updateProject(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	userID := middlewares.GetUserID(reqCtx)
	if userID == "" {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "proj-update-001")
		return
	}

	projectID := reqCtx.Param("project_id")

	var req projectreq.UpdateProjectRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "proj-update-002")
		return
	}

	response, err := r.handler.UpdateProject(ctx, userID, projectID, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to update project")
		return
	}

	reqCtx.JSON(200, response)
}

func (r *ProjectRoute) deleteProject(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	userID := middlewares.GetUserID(reqCtx)
	if userID == "" {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "proj-delete-001")
		return
	}

	projectID := reqCtx.Param("project_id")

	response, err := r.handler.DeleteProject(ctx, userID, projectID)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to delete project")
		return
	}

	reqCtx.JSON(200, response)
}

func (r *ProjectRoute) appendMessage(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	userID := middlewares.GetUserID(reqCtx)
	if userID == "" {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "proj-msg-001")
		return
	}

	projectID := reqCtx.Param("project_id")

	var req projectreq.AppendMessageRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "proj-msg-002")
		return
	}

	response, err := r.handler.AppendMessage(ctx, userID, projectID, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to append message")
		return
	}

	reqCtx.JSON(201, response)
}
