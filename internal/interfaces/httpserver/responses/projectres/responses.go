package projectres

import (
	"fixster-server/internal/domain/project"
)

// MessageResponse is one chat turn as sent to clients.
type MessageResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Sender    string `json:"sender"`
	Timestamp int64  `json:"timestamp"`
	Type      string `json:"type,omitempty"`
	Status    string `json:"status,omitempty"`
}

// ProjectResponse represents a single project response
type ProjectResponse struct {
	ID          string            `json:"id"`
	Object      string            `json:"object"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Code        string            `json:"code"`
	Status      string            `json:"status"`
	ChatHistory []MessageResponse `json:"chat_history"`
	CreatedAt   int64             `json:"created_at"`
	UpdatedAt   int64             `json:"updated_at"`
}

// ProjectListResponse represents a list of projects, newest-updated first
type ProjectListResponse struct {
	Object  string            `json:"object"`
	Data    []ProjectResponse `json:"data"`
	FirstID string            `json:"first_id,omitempty"`
	LastID  string            `json:"last_id,omitempty"`
	Total   int               `json:"total"`
}

// ProjectDeletedResponse represents the delete confirmation response
type ProjectDeletedResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// NewProjectResponse creates a response from a domain project
func NewProjectResponse(proj *project.Project) *ProjectResponse {
	history := make([]MessageResponse, len(proj.ChatHistory))
	for i, msg := range proj.ChatHistory {
		history[i] = MessageResponse{
			ID:        msg.ID,
			Text:      msg.Text,
			Sender:    string(msg.Sender),
			Timestamp: msg.Timestamp,
			Type:      msg.Type,
			Status:    msg.Status,
		}
	}

	return &ProjectResponse{
		ID:          proj.PublicID,
		Object:      "project",
		Name:        proj.Name,
		Description: proj.Description,
		Code:        proj.Code,
		Status:      string(proj.Status),
		ChatHistory: history,
		CreatedAt:   proj.CreatedAt.UnixMilli(),
		UpdatedAt:   proj.UpdatedAt.UnixMilli(),
	}
}

// NewProjectListResponse creates a list response from domain projects
func NewProjectListResponse(projects []*project.Project) *ProjectListResponse {
	data := make([]ProjectResponse, len(projects))
	for i, proj := range projects {
		data[i] = *NewProjectResponse(proj)
	}

	resp := &ProjectListResponse{
		Object: "list",
		Data:   data,
		Total:  len(data),
	}

	if len(data) > 0 {
		resp.FirstID = data[0].ID
		resp.LastID = data[len(data)-1].ID
	}

	return resp
}

// NewProjectDeletedResponse creates a delete response
func NewProjectDeletedResponse(publicID string) *ProjectDeletedResponse {
	return &ProjectDeletedResponse{
		ID:      publicID,
		Object:  "project",
		Deleted: true,
	}
}
