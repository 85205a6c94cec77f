package projectreq

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	Code        string `json:"code,omitempty"`
	Status      string `json:"status,omitempty"`
}

// UpdateProjectRequest represents the request to update a project. Omitted
// fields keep their stored values.
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Code        *string `json:"code,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// AppendMessageRequest represents one chat message to append to a project's
// history. ID and timestamp are assigned server side.
type AppendMessageRequest struct {
	Text   string `json:"text" binding:"required"`
	Sender string `json:"sender" binding:"required"`
	Type   string `json:"type,omitempty"`
	Status string `json:"status,omitempty"`
}
