package project

import (
	"context"
	"time"
)

// Status tracks where a project is in its lifecycle.
type Status string

const (
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusArchived   Status = "Archived"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Valid reports whether s is a known sender role.
func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderAssistant
}

// Message is one turn in a project's chat history. Type and Status are
// optional client-side tags; the server stores them opaquely.
type Message struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Sender    Sender `json:"sender"`
	Timestamp int64  `json:"timestamp"` // millisecond epoch
	Type      string `json:"type,omitempty"`
	Status    string `json:"status,omitempty"`
}

// Project is a named container of code, metadata and an ordered chat
// history, owned by one user.
type Project struct {
	ID          uint       `json:"-"`
	PublicID    string     `json:"id"`
	UserID      string     `json:"-"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Code        string     `json:"code"`
	Status      Status     `json:"status"`
	ChatHistory []Message  `json:"chatHistory"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}

// UpdateFields carries the partial fields of an update; nil means "leave
// unchanged". ChatHistory replaces the whole sequence when set (the append
// path reads, extends and writes back under the same row).
type UpdateFields struct {
	Name        *string
	Description *string
	Code        *string
	Status      *Status
	ChatHistory *[]Message
}

// Repository is the persistence boundary for projects. All operations are
// scoped by the owning user's ID.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	GetByPublicIDAndUserID(ctx context.Context, publicID, userID string) (*Project, error)
	ListByUserID(ctx context.Context, userID string) ([]*Project, error)
	Update(ctx context.Context, proj *Project) error
	Delete(ctx context.Context, publicID, userID string) error
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// NewProject creates a new project owned by userID with an empty chat history.
func NewProject(publicID, userID, name, description, code string, status Status) *Project {
	now := time.Now()

	if status == "" {
		status = StatusInProgress
	}

	return &Project{
		PublicID:    publicID,
		UserID:      userID,
		Name:        name,
		Description: description,
		Code:        code,
		Status:      status,
		ChatHistory: []Message{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
