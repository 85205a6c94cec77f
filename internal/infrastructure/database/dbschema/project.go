package dbschema

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"fixster-server/internal/domain/project"
	"fixster-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Project{})
}

// ===============================================
// Project Schema
// ===============================================

// Project represents the database schema for projects
type Project struct {
	BaseModel
	PublicID    string         `gorm:"uniqueIndex;size:64;not null"`
	UserID      string         `gorm:"size:255;index:idx_projects_user;not null"`
	Name        string         `gorm:"size:255;not null"`
	Description string         `gorm:"type:text;not null;default:''"`
	Code        string         `gorm:"type:text;not null;default:''"`
	Status      project.Status `gorm:"size:32;not null;default:'In Progress'"`
	ChatHistory JSONMessages   `gorm:"type:jsonb"`
	DeletedAt   *time.Time     `gorm:"index"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "fixster.projects"
}

// JSONMessages stores a project's ordered chat history as one jsonb column.
type JSONMessages []project.Message

func (j JSONMessages) Value() (driver.Value, error) {
	if j == nil {
		return json.Marshal([]project.Message{})
	}
	return json.Marshal(j)
}

func (j *JSONMessages) Scan(value any) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, j)
}

// ===============================================
// Conversion Methods
// ===============================================

// EtoD converts database schema to domain project (Entity to Domain)
func (p *Project) EtoD() *project.Project {
	history := []project.Message(p.ChatHistory)
	if history == nil {
		history = []project.Message{}
	}
	return &project.Project{
		ID:          p.ID,
		PublicID:    p.PublicID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		Code:        p.Code,
		Status:      p.Status,
		ChatHistory: history,
		DeletedAt:   p.DeletedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProjectDtoE converts domain project to database schema (Domain to Entity)
func ProjectDtoE(p *project.Project) *Project {
	return &Project{
		BaseModel: BaseModel{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		},
		PublicID:    p.PublicID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		Code:        p.Code,
		Status:      p.Status,
		ChatHistory: JSONMessages(p.ChatHistory),
		DeletedAt:   p.DeletedAt,
	}
}

// NewSchemaProject creates a database schema from domain project
func NewSchemaProject(p *project.Project) *Project {
	return ProjectDtoE(p)
}
