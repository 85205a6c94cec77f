package dbschema

import (
	"fixster-server/internal/domain/snippet"
	"fixster-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Snippet{})
}

// Snippet represents the database schema for recent code snippets
type Snippet struct {
	BaseModel
	PublicID string `gorm:"uniqueIndex;size:64;not null"`
	UserID   string `gorm:"size:255;index:idx_snippets_user;not null"`
	Code     string `gorm:"type:text;not null"`
	Language string `gorm:"size:64;not null;default:'javascript'"`
}

// TableName specifies the table name for Snippet
func (Snippet) TableName() string {
	return "fixster.snippets"
}

// EtoD converts database schema to domain snippet (Entity to Domain)
func (s *Snippet) EtoD() *snippet.Snippet {
	return &snippet.Snippet{
		ID:        s.ID,
		PublicID:  s.PublicID,
		UserID:    s.UserID,
		Code:      s.Code,
		Language:  s.Language,
		CreatedAt: s.CreatedAt,
	}
}

// NewSchemaSnippet creates a database schema from domain snippet
func NewSchemaSnippet(s *snippet.Snippet) *Snippet {
	return &Snippet{
		BaseModel: BaseModel{
			ID:        s.ID,
			CreatedAt: s.CreatedAt,
		},
		PublicID: s.PublicID,
		UserID:   s.UserID,
		Code:     s.Code,
		Language: s.Language,
	}
}
