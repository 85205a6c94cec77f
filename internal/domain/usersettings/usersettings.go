package usersettings

import (
	"context"
	"time"
)

// UserSettings carries per-user state that is not part of any project: the
// active-project pointer and free-form UI preferences.
type UserSettings struct {
	ID              uint           `json:"-"`
	UserID          string         `json:"-"`
	ActiveProjectID *string        `json:"active_project_id,omitempty"`
	Preferences     map[string]any `json:"preferences"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Repository persists user settings rows, one per user.
type Repository interface {
	GetByUserID(ctx context.Context, userID string) (*UserSettings, error)
	Upsert(ctx context.Context, settings *UserSettings) error
}

// NewUserSettings returns default settings for a user.
func NewUserSettings(userID string) *UserSettings {
	now := time.Now()
	return &UserSettings{
		UserID:      userID,
		Preferences: map[string]any{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
