package dbschema

import (
	"time"

	"gorm.io/datatypes"

	"fixster-server/internal/domain/usersettings"
	"fixster-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(UserSettings{})
}

// UserSettings is the database schema for the user_settings table. One row
// per user; the active project pointer references projects.public_id.
type UserSettings struct {
	ID              uint              `gorm:"primaryKey"`
	UserID          string            `gorm:"size:255;not null;uniqueIndex:ux_user_settings_user_id"`
	ActiveProjectID *string           `gorm:"size:64"`
	Preferences     datatypes.JSONMap `gorm:"not null;default:'{}'"`
	CreatedAt       time.Time         `gorm:"not null;default:now()"`
	UpdatedAt       time.Time         `gorm:"not null;default:now()"`
}

// TableName specifies the table name for UserSettings.
func (UserSettings) TableName() string {
	return "fixster.user_settings"
}

// EtoD converts entity (database schema) to domain model.
func (e *UserSettings) EtoD() *usersettings.UserSettings {
	prefs := map[string]interface{}(e.Preferences)
	if prefs == nil {
		prefs = make(map[string]interface{})
	}
	return &usersettings.UserSettings{
		ID:              e.ID,
		UserID:          e.UserID,
		ActiveProjectID: e.ActiveProjectID,
		Preferences:     prefs,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// NewSchemaUserSettings converts domain model to entity (database schema).
func NewSchemaUserSettings(d *usersettings.UserSettings) *UserSettings {
	prefs := datatypes.JSONMap(d.Preferences)
	if prefs == nil {
		prefs = make(datatypes.JSONMap)
	}

	return &UserSettings{
		ID:              d.ID,
		UserID:          d.UserID,
		ActiveProjectID: d.ActiveProjectID,
		Preferences:     prefs,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}
