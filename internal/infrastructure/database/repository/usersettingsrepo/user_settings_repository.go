package usersettingsrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fixster-server/internal/domain/usersettings"
	"fixster-server/internal/infrastructure/database/dbschema"
	"fixster-server/internal/utils/platformerrors"
)

// UserSettingsGormRepository implements usersettings.Repository using GORM.
type UserSettingsGormRepository struct {
	db *gorm.DB
}

var _ usersettings.Repository = (*UserSettingsGormRepository)(nil)

// NewUserSettingsGormRepository constructs a new repository.
func NewUserSettingsGormRepository(db *gorm.DB) usersettings.Repository {
	return &UserSettingsGormRepository{db: db}
}

// GetByUserID retrieves user settings by user ID.
func (repo *UserSettingsGormRepository) GetByUserID(ctx context.Context, userID string) (*usersettings.UserSettings, error) {
	var entity dbschema.UserSettings
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&entity).
		Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"user settings not found",
			err,
			"us-01",
		)
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find user settings by user ID",
			err,
			"us-02",
		)
	}

	return entity.EtoD(), nil
}

// Upsert inserts or updates user settings keyed by user_id.
func (repo *UserSettingsGormRepository) Upsert(ctx context.Context, settings *usersettings.UserSettings) error {
	entity := dbschema.NewSchemaUserSettings(settings)

	assignments := map[string]interface{}{
		"active_project_id": entity.ActiveProjectID,
		"preferences":       entity.Preferences,
		"updated_at":        gorm.Expr("NOW()"),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(entity).
		Error

	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to upsert user settings",
			err,
			"us-03",
		)
	}

	settings.ID = entity.ID
	return nil
}
