package projectrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fixster-server/internal/domain/project"
	"fixster-server/internal/infrastructure/database/dbschema"
	"fixster-server/internal/utils/platformerrors"
)

type ProjectGormRepository struct {
	db *gorm.DB
}

var _ project.Repository = (*ProjectGormRepository)(nil)

func NewProjectGormRepository(db *gorm.DB) project.Repository {
	return &ProjectGormRepository{db: db}
}

// Create implements project.Repository.
func (repo *ProjectGormRepository) Create(ctx context.Context, proj *project.Project) error {
	dbProject := dbschema.NewSchemaProject(proj)
	if err := repo.db.WithContext(ctx).Create(dbProject).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create project")
	}
	proj.ID = dbProject.ID
	proj.CreatedAt = dbProject.CreatedAt
	proj.UpdatedAt = dbProject.UpdatedAt
	return nil
}

// GetByPublicIDAndUserID implements project.Repository.
func (repo *ProjectGormRepository) GetByPublicIDAndUserID(ctx context.Context, publicID, userID string) (*project.Project, error) {
	var dbProject dbschema.Project
	err := repo.db.WithContext(ctx).
		Where("public_id = ? AND user_id = ? AND deleted_at IS NULL", publicID, userID).
		First(&dbProject).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"project not found",
			err,
			"pr-01",
		)
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find project by public ID and user ID",
			err,
			"pr-02",
		)
	}
	return dbProject.EtoD(), nil
}

// ListByUserID implements project.Repository.
func (repo *ProjectGormRepository) ListByUserID(ctx context.Context, userID string) ([]*project.Project, error) {
	var rows []dbschema.Project
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("updated_at DESC").
		Find(&rows).Error

	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list projects")
	}

	result := make([]*project.Project, len(rows))
	for i, row := range rows {
		result[i] = row.EtoD()
	}
	return result, nil
}

// Update implements project.Repository.
func (repo *ProjectGormRepository) Update(ctx context.Context, proj *project.Project) error {
	dbProject := dbschema.ProjectDtoE(proj)

	err := repo.db.WithContext(ctx).Model(&dbschema.Project{}).
		Where("public_id = ? AND user_id = ? AND deleted_at IS NULL", proj.PublicID, proj.UserID).
		Updates(map[string]interface{}{
			"name":         dbProject.Name,
			"description":  dbProject.Description,
			"code":         dbProject.Code,
			"status":       dbProject.Status,
			"chat_history": dbProject.ChatHistory,
			"updated_at":   dbProject.UpdatedAt,
		}).Error

	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to update project")
	}
	return nil
}

// Delete implements project.Repository. Deleting an already deleted or
// unknown project is not an error.
func (repo *ProjectGormRepository) Delete(ctx context.Context, publicID, userID string) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).Model(&dbschema.Project{}).
		Where("public_id = ? AND user_id = ? AND deleted_at IS NULL", publicID, userID).
		Update("deleted_at", now)

	if result.Error != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, result.Error, fmt.Sprintf("failed to delete project %s", publicID))
	}
	return nil
}

// PurgeDeletedBefore implements project.Repository. Rows soft deleted before
// cutoff are removed for good.
func (repo *ProjectGormRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&dbschema.Project{})

	if result.Error != nil {
		return 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, result.Error, "failed to purge deleted projects")
	}
	return result.RowsAffected, nil
}
