package snippetrepo

import (
	"context"

	"gorm.io/gorm"

	"fixster-server/internal/domain/snippet"
	"fixster-server/internal/infrastructure/database/dbschema"
	"fixster-server/internal/utils/platformerrors"
)

type SnippetGormRepository struct {
	db *gorm.DB
}

var _ snippet.Repository = (*SnippetGormRepository)(nil)

func NewSnippetGormRepository(db *gorm.DB) snippet.Repository {
	return &SnippetGormRepository{db: db}
}

// Create implements snippet.Repository.
func (repo *SnippetGormRepository) Create(ctx context.Context, snip *snippet.Snippet) error {
	dbSnippet := dbschema.NewSchemaSnippet(snip)
	if err := repo.db.WithContext(ctx).Create(dbSnippet).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create snippet")
	}
	snip.ID = dbSnippet.ID
	snip.CreatedAt = dbSnippet.CreatedAt
	return nil
}

// ListByUserID implements snippet.Repository, newest first.
func (repo *SnippetGormRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]*snippet.Snippet, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []dbschema.Snippet
	if err := query.Find(&rows).Error; err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list snippets")
	}

	result := make([]*snippet.Snippet, len(rows))
	for i, row := range rows {
		result[i] = row.EtoD()
	}
	return result, nil
}

// TrimToNewest implements snippet.Repository. Everything but the keep newest
// rows for the user is deleted.
func (repo *SnippetGormRepository) TrimToNewest(ctx context.Context, userID string, keep int) error {
	if keep < 0 {
		keep = 0
	}

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id NOT IN (?)", userID,
			repo.db.Model(&dbschema.Snippet{}).
				Select("id").
				Where("user_id = ?", userID).
				Order("id DESC").
				Limit(keep),
		).
		Delete(&dbschema.Snippet{}).Error

	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to trim snippets")
	}
	return nil
}

// TrimAll implements snippet.Repository. A single statement re-applies the
// per-user cap across the whole table.
func (repo *SnippetGormRepository) TrimAll(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}

	err := repo.db.WithContext(ctx).Exec(`
		DELETE FROM fixster.snippets
		WHERE id IN (
			SELECT id FROM (
				SELECT id, ROW_NUMBER() OVER (PARTITION BY user_id ORDER BY id DESC) AS rn
				FROM fixster.snippets
			) ranked
			WHERE ranked.rn > ?
		)`, keep).Error

	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to trim snippets")
	}
	return nil
}
