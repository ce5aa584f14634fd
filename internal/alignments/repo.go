package alignments

import (
	"context"

	"github.com/mikepica/Scorecard-app-sub001/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes persistence helpers for alignments.
type Repository interface {
	ListUnaligned(ctx context.Context) ([]models.ScorecardItem, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns an alignments repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

// ListUnaligned returns live items referenced by no alignment on either side,
// ordered by type, name, id so repeated reads return the same sequence.
func (r *repositoryImpl) ListUnaligned(ctx context.Context) ([]models.ScorecardItem, error) {
	linked := r.db.
		Table("alignments AS a").
		Select("1").
		Where("a.source_item_id = scorecard_items.id OR a.target_item_id = scorecard_items.id")

	var items []models.ScorecardItem
	err := r.db.WithContext(ctx).
		Model(&models.ScorecardItem{}).
		Where("scorecard_items.archived_at IS NULL").
		Where("NOT EXISTS (?)", linked).
		Order("scorecard_items.type ASC, scorecard_items.name ASC, scorecard_items.id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
