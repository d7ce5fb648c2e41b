package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/weiawesome/bestiary-search/internal/domain"
	"github.com/weiawesome/bestiary-search/pkg/log"
)

// GormBestiaryRepository implements BestiaryRepository using GORM.
type GormBestiaryRepository struct {
	db *gorm.DB
}

// NewGormBestiaryRepository creates a new GORM-based bestiary repository.
func NewGormBestiaryRepository(db *gorm.DB) *GormBestiaryRepository {
	return &GormBestiaryRepository{db: db}
}

func (r *GormBestiaryRepository) published(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&domain.BestiaryModel{}).
		Select("bestiaries.*, users.username").
		Joins("JOIN users ON users.id = bestiaries.author").
		Where("bestiaries.is_published = ? AND bestiaries.is_deleted = ?", true, false)
}

// ListPublished retrieves all visible bestiaries.
func (r *GormBestiaryRepository) ListPublished(ctx context.Context) ([]domain.Bestiary, error) {
	l := log.Ctx(ctx)

	var rows []domain.BestiaryRow
	if err := r.published(ctx).Order("bestiaries.id").Scan(&rows).Error; err != nil {
		l.Error().Err(err).Msg("failed to list published bestiaries")
		return nil, err
	}

	out := make([]domain.Bestiary, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}

	l.Debug().Int(log.FieldResults, len(out)).Msg("published bestiaries loaded")
	return out, nil
}

// GetPublished retrieves one visible bestiary by ID.
func (r *GormBestiaryRepository) GetPublished(ctx context.Context, id int64) (*domain.Bestiary, error) {
	l := log.Ctx(ctx)

	var rows []domain.BestiaryRow
	err := r.published(ctx).
		Where("bestiaries.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		l.Error().Err(err).Int64(log.FieldBestiaryID, id).Msg("failed to get bestiary by id")
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrBestiaryNotFound
	}

	b := rows[0].ToDomain()
	return &b, nil
}
