package db

import (
	"context"

	"github.com/terraincognita07/peptica/internal/models"
	"gorm.io/gorm"
)

type FeedbackRepository struct {
	database *gorm.DB
}

func NewFeedbackRepository(database *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{database: database}
}

func (repo *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	return repo.database.WithContext(ctx).Create(feedback).Error
}

// ListRecent returns up to limit reports, newest first.
func (repo *FeedbackRepository) ListRecent(ctx context.Context, limit int) ([]models.Feedback, error) {
	reports := make([]models.Feedback, 0)
	if err := repo.database.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (repo *FeedbackRepository) CountBySubstance(ctx context.Context, slug string) (int64, error) {
	var count int64
	if err := repo.database.WithContext(ctx).
		Model(&models.Feedback{}).
		Where("substance_slug = ?", slug).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
