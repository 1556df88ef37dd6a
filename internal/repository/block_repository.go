package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AK-1225/SPONproject/internal/model"
)

type BlockRepository interface {
	Create(ctx context.Context, athleteID, userID string) error
	Delete(ctx context.Context, athleteID, userID string) error
	Exists(ctx context.Context, athleteID, userID string) (bool, error)
	ListBlocked(ctx context.Context, athleteID string) ([]string, error)
}

type blockRepository struct{ db *gorm.DB }

func NewBlockRepository(db *gorm.DB) BlockRepository { return &blockRepository{db: db} }

func (r *blockRepository) Create(ctx context.Context, athleteID, userID string) error {
	b := &model.Block{ID: uuid.New().String(), AthleteID: athleteID, UserID: userID}
	// 幂等：重复拉黑不报错
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(b).Error
}

func (r *blockRepository) Delete(ctx context.Context, athleteID, userID string) error {
	return r.db.WithContext(ctx).
		Where("athlete_id = ? AND user_id = ?", athleteID, userID).
		Delete(&model.Block{}).Error
}

func (r *blockRepository) Exists(ctx context.Context, athleteID, userID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Block{}).
		Where("athlete_id = ? AND user_id = ?", athleteID, userID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *blockRepository) ListBlocked(ctx context.Context, athleteID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.Block{}).
		Where("athlete_id = ?", athleteID).
		Order("created_at").
		Pluck("user_id", &ids).Error
	return ids, err
}
