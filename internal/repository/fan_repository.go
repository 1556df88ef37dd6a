package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AK-1225/SPONproject/internal/model"
)

type FanRepository interface {
	Create(ctx context.Context, athleteID, fanID string) error
	Delete(ctx context.Context, athleteID, fanID string) error
	ListFans(ctx context.Context, athleteID string, offset, limit int) ([]*model.Fan, error)
}

type fanRepository struct{ db *gorm.DB }

func NewFanRepository(db *gorm.DB) FanRepository { return &fanRepository{db: db} }

func (r *fanRepository) Create(ctx context.Context, athleteID, fanID string) error {
	f := &model.Fan{ID: uuid.New().String(), AthleteID: athleteID, FanID: fanID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error
}

func (r *fanRepository) Delete(ctx context.Context, athleteID, fanID string) error {
	return r.db.WithContext(ctx).Where("athlete_id = ? AND fan_id = ?", athleteID, fanID).Delete(&model.Fan{}).Error
}

func (r *fanRepository) ListFans(ctx context.Context, athleteID string, offset, limit int) ([]*model.Fan, error) {
	var res []*model.Fan
	err := r.db.WithContext(ctx).Where("athlete_id = ?", athleteID).Order("created_at DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}
