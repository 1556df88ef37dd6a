package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AK-1225/SPONproject/internal/model"
)

type FollowRepository interface {
	Create(ctx context.Context, fanID, athleteID string) error
	Delete(ctx context.Context, fanID, athleteID string) error
	Exists(ctx context.Context, fanID, athleteID string) (bool, error)
	ListFollowing(ctx context.Context, fanID string, offset, limit int) ([]*model.Follow, error)
	CountFollowers(ctx context.Context, athleteID string) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

func (r *followRepository) Create(ctx context.Context, fanID, athleteID string) error {
	f := &model.Follow{ID: uuid.New().String(), FanID: fanID, AthleteID: athleteID}
	// 幂等：重复关注不报错
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error
}

func (r *followRepository) Delete(ctx context.Context, fanID, athleteID string) error {
	return r.db.WithContext(ctx).
		Where("fan_id = ? AND athlete_id = ?", fanID, athleteID).
		Delete(&model.Follow{}).Error
}

func (r *followRepository) Exists(ctx context.Context, fanID, athleteID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("fan_id = ? AND athlete_id = ?", fanID, athleteID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, fanID string, offset, limit int) ([]*model.Follow, error) {
	var res []*model.Follow
	err := r.db.WithContext(ctx).Where("fan_id = ?", fanID).Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (r *followRepository) CountFollowers(ctx context.Context, athleteID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).Where("athlete_id = ?", athleteID).Count(&cnt).Error
	return cnt, err
}
