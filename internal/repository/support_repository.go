package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AK-1225/SPONproject/internal/model"
)

// SupportRepository 支援台账仓储；Append 同一事务内落账并维护累计
type SupportRepository interface {
	// Append 追加一条支援记录并把 (fan, athlete) 累计加上 amount
	Append(ctx context.Context, s *model.Support) error

	// Total 读取维护中的累计值，不存在记 0
	Total(ctx context.Context, fanID, athleteID string) (int64, error)

	// SumFromLedger 从台账全量求和（重建校验用）
	SumFromLedger(ctx context.Context, fanID, athleteID string) (int64, error)

	// ListByFan fan 的支援历史，新在前
	ListByFan(ctx context.Context, fanID string, offset, limit int) ([]*model.Support, error)

	// ListByAthlete athlete 收到的支援，新在前
	ListByAthlete(ctx context.Context, athleteID string, offset, limit int) ([]*model.Support, error)

	// CountSupporters athlete 的支援人数（去重 fan）
	CountSupporters(ctx context.Context, athleteID string) (int64, error)
}

type supportRepository struct{ db *gorm.DB }

func NewSupportRepository(db *gorm.DB) SupportRepository { return &supportRepository{db: db} }

func (r *supportRepository) Append(ctx context.Context, s *model.Support) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return err
		}
		var total model.SupportTotal
		err := tx.Where("fan_id = ? AND athlete_id = ?", s.FanID, s.AthleteID).First(&total).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			total = model.SupportTotal{
				ID:        uuid.New().String(),
				FanID:     s.FanID,
				AthleteID: s.AthleteID,
				Total:     s.Amount,
				UpdatedAt: time.Now(),
			}
			return tx.Create(&total).Error
		case err != nil:
			return err
		}
		return tx.Model(&model.SupportTotal{}).
			Where("id = ?", total.ID).
			Updates(map[string]any{"total": gorm.Expr("total + ?", s.Amount), "updated_at": time.Now()}).Error
	})
}

func (r *supportRepository) Total(ctx context.Context, fanID, athleteID string) (int64, error) {
	var total model.SupportTotal
	err := r.db.WithContext(ctx).
		Where("fan_id = ? AND athlete_id = ?", fanID, athleteID).
		First(&total).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return total.Total, nil
}

func (r *supportRepository) SumFromLedger(ctx context.Context, fanID, athleteID string) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&model.Support{}).
		Where("fan_id = ? AND athlete_id = ?", fanID, athleteID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *supportRepository) ListByFan(ctx context.Context, fanID string, offset, limit int) ([]*model.Support, error) {
	var res []*model.Support
	err := r.db.WithContext(ctx).
		Where("fan_id = ?", fanID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *supportRepository) ListByAthlete(ctx context.Context, athleteID string, offset, limit int) ([]*model.Support, error) {
	var res []*model.Support
	err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *supportRepository) CountSupporters(ctx context.Context, athleteID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Support{}).
		Where("athlete_id = ?", athleteID).
		Distinct("fan_id").
		Count(&cnt).Error
	return cnt, err
}
