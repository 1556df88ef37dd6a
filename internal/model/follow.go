package model

import (
	"time"
)

// Follow 关注关系（fan 关注 athlete）
type Follow struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	FanID     string `gorm:"type:varchar(36);index:idx_follow_fan;index:idx_follow_pair,unique;not null"`
	AthleteID string `gorm:"type:varchar(36);not null;index:idx_follow_pair,unique"`
	// 复合唯一键，避免重复关注
	// idx_follow_pair = (fan_id, athlete_id)
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Follow) TableName() string { return "follows" }
