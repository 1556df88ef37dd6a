package model

import "time"

// Block 拉黑关系（athlete 维度的黑名单）
type Block struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	AthleteID string `gorm:"type:varchar(36);index:idx_block_athlete;index:idx_block_pair,unique;not null"`
	UserID    string `gorm:"type:varchar(36);not null;index:idx_block_pair,unique"`
	CreatedAt time.Time
}

func (Block) TableName() string { return "blocks" }
