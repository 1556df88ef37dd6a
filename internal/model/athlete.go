package model

import "time"

// Athlete 选手档案；计数字段为展示用冗余，非 tier 判定依据
type Athlete struct {
	ID             string `gorm:"primaryKey;type:varchar(36)"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name           string `gorm:"type:varchar(100);not null"`
	Handle         string `gorm:"type:varchar(32)"`
	Sport          string `gorm:"type:varchar(64)"`
	Region         string `gorm:"type:varchar(64)"`
	Team           string `gorm:"type:varchar(100)"`
	Tags           string `gorm:"type:text"` // 逗号分隔
	AvatarURL      string `gorm:"type:varchar(512)"`
	Bio            string `gorm:"type:text"`
	FollowerCount  int64  `gorm:"not null;default:0"`
	SupporterCount int64  `gorm:"not null;default:0"`
	TotalSupport   int64  `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Athlete) TableName() string { return "athletes" }

// BestShot 选手高光照片索引（最多 6 条，新在前）
type BestShot struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	AthleteID string `gorm:"type:varchar(36);index:idx_bestshot_athlete;not null"`
	PhotoID   string `gorm:"type:varchar(36);not null"`
	CreatedAt time.Time
}

func (BestShot) TableName() string { return "best_shots" }

// BestShotCapacity 高光列表容量，超出淘汰最旧
const BestShotCapacity = 6
