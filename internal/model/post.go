package model

import "time"

// Visibility 投稿可见范围
type Visibility string

const (
	VisibilityPublic     Visibility = "public"
	VisibilityFollowers  Visibility = "followers"
	VisibilitySupporters Visibility = "supporters"
)

// Valid 闭集校验
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityFollowers, VisibilitySupporters:
		return true
	}
	return false
}

// Post 投稿（创建后不可编辑）
type Post struct {
	ID           string     `gorm:"primaryKey;type:varchar(36)"`
	AthleteID    string     `gorm:"type:varchar(36);index:idx_post_athlete;not null"`
	Caption      string     `gorm:"type:text"`
	Visibility   Visibility `gorm:"type:varchar(16);not null;default:public"`
	Tags         string     `gorm:"type:text"` // 逗号分隔
	LikeCount    int64      `gorm:"not null;default:0"`
	SupportCount int64      `gorm:"not null;default:0"`
	CreatedAt    time.Time  `gorm:"index"`
	UpdatedAt    time.Time

	Photos []Photo `gorm:"foreignKey:PostID"`
}

func (Post) TableName() string { return "posts" }

// Photo 照片；PostID 为空表示独立照片
type Photo struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	AthleteID    string `gorm:"type:varchar(36);index:idx_photo_athlete;not null"`
	PostID       string `gorm:"type:varchar(36);index:idx_photo_post"`
	URL          string `gorm:"type:varchar(512)"`
	Caption      string `gorm:"type:text"`
	IsBestShot   bool   `gorm:"not null;default:false"`
	LikeCount    int64  `gorm:"not null;default:0"`
	SupportCount int64  `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

func (Photo) TableName() string { return "photos" }

// Story 限时投稿，过期后不再返回
type Story struct {
	ID         string     `gorm:"primaryKey;type:varchar(36)"`
	AthleteID  string     `gorm:"type:varchar(36);index:idx_story_athlete;not null"`
	PhotoURL   string     `gorm:"type:varchar(512)"`
	Caption    string     `gorm:"type:text"`
	Visibility Visibility `gorm:"type:varchar(16);not null;default:public"`
	ExpiresAt  time.Time  `gorm:"index"`
	CreatedAt  time.Time
}

func (Story) TableName() string { return "stories" }
