package model

import "time"

// EngagementFlag 用户对某内容的 like/bookmark 布尔位
// ContentID 为不透明字符串（post id 或 "bestshot-"+photoID 之类的组合键）
type EngagementFlag struct {
	ID         string `gorm:"primaryKey;type:varchar(36)"`
	UserID     string `gorm:"type:varchar(36);index:idx_flag_pair,unique;not null"`
	ContentID  string `gorm:"type:varchar(64);not null;index:idx_flag_pair,unique"`
	Liked      bool   `gorm:"not null;default:false"`
	Bookmarked bool   `gorm:"not null;default:false"`
	UpdatedAt  time.Time
}

func (EngagementFlag) TableName() string { return "engagement_flags" }

// CollectionItem fan 收藏的照片
type CollectionItem struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	FanID     string `gorm:"type:varchar(36);index:idx_collection_fan;index:idx_collection_pair,unique;not null"`
	PhotoID   string `gorm:"type:varchar(36);not null;index:idx_collection_pair,unique"`
	URL       string `gorm:"type:varchar(512)"`
	Caption   string `gorm:"type:text"`
	CreatedAt time.Time
}

func (CollectionItem) TableName() string { return "collection_items" }

// Comment 投稿评论
type Comment struct {
	ID              string `gorm:"primaryKey;type:varchar(36)"`
	PostID          string `gorm:"type:varchar(36);index:idx_comment_post;not null"`
	AuthorID        string `gorm:"type:varchar(36);not null"`
	AuthorName      string `gorm:"type:varchar(100)"`
	AuthorAvatarURL string `gorm:"type:varchar(512)"`
	Content         string `gorm:"type:text;not null"`
	CreatedAt       time.Time
}

func (Comment) TableName() string { return "comments" }

// BoardPost 选手掲示板发言
type BoardPost struct {
	ID              string `gorm:"primaryKey;type:varchar(36)"`
	AthleteID       string `gorm:"type:varchar(36);index:idx_board_athlete;not null"`
	AuthorID        string `gorm:"type:varchar(36);not null"`
	AuthorName      string `gorm:"type:varchar(100)"`
	AuthorAvatarURL string `gorm:"type:varchar(512)"`
	Content         string `gorm:"type:text;not null"`
	CreatedAt       time.Time
}

func (BoardPost) TableName() string { return "board_posts" }
