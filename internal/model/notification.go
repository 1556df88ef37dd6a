package model

import "time"

// NotificationType 通知类型
type NotificationType string

const (
	NotifyLike     NotificationType = "like"
	NotifyComment  NotificationType = "comment"
	NotifySupport  NotificationType = "support"
	NotifyFollow   NotificationType = "follow"
	NotifyNewPost  NotificationType = "new_post"
	NotifyThankYou NotificationType = "thank_you"
	NotifyReply    NotificationType = "reply"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotifyLike, NotifyComment, NotifySupport, NotifyFollow, NotifyNewPost, NotifyThankYou, NotifyReply:
		return true
	}
	return false
}

// Notification 通知记录；全局上限 100 条，超出淘汰最旧
type Notification struct {
	ID             string           `gorm:"primaryKey;type:varchar(36)"`
	Type           NotificationType `gorm:"type:varchar(16);not null"`
	UserID         string           `gorm:"type:varchar(36);index:idx_notify_user;not null"` // 接收者
	FromUserID     string           `gorm:"type:varchar(36);not null"`
	FromUserName   string           `gorm:"type:varchar(100)"`
	FromUserAvatar string           `gorm:"type:varchar(512)"`
	Message        string           `gorm:"type:text"`
	PostID         string           `gorm:"type:varchar(36)"`
	Amount         int64
	IsRead         bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"index"`
}

func (Notification) TableName() string { return "notifications" }

// NotificationCap 通知保留上限
const NotificationCap = 100
