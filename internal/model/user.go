package model

import "time"

// UserType 账号类型
const (
	UserTypeFan     = "fan"
	UserTypeAthlete = "athlete"
)

// User 账号（fan / athlete 共用）
type User struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string `gorm:"type:varchar(100);not null"`
	UserType  string `gorm:"type:varchar(16);not null;default:fan"`
	Handle    string `gorm:"type:varchar(32);index"`
	Password  string `gorm:"type:varchar(100)"` // bcrypt hash
	AvatarURL string `gorm:"type:varchar(512)"`
	Bio       string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }
