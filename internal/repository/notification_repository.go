package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/AK-1225/SPONproject/internal/model"
)

// NotificationRepository 通知日志；全局只保留最新 NotificationCap 条
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context, userID string) error
	UnreadCount(ctx context.Context, userID string) (int64, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Notification, error)
	DeleteByUser(ctx context.Context, userID string) error
	Count(ctx context.Context) (int64, error)
}

type notificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(n).Error; err != nil {
			return err
		}
		// 全局截断到最新 100 条（非按用户），淘汰按插入序最旧
		var keep []string
		if err := tx.Model(&model.Notification{}).
			Order("created_at DESC").
			Limit(model.NotificationCap).
			Pluck("id", &keep).Error; err != nil {
			return err
		}
		return tx.Where("id NOT IN ?", keep).Delete(&model.Notification{}).Error
	})
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ?", userID).
		Update("is_read", true).Error
}

func (r *notificationRepository) UnreadCount(ctx context.Context, userID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&cnt).Error
	return cnt, err
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	var res []*model.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&res).Error
	return res, err
}

func (r *notificationRepository) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Notification{}).Error
}

func (r *notificationRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Notification{}).Count(&cnt).Error
	return cnt, err
}
