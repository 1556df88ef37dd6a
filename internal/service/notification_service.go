package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AK-1225/SPONproject/internal/model"
	"github.com/AK-1225/SPONproject/internal/repository"
)

// AddNotificationInput 通知入参；Message 留空则按类型模板渲染
type AddNotificationInput struct {
	Type           model.NotificationType
	UserID         string
	FromUserID     string
	FromUserName   string
	FromUserAvatar string
	Message        string
	PostID         string
	Amount         int64
	Comment        string
}

// RenderMessage 按类型渲染通知文案
func RenderMessage(t model.NotificationType, fromName string, amount int64, comment string) string {
	switch t {
	case model.NotifyLike:
		return fmt.Sprintf("%sさんがあなたの投稿にいいねしました", fromName)
	case model.NotifyComment:
		if comment != "" {
			if len([]rune(comment)) > 30 {
				comment = string([]rune(comment)[:30])
			}
			return fmt.Sprintf("%sさんがコメントしました: \"%s...\"", fromName, comment)
		}
		return fmt.Sprintf("%sさんがコメントしました", fromName)
	case model.NotifySupport:
		return fmt.Sprintf("%sさんから¥%d円の支援を受け取りました", fromName, amount)
	case model.NotifyFollow:
		return fmt.Sprintf("%sさんにフォローされました", fromName)
	case model.NotifyNewPost:
		return fmt.Sprintf("フォロー中の%sさんが新しい投稿をしました", fromName)
	case model.NotifyThankYou:
		return fmt.Sprintf("%s選手からお礼メッセージが届きました", fromName)
	case model.NotifyReply:
		return fmt.Sprintf("%sさんがあなたのコメントに返信しました", fromName)
	}
	return "通知があります"
}

// NotificationService 通知日志（全局最多 100 条，只本地追加，不做推送）
type NotificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Add(ctx context.Context, in AddNotificationInput) error {
	if in.UserID == "" {
		return ErrMissingID
	}
	if !in.Type.Valid() {
		return ErrInvalidType
	}
	msg := in.Message
	if msg == "" {
		msg = RenderMessage(in.Type, in.FromUserName, in.Amount, in.Comment)
	}
	n := &model.Notification{
		ID:             uuid.New().String(),
		Type:           in.Type,
		UserID:         in.UserID,
		FromUserID:     in.FromUserID,
		FromUserName:   in.FromUserName,
		FromUserAvatar: in.FromUserAvatar,
		Message:        msg,
		PostID:         in.PostID,
		Amount:         in.Amount,
		IsRead:         false,
		CreatedAt:      time.Now(),
	}
	return s.repo.Create(ctx, n)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	return s.repo.MarkAsRead(ctx, id)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrMissingID
	}
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, ErrMissingID
	}
	return s.repo.UnreadCount(ctx, userID)
}

func (s *NotificationService) ForUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	if userID == "" {
		return nil, ErrMissingID
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *NotificationService) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrMissingID
	}
	return s.repo.DeleteByUser(ctx, userID)
}
