package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/AK-1225/SPONproject/internal/model"
	"github.com/AK-1225/SPONproject/internal/repository"
)

// BestShotContentID 高光照片在 like/bookmark 映射里的组合键
func BestShotContentID(photoID string) string {
	return fmt.Sprintf("bestshot-%s", photoID)
}

// DisplayLikeCount 展示用点赞数 = 基数 + 本人点赞位，按实时 flag 计算，不落库
func DisplayLikeCount(base int64, liked bool) int64 {
	if liked {
		return base + 1
	}
	return base
}

// EngagementService like/bookmark 布尔位与收藏；计数器只做展示用调整
type EngagementService struct {
	repo        repository.EngagementRepository
	contentRepo repository.ContentRepository
	notifier    *NotificationService // 可为 nil
}

func NewEngagementService(repo repository.EngagementRepository, contentRepo repository.ContentRepository, notifier *NotificationService) *EngagementService {
	return &EngagementService{repo: repo, contentRepo: contentRepo, notifier: notifier}
}

func (s *EngagementService) ToggleLike(ctx context.Context, userID, contentID string) (bool, error) {
	userID, contentID = strings.TrimSpace(userID), strings.TrimSpace(contentID)
	if userID == "" || contentID == "" {
		return false, ErrMissingID
	}
	liked, err := s.repo.ToggleLike(ctx, userID, contentID)
	if err != nil {
		return false, err
	}
	// 点赞置位时给投稿主发通知；取消不发
	if liked && s.notifier != nil && s.contentRepo != nil {
		if post, perr := s.contentRepo.GetPost(ctx, contentID); perr == nil && post != nil {
			_ = s.notifier.Add(ctx, AddNotificationInput{
				Type:       model.NotifyLike,
				UserID:     post.AthleteID,
				FromUserID: userID,
				PostID:     post.ID,
			})
		}
	}
	return liked, nil
}

func (s *EngagementService) ToggleBookmark(ctx context.Context, userID, contentID string) (bool, error) {
	userID, contentID = strings.TrimSpace(userID), strings.TrimSpace(contentID)
	if userID == "" || contentID == "" {
		return false, ErrMissingID
	}
	return s.repo.ToggleBookmark(ctx, userID, contentID)
}

func (s *EngagementService) IsLiked(ctx context.Context, userID, contentID string) (bool, error) {
	if userID == "" || contentID == "" {
		return false, nil
	}
	return s.repo.IsLiked(ctx, userID, contentID)
}

func (s *EngagementService) IsBookmarked(ctx context.Context, userID, contentID string) (bool, error) {
	if userID == "" || contentID == "" {
		return false, nil
	}
	return s.repo.IsBookmarked(ctx, userID, contentID)
}

func (s *EngagementService) AddToCollection(ctx context.Context, fanID string, photo *model.Photo) error {
	if fanID == "" || photo == nil || photo.ID == "" {
		return ErrMissingID
	}
	return s.repo.AddToCollection(ctx, &model.CollectionItem{
		FanID:   fanID,
		PhotoID: photo.ID,
		URL:     photo.URL,
		Caption: photo.Caption,
	})
}

func (s *EngagementService) RemoveFromCollection(ctx context.Context, fanID, photoID string) error {
	if fanID == "" || photoID == "" {
		return ErrMissingID
	}
	return s.repo.RemoveFromCollection(ctx, fanID, photoID)
}

func (s *EngagementService) Collection(ctx context.Context, fanID string) ([]*model.CollectionItem, error) {
	if fanID == "" {
		return nil, ErrMissingID
	}
	return s.repo.ListCollection(ctx, fanID)
}
