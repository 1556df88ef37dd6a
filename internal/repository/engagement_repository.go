package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AK-1225/SPONproject/internal/model"
)

// EngagementRepository like/bookmark 布尔位与收藏
type EngagementRepository interface {
	// ToggleLike 翻转 like 位，返回翻转后的值；未见过的 content 视为 false
	ToggleLike(ctx context.Context, userID, contentID string) (bool, error)
	ToggleBookmark(ctx context.Context, userID, contentID string) (bool, error)
	IsLiked(ctx context.Context, userID, contentID string) (bool, error)
	IsBookmarked(ctx context.Context, userID, contentID string) (bool, error)

	AddToCollection(ctx context.Context, item *model.CollectionItem) error
	RemoveFromCollection(ctx context.Context, fanID, photoID string) error
	ListCollection(ctx context.Context, fanID string) ([]*model.CollectionItem, error)
}

type engagementRepository struct{ db *gorm.DB }

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) toggle(ctx context.Context, userID, contentID, column string) (bool, error) {
	var out bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var flag model.EngagementFlag
		err := tx.Where("user_id = ? AND content_id = ?", userID, contentID).First(&flag).Error
		if err == gorm.ErrRecordNotFound {
			flag = model.EngagementFlag{
				ID:        uuid.New().String(),
				UserID:    userID,
				ContentID: contentID,
				UpdatedAt: time.Now(),
			}
			switch column {
			case "liked":
				flag.Liked = true
				out = true
			case "bookmarked":
				flag.Bookmarked = true
				out = true
			}
			return tx.Create(&flag).Error
		}
		if err != nil {
			return err
		}
		switch column {
		case "liked":
			out = !flag.Liked
		case "bookmarked":
			out = !flag.Bookmarked
		}
		return tx.Model(&model.EngagementFlag{}).
			Where("id = ?", flag.ID).
			Updates(map[string]any{column: out, "updated_at": time.Now()}).Error
	})
	return out, err
}

func (r *engagementRepository) ToggleLike(ctx context.Context, userID, contentID string) (bool, error) {
	return r.toggle(ctx, userID, contentID, "liked")
}

func (r *engagementRepository) ToggleBookmark(ctx context.Context, userID, contentID string) (bool, error) {
	return r.toggle(ctx, userID, contentID, "bookmarked")
}

func (r *engagementRepository) flag(ctx context.Context, userID, contentID string) (*model.EngagementFlag, error) {
	var f model.EngagementFlag
	err := r.db.WithContext(ctx).Where("user_id = ? AND content_id = ?", userID, contentID).First(&f).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *engagementRepository) IsLiked(ctx context.Context, userID, contentID string) (bool, error) {
	f, err := r.flag(ctx, userID, contentID)
	if err != nil || f == nil {
		return false, err
	}
	return f.Liked, nil
}

func (r *engagementRepository) IsBookmarked(ctx context.Context, userID, contentID string) (bool, error) {
	f, err := r.flag(ctx, userID, contentID)
	if err != nil || f == nil {
		return false, err
	}
	return f.Bookmarked, nil
}

func (r *engagementRepository) AddToCollection(ctx context.Context, item *model.CollectionItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(item).Error
}

func (r *engagementRepository) RemoveFromCollection(ctx context.Context, fanID, photoID string) error {
	return r.db.WithContext(ctx).
		Where("fan_id = ? AND photo_id = ?", fanID, photoID).
		Delete(&model.CollectionItem{}).Error
}

func (r *engagementRepository) ListCollection(ctx context.Context, fanID string) ([]*model.CollectionItem, error) {
	var res []*model.CollectionItem
	err := r.db.WithContext(ctx).Where("fan_id = ?", fanID).Order("created_at DESC").Find(&res).Error
	return res, err
}
