package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/AK-1225/SPONproject/internal/model"
)

// AthleteFilters 检索条件（全部可选）
type AthleteFilters struct {
	Sport  string
	Region string
	Tags   []string
	Query  string
}

// ContentRepository 选手档案 / 投稿目录
type ContentRepository interface {
	CreateAthlete(ctx context.Context, a *model.Athlete) error
	GetAthlete(ctx context.Context, idOrEmail string) (*model.Athlete, error)
	UpdateAthlete(ctx context.Context, athleteID string, fields map[string]any) error
	SearchAthletes(ctx context.Context, f AthleteFilters) ([]*model.Athlete, error)

	// CreatePost 同一事务写入投稿与照片
	CreatePost(ctx context.Context, p *model.Post) error
	DeletePost(ctx context.Context, postID string) error
	GetPost(ctx context.Context, postID string) (*model.Post, error)
	ListPostsByAthlete(ctx context.Context, athleteID string) ([]*model.Post, error)
	ListStoriesByAthlete(ctx context.Context, athleteID string) ([]*model.Story, error)

	// AddBestShot 高光列表头插，超过容量淘汰最旧
	AddBestShot(ctx context.Context, shot *model.BestShot) error
	ListBestShots(ctx context.Context, athleteID string) ([]*model.BestShot, error)
}

type contentRepository struct{ db *gorm.DB }

func NewContentRepository(db *gorm.DB) ContentRepository { return &contentRepository{db: db} }

func (r *contentRepository) CreateAthlete(ctx context.Context, a *model.Athlete) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *contentRepository) GetAthlete(ctx context.Context, idOrEmail string) (*model.Athlete, error) {
	var a model.Athlete
	err := r.db.WithContext(ctx).
		Where("id = ? OR email = ?", idOrEmail, idOrEmail).
		First(&a).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *contentRepository) UpdateAthlete(ctx context.Context, athleteID string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.Athlete{}).
		Where("id = ?", athleteID).
		Updates(fields).Error
}

func (r *contentRepository) SearchAthletes(ctx context.Context, f AthleteFilters) ([]*model.Athlete, error) {
	q := r.db.WithContext(ctx).Model(&model.Athlete{})
	if f.Sport != "" {
		q = q.Where("sport = ?", f.Sport)
	}
	if f.Region != "" {
		q = q.Where("region = ?", f.Region)
	}
	for _, tag := range f.Tags {
		q = q.Where("tags LIKE ?", "%"+tag+"%")
	}
	if s := strings.TrimSpace(f.Query); s != "" {
		like := "%" + s + "%"
		q = q.Where("name LIKE ? OR team LIKE ? OR sport LIKE ?", like, like, like)
	}
	var res []*model.Athlete
	err := q.Order("created_at DESC").Find(&res).Error
	return res, err
}

func (r *contentRepository) CreatePost(ctx context.Context, p *model.Post) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		photos := p.Photos
		p.Photos = nil
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		for i := range photos {
			photos[i].PostID = p.ID
			if err := tx.Create(&photos[i]).Error; err != nil {
				return err
			}
		}
		p.Photos = photos
		return nil
	})
}

func (r *contentRepository) DeletePost(ctx context.Context, postID string) error {
	// best_shots 不级联：被删投稿的高光照片仍留在列表里（沿用既有行为）
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&model.Photo{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", postID).Delete(&model.Post{}).Error
	})
}

func (r *contentRepository) GetPost(ctx context.Context, postID string) (*model.Post, error) {
	var p model.Post
	err := r.db.WithContext(ctx).Preload("Photos").Where("id = ?", postID).First(&p).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *contentRepository) ListPostsByAthlete(ctx context.Context, athleteID string) ([]*model.Post, error) {
	var res []*model.Post
	err := r.db.WithContext(ctx).
		Preload("Photos").
		Where("athlete_id = ?", athleteID).
		Order("created_at DESC").
		Find(&res).Error
	return res, err
}

func (r *contentRepository) ListStoriesByAthlete(ctx context.Context, athleteID string) ([]*model.Story, error) {
	var res []*model.Story
	err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("created_at DESC").
		Find(&res).Error
	return res, err
}

func (r *contentRepository) AddBestShot(ctx context.Context, shot *model.BestShot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(shot).Error; err != nil {
			return err
		}
		var keep []string
		if err := tx.Model(&model.BestShot{}).
			Where("athlete_id = ?", shot.AthleteID).
			Order("created_at DESC").
			Limit(model.BestShotCapacity).
			Pluck("id", &keep).Error; err != nil {
			return err
		}
		return tx.Where("athlete_id = ? AND id NOT IN ?", shot.AthleteID, keep).
			Delete(&model.BestShot{}).Error
	})
}

func (r *contentRepository) ListBestShots(ctx context.Context, athleteID string) ([]*model.BestShot, error) {
	var res []*model.BestShot
	err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("created_at DESC").
		Limit(model.BestShotCapacity).
		Find(&res).Error
	return res, err
}
