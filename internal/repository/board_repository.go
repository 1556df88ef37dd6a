package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/AK-1225/SPONproject/internal/model"
)

// BoardRepository 掲示板发言与投稿评论
type BoardRepository interface {
	CreateBoardPost(ctx context.Context, p *model.BoardPost) error
	DeleteBoardPost(ctx context.Context, id string) error
	GetBoardPost(ctx context.Context, id string) (*model.BoardPost, error)
	// ListBoardPosts 可传入排除作者列表（拉黑过滤），按时间正序
	ListBoardPosts(ctx context.Context, athleteID string, excludeAuthors []string) ([]*model.BoardPost, error)

	CreateComment(ctx context.Context, c *model.Comment) error
	DeleteComment(ctx context.Context, id string) error
	ListComments(ctx context.Context, postID string) ([]*model.Comment, error)
}

type boardRepository struct{ db *gorm.DB }

func NewBoardRepository(db *gorm.DB) BoardRepository { return &boardRepository{db: db} }

func (r *boardRepository) CreateBoardPost(ctx context.Context, p *model.BoardPost) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *boardRepository) DeleteBoardPost(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BoardPost{}).Error
}

func (r *boardRepository) GetBoardPost(ctx context.Context, id string) (*model.BoardPost, error) {
	var p model.BoardPost
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *boardRepository) ListBoardPosts(ctx context.Context, athleteID string, excludeAuthors []string) ([]*model.BoardPost, error) {
	q := r.db.WithContext(ctx).Where("athlete_id = ?", athleteID)
	if len(excludeAuthors) > 0 {
		q = q.Where("author_id NOT IN ?", excludeAuthors)
	}
	var res []*model.BoardPost
	err := q.Order("created_at").Find(&res).Error
	return res, err
}

func (r *boardRepository) CreateComment(ctx context.Context, c *model.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *boardRepository) DeleteComment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comment{}).Error
}

func (r *boardRepository) ListComments(ctx context.Context, postID string) ([]*model.Comment, error) {
	var res []*model.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at").
		Find(&res).Error
	return res, err
}
