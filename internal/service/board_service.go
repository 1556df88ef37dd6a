package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AK-1225/SPONproject/internal/model"
	"github.com/AK-1225/SPONproject/internal/repository"
)

// BoardService 选手掲示板与投稿评论；发言权 supporter-only，
// 读出时按黑名单过滤（过滤非删除，拉黑前的发言同样被隐藏）
type BoardService struct {
	repo      repository.BoardRepository
	blockRepo repository.BlockRepository
	tiers     *TierService
	notifier  *NotificationService // 可为 nil
}

func NewBoardService(repo repository.BoardRepository, blockRepo repository.BlockRepository, tiers *TierService, notifier *NotificationService) *BoardService {
	return &BoardService{repo: repo, blockRepo: blockRepo, tiers: tiers, notifier: notifier}
}

// PostToBoard 本人恒可发言；其余按 tier 判定
func (s *BoardService) PostToBoard(ctx context.Context, athleteID, authorID, authorName, content string) (*model.BoardPost, error) {
	athleteID, authorID = strings.TrimSpace(athleteID), strings.TrimSpace(authorID)
	if athleteID == "" || authorID == "" {
		return nil, ErrMissingID
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	if authorID != athleteID {
		tier, err := s.tiers.TierFor(ctx, authorID, athleteID)
		if err != nil {
			return nil, err
		}
		if !CanPostBoard(tier) {
			return nil, ErrNotSupporter
		}
	}

	p := &model.BoardPost{
		ID:         uuid.New().String(),
		AthleteID:  athleteID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Content:    strings.TrimSpace(content),
		CreatedAt:  time.Now(),
	}
	if err := s.repo.CreateBoardPost(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// BoardPosts 按时间正序，黑名单作者整体排除
func (s *BoardService) BoardPosts(ctx context.Context, athleteID string) ([]*model.BoardPost, error) {
	if athleteID == "" {
		return nil, ErrMissingID
	}
	blocked, err := s.blockRepo.ListBlocked(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListBoardPosts(ctx, athleteID, blocked)
}

// DeleteBoardPost 作者本人或掲示板主人可删
func (s *BoardService) DeleteBoardPost(ctx context.Context, id, requesterID string) error {
	if id == "" || requesterID == "" {
		return ErrMissingID
	}
	p, err := s.repo.GetBoardPost(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	if p.AuthorID != requesterID && p.AthleteID != requesterID {
		return ErrNotAuthor
	}
	return s.repo.DeleteBoardPost(ctx, id)
}

// AddComment 投稿评论；通知投稿主
func (s *BoardService) AddComment(ctx context.Context, post *model.Post, authorID, authorName, content string) (*model.Comment, error) {
	if post == nil || authorID == "" {
		return nil, ErrMissingID
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	c := &model.Comment{
		ID:         uuid.New().String(),
		PostID:     post.ID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Content:    strings.TrimSpace(content),
		CreatedAt:  time.Now(),
	}
	if err := s.repo.CreateComment(ctx, c); err != nil {
		return nil, err
	}
	if s.notifier != nil && post.AthleteID != authorID {
		_ = s.notifier.Add(ctx, AddNotificationInput{
			Type:         model.NotifyComment,
			UserID:       post.AthleteID,
			FromUserID:   authorID,
			FromUserName: authorName,
			PostID:       post.ID,
			Comment:      c.Content,
		})
	}
	return c, nil
}

// CommentsForPost 插入序
func (s *BoardService) CommentsForPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	if postID == "" {
		return nil, ErrMissingID
	}
	return s.repo.ListComments(ctx, postID)
}

func (s *BoardService) DeleteComment(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	return s.repo.DeleteComment(ctx, id)
}
