package service

import (
	"context"

	"github.com/AK-1225/SPONproject/internal/model"
	"github.com/AK-1225/SPONproject/internal/repository"
)

// RelationshipService 关注 / 拉黑关系链。follows 同步写（真源），
// fans 冗余经 replicator 异步落地（replicator 为 nil 时同步写）。
type RelationshipService interface {
	Follow(ctx context.Context, fanID, athleteID string) error
	Unfollow(ctx context.Context, fanID, athleteID string) error
	IsFollowing(ctx context.Context, fanID, athleteID string) (bool, error)
	ListFollowing(ctx context.Context, fanID string, page, pageSize int) ([]string, error)
	ListFans(ctx context.Context, athleteID string, page, pageSize int) ([]string, error)

	Block(ctx context.Context, athleteID, userID string) error
	Unblock(ctx context.Context, athleteID, userID string) error
	IsBlocked(ctx context.Context, athleteID, userID string) (bool, error)
	BlockedUsers(ctx context.Context, athleteID string) ([]string, error)
}

type relationshipService struct {
	followRepo repository.FollowRepository
	fanRepo    repository.FanRepository
	blockRepo  repository.BlockRepository
	replicator *FanReplicator
	notifier   *NotificationService // 可为 nil
}

func NewRelationshipService(followRepo repository.FollowRepository, fanRepo repository.FanRepository, blockRepo repository.BlockRepository, replicator *FanReplicator, notifier *NotificationService) RelationshipService {
	return &relationshipService{followRepo: followRepo, fanRepo: fanRepo, blockRepo: blockRepo, replicator: replicator, notifier: notifier}
}

func (s *relationshipService) Follow(ctx context.Context, fanID, athleteID string) error {
	if fanID == "" || athleteID == "" {
		return ErrMissingID
	}
	if fanID == athleteID {
		return ErrFollowSelf
	}
	already, err := s.followRepo.Exists(ctx, fanID, athleteID)
	if err != nil {
		return err
	}
	if err := s.followRepo.Create(ctx, fanID, athleteID); err != nil {
		return err
	}
	if s.replicator != nil {
		s.replicator.EnqueueAdd(athleteID, fanID)
	} else if err := s.fanRepo.Create(ctx, athleteID, fanID); err != nil {
		return err
	}
	// 重复关注是幂等 no-op，不重复发通知
	if !already && s.notifier != nil {
		_ = s.notifier.Add(ctx, AddNotificationInput{
			Type:       model.NotifyFollow,
			UserID:     athleteID,
			FromUserID: fanID,
		})
	}
	return nil
}

func (s *relationshipService) Unfollow(ctx context.Context, fanID, athleteID string) error {
	if fanID == "" || athleteID == "" {
		return ErrMissingID
	}
	if err := s.followRepo.Delete(ctx, fanID, athleteID); err != nil {
		return err
	}
	if s.replicator != nil {
		s.replicator.EnqueueRemove(athleteID, fanID)
	} else if err := s.fanRepo.Delete(ctx, athleteID, fanID); err != nil {
		return err
	}
	return nil
}

func (s *relationshipService) IsFollowing(ctx context.Context, fanID, athleteID string) (bool, error) {
	if fanID == "" || athleteID == "" {
		return false, ErrMissingID
	}
	return s.followRepo.Exists(ctx, fanID, athleteID)
}

func (s *relationshipService) ListFollowing(ctx context.Context, fanID string, page, pageSize int) ([]string, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize
	items, err := s.followRepo.ListFollowing(ctx, fanID, offset, pageSize)
	if err != nil {
		return nil, err
	}
	res := make([]string, len(items))
	for i, it := range items {
		res[i] = it.AthleteID
	}
	return res, nil
}

func (s *relationshipService) ListFans(ctx context.Context, athleteID string, page, pageSize int) ([]string, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize
	items, err := s.fanRepo.ListFans(ctx, athleteID, offset, pageSize)
	if err != nil {
		return nil, err
	}
	res := make([]string, len(items))
	for i, it := range items {
		res[i] = it.FanID
	}
	return res, nil
}

// Block 拉黑同时切断对方到该选手的关注边
func (s *relationshipService) Block(ctx context.Context, athleteID, userID string) error {
	if athleteID == "" || userID == "" {
		return ErrMissingID
	}
	if err := s.blockRepo.Create(ctx, athleteID, userID); err != nil {
		return err
	}
	return s.Unfollow(ctx, userID, athleteID)
}

func (s *relationshipService) Unblock(ctx context.Context, athleteID, userID string) error {
	if athleteID == "" || userID == "" {
		return ErrMissingID
	}
	return s.blockRepo.Delete(ctx, athleteID, userID)
}

func (s *relationshipService) IsBlocked(ctx context.Context, athleteID, userID string) (bool, error) {
	if athleteID == "" || userID == "" {
		return false, ErrMissingID
	}
	return s.blockRepo.Exists(ctx, athleteID, userID)
}

func (s *relationshipService) BlockedUsers(ctx context.Context, athleteID string) ([]string, error) {
	if athleteID == "" {
		return nil, ErrMissingID
	}
	return s.blockRepo.ListBlocked(ctx, athleteID)
}
