package service

import (
	"context"

	"github.com/AK-1225/SPONproject/internal/model"
	"github.com/AK-1225/SPONproject/internal/repository"
)

// Tier 观众对某选手的派生访问级别（general < follower < supporter），
// 只派生不落库
type Tier string

const (
	TierGeneral   Tier = "general"
	TierFollower  Tier = "follower"
	TierSupporter Tier = "supporter"
)

// SupporterThreshold 累计支援达到该额度（日元）即为 supporter
const SupporterThreshold = 100

// ResolveTier 纯函数：累计支援优先于关注状态
func ResolveTier(total int64, isFollowing bool) Tier {
	if total >= SupporterThreshold {
		return TierSupporter
	}
	if isFollowing {
		return TierFollower
	}
	return TierGeneral
}

// CanPostBoard 掲示板发言权限
func CanPostBoard(t Tier) bool {
	switch t {
	case TierSupporter:
		return true
	case TierFollower, TierGeneral:
		return false
	}
	return false
}

// CanViewPost 投稿可见性判定；选手本人恒可见
func CanViewPost(v model.Visibility, viewerID, athleteID string, t Tier) bool {
	if viewerID == athleteID {
		return true
	}
	switch v {
	case model.VisibilityPublic:
		return true
	case model.VisibilityFollowers:
		switch t {
		case TierFollower, TierSupporter:
			return true
		case TierGeneral:
			return false
		}
		return false
	case model.VisibilitySupporters:
		switch t {
		case TierSupporter:
			return true
		case TierFollower, TierGeneral:
			return false
		}
		return false
	}
	return false
}

// TierService 每次读取都重新算 tier，不做缓存
type TierService struct {
	supportRepo repository.SupportRepository
	followRepo  repository.FollowRepository
}

func NewTierService(supportRepo repository.SupportRepository, followRepo repository.FollowRepository) *TierService {
	return &TierService{supportRepo: supportRepo, followRepo: followRepo}
}

func (s *TierService) TierFor(ctx context.Context, fanID, athleteID string) (Tier, error) {
	if fanID == "" || athleteID == "" {
		return TierGeneral, ErrMissingID
	}
	total, err := s.supportRepo.Total(ctx, fanID, athleteID)
	if err != nil {
		return TierGeneral, err
	}
	following, err := s.followRepo.Exists(ctx, fanID, athleteID)
	if err != nil {
		return TierGeneral, err
	}
	return ResolveTier(total, following), nil
}
