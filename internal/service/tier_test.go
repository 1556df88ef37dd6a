package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AK-1225/SPONproject/internal/model"
	"github.com/AK-1225/SPONproject/internal/repository"
)

func TestResolveTier(t *testing.T) {
	cases := []struct {
		total     int64
		following bool
		want      Tier
	}{
		{0, false, TierGeneral},
		{0, true, TierFollower},
		{99, true, TierFollower},
		{99, false, TierGeneral},
		{100, false, TierSupporter}, // 累计优先于关注
		{100, true, TierSupporter},
		{10000, false, TierSupporter},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ResolveTier(tc.total, tc.following),
			"total=%d following=%v", tc.total, tc.following)
	}
}

func TestCanPostBoard(t *testing.T) {
	assert.False(t, CanPostBoard(TierGeneral))
	assert.False(t, CanPostBoard(TierFollower))
	assert.True(t, CanPostBoard(TierSupporter))
}

func TestCanViewPost(t *testing.T) {
	// 本人恒可见
	assert.True(t, CanViewPost(model.VisibilitySupporters, "a1", "a1", TierGeneral))

	cases := []struct {
		vis  model.Visibility
		tier Tier
		want bool
	}{
		{model.VisibilityPublic, TierGeneral, true},
		{model.VisibilityPublic, TierSupporter, true},
		{model.VisibilityFollowers, TierGeneral, false},
		{model.VisibilityFollowers, TierFollower, true},
		{model.VisibilityFollowers, TierSupporter, true},
		{model.VisibilitySupporters, TierGeneral, false},
		{model.VisibilitySupporters, TierFollower, false},
		{model.VisibilitySupporters, TierSupporter, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanViewPost(tc.vis, "viewer", "a1", tc.tier),
			"vis=%s tier=%s", tc.vis, tc.tier)
	}
}

// tier 随支援/关注状态变化每次重算，支援累计只增不减
func TestTierForTransitions(t *testing.T) {
	db := newTestDB(t)
	supportRepo := repository.NewSupportRepository(db)
	followRepo := repository.NewFollowRepository(db)
	svc := NewTierService(supportRepo, followRepo)
	ctx := context.Background()

	tier, err := svc.TierFor(ctx, "f1", "a1")
	require.NoError(t, err)
	assert.Equal(t, TierGeneral, tier)

	require.NoError(t, followRepo.Create(ctx, "f1", "a1"))
	tier, _ = svc.TierFor(ctx, "f1", "a1")
	assert.Equal(t, TierFollower, tier)

	require.NoError(t, supportRepo.Append(ctx, &model.Support{
		ID: "s1", FanID: "f1", AthleteID: "a1", Amount: 40,
		Purpose: model.PurposeTravel, PaymentMethod: model.PaymentCard,
	}))
	tier, _ = svc.TierFor(ctx, "f1", "a1")
	assert.Equal(t, TierFollower, tier)

	require.NoError(t, supportRepo.Append(ctx, &model.Support{
		ID: "s2", FanID: "f1", AthleteID: "a1", Amount: 60,
		Purpose: model.PurposeTravel, PaymentMethod: model.PaymentCard,
	}))
	tier, _ = svc.TierFor(ctx, "f1", "a1")
	assert.Equal(t, TierSupporter, tier)

	// 取关不降级：supporter 由累计支援决定
	require.NoError(t, followRepo.Delete(ctx, "f1", "a1"))
	tier, _ = svc.TierFor(ctx, "f1", "a1")
	assert.Equal(t, TierSupporter, tier)
}
