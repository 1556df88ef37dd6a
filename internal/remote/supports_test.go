package remote

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AK-1225/SPONproject/internal/model"
)

func newRemote(t *testing.T) (*RedisSupportRemote, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisSupportRemote(rdb), mr
}

func TestInsertAssignsSequentialIDs(t *testing.T) {
	rem, mr := newRemote(t)
	ctx := context.Background()

	entry := &model.Support{
		FanID: "f1", AthleteID: "a1", Amount: 150,
		Purpose: model.PurposeTravel, PaymentMethod: model.PaymentWallet,
	}
	first, err := rem.Insert(ctx, entry)
	require.NoError(t, err)
	assert.Equal(t, "sup-1", first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := rem.Insert(ctx, entry)
	require.NoError(t, err)
	assert.Equal(t, "sup-2", second.ID)

	// 记录体与 fan 维度索引都已写入
	assert.True(t, mr.Exists("supports:entry:sup-1"))
	assert.Equal(t, "150", mr.HGet("supports:entry:sup-1", "amount"))
	ids, err := mr.List("supports:fan:f1")
	require.NoError(t, err)
	assert.Equal(t, []string{"sup-1", "sup-2"}, ids)
}

func TestInsertFailsWhenServerDown(t *testing.T) {
	rem, mr := newRemote(t)
	mr.Close()

	_, err := rem.Insert(context.Background(), &model.Support{
		FanID: "f1", AthleteID: "a1", Amount: 100,
		Purpose: model.PurposeFood, PaymentMethod: model.PaymentCard,
	})
	assert.Error(t, err)
}
