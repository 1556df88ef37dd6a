package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AK-1225/SPONproject/internal/model"
	"github.com/AK-1225/SPONproject/internal/repository"
)

func TestRenderMessage(t *testing.T) {
	assert.Equal(t, "花子さんがあなたの投稿にいいねしました",
		RenderMessage(model.NotifyLike, "花子", 0, ""))
	assert.Equal(t, "花子さんから¥500円の支援を受け取りました",
		RenderMessage(model.NotifySupport, "花子", 500, ""))
	assert.Equal(t, "花子さんにフォローされました",
		RenderMessage(model.NotifyFollow, "花子", 0, ""))
	assert.Equal(t, "フォロー中の山田さんが新しい投稿をしました",
		RenderMessage(model.NotifyNewPost, "山田", 0, ""))
	assert.Equal(t, "山田選手からお礼メッセージが届きました",
		RenderMessage(model.NotifyThankYou, "山田", 0, ""))
}

func TestRenderCommentTruncation(t *testing.T) {
	short := RenderMessage(model.NotifyComment, "花子", 0, "ナイスゴール")
	assert.Contains(t, short, "ナイスゴール")

	long := strings.Repeat("あ", 40)
	got := RenderMessage(model.NotifyComment, "花子", 0, long)
	// 正文按 30 个字符截断
	assert.Contains(t, got, strings.Repeat("あ", 30)+`..."`)
	assert.NotContains(t, got, strings.Repeat("あ", 31))
}

func TestNotificationGlobalCap(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewNotificationRepository(db)
	svc := NewNotificationService(repo)
	ctx := context.Background()

	over := model.NotificationCap + 5
	for i := 0; i < over; i++ {
		require.NoError(t, svc.Add(ctx, AddNotificationInput{
			Type:    model.NotifyFollow,
			UserID:  fmt.Sprintf("u%03d", i),
			Message: fmt.Sprintf("m%03d", i),
		}))
	}

	cnt, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(model.NotificationCap), cnt)

	// 淘汰最旧：前 5 个接收者已没有通知
	for i := 0; i < 5; i++ {
		got, err := svc.ForUser(ctx, fmt.Sprintf("u%03d", i))
		require.NoError(t, err)
		assert.Empty(t, got)
	}
	got, err := svc.ForUser(ctx, fmt.Sprintf("u%03d", over-1))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUnreadAndMarkRead(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(repository.NewNotificationRepository(db))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Add(ctx, AddNotificationInput{
			Type: model.NotifyLike, UserID: "u1", FromUserName: "花子",
		}))
	}
	n, err := svc.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	list, err := svc.ForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 3)

	require.NoError(t, svc.MarkAsRead(ctx, list[0].ID))
	n, _ = svc.UnreadCount(ctx, "u1")
	assert.Equal(t, int64(2), n)

	require.NoError(t, svc.MarkAllAsRead(ctx, "u1"))
	n, _ = svc.UnreadCount(ctx, "u1")
	assert.Zero(t, n)

	require.NoError(t, svc.Clear(ctx, "u1"))
	list, _ = svc.ForUser(ctx, "u1")
	assert.Empty(t, list)
}

func TestAddRejectsUnknownType(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(repository.NewNotificationRepository(db))
	err := svc.Add(context.Background(), AddNotificationInput{Type: "poke", UserID: "u1"})
	assert.ErrorIs(t, err, ErrInvalidType)
}
