package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AK-1225/SPONproject/internal/model"
	"github.com/AK-1225/SPONproject/internal/repository"
)

func newBoardStack(t *testing.T) (*BoardService, RelationshipService, repository.SupportRepository, *NotificationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	notifier := NewNotificationService(repository.NewNotificationRepository(db))
	supportRepo := repository.NewSupportRepository(db)
	blockRepo := repository.NewBlockRepository(db)
	tiers := NewTierService(supportRepo, repository.NewFollowRepository(db))
	rel := NewRelationshipService(
		repository.NewFollowRepository(db),
		repository.NewFanRepository(db),
		blockRepo,
		nil,
		nil,
	)
	svc := NewBoardService(repository.NewBoardRepository(db), blockRepo, tiers, notifier)
	return svc, rel, supportRepo, notifier, db
}

func supporterOf(t *testing.T, repo repository.SupportRepository, fanID, athleteID string) {
	t.Helper()
	require.NoError(t, repo.Append(context.Background(), &model.Support{
		ID: "sup-" + fanID + athleteID, FanID: fanID, AthleteID: athleteID,
		Amount: SupporterThreshold, Purpose: model.PurposeOther, PaymentMethod: model.PaymentWallet,
	}))
}

func TestPostToBoardSupporterGate(t *testing.T) {
	svc, rel, supportRepo, _, _ := newBoardStack(t)
	ctx := context.Background()

	// general 拒绝
	_, err := svc.PostToBoard(ctx, "a1", "f1", "太郎", "応援しています")
	assert.ErrorIs(t, err, ErrNotSupporter)

	// follower 也不够
	require.NoError(t, rel.Follow(ctx, "f1", "a1"))
	_, err = svc.PostToBoard(ctx, "a1", "f1", "太郎", "応援しています")
	assert.ErrorIs(t, err, ErrNotSupporter)

	// supporter 通过
	supporterOf(t, supportRepo, "f1", "a1")
	p, err := svc.PostToBoard(ctx, "a1", "f1", "太郎", "応援しています")
	require.NoError(t, err)
	assert.Equal(t, "a1", p.AthleteID)

	// 本人免判定
	_, err = svc.PostToBoard(ctx, "a1", "a1", "山田", "ありがとう")
	require.NoError(t, err)
}

func TestBoardPostsFilterBlockedAuthors(t *testing.T) {
	svc, rel, supportRepo, _, _ := newBoardStack(t)
	ctx := context.Background()

	supporterOf(t, supportRepo, "f1", "a1")
	supporterOf(t, supportRepo, "f2", "a1")
	_, err := svc.PostToBoard(ctx, "a1", "f1", "太郎", "一番乗り")
	require.NoError(t, err)
	_, err = svc.PostToBoard(ctx, "a1", "f2", "次郎", "二番")
	require.NoError(t, err)

	// 拉黑后连既存发言也被隐藏
	require.NoError(t, rel.Block(ctx, "a1", "f1"))
	posts, err := svc.BoardPosts(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "f2", posts[0].AuthorID)

	// 解除拉黑后恢复可见
	require.NoError(t, rel.Unblock(ctx, "a1", "f1"))
	posts, _ = svc.BoardPosts(ctx, "a1")
	assert.Len(t, posts, 2)
}

func TestDeleteBoardPostAuthorOrOwner(t *testing.T) {
	svc, _, supportRepo, _, _ := newBoardStack(t)
	ctx := context.Background()

	supporterOf(t, supportRepo, "f1", "a1")
	p, err := svc.PostToBoard(ctx, "a1", "f1", "太郎", "消される前に")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteBoardPost(ctx, p.ID, "stranger"), ErrNotAuthor)
	require.NoError(t, svc.DeleteBoardPost(ctx, p.ID, "f1"))

	// 板主也可删
	p2, err := svc.PostToBoard(ctx, "a1", "f1", "太郎", "もう一度")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteBoardPost(ctx, p2.ID, "a1"))

	posts, _ := svc.BoardPosts(ctx, "a1")
	assert.Empty(t, posts)
}

func TestAddCommentNotifiesOwner(t *testing.T) {
	svc, _, _, notifier, db := newBoardStack(t)
	ctx := context.Background()

	contentRepo := repository.NewContentRepository(db)
	post := &model.Post{ID: "p1", AthleteID: "a1", Caption: "試合後"}
	require.NoError(t, contentRepo.CreatePost(ctx, post))

	c, err := svc.AddComment(ctx, post, "f1", "太郎", "ナイスゴール")
	require.NoError(t, err)
	assert.Equal(t, "p1", c.PostID)

	got, err := notifier.ForUser(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.NotifyComment, got[0].Type)

	// 本人评论自己的投稿不发通知
	_, err = svc.AddComment(ctx, post, "a1", "山田", "ありがとう")
	require.NoError(t, err)
	got, _ = notifier.ForUser(ctx, "a1")
	assert.Len(t, got, 1)

	comments, err := svc.CommentsForPost(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, comments, 2)

	require.NoError(t, svc.DeleteComment(ctx, comments[0].ID))
	comments, _ = svc.CommentsForPost(ctx, "p1")
	assert.Len(t, comments, 1)
}
