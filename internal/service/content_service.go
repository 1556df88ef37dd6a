package service

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AK-1225/SPONproject/internal/model"
	"github.com/AK-1225/SPONproject/internal/repository"
	"github.com/AK-1225/SPONproject/pkg/logger"
)

const handleAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateHandle 随机 8 位小写字母数字句柄
func GenerateHandle() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = handleAlphabet[rand.Intn(len(handleAlphabet))]
	}
	return "@" + string(b)
}

// AddPostInput 新投稿入参；MediaURL 为空时不建照片之外的资源
type AddPostInput struct {
	AthleteID  string
	Caption    string
	Tags       []string
	MediaURL   string
	Visibility model.Visibility
	IsBestShot bool
}

// RegisterAthleteInput 选手注册入参（身份由外部提供）
type RegisterAthleteInput struct {
	ID     string
	Email  string
	Name   string
	Handle string
}

// ProfilePatch merge-patch：nil 字段保持原值
type ProfilePatch struct {
	Name      *string
	Sport     *string
	Region    *string
	Team      *string
	Tags      []string
	AvatarURL *string
	Bio       *string
}

// ContentService 选手档案与投稿目录的变更面
type ContentService struct {
	repo     repository.ContentRepository
	fanRepo  repository.FanRepository
	notifier *NotificationService // 可为 nil
}

func NewContentService(repo repository.ContentRepository, fanRepo repository.FanRepository, notifier *NotificationService) *ContentService {
	return &ContentService{repo: repo, fanRepo: fanRepo, notifier: notifier}
}

// AddPost 创建投稿（一张照片）；isBestShot 时头插高光列表并按容量淘汰最旧，
// 被淘汰照片仍留在投稿流里
func (s *ContentService) AddPost(ctx context.Context, in AddPostInput) (*model.Post, error) {
	in.AthleteID = strings.TrimSpace(in.AthleteID)
	if in.AthleteID == "" {
		return nil, ErrMissingID
	}
	if strings.TrimSpace(in.Caption) == "" {
		return nil, ErrEmptyContent
	}
	if in.Visibility == "" {
		in.Visibility = model.VisibilityPublic
	}
	if !in.Visibility.Valid() {
		return nil, ErrInvalidVisible
	}

	now := time.Now()
	photo := model.Photo{
		ID:         uuid.New().String(),
		AthleteID:  in.AthleteID,
		URL:        in.MediaURL,
		Caption:    in.Caption,
		IsBestShot: in.IsBestShot,
		CreatedAt:  now,
	}
	post := &model.Post{
		ID:         uuid.New().String(),
		AthleteID:  in.AthleteID,
		Caption:    strings.TrimSpace(in.Caption),
		Visibility: in.Visibility,
		Tags:       strings.Join(in.Tags, ","),
		CreatedAt:  now,
		Photos:     []model.Photo{photo},
	}
	if err := s.repo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	if in.IsBestShot {
		if err := s.repo.AddBestShot(ctx, &model.BestShot{
			ID:        uuid.New().String(),
			AthleteID: in.AthleteID,
			PhotoID:   photo.ID,
			CreatedAt: now,
		}); err != nil {
			return nil, err
		}
	}

	s.notifyFans(ctx, post)
	return post, nil
}

// notifyFans 给粉丝追加 new_post 通知（同步逐页，失败只记日志）
func (s *ContentService) notifyFans(ctx context.Context, post *model.Post) {
	if s.notifier == nil || s.fanRepo == nil {
		return
	}
	athlete, err := s.repo.GetAthlete(ctx, post.AthleteID)
	if err != nil || athlete == nil {
		return
	}
	const page = 200
	offset := 0
	for {
		fans, err := s.fanRepo.ListFans(ctx, post.AthleteID, offset, page)
		if err != nil {
			logger.Warn("list fans for new_post notify", zap.Error(err))
			return
		}
		if len(fans) == 0 {
			return
		}
		for _, f := range fans {
			_ = s.notifier.Add(ctx, AddNotificationInput{
				Type:         model.NotifyNewPost,
				UserID:       f.FanID,
				FromUserID:   post.AthleteID,
				FromUserName: athlete.Name,
				PostID:       post.ID,
			})
		}
		if len(fans) < page {
			return
		}
		offset += page
	}
}

// DeletePost 从目录移除投稿；不级联清理高光列表（沿用既有行为）
func (s *ContentService) DeletePost(ctx context.Context, postID string) error {
	if postID == "" {
		return ErrMissingID
	}
	return s.repo.DeletePost(ctx, postID)
}

// RegisterAthlete 幂等注册：同 id 或同 email 已存在则 no-op
func (s *ContentService) RegisterAthlete(ctx context.Context, in RegisterAthleteInput) (*model.Athlete, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.Email = strings.TrimSpace(in.Email)
	if in.ID == "" || in.Email == "" {
		return nil, ErrMissingID
	}
	if existing, err := s.repo.GetAthlete(ctx, in.ID); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}
	if existing, err := s.repo.GetAthlete(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	handle := in.Handle
	if handle == "" {
		handle = GenerateHandle()
	}
	a := &model.Athlete{
		ID:     in.ID,
		Email:  in.Email,
		Name:   in.Name,
		Handle: handle,
		Sport:  "未設定",
		Region: "未設定",
	}
	if err := s.repo.CreateAthlete(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateProfile merge-patch；只有档案主人会走到这里（上层鉴权）
func (s *ContentService) UpdateProfile(ctx context.Context, athleteID string, patch ProfilePatch) error {
	if athleteID == "" {
		return ErrMissingID
	}
	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Sport != nil {
		fields["sport"] = *patch.Sport
	}
	if patch.Region != nil {
		fields["region"] = *patch.Region
	}
	if patch.Team != nil {
		fields["team"] = *patch.Team
	}
	if patch.Tags != nil {
		fields["tags"] = strings.Join(patch.Tags, ",")
	}
	if patch.AvatarURL != nil {
		fields["avatar_url"] = *patch.AvatarURL
	}
	if patch.Bio != nil {
		fields["bio"] = *patch.Bio
	}
	return s.repo.UpdateAthlete(ctx, athleteID, fields)
}

// Athlete 按 id 或 email 查询；不存在返回 nil 而非错误
func (s *ContentService) Athlete(ctx context.Context, idOrEmail string) (*model.Athlete, error) {
	if idOrEmail == "" {
		return nil, ErrMissingID
	}
	return s.repo.GetAthlete(ctx, idOrEmail)
}

func (s *ContentService) SearchAthletes(ctx context.Context, f repository.AthleteFilters) ([]*model.Athlete, error) {
	return s.repo.SearchAthletes(ctx, f)
}

// PostsForAthlete 新在前
func (s *ContentService) PostsForAthlete(ctx context.Context, athleteID string) ([]*model.Post, error) {
	if athleteID == "" {
		return nil, ErrMissingID
	}
	return s.repo.ListPostsByAthlete(ctx, athleteID)
}

// VisiblePostsFor 按观众 tier 过滤后的投稿列表
func (s *ContentService) VisiblePostsFor(ctx context.Context, athleteID, viewerID string, tier Tier) ([]*model.Post, error) {
	posts, err := s.repo.ListPostsByAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	visible := make([]*model.Post, 0, len(posts))
	for _, p := range posts {
		if CanViewPost(p.Visibility, viewerID, athleteID, tier) {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

// StoriesForAthlete 未过期的限时投稿
func (s *ContentService) StoriesForAthlete(ctx context.Context, athleteID string) ([]*model.Story, error) {
	if athleteID == "" {
		return nil, ErrMissingID
	}
	stories, err := s.repo.ListStoriesByAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	live := make([]*model.Story, 0, len(stories))
	for _, st := range stories {
		if st.ExpiresAt.IsZero() || st.ExpiresAt.After(now) {
			live = append(live, st)
		}
	}
	return live, nil
}

// BestShots 高光列表（最多 6 条，新在前）
func (s *ContentService) BestShots(ctx context.Context, athleteID string) ([]*model.BestShot, error) {
	if athleteID == "" {
		return nil, ErrMissingID
	}
	return s.repo.ListBestShots(ctx, athleteID)
}

// Post 单条查询；不存在返回 nil
func (s *ContentService) Post(ctx context.Context, postID string) (*model.Post, error) {
	if postID == "" {
		return nil, ErrMissingID
	}
	return s.repo.GetPost(ctx, postID)
}
