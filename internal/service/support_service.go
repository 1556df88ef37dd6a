package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AK-1225/SPONproject/internal/model"
	"github.com/AK-1225/SPONproject/internal/remote"
	"github.com/AK-1225/SPONproject/internal/repository"
	"github.com/AK-1225/SPONproject/pkg/logger"
)

// RecordInput 支援入参
type RecordInput struct {
	FanID         string
	AthleteID     string
	Amount        int64
	Purpose       model.SupportPurpose
	PaymentMethod model.PaymentMethod
	Message       string
	PostID        string
}

// SupportService 支援台账：先尝试远端落库，失败本地兜底，
// 累计值两条路径都在返回前同步更新（结算后更新，不做乐观预加）
type SupportService struct {
	repo     repository.SupportRepository
	rem      remote.SupportRemote
	notifier *NotificationService // 可为 nil
}

func NewSupportService(repo repository.SupportRepository, rem remote.SupportRemote, notifier *NotificationService) *SupportService {
	return &SupportService{repo: repo, rem: rem, notifier: notifier}
}

func (s *SupportService) validate(in *RecordInput) error {
	in.FanID = strings.TrimSpace(in.FanID)
	in.AthleteID = strings.TrimSpace(in.AthleteID)
	if in.FanID == "" || in.AthleteID == "" {
		return ErrMissingID
	}
	if in.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !in.Purpose.Valid() {
		return ErrInvalidPurpose
	}
	if !in.PaymentMethod.Valid() {
		return ErrInvalidPayment
	}
	return nil
}

// Record 记一笔支援。校验失败直接返回、不动任何状态；
// 远端失败对调用方不可见（本地生成 id 与时间戳兜底落账）。
func (s *SupportService) Record(ctx context.Context, in RecordInput) (*model.Support, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}

	entry := &model.Support{
		FanID:         in.FanID,
		AthleteID:     in.AthleteID,
		Amount:        in.Amount,
		Purpose:       in.Purpose,
		PaymentMethod: in.PaymentMethod,
		Message:       in.Message,
		PostID:        in.PostID,
	}

	// 单次远端尝试，结算（成功或失败）之后才更新本地台账与累计
	ins, err := s.rem.Insert(ctx, entry)
	if err != nil {
		logger.Warn("remote support insert failed, falling back to local",
			zap.String("fan", in.FanID),
			zap.String("athlete", in.AthleteID),
			zap.Error(err))
		entry.ID = uuid.New().String()
		entry.CreatedAt = time.Now()
		entry.Remote = false
	} else {
		entry.ID = ins.ID
		entry.CreatedAt = ins.CreatedAt
		entry.Remote = true
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		_ = s.notifier.Add(ctx, AddNotificationInput{
			Type:       model.NotifySupport,
			UserID:     in.AthleteID,
			FromUserID: in.FanID,
			PostID:     in.PostID,
			Amount:     in.Amount,
		})
	}
	return entry, nil
}

// CumulativeSupport 维护中的累计值，O(1) 读取
func (s *SupportService) CumulativeSupport(ctx context.Context, fanID, athleteID string) (int64, error) {
	if fanID == "" || athleteID == "" {
		return 0, ErrMissingID
	}
	return s.repo.Total(ctx, fanID, athleteID)
}

// History fan 的支援历史，新在前
func (s *SupportService) History(ctx context.Context, fanID string, page, pageSize int) ([]*model.Support, error) {
	if fanID == "" {
		return nil, ErrMissingID
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return s.repo.ListByFan(ctx, fanID, (page-1)*pageSize, pageSize)
}

// Received athlete 收到的支援，新在前
func (s *SupportService) Received(ctx context.Context, athleteID string, page, pageSize int) ([]*model.Support, error) {
	if athleteID == "" {
		return nil, ErrMissingID
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return s.repo.ListByAthlete(ctx, athleteID, (page-1)*pageSize, pageSize)
}
