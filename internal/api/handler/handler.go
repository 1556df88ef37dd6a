package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AK-1225/SPONproject/internal/cache"
	"github.com/AK-1225/SPONproject/internal/service"
)

// Handler 聚合各服务的 HTTP 入口
type Handler struct {
	authSvc       *service.AuthService
	relService    service.RelationshipService
	supportSvc    *service.SupportService
	tierSvc       *service.TierService
	engagementSvc *service.EngagementService
	contentSvc    *service.ContentService
	boardSvc      *service.BoardService
	notifySvc     *service.NotificationService
	athleteCache  *cache.AthleteCache
}

func New(
	authSvc *service.AuthService,
	relService service.RelationshipService,
	supportSvc *service.SupportService,
	tierSvc *service.TierService,
	engagementSvc *service.EngagementService,
	contentSvc *service.ContentService,
	boardSvc *service.BoardService,
	notifySvc *service.NotificationService,
	athleteCache *cache.AthleteCache,
) *Handler {
	return &Handler{
		authSvc:       authSvc,
		relService:    relService,
		supportSvc:    supportSvc,
		tierSvc:       tierSvc,
		engagementSvc: engagementSvc,
		contentSvc:    contentSvc,
		boardSvc:      boardSvc,
		notifySvc:     notifySvc,
		athleteCache:  athleteCache,
	}
}

// bindErrMsg 把校验错误翻译成 "字段: 规则" 形式，其他绑定错误原样返回
func bindErrMsg(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
