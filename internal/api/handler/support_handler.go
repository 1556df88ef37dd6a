package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AK-1225/SPONproject/internal/api/middleware"
	"github.com/AK-1225/SPONproject/internal/model"
	"github.com/AK-1225/SPONproject/internal/service"
	"github.com/AK-1225/SPONproject/pkg/response"
)

type recordSupportRequest struct {
	AthleteID     string `json:"athlete_id" binding:"required"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	Purpose       string `json:"purpose" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	Message       string `json:"message"`
	PostID        string `json:"post_id"`
}

// RecordSupport 记一笔支援；远端失败本地兜底，对调用方始终成功
// @Summary 支援选手
// @Tags 支援
// @Accept json
// @Produce json
// @Param request body recordSupportRequest true "支援信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/supports [post]
func (h *Handler) RecordSupport(c *gin.Context) {
	var req recordSupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrMsg(err))
		return
	}
	entry, err := h.supportSvc.Record(c.Request.Context(), service.RecordInput{
		FanID:         middleware.UserID(c),
		AthleteID:     req.AthleteID,
		Amount:        req.Amount,
		Purpose:       model.SupportPurpose(req.Purpose),
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
		Message:       req.Message,
		PostID:        req.PostID,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, entry)
}

// SupportHistory 当前用户的支援历史
// @Summary 支援历史
// @Tags 支援
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=[]model.Support}
// @Router /api/v1/supports/history [get]
func (h *Handler) SupportHistory(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	list, err := h.supportSvc.History(c.Request.Context(), middleware.UserID(c), page, pageSize)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, list)
}

// TierFor 当前用户对某选手的派生 tier 与累计支援
// @Summary 查询 tier
// @Tags 支援
// @Param athlete_id path string true "选手ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/supports/tier/{athlete_id} [get]
func (h *Handler) TierFor(c *gin.Context) {
	athleteID := c.Param("athlete_id")
	fanID := middleware.UserID(c)
	tier, err := h.tierSvc.TierFor(c.Request.Context(), fanID, athleteID)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	total, err := h.supportSvc.CumulativeSupport(c.Request.Context(), fanID, athleteID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{
		"tier":           tier,
		"total":          total,
		"can_post_board": service.CanPostBoard(tier),
	})
}
