package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AK-1225/SPONproject/internal/api/middleware"
	"github.com/AK-1225/SPONproject/pkg/response"
)

type followRequest struct {
	AthleteID string `json:"athlete_id" binding:"required"`
}

// Follow 关注选手（粉丝冗余表异步落地）
// @Summary 关注选手
// @Tags 关系链
// @Accept json
// @Produce json
// @Param request body followRequest true "关注信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/relations/follow [post]
func (h *Handler) Follow(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrMsg(err))
		return
	}
	if err := h.relService.Follow(c.Request.Context(), middleware.UserID(c), req.AthleteID); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	h.athleteCache.Invalidate(c.Request.Context(), req.AthleteID)
	response.Success(c, nil)
}

// Unfollow 取消关注
// @Summary 取消关注
// @Tags 关系链
// @Accept json
// @Produce json
// @Param request body followRequest true "取消关注信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/relations/unfollow [post]
func (h *Handler) Unfollow(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrMsg(err))
		return
	}
	if err := h.relService.Unfollow(c.Request.Context(), middleware.UserID(c), req.AthleteID); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	h.athleteCache.Invalidate(c.Request.Context(), req.AthleteID)
	response.Success(c, nil)
}

// ListFollowing 查询当前用户关注的选手
// @Summary 查询关注列表
// @Tags 关系链
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/relations/following [get]
func (h *Handler) ListFollowing(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	list, err := h.relService.ListFollowing(c.Request.Context(), middleware.UserID(c), page, pageSize)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": list})
}

// ListFans 查询某选手的粉丝（冗余表 + 缓存）
// @Summary 查询粉丝列表
// @Tags 关系链
// @Param athlete_id path string true "选手ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/relations/fans/{athlete_id} [get]
func (h *Handler) ListFans(c *gin.Context) {
	athleteID := c.Param("athlete_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	ids, err := h.athleteCache.FetchFans(c.Request.Context(), athleteID, page, pageSize)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	snaps, err := h.athleteCache.Snapshots(c.Request.Context(), ids)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": ids, "snapshots": snaps})
}

type blockRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// Block 拉黑用户（同时切断其关注边）
// @Summary 拉黑用户
// @Tags 关系链
// @Accept json
// @Produce json
// @Param request body blockRequest true "拉黑信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/relations/block [post]
func (h *Handler) Block(c *gin.Context) {
	var req blockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrMsg(err))
		return
	}
	if err := h.relService.Block(c.Request.Context(), middleware.UserID(c), req.UserID); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	// 拉黑切断关注边，粉丝索引随之失效
	h.athleteCache.Invalidate(c.Request.Context(), middleware.UserID(c))
	response.Success(c, nil)
}

// Unblock 取消拉黑
// @Summary 取消拉黑
// @Tags 关系链
// @Accept json
// @Produce json
// @Param request body blockRequest true "取消拉黑信息"
// @Success 200 {object} response.Response
// @Router /api/v1/relations/unblock [post]
func (h *Handler) Unblock(c *gin.Context) {
	var req blockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrMsg(err))
		return
	}
	if err := h.relService.Unblock(c.Request.Context(), middleware.UserID(c), req.UserID); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, nil)
}

// BlockedUsers 当前选手的黑名单
// @Summary 查询黑名单
// @Tags 关系链
// @Success 200 {object} response.Response{data=[]string}
// @Router /api/v1/relations/blocked [get]
func (h *Handler) BlockedUsers(c *gin.Context) {
	list, err := h.relService.BlockedUsers(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, list)
}
