package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AK-1225/SPONproject/internal/api/middleware"
	"github.com/AK-1225/SPONproject/internal/model"
	"github.com/AK-1225/SPONproject/pkg/response"
)

type toggleRequest struct {
	ContentID string `json:"content_id" binding:"required"`
}

// ToggleLike 翻转点赞位
// @Summary 点赞/取消点赞
// @Tags 互动
// @Accept json
// @Produce json
// @Param request body toggleRequest true "内容ID"
// @Success 200 {object} response.Response{data=map[string]bool}
// @Router /api/v1/engagement/like [post]
func (h *Handler) ToggleLike(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrMsg(err))
		return
	}
	liked, err := h.engagementSvc.ToggleLike(c.Request.Context(), middleware.UserID(c), req.ContentID)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, gin.H{"liked": liked})
}

// ToggleBookmark 翻转收藏位
// @Summary 收藏/取消收藏
// @Tags 互动
// @Accept json
// @Produce json
// @Param request body toggleRequest true "内容ID"
// @Success 200 {object} response.Response{data=map[string]bool}
// @Router /api/v1/engagement/bookmark [post]
func (h *Handler) ToggleBookmark(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrMsg(err))
		return
	}
	marked, err := h.engagementSvc.ToggleBookmark(c.Request.Context(), middleware.UserID(c), req.ContentID)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, gin.H{"bookmarked": marked})
}

// EngagementFlags 某内容的本人 like/bookmark 位
// @Summary 互动状态
// @Tags 互动
// @Param content_id path string true "内容ID"
// @Success 200 {object} response.Response{data=map[string]bool}
// @Router /api/v1/engagement/flags/{content_id} [get]
func (h *Handler) EngagementFlags(c *gin.Context) {
	contentID := c.Param("content_id")
	userID := middleware.UserID(c)
	liked, err := h.engagementSvc.IsLiked(c.Request.Context(), userID, contentID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	marked, err := h.engagementSvc.IsBookmarked(c.Request.Context(), userID, contentID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"liked": liked, "bookmarked": marked})
}

type collectRequest struct {
	PhotoID  string `json:"photo_id" binding:"required"`
	PhotoURL string `json:"photo_url"`
	PostID   string `json:"post_id"`
}

// Collect 收藏照片
// @Summary 加入收藏
// @Tags 互动
// @Accept json
// @Produce json
// @Param request body collectRequest true "照片"
// @Success 200 {object} response.Response
// @Router /api/v1/engagement/collection [post]
func (h *Handler) Collect(c *gin.Context) {
	var req collectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrMsg(err))
		return
	}
	photo := &model.Photo{ID: req.PhotoID, URL: req.PhotoURL, PostID: req.PostID}
	if err := h.engagementSvc.AddToCollection(c.Request.Context(), middleware.UserID(c), photo); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, nil)
}

// Uncollect 移出收藏
// @Summary 移出收藏
// @Tags 互动
// @Param photo_id path string true "照片ID"
// @Success 200 {object} response.Response
// @Router /api/v1/engagement/collection/{photo_id} [delete]
func (h *Handler) Uncollect(c *gin.Context) {
	if err := h.engagementSvc.RemoveFromCollection(c.Request.Context(), middleware.UserID(c), c.Param("photo_id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, nil)
}

// Collection 本人收藏列表
// @Summary 收藏列表
// @Tags 互动
// @Success 200 {object} response.Response{data=[]model.CollectionItem}
// @Router /api/v1/engagement/collection [get]
func (h *Handler) Collection(c *gin.Context) {
	list, err := h.engagementSvc.Collection(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, list)
}
