package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/AK-1225/SPONproject/internal/api/middleware"
	"github.com/AK-1225/SPONproject/internal/service"
	"github.com/AK-1225/SPONproject/pkg/response"
)

type boardPostRequest struct {
	AthleteID string `json:"athlete_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

// PostToBoard 掲示板发言；非支援者被 403 拒绝
// @Summary 掲示板发言
// @Tags 掲示板
// @Accept json
// @Produce json
// @Param request body boardPostRequest true "发言内容"
// @Success 200 {object} response.Response{data=model.BoardPost}
// @Router /api/v1/board [post]
func (h *Handler) PostToBoard(c *gin.Context) {
	var req boardPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrMsg(err))
		return
	}
	post, err := h.boardSvc.PostToBoard(c.Request.Context(), req.AthleteID, middleware.UserID(c), middleware.UserName(c), req.Content)
	if err != nil {
		if errors.Is(err, service.ErrNotSupporter) {
			response.Forbidden(c, err.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, post)
}

// BoardPosts 某选手掲示板；被拉黑者的发言已被过滤
// @Summary 掲示板列表
// @Tags 掲示板
// @Param athlete_id path string true "选手ID"
// @Success 200 {object} response.Response{data=[]model.BoardPost}
// @Router /api/v1/board/{athlete_id} [get]
func (h *Handler) BoardPosts(c *gin.Context) {
	list, err := h.boardSvc.BoardPosts(c.Request.Context(), c.Param("athlete_id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, list)
}

// DeleteBoardPost 删除发言；仅作者或板主可删
// @Summary 删除掲示板发言
// @Tags 掲示板
// @Param id path string true "发言ID"
// @Success 200 {object} response.Response
// @Router /api/v1/board/{id} [delete]
func (h *Handler) DeleteBoardPost(c *gin.Context) {
	err := h.boardSvc.DeleteBoardPost(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, service.ErrNotAuthor) {
			response.Forbidden(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, nil)
}

type commentRequest struct {
	PostID  string `json:"post_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// AddComment 投稿评论
// @Summary 发表评论
// @Tags 评论
// @Accept json
// @Produce json
// @Param request body commentRequest true "评论内容"
// @Success 200 {object} response.Response{data=model.Comment}
// @Router /api/v1/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrMsg(err))
		return
	}
	post, err := h.contentSvc.Post(c.Request.Context(), req.PostID)
	if err != nil {
		response.NotFound(c, "投稿不存在")
		return
	}
	comment, err := h.boardSvc.AddComment(c.Request.Context(), post, middleware.UserID(c), middleware.UserName(c), req.Content)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, comment)
}

// CommentsForPost 某投稿的评论列表
// @Summary 评论列表
// @Tags 评论
// @Param post_id path string true "投稿ID"
// @Success 200 {object} response.Response{data=[]model.Comment}
// @Router /api/v1/comments/{post_id} [get]
func (h *Handler) CommentsForPost(c *gin.Context) {
	list, err := h.boardSvc.CommentsForPost(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, list)
}

// DeleteComment 删除评论
// @Summary 删除评论
// @Tags 评论
// @Param id path string true "评论ID"
// @Success 200 {object} response.Response
// @Router /api/v1/comments/{id} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
	if err := h.boardSvc.DeleteComment(c.Request.Context(), c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, nil)
}
