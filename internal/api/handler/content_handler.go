package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AK-1225/SPONproject/internal/api/middleware"
	"github.com/AK-1225/SPONproject/internal/model"
	"github.com/AK-1225/SPONproject/internal/repository"
	"github.com/AK-1225/SPONproject/internal/service"
	"github.com/AK-1225/SPONproject/pkg/response"
)

type addPostRequest struct {
	Caption    string   `json:"caption" binding:"required"`
	Tags       []string `json:"tags"`
	MediaURL   string   `json:"media_url"`
	Visibility string   `json:"visibility"`
	IsBestShot bool     `json:"is_best_shot"`
}

// AddPost 新投稿（当前用户即选手）
// @Summary 新投稿
// @Tags 内容
// @Accept json
// @Produce json
// @Param request body addPostRequest true "投稿内容"
// @Success 200 {object} response.Response{data=model.Post}
// @Failure 400 {object} response.Response
// @Router /api/v1/posts [post]
func (h *Handler) AddPost(c *gin.Context) {
	var req addPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrMsg(err))
		return
	}
	post, err := h.contentSvc.AddPost(c.Request.Context(), service.AddPostInput{
		AthleteID:  middleware.UserID(c),
		Caption:    req.Caption,
		Tags:       req.Tags,
		MediaURL:   req.MediaURL,
		Visibility: model.Visibility(req.Visibility),
		IsBestShot: req.IsBestShot,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, post)
}

// DeletePost 删除投稿
// @Summary 删除投稿
// @Tags 内容
// @Param post_id path string true "投稿ID"
// @Success 200 {object} response.Response
// @Router /api/v1/posts/{post_id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
	postID := c.Param("post_id")
	post, err := h.contentSvc.Post(c.Request.Context(), postID)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if post == nil {
		response.Success(c, nil)
		return
	}
	if post.AthleteID != middleware.UserID(c) {
		response.Forbidden(c, "not the post owner")
		return
	}
	if err := h.contentSvc.DeletePost(c.Request.Context(), postID); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, nil)
}

// GetAthlete 选手档案；不存在返回 404
// @Summary 选手档案
// @Tags 内容
// @Param athlete_id path string true "选手ID或email"
// @Success 200 {object} response.Response{data=model.Athlete}
// @Failure 404 {object} response.Response
// @Router /api/v1/athletes/{athlete_id} [get]
func (h *Handler) GetAthlete(c *gin.Context) {
	a, err := h.contentSvc.Athlete(c.Request.Context(), c.Param("athlete_id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if a == nil {
		response.NotFound(c, "athlete not found")
		return
	}
	response.Success(c, a)
}

// SearchAthletes 条件检索
// @Summary 选手检索
// @Tags 内容
// @Param sport query string false "竞技"
// @Param region query string false "地域"
// @Param q query string false "关键词"
// @Success 200 {object} response.Response{data=[]model.Athlete}
// @Router /api/v1/athletes [get]
func (h *Handler) SearchAthletes(c *gin.Context) {
	list, err := h.contentSvc.SearchAthletes(c.Request.Context(), repository.AthleteFilters{
		Sport:  c.Query("sport"),
		Region: c.Query("region"),
		Query:  c.Query("q"),
		Tags:   c.QueryArray("tag"),
	})
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, list)
}

type updateProfileRequest struct {
	Name      *string  `json:"name"`
	Sport     *string  `json:"sport"`
	Region    *string  `json:"region"`
	Team      *string  `json:"team"`
	Tags      []string `json:"tags"`
	AvatarURL *string  `json:"avatar_url"`
	Bio       *string  `json:"bio"`
}

// UpdateProfile merge-patch 本人档案
// @Summary 更新档案
// @Tags 内容
// @Accept json
// @Produce json
// @Param request body updateProfileRequest true "档案补丁"
// @Success 200 {object} response.Response
// @Router /api/v1/athletes/me [patch]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrMsg(err))
		return
	}
	err := h.contentSvc.UpdateProfile(c.Request.Context(), middleware.UserID(c), service.ProfilePatch{
		Name:      req.Name,
		Sport:     req.Sport,
		Region:    req.Region,
		Team:      req.Team,
		Tags:      req.Tags,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, nil)
}

// PostsForAthlete 按观众 tier 过滤后的投稿列表（新在前）
// @Summary 选手投稿列表
// @Tags 内容
// @Param athlete_id path string true "选手ID"
// @Success 200 {object} response.Response{data=[]model.Post}
// @Router /api/v1/athletes/{athlete_id}/posts [get]
func (h *Handler) PostsForAthlete(c *gin.Context) {
	athleteID := c.Param("athlete_id")
	viewerID := middleware.UserID(c)
	tier, err := h.tierSvc.TierFor(c.Request.Context(), viewerID, athleteID)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	posts, err := h.contentSvc.VisiblePostsFor(c.Request.Context(), athleteID, viewerID, tier)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, posts)
}

// StoriesForAthlete 未过期限时投稿
// @Summary 选手限时投稿
// @Tags 内容
// @Param athlete_id path string true "选手ID"
// @Success 200 {object} response.Response{data=[]model.Story}
// @Router /api/v1/athletes/{athlete_id}/stories [get]
func (h *Handler) StoriesForAthlete(c *gin.Context) {
	list, err := h.contentSvc.StoriesForAthlete(c.Request.Context(), c.Param("athlete_id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, list)
}

// BestShots 高光列表
// @Summary 高光列表
// @Tags 内容
// @Param athlete_id path string true "选手ID"
// @Success 200 {object} response.Response{data=[]model.BestShot}
// @Router /api/v1/athletes/{athlete_id}/bestshots [get]
func (h *Handler) BestShots(c *gin.Context) {
	list, err := h.contentSvc.BestShots(c.Request.Context(), c.Param("athlete_id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, list)
}
