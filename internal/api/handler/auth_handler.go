package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/AK-1225/SPONproject/internal/service"
	"github.com/AK-1225/SPONproject/pkg/response"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	UserType string `json:"user_type" binding:"required,oneof=fan athlete"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	UserType string `json:"user_type"`
	Token    string `json:"token"`
}

// Register 注册；athlete 同步建选手档案
// @Summary 注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body registerRequest true "注册信息"
// @Success 200 {object} response.Response{data=authResponse}
// @Router /api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrMsg(err))
		return
	}
	user, token, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Password, req.Name, req.UserType)
	if err != nil {
		if errors.Is(err, service.ErrEmailRegistered) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, authResponse{UserID: user.ID, Name: user.Name, UserType: user.UserType, Token: token})
}

// Login 登录
// @Summary 登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} response.Response{data=authResponse}
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrMsg(err))
		return
	}
	user, token, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, authResponse{UserID: user.ID, Name: user.Name, UserType: user.UserType, Token: token})
}
