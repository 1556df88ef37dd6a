package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AK-1225/SPONproject/internal/api/middleware"
	"github.com/AK-1225/SPONproject/pkg/response"
)

// Notifications 本人通知，新→旧
// @Summary 通知列表
// @Tags 通知
// @Success 200 {object} response.Response{data=[]model.Notification}
// @Router /api/v1/notifications [get]
func (h *Handler) Notifications(c *gin.Context) {
	list, err := h.notifySvc.ForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, list)
}

// UnreadCount 未读通知数
// @Summary 未读数
// @Tags 通知
// @Success 200 {object} response.Response{data=map[string]int64}
// @Router /api/v1/notifications/unread [get]
func (h *Handler) UnreadCount(c *gin.Context) {
	n, err := h.notifySvc.UnreadCount(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"unread": n})
}

// MarkNotificationRead 单条已读
// @Summary 标记已读
// @Tags 通知
// @Param id path string true "通知ID"
// @Success 200 {object} response.Response
// @Router /api/v1/notifications/read/{id} [post]
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	if err := h.notifySvc.MarkAsRead(c.Request.Context(), c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, nil)
}

// MarkAllNotificationsRead 全部已读
// @Summary 全部已读
// @Tags 通知
// @Success 200 {object} response.Response
// @Router /api/v1/notifications/read-all [post]
func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	if err := h.notifySvc.MarkAllAsRead(c.Request.Context(), middleware.UserID(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, nil)
}

// ClearNotifications 清空本人通知
// @Summary 清空通知
// @Tags 通知
// @Success 200 {object} response.Response
// @Router /api/v1/notifications [delete]
func (h *Handler) ClearNotifications(c *gin.Context) {
	if err := h.notifySvc.Clear(c.Request.Context(), middleware.UserID(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, nil)
}
