// Package handler 提供 HTTP 请求处理器
// 本文件处理通知相关的 API 请求
package handler

import (
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler 通知请求处理器
type NotificationHandler struct {
	notificationSvc service.NotificationService
}

// NewNotificationHandler 创建通知处理器实例
func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// GetNotificationList 获取当前用户的通知列表
// GET /notification/list?page=1&page_size=20
// 查询参数: request.GetNotificationListRequest
// 响应: respond.GetNotificationListRespond
func (h *NotificationHandler) GetNotificationList(c *gin.Context) {
	var req request.GetNotificationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.notificationSvc.GetNotificationList(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// MarkNotificationRead 标记通知已读（uuid 为空时标记全部）
// POST /notification/markRead
// 请求体: request.MarkNotificationReadRequest
// 响应: nil
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	var req request.MarkNotificationReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.notificationSvc.MarkRead(c.GetString("user_id"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
