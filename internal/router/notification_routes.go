// Package router 提供 HTTP 路由注册
// 本文件定义通知相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterNotificationRoutes 注册通知相关路由（需要认证）
func (rt *Router) RegisterNotificationRoutes(rg *gin.RouterGroup) {
	notificationGroup := rg.Group("/notification")
	{
		notificationGroup.GET("/list", rt.handlers.Notification.GetNotificationList)      // 通知列表
		notificationGroup.POST("/markRead", rt.handlers.Notification.MarkNotificationRead) // 标记已读
	}
}
