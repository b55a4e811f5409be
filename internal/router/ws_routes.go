// Package router 提供 HTTP 路由注册
// 本文件定义 WebSocket 通知推送路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes 注册 WebSocket 相关路由（需要认证）
// 客户端通过此路由建立通知推送连接
// 请求示例: ws://host:port/ws （Authorization 头携带 Access Token）
func (rt *Router) RegisterWebSocketRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws", rt.handlers.Ws.Connect)
}
