// Package handler 提供 HTTP 请求处理器
// 本文件处理 WebSocket 通知推送连接
package handler

import (
	"campus_hub_server/internal/gateway/websocket"
	"campus_hub_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// WsHandler WebSocket 连接处理器
type WsHandler struct{}

// NewWsHandler 创建 WebSocket 处理器实例
func NewWsHandler() *WsHandler {
	return &WsHandler{}
}

// Connect 建立 WebSocket 通知推送连接
// GET /ws
// 客户端身份取自 JWT 中间件解析出的 user_id，同一用户重复连接会踢掉旧连接
func (h *WsHandler) Connect(c *gin.Context) {
	clientId := c.GetString("user_id")
	if clientId == "" {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "未登录"))
		return
	}
	websocket.NewClientInit(c, clientId)
}
