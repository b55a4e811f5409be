// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
// 公开接口直接挂在引擎上，需要登录的接口统一套 JWT 中间件
package router

import (
	"campus_hub_server/internal/handler"
	"campus_hub_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// Router 路由管理器，持有 Handler 聚合
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	// 公开路由（无需登录）
	rt.RegisterAuthRoutes(r)

	// 认证路由组：其余接口都要求携带有效的 Access Token
	authed := r.Group("/", middleware.JWTAuth())
	rt.RegisterUserRoutes(authed)
	rt.RegisterGroupRoutes(authed)
	rt.RegisterMemberRoutes(authed)
	rt.RegisterPostRoutes(authed)
	rt.RegisterCommentRoutes(authed)
	rt.RegisterSocialRoutes(authed)
	rt.RegisterOrgRoutes(authed)
	rt.RegisterSearchRoutes(authed)
	rt.RegisterNotificationRoutes(authed)
	rt.RegisterWebSocketRoutes(authed)
}
