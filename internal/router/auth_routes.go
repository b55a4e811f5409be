// Package router 提供 HTTP 路由注册
// 本文件定义认证相关的路由（注册/登录无需 Token）
package router

import (
	"campus_hub_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes 注册认证相关路由
func (rt *Router) RegisterAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", rt.handlers.Auth.Register)       // 用户注册
		authGroup.POST("/login", rt.handlers.Auth.Login)             // 密码登录
		authGroup.POST("/smsLogin", rt.handlers.Auth.SmsLogin)       // 短信验证码登录
		authGroup.POST("/sendSmsCode", rt.handlers.Auth.SendSmsCode) // 发送短信验证码
		authGroup.POST("/refresh", rt.handlers.Auth.RefreshToken)    // 刷新 Access Token

		// 退出登录需要知道当前用户，单独套 JWT 中间件
		authGroup.POST("/logout", middleware.JWTAuth(), rt.handlers.Auth.Logout)
	}
}
