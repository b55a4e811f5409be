// Package router 提供 HTTP 路由注册
// 本文件定义全局搜索路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterSearchRoutes 注册搜索路由（需要认证）
func (rt *Router) RegisterSearchRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", rt.handlers.Search.Search) // 全局搜索
}
