// Package router 提供 HTTP 路由注册
// 本文件定义评论相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterCommentRoutes 注册评论相关路由（需要认证）
func (rt *Router) RegisterCommentRoutes(rg *gin.RouterGroup) {
	commentGroup := rg.Group("/comment")
	{
		commentGroup.POST("/createComment", rt.handlers.Comment.CreateComment) // 发表评论
		commentGroup.POST("/deleteComment", rt.handlers.Comment.DeleteComment) // 删除评论
		commentGroup.GET("/list", rt.handlers.Comment.GetCommentList)          // 评论列表
	}
}
