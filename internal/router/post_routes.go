// Package router 提供 HTTP 路由注册
// 本文件定义帖子与信息流相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterPostRoutes 注册帖子相关路由（需要认证）
func (rt *Router) RegisterPostRoutes(rg *gin.RouterGroup) {
	postGroup := rg.Group("/post")
	{
		// ===== 发布与编辑 =====
		postGroup.POST("/createPost", rt.handlers.Post.CreatePost) // 发布帖子
		postGroup.POST("/updatePost", rt.handlers.Post.UpdatePost) // 编辑帖子（仅作者）
		postGroup.POST("/deletePost", rt.handlers.Post.DeletePost) // 删除帖子

		// ===== 管理 =====
		postGroup.POST("/pinPost", rt.handlers.Post.PinPost)         // 置顶/取消置顶
		postGroup.POST("/approvePost", rt.handlers.Post.ApprovePost) // 审核通过

		// ===== 互动 =====
		postGroup.POST("/like", rt.handlers.Post.LikePost)         // 点赞
		postGroup.POST("/unlike", rt.handlers.Post.UnlikePost)     // 取消点赞
		postGroup.POST("/save", rt.handlers.Post.SavePost)         // 收藏
		postGroup.POST("/unsave", rt.handlers.Post.UnsavePost)     // 取消收藏
		postGroup.POST("/markRead", rt.handlers.Post.MarkPostRead) // 标记已读

		// ===== 查询 =====
		postGroup.GET("/getPost", rt.handlers.Post.GetPost)                     // 单个帖子
		postGroup.GET("/feed", rt.handlers.Post.GetFeed)                        // 群组信息流
		postGroup.GET("/pinnedFeed", rt.handlers.Post.GetPinnedFeed)            // 置顶信息流
		postGroup.GET("/marketplaceFeed", rt.handlers.Post.GetMarketplaceFeed)  // 集市信息流
	}
}
