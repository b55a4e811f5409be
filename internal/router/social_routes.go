// Package router 提供 HTTP 路由注册
// 本文件定义社交关系相关的路由（关注 + 好友）
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterSocialRoutes 注册社交关系相关路由（需要认证）
func (rt *Router) RegisterSocialRoutes(rg *gin.RouterGroup) {
	socialGroup := rg.Group("/social")
	{
		// ===== 关注 =====
		socialGroup.POST("/follow", rt.handlers.Social.Follow)        // 关注用户
		socialGroup.POST("/unfollow", rt.handlers.Social.Unfollow)    // 取消关注
		socialGroup.GET("/followers", rt.handlers.Social.GetFollowers) // 粉丝列表
		socialGroup.GET("/following", rt.handlers.Social.GetFollowing) // 关注列表

		// ===== 好友 =====
		socialGroup.POST("/applyFriend", rt.handlers.Social.ApplyFriend)             // 发起好友申请
		socialGroup.POST("/acceptFriend", rt.handlers.Social.AcceptFriend)           // 接受好友申请
		socialGroup.POST("/rejectFriend", rt.handlers.Social.RejectFriend)           // 拒绝好友申请
		socialGroup.POST("/deleteFriend", rt.handlers.Social.DeleteFriend)           // 解除好友关系
		socialGroup.GET("/friends", rt.handlers.Social.GetFriendList)                // 好友列表
		socialGroup.GET("/friendRequests", rt.handlers.Social.GetFriendRequestList)  // 待处理申请列表
	}
}
