// Package router 提供 HTTP 路由注册
// 本文件定义群成员关系相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterMemberRoutes 注册群成员相关路由（需要认证）
func (rt *Router) RegisterMemberRoutes(rg *gin.RouterGroup) {
	memberGroup := rg.Group("/member")
	{
		// ===== 加入与申请 =====
		memberGroup.POST("/join", rt.handlers.Member.JoinGroup)               // 加入群组
		memberGroup.POST("/cancelJoin", rt.handlers.Member.CancelJoin)        // 撤回入群申请
		memberGroup.POST("/acceptMember", rt.handlers.Member.AcceptMember)    // 批准入群申请
		memberGroup.POST("/rejectMember", rt.handlers.Member.RejectMember)    // 拒绝入群申请

		// ===== 邀请 =====
		memberGroup.POST("/invite", rt.handlers.Member.InviteMembers)      // 批量邀请用户
		memberGroup.POST("/acceptInvite", rt.handlers.Member.AcceptInvite) // 接受邀请
		memberGroup.POST("/rejectInvite", rt.handlers.Member.RejectInvite) // 拒绝邀请

		// ===== 退出与移除 =====
		memberGroup.POST("/leave", rt.handlers.Member.LeaveGroup)    // 退出群组
		memberGroup.POST("/remove", rt.handlers.Member.RemoveMember) // 移除成员

		// ===== 角色与封禁 =====
		memberGroup.POST("/changeRole", rt.handlers.Member.ChangeRole)               // 变更成员角色
		memberGroup.POST("/transferOwnership", rt.handlers.Member.TransferOwnership) // 转让群主
		memberGroup.POST("/ban", rt.handlers.Member.BanMember)                       // 封禁成员
		memberGroup.POST("/unban", rt.handlers.Member.UnbanMember)                   // 解除封禁

		// ===== 列表 =====
		memberGroup.GET("/list", rt.handlers.Member.GetMemberList)                    // 成员列表
		memberGroup.GET("/joinRequestList", rt.handlers.Member.GetJoinRequestList)    // 待审核申请列表
	}
}
