// Package handler 提供 HTTP 请求处理器
// 本文件处理群成员关系相关的 API 请求（加入/邀请/审核/角色/封禁）
package handler

import (
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler 群成员请求处理器
type MemberHandler struct {
	memberSvc service.MemberService
}

// NewMemberHandler 创建群成员处理器实例
func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

// JoinGroup 加入群组
// POST /member/join
// 请求体: request.JoinGroupRequest
// 响应: nil
func (h *MemberHandler) JoinGroup(c *gin.Context) {
	var req request.JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.JoinGroup(c.GetString("user_id"), req.GroupUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// CancelJoin 撤回入群申请
// POST /member/cancelJoin
// 请求体: request.CancelJoinRequest
// 响应: nil
func (h *MemberHandler) CancelJoin(c *gin.Context) {
	var req request.CancelJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.CancelJoin(c.GetString("user_id"), req.GroupUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// AcceptMember 批准入群申请
// POST /member/acceptMember
// 请求体: request.AcceptMemberRequest
// 响应: nil
func (h *MemberHandler) AcceptMember(c *gin.Context) {
	var req request.AcceptMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.AcceptMember(c.GetString("user_id"), req.GroupUuid, req.UserUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// RejectMember 拒绝入群申请
// POST /member/rejectMember
// 请求体: request.RejectMemberRequest
// 响应: nil
func (h *MemberHandler) RejectMember(c *gin.Context) {
	var req request.RejectMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.RejectMember(c.GetString("user_id"), req.GroupUuid, req.UserUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// InviteMembers 批量邀请用户加入群组
// POST /member/invite
// 请求体: request.InviteMembersRequest
// 响应: respond.InviteMembersRespond（逐个邀请结果）
func (h *MemberHandler) InviteMembers(c *gin.Context) {
	var req request.InviteMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.memberSvc.InviteMembers(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// AcceptInvite 接受入群邀请
// POST /member/acceptInvite
// 请求体: request.AcceptInviteRequest
// 响应: nil
func (h *MemberHandler) AcceptInvite(c *gin.Context) {
	var req request.AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.AcceptInvite(c.GetString("user_id"), req.GroupUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// RejectInvite 拒绝入群邀请
// POST /member/rejectInvite
// 请求体: request.RejectInviteRequest
// 响应: nil
func (h *MemberHandler) RejectInvite(c *gin.Context) {
	var req request.RejectInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.RejectInvite(c.GetString("user_id"), req.GroupUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// LeaveGroup 退出群组
// POST /member/leave
// 请求体: request.LeaveGroupRequest
// 响应: nil
func (h *MemberHandler) LeaveGroup(c *gin.Context) {
	var req request.LeaveGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.LeaveGroup(c.GetString("user_id"), req.GroupUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// RemoveMember 移除群成员
// POST /member/remove
// 请求体: request.RemoveMemberRequest
// 响应: nil
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	var req request.RemoveMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.RemoveMember(c.GetString("user_id"), req.GroupUuid, req.UserUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ChangeRole 变更成员角色
// POST /member/changeRole
// 请求体: request.ChangeRoleRequest
// 响应: nil
func (h *MemberHandler) ChangeRole(c *gin.Context) {
	var req request.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.ChangeRole(c.GetString("user_id"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// TransferOwnership 转让群主
// POST /member/transferOwnership
// 请求体: request.TransferOwnershipRequest
// 响应: nil
func (h *MemberHandler) TransferOwnership(c *gin.Context) {
	var req request.TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.TransferOwnership(c.GetString("user_id"), req.GroupUuid, req.UserUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// BanMember 封禁成员
// POST /member/ban
// 请求体: request.BanMemberRequest
// 响应: nil
func (h *MemberHandler) BanMember(c *gin.Context) {
	var req request.BanMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.BanMember(c.GetString("user_id"), req.GroupUuid, req.UserUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UnbanMember 解除封禁
// POST /member/unban
// 请求体: request.UnbanMemberRequest
// 响应: nil
func (h *MemberHandler) UnbanMember(c *gin.Context) {
	var req request.UnbanMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.UnbanMember(c.GetString("user_id"), req.GroupUuid, req.UserUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetMemberList 获取群成员列表
// GET /member/list?group_uuid=xxx&page=1&page_size=20
// 查询参数: request.GetMemberListRequest
// 响应: respond.GetGroupMemberListRespond
func (h *MemberHandler) GetMemberList(c *gin.Context) {
	var req request.GetMemberListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.memberSvc.GetMemberList(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetJoinRequestList 获取待审核入群申请列表
// GET /member/joinRequestList?group_uuid=xxx&page=1&page_size=20
// 查询参数: request.GetJoinRequestListRequest
// 响应: respond.GetJoinRequestListRespond
func (h *MemberHandler) GetJoinRequestList(c *gin.Context) {
	var req request.GetJoinRequestListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.memberSvc.GetJoinRequestList(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
