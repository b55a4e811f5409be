// Package handler 提供 HTTP 请求处理器
// 本文件处理群组生命周期相关的 API 请求
package handler

import (
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/service"
	"campus_hub_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// GroupHandler 群组请求处理器
type GroupHandler struct {
	groupSvc service.GroupService
}

// NewGroupHandler 创建群组处理器实例
func NewGroupHandler(groupSvc service.GroupService) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc}
}

// CreateGroup 创建群组
// POST /group/createGroup
// 请求体: request.CreateGroupRequest
// 响应: respond.GetGroupInfoRespond
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req request.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.groupSvc.CreateGroup(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateGroup 更新群组信息
// POST /group/updateGroup
// 请求体: request.UpdateGroupRequest
// 响应: nil
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	var req request.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.groupSvc.UpdateGroup(c.GetString("user_id"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteGroup 删除群组（仅群主）
// POST /group/deleteGroup
// 请求体: request.DeleteGroupRequest
// 响应: nil
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	var req request.DeleteGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.groupSvc.DeleteGroup(c.GetString("user_id"), req.GroupUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetGroupInfo 获取群组详情（带查看者元信息）
// GET /group/getGroupInfo?group_uuid=xxx
// 响应: respond.GetGroupInfoRespond
func (h *GroupHandler) GetGroupInfo(c *gin.Context) {
	groupUuid := c.Query("group_uuid")
	if groupUuid == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	data, err := h.groupSvc.GetGroupInfo(c.GetString("user_id"), groupUuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetGroupList 获取机构下的群组列表
// GET /group/getGroupList?institution_uuid=xxx&page=1&page_size=20
// 查询参数: request.GetGroupListRequest
// 响应: respond.GetGroupListRespond
func (h *GroupHandler) GetGroupList(c *gin.Context) {
	var req request.GetGroupListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.groupSvc.GetGroupList(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMyGroups 获取当前用户已加入的群组
// GET /group/getMyGroups
// 响应: []respond.GroupSummary
func (h *GroupHandler) GetMyGroups(c *gin.Context) {
	data, err := h.groupSvc.GetMyGroups(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
