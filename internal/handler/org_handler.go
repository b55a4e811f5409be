// Package handler 提供 HTTP 请求处理器
// 本文件处理组织目录相关的 API 请求（机构/院系/教室）
package handler

import (
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/service"
	"campus_hub_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// OrgHandler 组织目录请求处理器
type OrgHandler struct {
	orgSvc service.OrgService
}

// NewOrgHandler 创建组织目录处理器实例
func NewOrgHandler(orgSvc service.OrgService) *OrgHandler {
	return &OrgHandler{orgSvc: orgSvc}
}

// CreateInstitution 创建机构（平台管理员）
// POST /org/createInstitution
// 请求体: request.CreateInstitutionRequest
// 响应: respond.InstitutionRespond
func (h *OrgHandler) CreateInstitution(c *gin.Context) {
	var req request.CreateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.orgSvc.CreateInstitution(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CreateDepartment 创建院系（平台管理员）
// POST /org/createDepartment
// 请求体: request.CreateDepartmentRequest
// 响应: respond.DepartmentRespond
func (h *OrgHandler) CreateDepartment(c *gin.Context) {
	var req request.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.orgSvc.CreateDepartment(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CreateRoom 创建教室（平台管理员）
// POST /org/createRoom
// 请求体: request.CreateRoomRequest
// 响应: respond.RoomRespond
func (h *OrgHandler) CreateRoom(c *gin.Context) {
	var req request.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.orgSvc.CreateRoom(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateInstitution 更新机构信息（平台管理员）
// POST /org/updateInstitution
// 请求体: request.UpdateInstitutionRequest
func (h *OrgHandler) UpdateInstitution(c *gin.Context) {
	var req request.UpdateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.orgSvc.UpdateInstitution(c.GetString("user_id"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UpdateDepartment 更新院系信息（平台管理员）
// POST /org/updateDepartment
// 请求体: request.UpdateDepartmentRequest
func (h *OrgHandler) UpdateDepartment(c *gin.Context) {
	var req request.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.orgSvc.UpdateDepartment(c.GetString("user_id"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UpdateRoom 更新教室信息（平台管理员）
// POST /org/updateRoom
// 请求体: request.UpdateRoomRequest
func (h *OrgHandler) UpdateRoom(c *gin.Context) {
	var req request.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.orgSvc.UpdateRoom(c.GetString("user_id"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetInstitution 获取机构详情
// GET /org/getInstitution?uuid=xxx
// 响应: respond.InstitutionRespond
func (h *OrgHandler) GetInstitution(c *gin.Context) {
	uuid := c.Query("uuid")
	if uuid == "" {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "缺少机构 uuid"))
		return
	}
	data, err := h.orgSvc.GetInstitution(uuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetInstitutionList 获取机构列表
// GET /org/institutions?page=1&page_size=20
// 查询参数: request.GetOrgListRequest
// 响应: respond.GetInstitutionListRespond
func (h *OrgHandler) GetInstitutionList(c *gin.Context) {
	var req request.GetOrgListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.orgSvc.GetInstitutionList(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetDepartmentList 获取机构下的院系列表
// GET /org/departments?parent_uuid=xxx
// 查询参数: request.GetOrgListRequest
// 响应: respond.GetDepartmentListRespond
func (h *OrgHandler) GetDepartmentList(c *gin.Context) {
	var req request.GetOrgListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.orgSvc.GetDepartmentList(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetRoomList 获取院系下的教室列表
// GET /org/rooms?parent_uuid=xxx
// 查询参数: request.GetOrgListRequest
// 响应: respond.GetRoomListRespond
func (h *OrgHandler) GetRoomList(c *gin.Context) {
	var req request.GetOrgListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.orgSvc.GetRoomList(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
