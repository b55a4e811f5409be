// Package org 实现组织目录业务逻辑（机构/院系/教室）
// 三类资源构成层级：机构 > 院系 > 教室，创建操作仅限平台管理员
package org

import (
	"campus_hub_server/internal/dao/mysql/repository"
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/dto/respond"
	"campus_hub_server/internal/model"
	"campus_hub_server/pkg/errorx"
	"campus_hub_server/pkg/util/random"
	"campus_hub_server/pkg/util/slug"
)

// orgService 组织目录业务逻辑实现
type orgService struct {
	repos *repository.Repositories
}

// NewOrgService 构造函数
func NewOrgService(repos *repository.Repositories) *orgService {
	return &orgService{repos: repos}
}

// requirePlatformAdmin 校验操作者为平台管理员
func (o *orgService) requirePlatformAdmin(actorUuid string) error {
	user, err := o.repos.User.FindByUuid(actorUuid)
	if err != nil {
		return err
	}
	if user.IsAdmin != 1 {
		return errorx.New(errorx.CodeForbidden, "仅平台管理员可以操作")
	}
	return nil
}

// ==================== 创建 ====================

// CreateInstitution 创建机构
// slug 全局唯一，由名称生成，冲突时追加随机后缀
func (o *orgService) CreateInstitution(actorUuid string, req request.CreateInstitutionRequest) (*respond.InstitutionRespond, error) {
	if err := o.requirePlatformAdmin(actorUuid); err != nil {
		return nil, err
	}

	instSlug := slug.Make(req.Name)
	if _, err := o.repos.Institution.FindBySlug(instSlug); err == nil {
		instSlug = slug.WithRandomSuffix(instSlug)
	} else if !errorx.IsNotFound(err) {
		return nil, err
	}

	inst := &model.Institution{
		Uuid:        "I" + random.GetNowAndLenRandomString(11),
		Name:        req.Name,
		Slug:        instSlug,
		Description: req.Description,
		City:        req.City,
		Website:     req.Website,
	}
	if err := o.repos.Institution.Create(inst); err != nil {
		return nil, err
	}
	return toInstitutionRespond(inst), nil
}

// CreateDepartment 创建院系
func (o *orgService) CreateDepartment(actorUuid string, req request.CreateDepartmentRequest) (*respond.DepartmentRespond, error) {
	if err := o.requirePlatformAdmin(actorUuid); err != nil {
		return nil, err
	}
	if _, err := o.repos.Institution.FindByUuid(req.InstitutionUuid); err != nil {
		return nil, err
	}

	dept := &model.Department{
		Uuid:            "D" + random.GetNowAndLenRandomString(11),
		InstitutionUuid: req.InstitutionUuid,
		Name:            req.Name,
		Description:     req.Description,
	}
	if err := o.repos.Department.Create(dept); err != nil {
		return nil, err
	}
	return toDepartmentRespond(dept), nil
}

// CreateRoom 创建教室
func (o *orgService) CreateRoom(actorUuid string, req request.CreateRoomRequest) (*respond.RoomRespond, error) {
	if err := o.requirePlatformAdmin(actorUuid); err != nil {
		return nil, err
	}
	if _, err := o.repos.Department.FindByUuid(req.DepartmentUuid); err != nil {
		return nil, err
	}

	room := &model.Room{
		Uuid:           "R" + random.GetNowAndLenRandomString(11),
		DepartmentUuid: req.DepartmentUuid,
		Name:           req.Name,
		Building:       req.Building,
		Capacity:       req.Capacity,
	}
	if err := o.repos.Room.Create(room); err != nil {
		return nil, err
	}
	return toRoomRespond(room), nil
}

// ==================== 更新 ====================

// UpdateInstitution 更新机构信息，nil 字段保持原值
func (o *orgService) UpdateInstitution(actorUuid string, req request.UpdateInstitutionRequest) error {
	if err := o.requirePlatformAdmin(actorUuid); err != nil {
		return err
	}
	inst, err := o.repos.Institution.FindByUuid(req.InstitutionUuid)
	if err != nil {
		return err
	}
	if req.Name != nil {
		inst.Name = *req.Name
	}
	if req.Description != nil {
		inst.Description = *req.Description
	}
	if req.City != nil {
		inst.City = *req.City
	}
	if req.Website != nil {
		inst.Website = *req.Website
	}
	return o.repos.Institution.Update(inst)
}

// UpdateDepartment 更新院系信息，nil 字段保持原值
func (o *orgService) UpdateDepartment(actorUuid string, req request.UpdateDepartmentRequest) error {
	if err := o.requirePlatformAdmin(actorUuid); err != nil {
		return err
	}
	dept, err := o.repos.Department.FindByUuid(req.DepartmentUuid)
	if err != nil {
		return err
	}
	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = *req.Description
	}
	return o.repos.Department.Update(dept)
}

// UpdateRoom 更新教室信息，nil 字段保持原值
func (o *orgService) UpdateRoom(actorUuid string, req request.UpdateRoomRequest) error {
	if err := o.requirePlatformAdmin(actorUuid); err != nil {
		return err
	}
	room, err := o.repos.Room.FindByUuid(req.RoomUuid)
	if err != nil {
		return err
	}
	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Building != nil {
		room.Building = *req.Building
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	return o.repos.Room.Update(room)
}

// ==================== 查询 ====================

// GetInstitution 获取机构详情
func (o *orgService) GetInstitution(uuid string) (*respond.InstitutionRespond, error) {
	inst, err := o.repos.Institution.FindByUuid(uuid)
	if err != nil {
		return nil, err
	}
	return toInstitutionRespond(inst), nil
}

// ==================== 列表 ====================

// GetInstitutionList 分页获取机构列表
func (o *orgService) GetInstitutionList(req request.GetOrgListRequest) (*respond.GetInstitutionListRespond, error) {
	institutions, total, err := o.repos.Institution.GetList(req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	rsp := &respond.GetInstitutionListRespond{
		Institutions: make([]respond.InstitutionRespond, 0, len(institutions)),
		Pagination:   respond.NewPagination(total, req.Page, req.PageSize),
	}
	for i := range institutions {
		rsp.Institutions = append(rsp.Institutions, *toInstitutionRespond(&institutions[i]))
	}
	return rsp, nil
}

// GetDepartmentList 分页获取机构下的院系列表
func (o *orgService) GetDepartmentList(req request.GetOrgListRequest) (*respond.GetDepartmentListRespond, error) {
	if req.ParentUuid == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "缺少机构 uuid")
	}
	departments, total, err := o.repos.Department.GetListByInstitution(req.ParentUuid, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	rsp := &respond.GetDepartmentListRespond{
		Departments: make([]respond.DepartmentRespond, 0, len(departments)),
		Pagination:  respond.NewPagination(total, req.Page, req.PageSize),
	}
	for i := range departments {
		rsp.Departments = append(rsp.Departments, *toDepartmentRespond(&departments[i]))
	}
	return rsp, nil
}

// GetRoomList 分页获取院系下的教室列表
func (o *orgService) GetRoomList(req request.GetOrgListRequest) (*respond.GetRoomListRespond, error) {
	if req.ParentUuid == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "缺少院系 uuid")
	}
	rooms, total, err := o.repos.Room.GetListByDepartment(req.ParentUuid, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	rsp := &respond.GetRoomListRespond{
		Rooms:      make([]respond.RoomRespond, 0, len(rooms)),
		Pagination: respond.NewPagination(total, req.Page, req.PageSize),
	}
	for i := range rooms {
		rsp.Rooms = append(rsp.Rooms, *toRoomRespond(&rooms[i]))
	}
	return rsp, nil
}

func toInstitutionRespond(inst *model.Institution) *respond.InstitutionRespond {
	return &respond.InstitutionRespond{
		Uuid:        inst.Uuid,
		Name:        inst.Name,
		Slug:        inst.Slug,
		Description: inst.Description,
		City:        inst.City,
		Website:     inst.Website,
	}
}

func toDepartmentRespond(dept *model.Department) *respond.DepartmentRespond {
	return &respond.DepartmentRespond{
		Uuid:            dept.Uuid,
		InstitutionUuid: dept.InstitutionUuid,
		Name:            dept.Name,
		Description:     dept.Description,
	}
}

func toRoomRespond(room *model.Room) *respond.RoomRespond {
	return &respond.RoomRespond{
		Uuid:           room.Uuid,
		DepartmentUuid: room.DepartmentUuid,
		Name:           room.Name,
		Building:       room.Building,
		Capacity:       room.Capacity,
	}
}
