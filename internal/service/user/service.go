// Package user 实现用户资料业务逻辑
package user

import (
	"campus_hub_server/internal/dao/mysql/repository"
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/dto/respond"
)

// userService 用户业务逻辑实现
type userService struct {
	repos *repository.Repositories
}

// NewUserService 构造函数
func NewUserService(repos *repository.Repositories) *userService {
	return &userService{repos: repos}
}

// GetUserInfo 获取用户资料（手机号等敏感字段不返回）
func (u *userService) GetUserInfo(uuid string) (*respond.GetUserInfoRespond, error) {
	user, err := u.repos.User.FindByUuid(uuid)
	if err != nil {
		return nil, err
	}
	return &respond.GetUserInfoRespond{
		Uuid:            user.Uuid,
		Nickname:        user.Nickname,
		Fullname:        user.Fullname,
		Avatar:          user.Avatar,
		Email:           user.Email,
		Bio:             user.Bio,
		InstitutionUuid: user.InstitutionUuid,
		DepartmentUuid:  user.DepartmentUuid,
		StudentId:       user.StudentId,
		PersonType:      user.PersonType,
		CreatedAt:       user.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// UpdateUserInfo 更新当前用户资料
// 空字符串字段表示未提交，保持原值
func (u *userService) UpdateUserInfo(userUuid string, req request.UpdateUserInfoRequest) error {
	user, err := u.repos.User.FindByUuid(userUuid)
	if err != nil {
		return err
	}

	if req.Nickname != "" {
		user.Nickname = req.Nickname
	}
	if req.Fullname != "" {
		user.Fullname = req.Fullname
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.DepartmentUuid != "" {
		if _, err := u.repos.Department.FindByUuid(req.DepartmentUuid); err != nil {
			return err
		}
		user.DepartmentUuid = req.DepartmentUuid
	}
	if req.StudentId != "" {
		user.StudentId = req.StudentId
	}
	return u.repos.User.UpdateUserInfo(user)
}
