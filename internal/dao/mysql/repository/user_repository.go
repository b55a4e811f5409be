// Package repository 提供数据访问层的具体实现
// 本文件实现 UserRepository 接口，处理用户相关的数据库操作
package repository

import (
	"campus_hub_server/internal/model"

	"gorm.io/gorm"
)

// userRepository UserRepository 接口的实现
type userRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewUserRepository 创建 UserRepository 实例
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByUuid 根据 UUID 查找用户
func (r *userRepository) FindByUuid(uuid string) (*model.UserInfo, error) {
	var user model.UserInfo
	if err := r.db.First(&user, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 uuid=%s", uuid)
	}
	return &user, nil
}

// FindByTelephone 根据手机号查找用户
func (r *userRepository) FindByTelephone(telephone string) (*model.UserInfo, error) {
	var user model.UserInfo
	if err := r.db.First(&user, "telephone = ?", telephone).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 telephone=%s", telephone)
	}
	return &user, nil
}

// FindByUuids 批量根据 UUID 查找用户
func (r *userRepository) FindByUuids(uuids []string) ([]model.UserInfo, error) {
	var users []model.UserInfo
	if len(uuids) == 0 {
		return users, nil
	}
	if err := r.db.Where("uuid IN ?", uuids).Find(&users).Error; err != nil {
		return nil, wrapDBError(err, "批量查询用户")
	}
	return users, nil
}

// Create 创建新用户
func (r *userRepository) Create(user *model.UserInfo) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapDBError(err, "创建用户")
	}
	return nil
}

// UpdateUserInfo 更新用户信息（全字段更新）
func (r *userRepository) UpdateUserInfo(user *model.UserInfo) error {
	if err := r.db.Save(user).Error; err != nil {
		return wrapDBError(err, "更新用户")
	}
	return nil
}

// SearchByKeyword 按昵称/姓名/学号模糊搜索（分页）
func (r *userRepository) SearchByKeyword(keyword string, page, pageSize int) ([]model.UserInfo, int64, error) {
	var users []model.UserInfo
	var total int64

	offset, limit := normalizePage(page, pageSize)
	pattern := "%" + keyword + "%"
	query := r.db.Model(&model.UserInfo{}).
		Where("status = 0").
		Where("nickname LIKE ? OR fullname LIKE ? OR student_id LIKE ?", pattern, pattern, pattern)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "搜索用户总数")
	}
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, wrapDBError(err, "搜索用户")
	}
	return users, total, nil
}
