// Package repository 提供数据访问层的具体实现
// 本文件实现 GroupMemberRepository 接口，处理群成员相关的数据库操作
package repository

import (
	"campus_hub_server/internal/model"

	"gorm.io/gorm"
)

// groupMemberRepository GroupMemberRepository 接口的实现
type groupMemberRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewGroupMemberRepository 创建 GroupMemberRepository 实例
func NewGroupMemberRepository(db *gorm.DB) GroupMemberRepository {
	return &groupMemberRepository{db: db}
}

// FindByGroupAndUser 根据群组和用户查找成员记录（任意状态）
// 用于成员状态机的状态前置检查
func (r *groupMemberRepository) FindByGroupAndUser(groupUuid, userUuid string) (*model.GroupMember, error) {
	var member model.GroupMember
	if err := r.db.Where("group_uuid = ? AND user_uuid = ?", groupUuid, userUuid).First(&member).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群成员 group_uuid=%s user_uuid=%s", groupUuid, userUuid)
	}
	return &member, nil
}

// FindByGroupAndStatus 分页查找指定状态的成员
// 用于成员列表（JOINED）和待审核申请列表（PENDING）
func (r *groupMemberRepository) FindByGroupAndStatus(groupUuid string, status int8, page, pageSize int) ([]model.GroupMember, int64, error) {
	var members []model.GroupMember
	var total int64

	offset, limit := normalizePage(page, pageSize)
	query := r.db.Model(&model.GroupMember{}).Where("group_uuid = ? AND status = ?", groupUuid, status)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询群成员总数 group_uuid=%s", groupUuid)
	}
	if err := query.Order("created_at ASC").Offset(offset).Limit(limit).Find(&members).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "分页查询群成员 group_uuid=%s", groupUuid)
	}
	return members, total, nil
}

// FindJoinedByUser 查找用户已加入的所有群成员记录
func (r *groupMemberRepository) FindJoinedByUser(userUuid string) ([]model.GroupMember, error) {
	var members []model.GroupMember
	if err := r.db.Where("user_uuid = ? AND status = 0", userUuid).Find(&members).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户所在群 user_uuid=%s", userUuid)
	}
	return members, nil
}

// Create 创建成员记录
// (group_uuid, user_uuid) 唯一索引保证并发加群时只有一个写入者成功
func (r *groupMemberRepository) Create(member *model.GroupMember) error {
	if err := r.db.Create(member).Error; err != nil {
		return wrapDBError(err, "创建群成员")
	}
	return nil
}

// UpdateRole 更新成员角色
func (r *groupMemberRepository) UpdateRole(groupUuid, userUuid string, role int8) error {
	if err := r.db.Model(&model.GroupMember{}).Where("group_uuid = ? AND user_uuid = ?", groupUuid, userUuid).Update("role", role).Error; err != nil {
		return wrapDBErrorf(err, "更新成员角色 group_uuid=%s user_uuid=%s", groupUuid, userUuid)
	}
	return nil
}

// UpdateStatus 更新成员状态
func (r *groupMemberRepository) UpdateStatus(groupUuid, userUuid string, status int8) error {
	if err := r.db.Model(&model.GroupMember{}).Where("group_uuid = ? AND user_uuid = ?", groupUuid, userUuid).Update("status", status).Error; err != nil {
		return wrapDBErrorf(err, "更新成员状态 group_uuid=%s user_uuid=%s", groupUuid, userUuid)
	}
	return nil
}

// Delete 硬删除成员记录
// 退群/拒绝申请/移除成员走硬删除；封禁保留记录用于阻止再次加入
func (r *groupMemberRepository) Delete(groupUuid, userUuid string) error {
	if err := r.db.Unscoped().Where("group_uuid = ? AND user_uuid = ?", groupUuid, userUuid).Delete(&model.GroupMember{}).Error; err != nil {
		return wrapDBErrorf(err, "删除群成员 group_uuid=%s user_uuid=%s", groupUuid, userUuid)
	}
	return nil
}

// SoftDeleteByGroupUuid 软删除群组的所有成员记录
// 用于群组删除级联
func (r *groupMemberRepository) SoftDeleteByGroupUuid(groupUuid string) error {
	if err := r.db.Where("group_uuid = ?", groupUuid).Delete(&model.GroupMember{}).Error; err != nil {
		return wrapDBErrorf(err, "删除群所有成员 group_uuid=%s", groupUuid)
	}
	return nil
}

// FindMembersWithUserInfo 查询已加入成员详细信息（包含用户基本资料，分页）
// 通过 JOIN 查询关联用户表获取昵称和头像
func (r *groupMemberRepository) FindMembersWithUserInfo(groupUuid string, page, pageSize int) ([]GroupMemberWithUserInfo, int64, error) {
	var members []GroupMemberWithUserInfo
	var total int64

	offset, limit := normalizePage(page, pageSize)
	base := r.db.Table("group_member").
		Where("group_member.group_uuid = ? AND group_member.status = 0 AND group_member.deleted_at IS NULL", groupUuid)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询群成员总数 group_uuid=%s", groupUuid)
	}

	// 使用 LEFT JOIN 关联 user_info 表
	if err := base.
		Select("user_info.uuid as user_id, user_info.nickname, user_info.avatar, group_member.role").
		Joins("LEFT JOIN user_info ON group_member.user_uuid = user_info.uuid").
		Order("group_member.role DESC, group_member.created_at ASC").
		Offset(offset).Limit(limit).
		Scan(&members).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询群成员详情 group_uuid=%s", groupUuid)
	}
	return members, total, nil
}
