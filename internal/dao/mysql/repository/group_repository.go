// Package repository 提供数据访问层的具体实现
// 本文件实现 GroupRepository 接口，处理群组相关的数据库操作
package repository

import (
	"campus_hub_server/internal/model"

	"gorm.io/gorm"
)

// groupRepository GroupRepository 接口的实现
type groupRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewGroupRepository 创建 GroupRepository 实例
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// FindByUuid 根据 UUID 查找群组
// 软删除的群组由 GORM 默认过滤，读到即不存在
func (r *groupRepository) FindByUuid(uuid string) (*model.GroupInfo, error) {
	var group model.GroupInfo
	if err := r.db.First(&group, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群组 uuid=%s", uuid)
	}
	return &group, nil
}

// FindBySlug 根据机构内 slug 查找群组
// 包含软删除的记录：slug 永久占用，避免软删群组的 slug 被复用后产生歧义链接
func (r *groupRepository) FindBySlug(institutionUuid, slug string) (*model.GroupInfo, error) {
	var group model.GroupInfo
	if err := r.db.Unscoped().First(&group, "institution_uuid = ? AND slug = ?", institutionUuid, slug).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群组 slug=%s", slug)
	}
	return &group, nil
}

// FindByOwnerId 根据群主ID查找其创建的所有群组
func (r *groupRepository) FindByOwnerId(ownerId string) ([]model.GroupInfo, error) {
	var groups []model.GroupInfo
	if err := r.db.Where("owner_id = ?", ownerId).Find(&groups).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群组 owner_id=%s", ownerId)
	}
	return groups, nil
}

// GetGroupList 分页查找机构下的群组
func (r *groupRepository) GetGroupList(institutionUuid string, page, pageSize int) ([]model.GroupInfo, int64, error) {
	var groups []model.GroupInfo
	var total int64

	offset, limit := normalizePage(page, pageSize)
	query := r.db.Model(&model.GroupInfo{}).Where("institution_uuid = ?", institutionUuid)

	// 先查询总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "查询群组总数")
	}
	// 再分页查询
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&groups).Error; err != nil {
		return nil, 0, wrapDBError(err, "分页查询群组")
	}
	return groups, total, nil
}

// Create 创建群组
func (r *groupRepository) Create(group *model.GroupInfo) error {
	if err := r.db.Create(group).Error; err != nil {
		return wrapDBError(err, "创建群组")
	}
	return nil
}

// Update 更新群组信息（全字段更新）
func (r *groupRepository) Update(group *model.GroupInfo) error {
	if err := r.db.Save(group).Error; err != nil {
		return wrapDBError(err, "更新群组")
	}
	return nil
}

// IncrementMemberCount 增加群成员计数
// 使用 UpdateColumn + gorm.Expr 实现原子自增
func (r *groupRepository) IncrementMemberCount(uuid string) error {
	if err := r.db.Model(&model.GroupInfo{}).Where("uuid = ?", uuid).UpdateColumn("members_count", gorm.Expr("members_count + ?", 1)).Error; err != nil {
		return wrapDBErrorf(err, "增加群成员数 uuid=%s", uuid)
	}
	return nil
}

// DecrementMemberCount 减少群成员计数
func (r *groupRepository) DecrementMemberCount(uuid string) error {
	if err := r.db.Model(&model.GroupInfo{}).Where("uuid = ?", uuid).UpdateColumn("members_count", gorm.Expr("members_count - ?", 1)).Error; err != nil {
		return wrapDBErrorf(err, "减少群成员数 uuid=%s", uuid)
	}
	return nil
}

// IncrementPostCount 增加帖子计数
func (r *groupRepository) IncrementPostCount(uuid string) error {
	if err := r.db.Model(&model.GroupInfo{}).Where("uuid = ?", uuid).UpdateColumn("posts_count", gorm.Expr("posts_count + ?", 1)).Error; err != nil {
		return wrapDBErrorf(err, "增加帖子数 uuid=%s", uuid)
	}
	return nil
}

// DecrementPostCount 减少帖子计数
func (r *groupRepository) DecrementPostCount(uuid string) error {
	if err := r.db.Model(&model.GroupInfo{}).Where("uuid = ?", uuid).UpdateColumn("posts_count", gorm.Expr("posts_count - ?", 1)).Error; err != nil {
		return wrapDBErrorf(err, "减少帖子数 uuid=%s", uuid)
	}
	return nil
}

// SoftDelete 软删除群组
func (r *groupRepository) SoftDelete(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.GroupInfo{}).Error; err != nil {
		return wrapDBErrorf(err, "删除群组 uuid=%s", uuid)
	}
	return nil
}

// SearchByKeyword 按名称/简介模糊搜索（分页）
func (r *groupRepository) SearchByKeyword(keyword string, page, pageSize int) ([]model.GroupInfo, int64, error) {
	var groups []model.GroupInfo
	var total int64

	offset, limit := normalizePage(page, pageSize)
	pattern := "%" + keyword + "%"
	query := r.db.Model(&model.GroupInfo{}).
		Where("name LIKE ? OR description LIKE ?", pattern, pattern)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "搜索群组总数")
	}
	if err := query.Order("members_count DESC").Offset(offset).Limit(limit).Find(&groups).Error; err != nil {
		return nil, 0, wrapDBError(err, "搜索群组")
	}
	return groups, total, nil
}
