// Package repository 提供数据访问层的具体实现
// 本文件实现 FriendshipRepository 接口
package repository

import (
	"campus_hub_server/internal/model"

	"gorm.io/gorm"
)

// friendshipRepository FriendshipRepository 接口的实现
type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository 创建 FriendshipRepository 实例
func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

// FindBetween 查找两人之间的好友记录（不区分申请方向）
func (r *friendshipRepository) FindBetween(userA, userB string) (*model.Friendship, error) {
	var friendship model.Friendship
	if err := r.db.Where(
		"(requester_uuid = ? AND addressee_uuid = ?) OR (requester_uuid = ? AND addressee_uuid = ?)",
		userA, userB, userB, userA,
	).First(&friendship).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询好友关系 %s <-> %s", userA, userB)
	}
	return &friendship, nil
}

// Create 创建好友申请
func (r *friendshipRepository) Create(friendship *model.Friendship) error {
	if err := r.db.Create(friendship).Error; err != nil {
		return wrapDBError(err, "创建好友申请")
	}
	return nil
}

// UpdateStatus 更新好友关系状态
func (r *friendshipRepository) UpdateStatus(id uint, status int8) error {
	if err := r.db.Model(&model.Friendship{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return wrapDBErrorf(err, "更新好友状态 id=%d", id)
	}
	return nil
}

// Delete 删除好友关系（拒绝/解除，硬删除）
func (r *friendshipRepository) Delete(id uint) error {
	if err := r.db.Unscoped().Where("id = ?", id).Delete(&model.Friendship{}).Error; err != nil {
		return wrapDBErrorf(err, "删除好友关系 id=%d", id)
	}
	return nil
}

// FriendsOf 分页查找已确认的好友关系
func (r *friendshipRepository) FriendsOf(userUuid string, page, pageSize int) ([]model.Friendship, int64, error) {
	var friendships []model.Friendship
	var total int64

	offset, limit := normalizePage(page, pageSize)
	query := r.db.Model(&model.Friendship{}).
		Where("(requester_uuid = ? OR addressee_uuid = ?) AND status = 1", userUuid, userUuid)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询好友总数 user_uuid=%s", userUuid)
	}
	if err := query.Order("updated_at DESC").Offset(offset).Limit(limit).Find(&friendships).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "分页查询好友 user_uuid=%s", userUuid)
	}
	return friendships, total, nil
}

// PendingFor 查找待某用户确认的申请
func (r *friendshipRepository) PendingFor(userUuid string) ([]model.Friendship, error) {
	var friendships []model.Friendship
	if err := r.db.Where("addressee_uuid = ? AND status = 0", userUuid).Order("created_at DESC").Find(&friendships).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询待处理好友申请 user_uuid=%s", userUuid)
	}
	return friendships, nil
}
