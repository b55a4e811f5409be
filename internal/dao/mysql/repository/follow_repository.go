// Package repository 提供数据访问层的具体实现
// 本文件实现 FollowRepository 接口
package repository

import (
	"campus_hub_server/internal/model"

	"gorm.io/gorm"
)

// followRepository FollowRepository 接口的实现
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository 创建 FollowRepository 实例
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Find 查找关注记录
func (r *followRepository) Find(followerUuid, followeeUuid string) (*model.Follow, error) {
	var follow model.Follow
	if err := r.db.Where("follower_uuid = ? AND followee_uuid = ?", followerUuid, followeeUuid).First(&follow).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询关注 follower=%s followee=%s", followerUuid, followeeUuid)
	}
	return &follow, nil
}

// Create 创建关注
func (r *followRepository) Create(follow *model.Follow) error {
	if err := r.db.Create(follow).Error; err != nil {
		return wrapDBError(err, "创建关注")
	}
	return nil
}

// Delete 取消关注（硬删除）
func (r *followRepository) Delete(followerUuid, followeeUuid string) error {
	if err := r.db.Unscoped().Where("follower_uuid = ? AND followee_uuid = ?", followerUuid, followeeUuid).Delete(&model.Follow{}).Error; err != nil {
		return wrapDBErrorf(err, "取消关注 follower=%s followee=%s", followerUuid, followeeUuid)
	}
	return nil
}

// FollowersOf 分页查找关注某用户的人
func (r *followRepository) FollowersOf(userUuid string, page, pageSize int) ([]model.Follow, int64, error) {
	var follows []model.Follow
	var total int64

	offset, limit := normalizePage(page, pageSize)
	query := r.db.Model(&model.Follow{}).Where("followee_uuid = ?", userUuid)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询粉丝总数 user_uuid=%s", userUuid)
	}
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&follows).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "分页查询粉丝 user_uuid=%s", userUuid)
	}
	return follows, total, nil
}

// FollowingOf 分页查找某用户关注的人
func (r *followRepository) FollowingOf(userUuid string, page, pageSize int) ([]model.Follow, int64, error) {
	var follows []model.Follow
	var total int64

	offset, limit := normalizePage(page, pageSize)
	query := r.db.Model(&model.Follow{}).Where("follower_uuid = ?", userUuid)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询关注总数 user_uuid=%s", userUuid)
	}
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&follows).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "分页查询关注 user_uuid=%s", userUuid)
	}
	return follows, total, nil
}
