// Package repository 提供数据访问层的具体实现
// 本文件实现 InteractionRepository 接口，处理帖子互动标记（点赞/已读/收藏）
// 三类标记的查询方式一致：按页收集帖子 ID 后一次 IN 查询批量取回，避免 N+1
package repository

import (
	"campus_hub_server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// interactionRepository InteractionRepository 接口的实现
type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository 创建 InteractionRepository 实例
func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

// LikedPostUuids 过滤出用户点赞过的帖子 ID 子集
func (r *interactionRepository) LikedPostUuids(userUuid string, postUuids []string) ([]string, error) {
	var uuids []string
	if len(postUuids) == 0 {
		return uuids, nil
	}
	if err := r.db.Model(&model.Reaction{}).Where("user_uuid = ? AND post_uuid IN ?", userUuid, postUuids).Pluck("post_uuid", &uuids).Error; err != nil {
		return nil, wrapDBErrorf(err, "批量查询点赞 user_uuid=%s", userUuid)
	}
	return uuids, nil
}

// ReadPostUuids 过滤出用户已读的帖子 ID 子集
func (r *interactionRepository) ReadPostUuids(userUuid string, postUuids []string) ([]string, error) {
	var uuids []string
	if len(postUuids) == 0 {
		return uuids, nil
	}
	if err := r.db.Model(&model.ReadPost{}).Where("user_uuid = ? AND post_uuid IN ?", userUuid, postUuids).Pluck("post_uuid", &uuids).Error; err != nil {
		return nil, wrapDBErrorf(err, "批量查询已读 user_uuid=%s", userUuid)
	}
	return uuids, nil
}

// SavedPostUuids 过滤出用户收藏的帖子 ID 子集
func (r *interactionRepository) SavedPostUuids(userUuid string, postUuids []string) ([]string, error) {
	var uuids []string
	if len(postUuids) == 0 {
		return uuids, nil
	}
	if err := r.db.Model(&model.SavedPost{}).Where("user_uuid = ? AND post_uuid IN ?", userUuid, postUuids).Pluck("post_uuid", &uuids).Error; err != nil {
		return nil, wrapDBErrorf(err, "批量查询收藏 user_uuid=%s", userUuid)
	}
	return uuids, nil
}

// FindLike 查找点赞记录
func (r *interactionRepository) FindLike(postUuid, userUuid string) (*model.Reaction, error) {
	var like model.Reaction
	if err := r.db.Where("post_uuid = ? AND user_uuid = ?", postUuid, userUuid).First(&like).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询点赞 post_uuid=%s user_uuid=%s", postUuid, userUuid)
	}
	return &like, nil
}

// CreateLike 创建点赞记录
func (r *interactionRepository) CreateLike(like *model.Reaction) error {
	if err := r.db.Create(like).Error; err != nil {
		return wrapDBError(err, "创建点赞")
	}
	return nil
}

// DeleteLike 删除点赞记录
func (r *interactionRepository) DeleteLike(postUuid, userUuid string) error {
	if err := r.db.Unscoped().Where("post_uuid = ? AND user_uuid = ?", postUuid, userUuid).Delete(&model.Reaction{}).Error; err != nil {
		return wrapDBErrorf(err, "删除点赞 post_uuid=%s user_uuid=%s", postUuid, userUuid)
	}
	return nil
}

// MarkRead 创建已读标记
// 重复标记是常态（每次打开帖子都会上报），用 ON CONFLICT DO NOTHING 幂等处理
func (r *interactionRepository) MarkRead(postUuid, userUuid string) error {
	read := model.ReadPost{PostUuid: postUuid, UserUuid: userUuid}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&read).Error; err != nil {
		return wrapDBErrorf(err, "标记已读 post_uuid=%s user_uuid=%s", postUuid, userUuid)
	}
	return nil
}

// CreateSave 创建收藏记录
func (r *interactionRepository) CreateSave(save *model.SavedPost) error {
	if err := r.db.Create(save).Error; err != nil {
		return wrapDBError(err, "创建收藏")
	}
	return nil
}

// DeleteSave 删除收藏记录
func (r *interactionRepository) DeleteSave(postUuid, userUuid string) error {
	if err := r.db.Unscoped().Where("post_uuid = ? AND user_uuid = ?", postUuid, userUuid).Delete(&model.SavedPost{}).Error; err != nil {
		return wrapDBErrorf(err, "删除收藏 post_uuid=%s user_uuid=%s", postUuid, userUuid)
	}
	return nil
}
