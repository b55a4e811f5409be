// Package repository 提供数据访问层的具体实现
// 本文件实现 CommentRepository 接口
package repository

import (
	"campus_hub_server/internal/model"

	"gorm.io/gorm"
)

// commentRepository CommentRepository 接口的实现
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建 CommentRepository 实例
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// FindByUuid 根据 UUID 查找评论
func (r *commentRepository) FindByUuid(uuid string) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.First(&comment, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询评论 uuid=%s", uuid)
	}
	return &comment, nil
}

// FindByPostUuid 分页查找帖子的评论（最早在前）
func (r *commentRepository) FindByPostUuid(postUuid string, page, pageSize int) ([]model.Comment, int64, error) {
	var comments []model.Comment
	var total int64

	offset, limit := normalizePage(page, pageSize)
	query := r.db.Model(&model.Comment{}).Where("post_uuid = ?", postUuid)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询评论总数 post_uuid=%s", postUuid)
	}
	if err := query.Order("created_at ASC").Offset(offset).Limit(limit).Find(&comments).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "分页查询评论 post_uuid=%s", postUuid)
	}
	return comments, total, nil
}

// Create 创建评论
func (r *commentRepository) Create(comment *model.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return wrapDBError(err, "创建评论")
	}
	return nil
}

// SoftDelete 软删除评论
func (r *commentRepository) SoftDelete(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.Comment{}).Error; err != nil {
		return wrapDBErrorf(err, "删除评论 uuid=%s", uuid)
	}
	return nil
}

// SoftDeleteByPostUuids 批量软删除评论（帖子级联）
func (r *commentRepository) SoftDeleteByPostUuids(postUuids []string) error {
	if len(postUuids) == 0 {
		return nil
	}
	if err := r.db.Where("post_uuid IN ?", postUuids).Delete(&model.Comment{}).Error; err != nil {
		return wrapDBError(err, "批量删除评论")
	}
	return nil
}
