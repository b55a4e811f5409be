// Package repository 提供数据访问层的具体实现
// 本文件实现 PostRepository 接口，处理帖子相关的数据库操作
// 信息流查询把 Service 层组装的可见性条件翻译为 SQL 谓词，
// 计数与列表共用同一条件，保证分页元数据一致
package repository

import (
	"campus_hub_server/internal/model"
	"campus_hub_server/pkg/enum/post/post_type_enum"
	"campus_hub_server/pkg/enum/post/post_visibility_enum"

	"gorm.io/gorm"
)

// postRepository PostRepository 接口的实现
type postRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewPostRepository 创建 PostRepository 实例
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// FindByUuid 根据 UUID 查找帖子
func (r *postRepository) FindByUuid(uuid string) (*model.Post, error) {
	var post model.Post
	if err := r.db.First(&post, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询帖子 uuid=%s", uuid)
	}
	return &post, nil
}

// feedQuery 将 FeedFilter 翻译为查询条件
func (r *postRepository) feedQuery(filter FeedFilter) *gorm.DB {
	query := r.db.Model(&model.Post{}).
		Where("group_uuid = ? AND is_archived = false", filter.GroupUuid)

	// 可见性：成员可见 PUBLIC/CONNECTIONS，非成员仅 PUBLIC；自己的帖子始终可见
	// CONNECTIONS 目前与 PUBLIC 同等对待，好友图校验未接入信息流过滤
	if filter.MemberView {
		query = query.Where("visibility IN ? OR author_uuid = ?",
			[]int8{post_visibility_enum.PUBLIC, post_visibility_enum.CONNECTIONS}, filter.ViewerUuid)
	} else {
		query = query.Where("visibility = ? OR author_uuid = ?",
			post_visibility_enum.PUBLIC, filter.ViewerUuid)
	}

	// 审核：协管员以上可见未审核帖，其他人只能看到已审核的和自己的
	if !filter.ModeratorView {
		query = query.Where("is_approved = true OR author_uuid = ?", filter.ViewerUuid)
	}

	if filter.PinnedOnly {
		query = query.Where("is_pinned = true")
	}
	if filter.BuySellOnly {
		query = query.Where("type = ?", post_type_enum.BUY_SELL)
	}
	return query
}

// FindFeed 按过滤条件分页查找帖子（最新在前）
func (r *postRepository) FindFeed(filter FeedFilter) ([]model.Post, int64, error) {
	var posts []model.Post
	var total int64

	offset, limit := normalizePage(filter.Page, filter.PageSize)
	query := r.feedQuery(filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询信息流总数 group_uuid=%s", filter.GroupUuid)
	}
	if err := query.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "分页查询信息流 group_uuid=%s", filter.GroupUuid)
	}
	return posts, total, nil
}

// FindUuidsByGroupUuid 查找群组下所有未删除帖子的 UUID
// 用于群组删除时级联软删除帖子及其评论
func (r *postRepository) FindUuidsByGroupUuid(groupUuid string) ([]string, error) {
	var uuids []string
	if err := r.db.Model(&model.Post{}).Where("group_uuid = ?", groupUuid).Pluck("uuid", &uuids).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群帖子ID group_uuid=%s", groupUuid)
	}
	return uuids, nil
}

// Create 创建帖子
func (r *postRepository) Create(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return wrapDBError(err, "创建帖子")
	}
	return nil
}

// Update 更新帖子（全字段更新）
func (r *postRepository) Update(post *model.Post) error {
	if err := r.db.Save(post).Error; err != nil {
		return wrapDBError(err, "更新帖子")
	}
	return nil
}

// SetPinned 设置/取消置顶
func (r *postRepository) SetPinned(uuid string, pinned bool) error {
	if err := r.db.Model(&model.Post{}).Where("uuid = ?", uuid).Update("is_pinned", pinned).Error; err != nil {
		return wrapDBErrorf(err, "更新置顶状态 uuid=%s", uuid)
	}
	return nil
}

// SetApproved 更新审核状态
func (r *postRepository) SetApproved(uuid string, approved bool) error {
	if err := r.db.Model(&model.Post{}).Where("uuid = ?", uuid).Update("is_approved", approved).Error; err != nil {
		return wrapDBErrorf(err, "更新审核状态 uuid=%s", uuid)
	}
	return nil
}

// IncrementLikeCount 点赞数原子增减
func (r *postRepository) IncrementLikeCount(uuid string, delta int) error {
	if err := r.db.Model(&model.Post{}).Where("uuid = ?", uuid).UpdateColumn("likes_count", gorm.Expr("likes_count + ?", delta)).Error; err != nil {
		return wrapDBErrorf(err, "更新点赞数 uuid=%s", uuid)
	}
	return nil
}

// IncrementCommentCount 评论数原子增减
func (r *postRepository) IncrementCommentCount(uuid string, delta int) error {
	if err := r.db.Model(&model.Post{}).Where("uuid = ?", uuid).UpdateColumn("comments_count", gorm.Expr("comments_count + ?", delta)).Error; err != nil {
		return wrapDBErrorf(err, "更新评论数 uuid=%s", uuid)
	}
	return nil
}

// SoftDelete 软删除帖子
func (r *postRepository) SoftDelete(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.Post{}).Error; err != nil {
		return wrapDBErrorf(err, "删除帖子 uuid=%s", uuid)
	}
	return nil
}

// SoftDeleteByUuids 批量软删除帖子（群组删除级联）
func (r *postRepository) SoftDeleteByUuids(uuids []string) error {
	if len(uuids) == 0 {
		return nil
	}
	if err := r.db.Where("uuid IN ?", uuids).Delete(&model.Post{}).Error; err != nil {
		return wrapDBError(err, "批量删除帖子")
	}
	return nil
}

// SearchByKeyword 按正文模糊搜索公开帖（分页）
// 仅覆盖 PUBLIC 可见性的已审核帖子，群组级权限在 Service 层补充过滤
func (r *postRepository) SearchByKeyword(keyword string, page, pageSize int) ([]model.Post, int64, error) {
	var posts []model.Post
	var total int64

	offset, limit := normalizePage(page, pageSize)
	query := r.db.Model(&model.Post{}).
		Where("visibility = ? AND is_approved = true AND is_archived = false", post_visibility_enum.PUBLIC).
		Where("content LIKE ?", "%"+keyword+"%")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "搜索帖子总数")
	}
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, 0, wrapDBError(err, "搜索帖子")
	}
	return posts, total, nil
}
