// Package repository 提供数据访问层的具体实现
// 本文件实现 NotificationRepository 接口
package repository

import (
	"campus_hub_server/internal/model"

	"gorm.io/gorm"
)

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository 创建 NotificationRepository 实例
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create 创建通知
func (r *notificationRepository) Create(notification *model.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		return wrapDBError(err, "创建通知")
	}
	return nil
}

// FindByRecipient 分页查找用户的通知（最新在前）
func (r *notificationRepository) FindByRecipient(recipientUuid string, page, pageSize int) ([]model.Notification, int64, error) {
	var notifications []model.Notification
	var total int64

	offset, limit := normalizePage(page, pageSize)
	query := r.db.Model(&model.Notification{}).Where("recipient_uuid = ?", recipientUuid)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询通知总数 recipient=%s", recipientUuid)
	}
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&notifications).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "分页查询通知 recipient=%s", recipientUuid)
	}
	return notifications, total, nil
}

// MarkRead 标记单条通知已读
// 带 recipient 条件，防止标记他人的通知
func (r *notificationRepository) MarkRead(uuid, recipientUuid string) error {
	if err := r.db.Model(&model.Notification{}).Where("uuid = ? AND recipient_uuid = ?", uuid, recipientUuid).Update("is_read", true).Error; err != nil {
		return wrapDBErrorf(err, "标记通知已读 uuid=%s", uuid)
	}
	return nil
}

// MarkAllRead 标记用户全部通知已读
func (r *notificationRepository) MarkAllRead(recipientUuid string) error {
	if err := r.db.Model(&model.Notification{}).Where("recipient_uuid = ? AND is_read = false", recipientUuid).Update("is_read", true).Error; err != nil {
		return wrapDBErrorf(err, "标记全部已读 recipient=%s", recipientUuid)
	}
	return nil
}

// CountUnread 统计未读通知数
func (r *notificationRepository) CountUnread(recipientUuid string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Notification{}).Where("recipient_uuid = ? AND is_read = false", recipientUuid).Count(&count).Error; err != nil {
		return 0, wrapDBErrorf(err, "统计未读通知 recipient=%s", recipientUuid)
	}
	return count, nil
}
