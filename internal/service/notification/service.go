// Package notification 实现通知业务逻辑
// 通知由事件分发器落库产生，本包只负责查询和已读标记
package notification

import (
	"campus_hub_server/internal/dao/mysql/repository"
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/dto/respond"
)

// notificationService 通知业务逻辑实现
type notificationService struct {
	repos *repository.Repositories
}

// NewNotificationService 构造函数
func NewNotificationService(repos *repository.Repositories) *notificationService {
	return &notificationService{repos: repos}
}

// GetNotificationList 分页获取当前用户的通知（最新在前），附带未读数
func (n *notificationService) GetNotificationList(userUuid string, req request.GetNotificationListRequest) (*respond.GetNotificationListRespond, error) {
	notifications, total, err := n.repos.Notification.FindByRecipient(userUuid, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	unread, err := n.repos.Notification.CountUnread(userUuid)
	if err != nil {
		return nil, err
	}

	rsp := &respond.GetNotificationListRespond{
		Notifications: make([]respond.NotificationRespond, 0, len(notifications)),
		UnreadCount:   unread,
		Pagination:    respond.NewPagination(total, req.Page, req.PageSize),
	}
	for i := range notifications {
		rsp.Notifications = append(rsp.Notifications, respond.NotificationRespond{
			Uuid:      notifications[i].Uuid,
			Type:      notifications[i].Type,
			ActorUuid: notifications[i].ActorUuid,
			RefUuid:   notifications[i].RefUuid,
			Content:   notifications[i].Content,
			IsRead:    notifications[i].IsRead,
			CreatedAt: notifications[i].CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return rsp, nil
}

// MarkRead 标记通知已读，uuid 为空时标记全部
// 单条标记会校验归属，只能标记自己的通知
func (n *notificationService) MarkRead(userUuid string, req request.MarkNotificationReadRequest) error {
	if req.NotificationUuid == "" {
		return n.repos.Notification.MarkAllRead(userUuid)
	}
	return n.repos.Notification.MarkRead(req.NotificationUuid, userUuid)
}
