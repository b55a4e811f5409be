package respond

// NotificationRespond 通知响应
// 使用位置:
//   - internal/service/notification/service.go: GetNotificationList
type NotificationRespond struct {
	Uuid      string `json:"uuid"`
	Type      int8   `json:"type"`
	ActorUuid string `json:"actor_uuid"`
	RefUuid   string `json:"ref_uuid"`
	Content   string `json:"content"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// GetNotificationListRespond 通知列表响应
// 使用位置:
//   - internal/service/notification/service.go: GetNotificationList
type GetNotificationListRespond struct {
	Notifications []NotificationRespond `json:"notifications"`
	UnreadCount   int64                 `json:"unread_count"`
	Pagination    Pagination            `json:"pagination"`
}
