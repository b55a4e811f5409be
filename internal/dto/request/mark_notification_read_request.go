package request

// MarkNotificationReadRequest 标记通知已读请求
// NotificationUuid 为空时标记全部已读
// 使用位置:
//   - internal/handler/notification_handler.go: MarkNotificationReadHandler
//   - internal/service/notification/service.go: MarkRead
type MarkNotificationReadRequest struct {
	NotificationUuid string `json:"notification_uuid"`
}
