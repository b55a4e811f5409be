package request

// GetNotificationListRequest 获取通知列表请求
// 使用位置:
//   - internal/handler/notification_handler.go: GetNotificationListHandler
//   - internal/service/notification/service.go: GetNotificationList
type GetNotificationListRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}
