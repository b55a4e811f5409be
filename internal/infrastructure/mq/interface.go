package mq

import "context"

// EventPublisher 活动事件发布接口
// Service 层依赖此接口发布事件，不关心底层是进程内通道还是 Kafka
type EventPublisher interface {
	// Publish 发布活动事件
	// 自己触发的事件不会通知自己，RecipientUuid 等于 ActorUuid 时由调用方过滤
	Publish(ctx context.Context, event *Event) error
}

// NotificationSender 通知推送接口
// 用于解耦 MQ 层和 Gateway 层的依赖关系：
// 分发器只需知道"有个东西能把通知推给在线用户"，不需要知道 WebSocket 的具体实现
type NotificationSender interface {
	// SendToUser 向指定用户推送通知
	// 用户不在线时静默跳过，离线用户通过通知列表接口拉取
	SendToUser(userId string, payload []byte) error

	// IsOnline 判断用户是否在线
	IsOnline(userId string) bool
}

// notificationSender 用于存储注入的 NotificationSender 实现
var notificationSender NotificationSender

// SetNotificationSender 注入 NotificationSender 实现
func SetNotificationSender(sender NotificationSender) {
	notificationSender = sender
}

// GetNotificationSender 获取 NotificationSender 实现
func GetNotificationSender() NotificationSender {
	return notificationSender
}
