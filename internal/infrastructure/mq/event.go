// Package mq 提供活动事件管道
// Service 层在成员变更、点赞、评论、好友申请等场景发布事件，
// 事件经管道（进程内通道或 Kafka）送达分发器，落库为通知并推送给在线用户
package mq

import "time"

// Event 活动事件
// RecipientUuid 为事件的接收者，ActorUuid 为触发事件的用户
type Event struct {
	Type          int8      `json:"type"`          // 通知类型，见 notification_type_enum
	RecipientUuid string    `json:"recipientUuid"` // 接收者 uuid
	ActorUuid     string    `json:"actorUuid"`     // 触发者 uuid
	RefUuid       string    `json:"refUuid"`       // 关联对象 uuid（群/帖子/用户）
	Content       string    `json:"content"`       // 通知文案
	CreatedAt     time.Time `json:"createdAt"`     // 事件产生时间
}

// NewEvent 创建活动事件
func NewEvent(eventType int8, recipientUuid, actorUuid, refUuid, content string) *Event {
	return &Event{
		Type:          eventType,
		RecipientUuid: recipientUuid,
		ActorUuid:     actorUuid,
		RefUuid:       refUuid,
		Content:       content,
		CreatedAt:     time.Now(),
	}
}
