package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"campus_hub_server/internal/dao/mysql/repository"
	"campus_hub_server/internal/model"
	"campus_hub_server/pkg/constants"
	"campus_hub_server/pkg/util/snowflake"

	"go.uber.org/zap"
)

// ==================== 发布端 ====================

// channelPublisher 进程内通道发布器
// 单机部署使用，事件直接进入分发器的消费通道
type channelPublisher struct {
	events chan *Event
}

// Publish 将事件放入通道
// 通道满时降级为丢弃并告警，通知属于尽力送达，不阻塞主请求链路
func (p *channelPublisher) Publish(ctx context.Context, event *Event) error {
	select {
	case p.events <- event:
		return nil
	default:
		zap.L().Warn("activity event channel full, event dropped",
			zap.Int8("type", event.Type),
			zap.String("recipient", event.RecipientUuid))
		return nil
	}
}

// kafkaPublisher Kafka 发布器
// 多实例部署使用，以接收者 uuid 作为分区键保证同一用户的事件有序
type kafkaPublisher struct{}

// Publish 序列化事件并写入 Kafka
func (p *kafkaPublisher) Publish(ctx context.Context, event *Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return KafkaService.WriteMessage(ctx, []byte(event.RecipientUuid), data)
}

// ==================== 分发器 ====================

// Dispatcher 活动事件分发器
// 消费事件，落库为通知记录，并向在线的接收者推送
type Dispatcher struct {
	repos  *repository.Repositories
	events chan *Event // channel 模式的消费通道
	mode   string
}

// 全局分发器实例
var dispatcher *Dispatcher

// Init 按配置的事件模式初始化管道，返回发布器供 Service 层注入
// mode 为 "kafka" 时需先调用 KafkaService.KafkaInit()
func Init(mode string, repos *repository.Repositories) EventPublisher {
	dispatcher = &Dispatcher{
		repos:  repos,
		events: make(chan *Event, constants.CHANNEL_SIZE),
		mode:   mode,
	}

	var publisher EventPublisher
	if mode == "kafka" {
		KafkaService.KafkaInit()
		publisher = &kafkaPublisher{}
		go dispatcher.consumeKafka()
	} else {
		publisher = &channelPublisher{events: dispatcher.events}
		go dispatcher.consumeChannel()
	}
	zap.L().Info("activity event dispatcher started", zap.String("mode", mode))
	return publisher
}

// Close 关闭事件管道
func Close() {
	if dispatcher == nil {
		return
	}
	if dispatcher.mode == "kafka" {
		KafkaService.KafkaClose()
	} else {
		close(dispatcher.events)
	}
}

// consumeChannel 消费进程内通道的事件
func (d *Dispatcher) consumeChannel() {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error(fmt.Sprintf("event dispatcher panic: %v", r))
			go d.consumeChannel() // 重启
		}
	}()

	for event := range d.events {
		if event != nil {
			d.handleEvent(event)
		}
	}
}

// consumeKafka 消费 Kafka 的事件
func (d *Dispatcher) consumeKafka() {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error(fmt.Sprintf("event dispatcher panic: %v", r))
			go d.consumeKafka() // 重启
		}
	}()

	ctx := context.Background()
	for {
		kafkaMessage, err := KafkaService.EventReader.ReadMessage(ctx)
		if err != nil {
			zap.L().Error(err.Error())
			continue
		}
		var event Event
		if err := json.Unmarshal(kafkaMessage.Value, &event); err != nil {
			zap.L().Error(err.Error())
			continue
		}
		d.handleEvent(&event)
	}
}

// notificationPayload WebSocket 推送的通知载荷
type notificationPayload struct {
	Uuid      string `json:"uuid"`
	Type      int8   `json:"type"`
	ActorUuid string `json:"actorUuid"`
	RefUuid   string `json:"refUuid"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// handleEvent 处理单个事件：落库为通知记录，在线则推送
func (d *Dispatcher) handleEvent(event *Event) {
	// 自己触发的事件不通知自己
	if event.RecipientUuid == "" || event.RecipientUuid == event.ActorUuid {
		return
	}

	notification := &model.Notification{
		Uuid:          snowflake.GenerateIDString(),
		RecipientUuid: event.RecipientUuid,
		ActorUuid:     event.ActorUuid,
		Type:          event.Type,
		RefUuid:       event.RefUuid,
		Content:       event.Content,
		IsRead:        false,
	}
	if err := d.repos.Notification.Create(notification); err != nil {
		zap.L().Error("create notification failed", zap.Error(err))
		return
	}

	// 推送给在线用户，离线用户通过通知列表接口拉取
	sender := GetNotificationSender()
	if sender == nil || !sender.IsOnline(event.RecipientUuid) {
		return
	}
	payload, err := json.Marshal(notificationPayload{
		Uuid:      notification.Uuid,
		Type:      notification.Type,
		ActorUuid: notification.ActorUuid,
		RefUuid:   notification.RefUuid,
		Content:   notification.Content,
		CreatedAt: event.CreatedAt.Format("2006-01-02 15:04:05"),
	})
	if err != nil {
		zap.L().Error(err.Error())
		return
	}
	if err := sender.SendToUser(event.RecipientUuid, payload); err != nil {
		zap.L().Error("push notification failed", zap.Error(err))
	}
}
