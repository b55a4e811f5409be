package mq

import (
	"context"
	"time"

	myconfig "campus_hub_server/internal/config"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// kafkaService 封装 Kafka 读写实例
// 仅在 eventMode 为 "kafka" 时初始化
type kafkaService struct {
	EventWriter *kafka.Writer
	EventReader *kafka.Reader
	KafkaConn   *kafka.Conn
}

var KafkaService = new(kafkaService)

// KafkaInit 初始化 Kafka 读写实例
func (k *kafkaService) KafkaInit() {
	kafkaConfig := myconfig.GetConfig().KafkaConfig
	k.EventWriter = &kafka.Writer{
		Addr:                   kafka.TCP(kafkaConfig.HostPort),
		Topic:                  kafkaConfig.EventTopic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           kafkaConfig.Timeout * time.Second,
		RequiredAcks:           kafka.RequireNone,
		AllowAutoTopicCreation: false,
	}
	k.EventReader = kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{kafkaConfig.HostPort},
		Topic:          kafkaConfig.EventTopic,
		CommitInterval: kafkaConfig.Timeout * time.Second,
		GroupID:        "activity_event",
		StartOffset:    kafka.LastOffset,
	})
}

// KafkaClose 关闭 Kafka 读写实例
func (k *kafkaService) KafkaClose() {
	if err := k.EventWriter.Close(); err != nil {
		zap.L().Error(err.Error())
	}
	if err := k.EventReader.Close(); err != nil {
		zap.L().Error(err.Error())
	}
}

// CreateTopic 创建活动事件 topic
// topic 已存在时 Kafka 会忽略本次创建
func (k *kafkaService) CreateTopic() {
	kafkaConfig := myconfig.GetConfig().KafkaConfig

	eventTopic := kafkaConfig.EventTopic

	// 连接至任意 kafka 节点
	var err error
	k.KafkaConn, err = kafka.Dial("tcp", kafkaConfig.HostPort)
	if err != nil {
		zap.L().Error(err.Error())
		return
	}

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             eventTopic,
			NumPartitions:     kafkaConfig.Partition,
			ReplicationFactor: 1,
		},
	}

	if err = k.KafkaConn.CreateTopics(topicConfigs...); err != nil {
		zap.L().Error(err.Error())
	}
}

// WriteMessage 向 Kafka 写入一条事件
func (k *kafkaService) WriteMessage(ctx context.Context, key, value []byte) error {
	return k.EventWriter.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}
