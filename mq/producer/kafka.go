package producer

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/comment_service/config"
	"github.com/Xushengqwer/comment_service/models/events"
)

// KafkaProducer 审核事件生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例。
// 审核事件在请求路径上同步发送，批量等待时间压低到 10ms。
func NewKafkaProducer(cfg config.KafkaConfig, logger *zap.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: cfg.Topics,
	}
}

// SendEvent 发送事件到指定 Kafka 主题，key 决定分区 (同一实体的事件保持顺序)。
func (p *KafkaProducer) SendEvent(ctx context.Context, topic, key string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("序列化 Kafka 事件失败", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("发送 Kafka 消息",
		zap.String("topic", topic),
		zap.String("key", key),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: eventBytes,
	})
	if err != nil {
		p.logger.Error("写入 Kafka 消息失败", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("成功发送 Kafka 消息", zap.String("topic", topic), zap.String("key", key))
	}
	return err
}

// SendCommentStatusChanged 发送评论状态变更事件。
func (p *KafkaProducer) SendCommentStatusChanged(ctx context.Context, event events.CommentStatusChangedEvent) error {
	// 1. 补齐事件元信息
	event.EventID = uuid.New().String()
	event.Timestamp = time.Now()

	// 2. 以评论 ID 作为分区 key
	return p.SendEvent(ctx, p.topics.CommentStatusChanged, strconv.FormatUint(event.CommentID, 10), event)
}

// SendCommentDeletion 发送评论软删除 / 恢复事件。
func (p *KafkaProducer) SendCommentDeletion(ctx context.Context, event events.CommentDeletionEvent) error {
	event.EventID = uuid.New().String()
	event.Timestamp = time.Now()
	return p.SendEvent(ctx, p.topics.CommentDeleted, strconv.FormatUint(event.CommentID, 10), event)
}

// SendReportResolved 发送举报处理完成事件。
func (p *KafkaProducer) SendReportResolved(ctx context.Context, event events.ReportResolvedEvent) error {
	event.EventID = uuid.New().String()
	event.Timestamp = time.Now()
	return p.SendEvent(ctx, p.topics.ReportResolved, strconv.FormatUint(event.ReportID, 10), event)
}

// Close 刷新缓冲区并关闭底层 writer。
func (p *KafkaProducer) Close() error {
	if err := p.writer.Close(); err != nil {
		p.logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		return err
	}
	p.logger.Info("Kafka 生产者已关闭")
	return nil
}
