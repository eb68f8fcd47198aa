package consumer

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/getsentry/sentry-go"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/comment_service/config"
	"github.com/Xushengqwer/comment_service/myErrors"
)

// handleTimeout 单次处理一条消息的超时时间
const handleTimeout = 30 * time.Second

// MessageHandler 处理单条审核相关的 Kafka 消息。
//   - 返回 nil：消息已处理完毕 (包括无法解析、按业务规则丢弃的消息)，偏移量会被提交。
//   - 返回业务错误 (myErrors.IsBusiness)：不重试，记录后提交偏移量。
//   - 返回其他错误：视为基础设施故障，按退避策略重试同一条消息，成功前不提交偏移量。
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// messageReader 是 kafka.Reader 中消费循环用到的部分
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer 单个 topic 的消费循环，至少一次投递：处理成功后才提交偏移量。
type Consumer struct {
	reader     messageReader
	handler    MessageHandler
	logger     *zap.Logger
	topic      string
	newBackOff func() backoff.BackOff
}

// NewConsumer 创建 Kafka Consumer 实例
func NewConsumer(cfg *appConfig.KafkaConfig, groupID string, topicName string, handler MessageHandler, logger *zap.Logger) (*Consumer, error) {
	if topicName == "" {
		return nil, errors.New("kafka topic 名称不能为空")
	}
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers 配置不能为空")
	}

	logger.Info("初始化 Kafka 消费者",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", topicName),
		zap.String("group_id", groupID))

	// 不设置 CommitInterval，CommitMessages 同步提交
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    topicName,
		GroupID:  groupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
		MaxWait:  3 * time.Second,
	})
	return newConsumer(reader, topicName, handler, logger, defaultBackOff), nil
}

func newConsumer(reader messageReader, topic string, handler MessageHandler, logger *zap.Logger, newBackOff func() backoff.BackOff) *Consumer {
	return &Consumer{
		reader:     reader,
		handler:    handler,
		logger:     logger,
		topic:      topic,
		newBackOff: newBackOff,
	}
}

// defaultBackOff 基础设施故障时的重试间隔：0.5s 起步，最长 30s，不设总时长上限。
// 一直失败的消息会阻塞当前分区，直到故障恢复或进程退出 (未提交，重启后重新投递)。
func defaultBackOff() backoff.BackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(500*time.Millisecond),
		backoff.WithMaxInterval(30*time.Second),
		backoff.WithMaxElapsedTime(0),
	)
}

// Start 启动消费者循环，直到 ctx 取消或 Reader 关闭
func (c *Consumer) Start(ctx context.Context) {
	c.logger.Info("Kafka 消费者已启动", zap.String("topic", c.topic))
	defer c.logger.Info("Kafka 消费者已停止", zap.String("topic", c.topic))

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if isShutdown(ctx, err) {
				c.logger.Warn("消费者读取循环退出", zap.String("topic", c.topic), zap.Error(err))
				return
			}
			c.logger.Error("拉取 Kafka 消息失败", zap.String("topic", c.topic), zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		// 1. 处理，基础设施故障时原地重试
		if err := c.process(ctx, msg); err != nil {
			c.logger.Warn("消费者退出前消息未处理完成，偏移量不提交",
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.Error(err))
			return
		}

		// 2. 处理完成后提交偏移量
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if isShutdown(ctx, err) {
				return
			}
			// 提交失败时消息可能被重复投递，处理器按消息 ID 幂等写入
			c.logger.Error("提交 Kafka 偏移量失败",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err))
		}
	}
}

// process 处理单条消息。返回错误表示消息没有处理成功 (ctx 被取消或重试次数用尽)，偏移量不能提交。
func (c *Consumer) process(ctx context.Context, msg kafka.Message) error {
	attempt := 0
	op := func() error {
		attempt++
		handleCtx, cancel := context.WithTimeout(ctx, handleTimeout)
		defer cancel()
		err := c.handler.Handle(handleCtx, msg)
		if err != nil && myErrors.IsBusiness(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, next time.Duration) {
		c.logger.Error("处理 Kafka 消息失败，稍后重试",
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
			zap.Duration("retryIn", next),
			zap.Error(err))
		if attempt == 1 {
			sentry.CaptureException(err)
		}
	}

	err := backoff.RetryNotify(op, backoff.WithContext(c.newBackOff(), ctx), notify)
	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return ctx.Err()
	case myErrors.IsBusiness(err):
		c.logger.Warn("丢弃不符合业务规则的 Kafka 消息",
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
			zap.Error(err))
		return nil
	default:
		// 退避策略给出了上限且已用尽，交给下一次启动重新投递
		return err
	}
}

func isShutdown(ctx context.Context, err error) bool {
	return ctx.Err() != nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, os.ErrClosed)
}

// Close 关闭 Kafka Reader
func (c *Consumer) Close() error {
	c.logger.Info("正在关闭 Kafka 消费者...", zap.String("topic", c.topic))
	if err := c.reader.Close(); err != nil {
		c.logger.Error("关闭 Kafka Reader 失败", zap.Error(err), zap.String("topic", c.topic))
		return err
	}
	c.logger.Info("Kafka 消费者已成功关闭", zap.String("topic", c.topic))
	return nil
}
