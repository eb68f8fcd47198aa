package producer

import (
	"context"

	"go.uber.org/zap"

	"github.com/Xushengqwer/comment_service/models/events"
)

// NopProducer 未配置 Kafka brokers 时使用：事件只记录 Debug 日志后丢弃
type NopProducer struct {
	logger *zap.Logger
}

func NewNopProducer(logger *zap.Logger) *NopProducer {
	return &NopProducer{logger: logger}
}

func (p *NopProducer) SendCommentStatusChanged(_ context.Context, event events.CommentStatusChangedEvent) error {
	p.logger.Debug("Kafka 未启用，丢弃评论状态变更事件", zap.Uint64("commentID", event.CommentID))
	return nil
}

func (p *NopProducer) SendCommentDeletion(_ context.Context, event events.CommentDeletionEvent) error {
	p.logger.Debug("Kafka 未启用，丢弃评论删除事件", zap.Uint64("commentID", event.CommentID))
	return nil
}

func (p *NopProducer) SendReportResolved(_ context.Context, event events.ReportResolvedEvent) error {
	p.logger.Debug("Kafka 未启用，丢弃举报处理事件", zap.Uint64("reportID", event.ReportID))
	return nil
}
