package service

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/comment_service/config"
	"github.com/Xushengqwer/comment_service/models/entities"
	"github.com/Xushengqwer/comment_service/models/events"
	"github.com/Xushengqwer/comment_service/repo/mysql"
)

// EventPublisher 审核事件的发布方，由 producer.KafkaProducer 实现。
type EventPublisher interface {
	SendCommentStatusChanged(ctx context.Context, event events.CommentStatusChangedEvent) error
	SendCommentDeletion(ctx context.Context, event events.CommentDeletionEvent) error
	SendReportResolved(ctx context.Context, event events.ReportResolvedEvent) error
}

// publishTimeout 单个事件的发送超时。事件在状态写入之后发送，失败只记录不回滚。
const publishTimeout = 3 * time.Second

// publish 在与请求解耦的上下文中发送事件：调用方取消请求不会中断已经提交的状态变更的通知。
func publish(ctx context.Context, logger *zap.Logger, what string, send func(context.Context) error) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := send(pubCtx); err != nil {
		logger.Error("发送审核事件失败", zap.String("event", what), zap.Error(err))
		sentry.CaptureException(err)
	}
}

// auditRecorder 写审计日志。审计失败不影响审核操作本身的结果。
type auditRecorder struct {
	repo   mysql.ModerationLogRepository
	logger *zap.Logger
}

func (a auditRecorder) record(ctx context.Context, log *entities.ModerationLog) {
	if err := a.repo.Create(ctx, log); err != nil {
		a.logger.Error("写入审核日志失败，操作已生效",
			zap.Error(err),
			zap.String("entityType", string(log.EntityType)),
			zap.Uint64("entityID", log.EntityID),
			zap.String("action", string(log.Action)))
		sentry.CaptureException(err)
	}
}

// normalizePage 把调用方给出的页码与每页条数钳制到合法范围。
func normalizePage(cfg config.ModerationConfig, page, pageSize int) (int, int) {
	def, max := cfg.PageSizeBounds()
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize <= 0:
		pageSize = def
	case pageSize > max:
		pageSize = max
	}
	return page, pageSize
}
