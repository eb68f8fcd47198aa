package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/comment_service/constant"
	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/models/events"
	"github.com/Xushengqwer/comment_service/service"
)

// AutoModerationHandler 消费自动审核服务的裁决，把评论状态改为裁决结果。
// 自动裁决与管理员操作走同一个 SetStatus，只是操作者固定为 system:auto-moderation。
type AutoModerationHandler struct {
	logger            *zap.Logger
	moderationService service.CommentModerationService
}

func NewAutoModerationHandler(logger *zap.Logger, moderationService service.CommentModerationService) *AutoModerationHandler {
	return &AutoModerationHandler{
		logger:            logger,
		moderationService: moderationService,
	}
}

func (h *AutoModerationHandler) Handle(ctx context.Context, msg kafka.Message) error {
	h.logger.Debug("AutoModerationHandler: 开始处理 Kafka 消息", zap.String("topic", msg.Topic))

	// 1. 解析裁决，无法解析的消息不重试
	var event events.AutoModerationVerdictEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("AutoModerationHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil
	}

	// 2. 裁决只能是终态之一，pending 没有意义
	status, err := enums.ParseCommentStatus(event.Verdict)
	if err != nil || status == enums.CommentPending {
		h.logger.Warn("AutoModerationHandler: 忽略非法裁决",
			zap.String("event_id", event.EventID),
			zap.Uint64("comment_id", event.CommentID),
			zap.String("verdict", event.Verdict))
		return nil
	}

	h.logger.Info("AutoModerationHandler: 成功解析裁决消息",
		zap.String("event_id", event.EventID),
		zap.Uint64("comment_id", event.CommentID),
		zap.String("verdict", string(status)),
		zap.Float64("score", event.Score),
		zap.String("model", event.Model))

	// 3. 应用裁决
	updateCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	change, err := h.moderationService.SetStatus(updateCtx, event.CommentID, status, constant.ActorAutoModeration)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			h.logger.Warn("AutoModerationHandler: 裁决的评论不存在", zap.Uint64("comment_id", event.CommentID))
			return nil
		}
		h.logger.Error("AutoModerationHandler: 应用裁决失败", zap.Error(err), zap.Uint64("comment_id", event.CommentID))
		return fmt.Errorf("AutoModerationHandler: 调用 SetStatus 失败: %w", err)
	}

	h.logger.Info("AutoModerationHandler: 裁决已应用",
		zap.Uint64("comment_id", event.CommentID),
		zap.Bool("changed", change.Changed))
	return nil
}
