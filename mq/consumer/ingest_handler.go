package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/comment_service/models/entities"
	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/models/events"
	"github.com/Xushengqwer/comment_service/myErrors"
	"github.com/Xushengqwer/comment_service/service"
)

// --- CommentCreatedHandler ---

// CommentCreatedHandler 把评论服务新提交的评论写入审核库
type CommentCreatedHandler struct {
	logger            *zap.Logger
	moderationService service.CommentModerationService
}

func NewCommentCreatedHandler(logger *zap.Logger, moderationService service.CommentModerationService) *CommentCreatedHandler {
	return &CommentCreatedHandler{logger: logger, moderationService: moderationService}
}

func (h *CommentCreatedHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.CommentCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("CommentCreatedHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil
	}

	comment := &entities.Comment{
		ID:           event.CommentID,
		PostID:       event.PostID,
		Body:         event.Body,
		AuthorUserID: event.AuthorUserID,
		GuestName:    event.GuestName,
		GuestEmail:   event.GuestEmail,
		CreatedAt:    event.CreatedAt,
	}

	ingestCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := h.moderationService.Ingest(ingestCtx, comment); err != nil {
		if myErrors.IsBusiness(err) {
			h.logger.Warn("CommentCreatedHandler: 丢弃非法评论消息", zap.String("event_id", event.EventID), zap.Error(err))
			return nil
		}
		return fmt.Errorf("CommentCreatedHandler: 保存评论失败: %w", err)
	}

	h.logger.Info("CommentCreatedHandler: 新评论已进入审核队列",
		zap.String("event_id", event.EventID),
		zap.Uint64("comment_id", event.CommentID),
		zap.Uint64("post_id", event.PostID))
	return nil
}

// --- ReportSubmittedHandler ---

// ReportSubmittedHandler 把用户举报写入审核库
type ReportSubmittedHandler struct {
	logger        *zap.Logger
	reportService service.ReportService
}

func NewReportSubmittedHandler(logger *zap.Logger, reportService service.ReportService) *ReportSubmittedHandler {
	return &ReportSubmittedHandler{logger: logger, reportService: reportService}
}

func (h *ReportSubmittedHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.ReportSubmittedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("ReportSubmittedHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil
	}

	// 分类、优先级无法识别时交给服务层兜底 (other / medium)
	category, _ := enums.ParseReportCategory(event.Category)
	priority, _ := enums.ParseReportPriority(event.Priority)

	report := &entities.CommentReport{
		ID:             event.ReportID,
		CommentID:      event.CommentID,
		Category:       category,
		Priority:       priority,
		Reason:         event.Reason,
		Description:    event.Description,
		ReporterUserID: event.ReporterUserID,
		ReporterIP:     event.ReporterIP,
		CreatedAt:      event.CreatedAt,
	}

	ingestCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := h.reportService.Ingest(ingestCtx, report); err != nil {
		if myErrors.IsBusiness(err) {
			h.logger.Warn("ReportSubmittedHandler: 丢弃非法举报消息", zap.String("event_id", event.EventID), zap.Error(err))
			return nil
		}
		return fmt.Errorf("ReportSubmittedHandler: 保存举报失败: %w", err)
	}

	h.logger.Info("ReportSubmittedHandler: 新举报已入库",
		zap.String("event_id", event.EventID),
		zap.Uint64("report_id", event.ReportID),
		zap.Uint64("comment_id", event.CommentID))
	return nil
}
