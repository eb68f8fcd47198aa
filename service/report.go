package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Xushengqwer/comment_service/config"
	"github.com/Xushengqwer/comment_service/models/dto"
	"github.com/Xushengqwer/comment_service/models/entities"
	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/models/events"
	"github.com/Xushengqwer/comment_service/models/vo"
	"github.com/Xushengqwer/comment_service/myErrors"
	"github.com/Xushengqwer/comment_service/repo/mysql"
	"github.com/Xushengqwer/comment_service/workflow"
)

// ReportService 举报处理服务。
// 举报是单向、一次性的流程：pending 只能处理一次，之后再处理返回 ErrAlreadyResolved。
// 处理举报不会改变被举报评论的状态，两者需要调用方分别操作。
type ReportService interface {
	// Resolve 处理举报，outcome 只能是 resolved 或 dismissed。
	Resolve(ctx context.Context, id uint64, outcome enums.ReportStatus, notes, reviewer string) (*vo.ReportVO, error)

	// List 按条件分页查询举报。
	List(ctx context.Context, req *dto.ListReportsRequest) (*vo.ReportListVO, error)

	// Ingest 保存用户提交的举报。
	Ingest(ctx context.Context, report *entities.CommentReport) error
}

type reportService struct {
	reportRepo mysql.ReportRepository
	audit      auditRecorder
	publisher  EventPublisher
	cfg        config.ModerationConfig
	logger     *zap.Logger
	now        func() time.Time
}

func NewReportService(
	reportRepo mysql.ReportRepository,
	logRepo mysql.ModerationLogRepository,
	publisher EventPublisher,
	cfg config.ModerationConfig,
	logger *zap.Logger,
) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		audit:      auditRecorder{repo: logRepo, logger: logger},
		publisher:  publisher,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *reportService) Resolve(ctx context.Context, id uint64, outcome enums.ReportStatus, notes, reviewer string) (*vo.ReportVO, error) {
	// 1. 处理结果必须是终态
	if err := workflow.ValidateOutcome(outcome); err != nil {
		return nil, err
	}

	// 2. 读取举报并在内存中校验转换，已处理的举报直接拒绝
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoErr(err, "获取举报(ID: %d)失败", id)
	}
	from := report.Status
	if err := workflow.ResolveReport(report, outcome, notes, reviewer, s.now()); err != nil {
		s.logger.Warn("拒绝处理举报", zap.Uint64("reportID", id), zap.String("status", string(from)), zap.Error(err))
		return nil, err
	}

	// 3. 条件更新落库：并发处理时只有一个请求能成功
	resolved, err := s.reportRepo.Resolve(ctx, id, mysql.ReportResolution{
		Outcome:    report.Status,
		Notes:      *report.ResolutionNotes,
		ReviewedBy: *report.ReviewedBy,
		ReviewedAt: *report.ReviewedAt,
	})
	if err != nil {
		if errors.Is(err, myErrors.ErrAlreadyResolved) {
			s.logger.Warn("举报已被其他请求处理", zap.Uint64("reportID", id))
		}
		return nil, wrapRepoErr(err, "处理举报(ID: %d)失败", id)
	}

	s.logger.Info("举报已处理",
		zap.Uint64("reportID", id),
		zap.Uint64("commentID", resolved.CommentID),
		zap.String("outcome", string(outcome)),
		zap.String("reviewer", reviewer))

	s.audit.record(ctx, &entities.ModerationLog{
		EntityType: enums.EntityReport,
		EntityID:   id,
		Action:     enums.ActionResolveReport,
		FromState:  string(from),
		ToState:    string(outcome),
		Actor:      reviewer,
		Note:       truncate(notes, 500),
		CreatedAt:  s.now(),
	})
	publish(ctx, s.logger, "comment_report.resolved", func(pubCtx context.Context) error {
		return s.publisher.SendReportResolved(pubCtx, events.ReportResolvedEvent{
			ReportID:   id,
			CommentID:  resolved.CommentID,
			Outcome:    string(outcome),
			ReviewedBy: reviewer,
		})
	})
	return vo.NewReportVO(resolved), nil
}

func (s *reportService) List(ctx context.Context, req *dto.ListReportsRequest) (*vo.ReportListVO, error) {
	filter, err := s.buildFilter(req)
	if err != nil {
		return nil, err
	}
	reports, total, err := s.reportRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("查询举报列表失败: %w", err)
	}
	// 待处理数量只用于后台角标，失败时不影响列表本身
	pending, err := s.reportRepo.CountPending(ctx)
	if err != nil {
		s.logger.Warn("统计待处理举报数量失败", zap.Error(err))
	}
	return &vo.ReportListVO{
		Reports:      vo.NewReportVOs(reports),
		Total:        total,
		PendingTotal: pending,
		Page:         filter.Page,
		PageSize:     filter.PageSize,
	}, nil
}

// buildFilter 把字符串形式的查询参数解析为仓库层的筛选条件。
func (s *reportService) buildFilter(req *dto.ListReportsRequest) (mysql.ReportFilter, error) {
	filter := mysql.ReportFilter{Search: req.Search}
	if req.Status != "" {
		st, err := enums.ParseReportStatus(req.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &st
	}
	if req.Category != "" {
		c, err := enums.ParseReportCategory(req.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}
	if req.Priority != "" {
		p, err := enums.ParseReportPriority(req.Priority)
		if err != nil {
			return filter, err
		}
		filter.Priority = &p
	}
	if req.ReporterType != "" {
		t, err := enums.ParseReporterType(req.ReporterType)
		if err != nil {
			return filter, err
		}
		filter.ReporterType = &t
	}
	if req.DateFrom != "" {
		from, err := time.Parse(time.DateOnly, req.DateFrom)
		if err != nil {
			return filter, fmt.Errorf("date_from 格式错误: %w", myErrors.ErrInvalidInput)
		}
		filter.DateFrom = &from
	}
	if req.DateTo != "" {
		to, err := time.Parse(time.DateOnly, req.DateTo)
		if err != nil {
			return filter, fmt.Errorf("date_to 格式错误: %w", myErrors.ErrInvalidInput)
		}
		// 结束日期包含当天
		end := to.AddDate(0, 0, 1)
		filter.DateTo = &end
	}
	filter.Page, filter.PageSize = normalizePage(s.cfg, req.Page, req.PageSize)
	return filter, nil
}

func (s *reportService) Ingest(ctx context.Context, report *entities.CommentReport) error {
	if report.ID == 0 || report.CommentID == 0 {
		return fmt.Errorf("举报缺少 ID 或 CommentID: %w", myErrors.ErrInvalidInput)
	}
	// 新举报一律从 pending 开始，处理字段为空
	report.Status = enums.ReportPending
	report.ResolutionNotes = nil
	report.ReviewedBy = nil
	report.ReviewedAt = nil
	if !report.Category.Valid() {
		report.Category = enums.CategoryOther
	}
	if !report.Priority.Valid() {
		report.Priority = enums.PriorityMedium
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return fmt.Errorf("保存举报(ID: %d)失败: %w", report.ID, err)
	}
	return nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
