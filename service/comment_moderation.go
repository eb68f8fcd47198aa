package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/comment_service/config"
	"github.com/Xushengqwer/comment_service/models/dto"
	"github.com/Xushengqwer/comment_service/models/entities"
	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/models/events"
	"github.com/Xushengqwer/comment_service/models/vo"
	"github.com/Xushengqwer/comment_service/myErrors"
	"github.com/Xushengqwer/comment_service/repo/mysql"
	"github.com/Xushengqwer/comment_service/repo/redis"
	"github.com/Xushengqwer/comment_service/workflow"
)

// CommentModerationService 评论审核服务。
// - 评论状态是宽松状态机：任意状态可以转到任意状态，相同状态视为成功的无操作。
// - 软删除与状态相互独立：删除/恢复不改状态，已删除的评论仍然可以改状态。
// - 只有真正发生变化的操作才会写库、写审计日志、发事件、清统计缓存。
type CommentModerationService interface {
	// SetStatus 修改单条评论的状态。评论不存在返回 ErrRepoNotFound，状态非法返回 ErrInvalidStatus。
	SetStatus(ctx context.Context, id uint64, status enums.CommentStatus, actor string) (*vo.StatusChangeVO, error)

	// SoftDelete 软删除评论，幂等。
	SoftDelete(ctx context.Context, id uint64, actor string) (*vo.DeletionChangeVO, error)

	// Restore 恢复评论，幂等。
	Restore(ctx context.Context, id uint64, actor string) (*vo.DeletionChangeVO, error)

	// BulkApply 对一组评论逐个执行同一操作。
	// - 去重后为空返回 ErrEmptySelection，且不访问存储。
	// - 批量读取目标失败时整体失败 (ErrTransportFailure)，不写入任何数据。
	// - 单个 ID 的失败不影响其他 ID，结果中逐个列出。
	BulkApply(ctx context.Context, ids []uint64, action enums.BulkAction, actor string) (*vo.BulkResultVO, error)

	// List 按条件分页查询评论。
	List(ctx context.Context, req *dto.ListCommentsRequest) (*vo.CommentListVO, error)

	// ListByDeletionScope 返回删除范围内的全部评论 ID。
	ListByDeletionScope(ctx context.Context, scope enums.DeletionScope) ([]uint64, error)

	// Stats 返回删除范围内各状态的评论数量，优先读缓存。
	Stats(ctx context.Context, scope enums.DeletionScope) (*vo.CommentStatsVO, error)

	// RefreshStats 重新计算所有删除范围的统计并写入缓存。
	RefreshStats(ctx context.Context) error

	// Ingest 保存评论服务同步过来的新评论。
	Ingest(ctx context.Context, comment *entities.Comment) error
}

type commentModerationService struct {
	commentRepo mysql.CommentRepository
	audit       auditRecorder
	statsCache  redis.StatsCache
	publisher   EventPublisher
	cfg         config.ModerationConfig
	logger      *zap.Logger
	now         func() time.Time
}

// NewCommentModerationService 初始化评论审核服务。
func NewCommentModerationService(
	commentRepo mysql.CommentRepository,
	logRepo mysql.ModerationLogRepository,
	statsCache redis.StatsCache,
	publisher EventPublisher,
	cfg config.ModerationConfig,
	logger *zap.Logger,
) CommentModerationService {
	return &commentModerationService{
		commentRepo: commentRepo,
		audit:       auditRecorder{repo: logRepo, logger: logger},
		statsCache:  statsCache,
		publisher:   publisher,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *commentModerationService) SetStatus(ctx context.Context, id uint64, status enums.CommentStatus, actor string) (*vo.StatusChangeVO, error) {
	// 1. 非法状态在访问存储之前拒绝
	if !status.Valid() {
		return nil, fmt.Errorf("评论(ID: %d)目标状态 %q: %w", id, status, myErrors.ErrInvalidStatus)
	}

	// 2. 读取当前评论 (含已软删除的)
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoErr(err, "获取评论(ID: %d)失败", id)
	}

	// 3. 应用转换并落库
	transition, err := s.applyStatus(ctx, comment, status, actor)
	if err != nil {
		return nil, err
	}
	if transition.Changed {
		s.invalidateStats(ctx)
	}

	return &vo.StatusChangeVO{
		Comment:   vo.NewCommentVO(comment),
		From:      transition.From,
		To:        transition.To,
		Changed:   transition.Changed,
		Celebrate: transition.Celebrate,
	}, nil
}

// applyStatus 在已加载的评论上执行状态转换。无变化时不产生任何副作用。
func (s *commentModerationService) applyStatus(ctx context.Context, comment *entities.Comment, status enums.CommentStatus, actor string) (workflow.Transition, error) {
	transition, err := workflow.ApplyStatus(comment, status)
	if err != nil {
		return transition, err
	}
	if !transition.Changed {
		s.logger.Debug("评论状态未变化，跳过写入", zap.Uint64("commentID", comment.ID), zap.String("status", string(status)))
		return transition, nil
	}

	if err := s.commentRepo.UpdateStatus(ctx, comment.ID, status); err != nil {
		// 写入失败时把内存中的实体还原，调用方拿到的仍是旧值
		comment.Status = transition.From
		return transition, wrapRepoErr(err, "更新评论(ID: %d)状态失败", comment.ID)
	}
	comment.UpdatedAt = s.now()

	s.logger.Info("评论状态已变更",
		zap.Uint64("commentID", comment.ID),
		zap.String("from", string(transition.From)),
		zap.String("to", string(transition.To)),
		zap.String("actor", actor),
		zap.Bool("deleted", comment.IsDeleted()))

	s.audit.record(ctx, &entities.ModerationLog{
		EntityType: enums.EntityComment,
		EntityID:   comment.ID,
		Action:     enums.ActionSetStatus,
		FromState:  string(transition.From),
		ToState:    string(transition.To),
		Actor:      actor,
		Deleted:    comment.IsDeleted(),
		CreatedAt:  s.now(),
	})
	publish(ctx, s.logger, "comment.status_changed", func(pubCtx context.Context) error {
		return s.publisher.SendCommentStatusChanged(pubCtx, events.CommentStatusChangedEvent{
			CommentID: comment.ID,
			PostID:    comment.PostID,
			From:      string(transition.From),
			To:        string(transition.To),
			Actor:     actor,
			Deleted:   comment.IsDeleted(),
		})
	})
	return transition, nil
}

func (s *commentModerationService) SoftDelete(ctx context.Context, id uint64, actor string) (*vo.DeletionChangeVO, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoErr(err, "获取评论(ID: %d)失败", id)
	}
	changed, err := s.applySoftDelete(ctx, comment, actor)
	if err != nil {
		return nil, err
	}
	if changed {
		s.invalidateStats(ctx)
	}
	return &vo.DeletionChangeVO{Comment: vo.NewCommentVO(comment), Changed: changed}, nil
}

func (s *commentModerationService) applySoftDelete(ctx context.Context, comment *entities.Comment, actor string) (bool, error) {
	before := comment.DeletedAt
	if !workflow.SoftDelete(comment, s.now()) {
		s.logger.Debug("评论已处于删除状态，跳过写入", zap.Uint64("commentID", comment.ID))
		return false, nil
	}
	if err := s.commentRepo.MarkDeleted(ctx, comment.ID, comment.DeletedAt.Time); err != nil {
		comment.DeletedAt = before
		return false, wrapRepoErr(err, "软删除评论(ID: %d)失败", comment.ID)
	}
	s.afterDeletionChange(ctx, comment, enums.ActionSoftDelete, actor)
	return true, nil
}

func (s *commentModerationService) Restore(ctx context.Context, id uint64, actor string) (*vo.DeletionChangeVO, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoErr(err, "获取评论(ID: %d)失败", id)
	}
	changed, err := s.applyRestore(ctx, comment, actor)
	if err != nil {
		return nil, err
	}
	if changed {
		s.invalidateStats(ctx)
	}
	return &vo.DeletionChangeVO{Comment: vo.NewCommentVO(comment), Changed: changed}, nil
}

func (s *commentModerationService) applyRestore(ctx context.Context, comment *entities.Comment, actor string) (bool, error) {
	before := comment.DeletedAt
	if !workflow.Restore(comment) {
		s.logger.Debug("评论未被删除，跳过恢复", zap.Uint64("commentID", comment.ID))
		return false, nil
	}
	if err := s.commentRepo.ClearDeleted(ctx, comment.ID); err != nil {
		comment.DeletedAt = before
		return false, wrapRepoErr(err, "恢复评论(ID: %d)失败", comment.ID)
	}
	s.afterDeletionChange(ctx, comment, enums.ActionRestore, actor)
	return true, nil
}

// afterDeletionChange 删除 / 恢复生效后的日志、审计与事件。
func (s *commentModerationService) afterDeletionChange(ctx context.Context, comment *entities.Comment, action enums.ModerationAction, actor string) {
	deleted := comment.IsDeleted()
	s.logger.Info("评论删除状态已变更",
		zap.Uint64("commentID", comment.ID),
		zap.String("action", string(action)),
		zap.String("actor", actor))

	s.audit.record(ctx, &entities.ModerationLog{
		EntityType: enums.EntityComment,
		EntityID:   comment.ID,
		Action:     action,
		FromState:  string(comment.Status),
		ToState:    string(comment.Status),
		Actor:      actor,
		Deleted:    deleted,
		CreatedAt:  s.now(),
	})
	publish(ctx, s.logger, "comment.deletion", func(pubCtx context.Context) error {
		return s.publisher.SendCommentDeletion(pubCtx, events.CommentDeletionEvent{
			CommentID: comment.ID,
			PostID:    comment.PostID,
			Deleted:   deleted,
			Actor:     actor,
		})
	})
}

func (s *commentModerationService) BulkApply(ctx context.Context, ids []uint64, action enums.BulkAction, actor string) (*vo.BulkResultVO, error) {
	// 1. 去重，空集合在访问存储之前拒绝
	unique := dedupeIDs(ids)
	if len(unique) == 0 {
		return nil, myErrors.ErrEmptySelection
	}
	if !action.Valid() {
		return nil, fmt.Errorf("批量操作 %q: %w", action, myErrors.ErrInvalidInput)
	}

	// 2. 一次性读取全部目标；读取失败视为整批失败，不做任何写入
	comments, err := s.commentRepo.GetByIDs(ctx, unique)
	if err != nil {
		sentry.CaptureException(err)
		return nil, fmt.Errorf("批量读取评论失败: %w: %w", myErrors.ErrTransportFailure, err)
	}
	byID := make(map[uint64]*entities.Comment, len(comments))
	for _, c := range comments {
		byID[c.ID] = c
	}

	result := &vo.BulkResultVO{
		Action:    action,
		Requested: len(ids),
		Processed: len(unique),
		Succeeded: make([]uint64, 0, len(unique)),
		Failed:    make([]vo.BulkItemFailure, 0),
	}

	// 3. 逐个 ID 独立执行
	changedAny := false
	for _, id := range unique {
		comment, ok := byID[id]
		if !ok {
			result.Failed = append(result.Failed, vo.BulkItemFailure{ID: id, Code: vo.BulkFailureNotFound, Reason: "评论不存在"})
			continue
		}
		changed, opErr := s.applyBulkItem(ctx, comment, action, actor)
		if opErr != nil {
			code := vo.BulkFailureStoreError
			if errors.Is(opErr, commonerrors.ErrRepoNotFound) {
				code = vo.BulkFailureNotFound
			}
			result.Failed = append(result.Failed, vo.BulkItemFailure{ID: id, Code: code, Reason: opErr.Error()})
			continue
		}
		changedAny = changedAny || changed
		result.Succeeded = append(result.Succeeded, id)
	}
	if changedAny {
		s.invalidateStats(ctx)
	}

	s.logger.Info("批量审核操作完成",
		zap.String("action", string(action)),
		zap.String("actor", actor),
		zap.Int("processed", result.Processed),
		zap.Int("succeeded", len(result.Succeeded)),
		zap.Int("failed", len(result.Failed)))

	// 4. 所有目标都因存储故障失败时，视为整批失败
	if len(result.Succeeded) == 0 && allStoreErrors(result.Failed) {
		return result, fmt.Errorf("批量操作 %s 全部失败: %w", action, myErrors.ErrTransportFailure)
	}
	return result, nil
}

func (s *commentModerationService) applyBulkItem(ctx context.Context, comment *entities.Comment, action enums.BulkAction, actor string) (bool, error) {
	if target, ok := action.TargetStatus(); ok {
		t, err := s.applyStatus(ctx, comment, target, actor)
		return t.Changed, err
	}
	switch action {
	case enums.BulkDelete:
		return s.applySoftDelete(ctx, comment, actor)
	case enums.BulkRestore:
		return s.applyRestore(ctx, comment, actor)
	default:
		return false, fmt.Errorf("批量操作 %q: %w", action, myErrors.ErrInvalidInput)
	}
}

func (s *commentModerationService) List(ctx context.Context, req *dto.ListCommentsRequest) (*vo.CommentListVO, error) {
	// 1. 解析筛选条件
	scope, err := enums.ParseDeletionScope(req.DeletedStatus)
	if err != nil {
		return nil, err
	}
	filter := mysql.CommentFilter{Search: req.Search, PostID: req.PostID, Scope: scope}
	if req.Status != "" {
		status, parseErr := enums.ParseCommentStatus(req.Status)
		if parseErr != nil {
			return nil, parseErr
		}
		filter.Status = &status
	}
	filter.Page, filter.PageSize = normalizePage(s.cfg, req.Page, req.PageSize)

	// 2. 查询并转换
	comments, total, err := s.commentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("查询评论列表失败: %w", err)
	}
	return &vo.CommentListVO{
		Comments: vo.NewCommentVOs(comments),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (s *commentModerationService) ListByDeletionScope(ctx context.Context, scope enums.DeletionScope) ([]uint64, error) {
	if !scope.Valid() {
		return nil, fmt.Errorf("删除范围 %q: %w", scope, myErrors.ErrInvalidInput)
	}
	ids, err := s.commentRepo.ListIDsByScope(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("按删除范围查询评论失败: %w", err)
	}
	return ids, nil
}

func (s *commentModerationService) Stats(ctx context.Context, scope enums.DeletionScope) (*vo.CommentStatsVO, error) {
	if !scope.Valid() {
		return nil, fmt.Errorf("删除范围 %q: %w", scope, myErrors.ErrInvalidInput)
	}

	// 1. 先读缓存，缓存故障时降级为直接查库
	counts, err := s.statsCache.Get(ctx, scope)
	if err == nil {
		return newStatsVO(scope, counts, true), nil
	}
	if !errors.Is(err, myErrors.ErrCacheMiss) {
		s.logger.Warn("读取审核统计缓存失败，回源查询", zap.Error(err))
	}

	// 2. 回源并回填缓存
	counts, err = s.commentRepo.CountByStatus(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("统计评论状态失败: %w", err)
	}
	if setErr := s.statsCache.Set(ctx, scope, counts, s.cfg.StatsTTL()); setErr != nil {
		s.logger.Warn("回填审核统计缓存失败", zap.Error(setErr))
	}
	return newStatsVO(scope, counts, false), nil
}

func (s *commentModerationService) RefreshStats(ctx context.Context) error {
	for _, scope := range enums.AllDeletionScopes {
		counts, err := s.commentRepo.CountByStatus(ctx, scope)
		if err != nil {
			return fmt.Errorf("统计评论状态(scope: %s)失败: %w", scope, err)
		}
		if err := s.statsCache.Set(ctx, scope, counts, s.cfg.StatsTTL()); err != nil {
			return fmt.Errorf("写入审核统计缓存(scope: %s)失败: %w", scope, err)
		}
	}
	s.logger.Debug("审核统计缓存已刷新")
	return nil
}

func (s *commentModerationService) Ingest(ctx context.Context, comment *entities.Comment) error {
	if comment.ID == 0 || comment.PostID == 0 {
		return fmt.Errorf("评论缺少 ID 或 PostID: %w", myErrors.ErrInvalidInput)
	}
	// 新评论统一从 pending 开始，外部传入的状态不被信任
	comment.Status = enums.CommentPending
	comment.DeletedAt = gorm.DeletedAt{}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return fmt.Errorf("保存评论(ID: %d)失败: %w", comment.ID, err)
	}
	s.invalidateStats(ctx)
	return nil
}

// invalidateStats 写操作后清理统计缓存，失败只记录。
func (s *commentModerationService) invalidateStats(ctx context.Context) {
	if err := s.statsCache.Invalidate(ctx); err != nil {
		s.logger.Warn("清理审核统计缓存失败", zap.Error(err))
	}
}

func newStatsVO(scope enums.DeletionScope, counts map[enums.CommentStatus]int64, cached bool) *vo.CommentStatsVO {
	out := &vo.CommentStatsVO{Scope: scope, Counts: make(map[string]int64, len(enums.AllCommentStatuses)), Cached: cached}
	for _, st := range enums.AllCommentStatuses {
		out.Counts[string(st)] = counts[st]
		out.Total += counts[st]
	}
	return out
}

// dedupeIDs 按首次出现的顺序去重。
func dedupeIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func allStoreErrors(failed []vo.BulkItemFailure) bool {
	if len(failed) == 0 {
		return false
	}
	for _, f := range failed {
		if f.Code != vo.BulkFailureStoreError {
			return false
		}
	}
	return true
}

// wrapRepoErr 包装仓库层错误，保留 ErrRepoNotFound 以便上层判断。
func wrapRepoErr(err error, format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, err)...)
}
