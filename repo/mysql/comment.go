package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/comment_service/models/entities"
	"github.com/Xushengqwer/comment_service/models/enums"
)

// CommentFilter 管理后台评论列表的查询条件 (已在服务层完成解析与钳制)
type CommentFilter struct {
	Search   string               // 正文 / 游客名 / 游客邮箱模糊匹配，空表示不过滤
	Status   *enums.CommentStatus // nil 表示不过滤
	PostID   *uint64              // nil 表示不过滤
	Scope    enums.DeletionScope  // 删除范围
	Page     int                  // 从 1 开始
	PageSize int
}

// CommentRepository 评论实体存储。
// - 所有读写都通过 Unscoped() 执行，软删除的评论仍可按 ID 访问，删除范围由调用方显式给出。
// - 只有 UpdateStatus / MarkDeleted / ClearDeleted 会改写 status 与 deleted_at。
type CommentRepository interface {
	// Create 写入一条外部提交的评论；同一 ID 重复写入时忽略 (消费端重放安全)。
	Create(ctx context.Context, comment *entities.Comment) error

	// GetByID 按 ID 获取评论，包括已软删除的。未找到返回 commonerrors.ErrRepoNotFound。
	GetByID(ctx context.Context, id uint64) (*entities.Comment, error)

	// GetByIDs 一次查询批量获取评论，不存在的 ID 直接缺席，不报错。
	GetByIDs(ctx context.Context, ids []uint64) ([]*entities.Comment, error)

	// UpdateStatus 覆盖写评论状态。
	UpdateStatus(ctx context.Context, id uint64, status enums.CommentStatus) error

	// MarkDeleted 设置 deleted_at。
	MarkDeleted(ctx context.Context, id uint64, at time.Time) error

	// ClearDeleted 清除 deleted_at。
	ClearDeleted(ctx context.Context, id uint64) error

	// List 按条件分页查询，按 ID 倒序。
	List(ctx context.Context, filter CommentFilter) ([]*entities.Comment, int64, error)

	// ListIDsByScope 返回删除范围内的全部评论 ID，按 ID 升序。
	ListIDsByScope(ctx context.Context, scope enums.DeletionScope) ([]uint64, error)

	// CountByStatus 统计删除范围内每个状态的评论数量，缺失的状态计为 0。
	CountByStatus(ctx context.Context, scope enums.DeletionScope) (map[enums.CommentStatus]int64, error)

	// ListDeletedBefore 返回 deleted_at 早于 cutoff 的评论，最多 limit 条。
	ListDeletedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Comment, error)

	// PurgeByIDs 在一个事务内锁定 ids 中仍处于软删除状态的评论，先执行 beforeDelete，成功后再物理删除。
	// 返回实际删除的评论。期间已被恢复的评论不会出现在结果里，beforeDelete 失败时不删除任何数据。
	PurgeByIDs(ctx context.Context, ids []uint64, beforeDelete PurgeHook) ([]*entities.Comment, error)
}

// PurgeHook 在物理删除前拿到即将被删除的评论 (例如归档)，返回错误时整批回滚。
type PurgeHook func(ctx context.Context, doomed []*entities.Comment) error

type commentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCommentRepository 是 commentRepository 的构造函数。
func NewCommentRepository(db *gorm.DB, logger *zap.Logger) CommentRepository {
	return &commentRepository{db: db, logger: logger}
}

func (r *commentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	if !comment.Status.Valid() {
		comment.Status = enums.CommentPending
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(comment).Error
	if err != nil {
		r.logger.Error("写入评论失败", zap.Error(err), zap.Uint64("commentID", comment.ID))
		return err
	}
	r.logger.Debug("写入评论成功", zap.Uint64("commentID", comment.ID), zap.Uint64("postID", comment.PostID))
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint64) (*entities.Comment, error) {
	var comment entities.Comment
	err := r.db.WithContext(ctx).Unscoped().Where("id = ?", id).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("尝试获取不存在的评论", zap.Uint64("commentID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取评论失败", zap.Error(err), zap.Uint64("commentID", id))
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) GetByIDs(ctx context.Context, ids []uint64) ([]*entities.Comment, error) {
	comments := make([]*entities.Comment, 0, len(ids))
	if len(ids) == 0 {
		return comments, nil
	}
	if err := r.db.WithContext(ctx).Unscoped().Where("id IN ?", ids).Order("id ASC").Find(&comments).Error; err != nil {
		r.logger.Error("批量获取评论失败", zap.Error(err), zap.Int("idCount", len(ids)))
		return nil, err
	}
	r.logger.Debug("批量获取评论成功", zap.Int("requested", len(ids)), zap.Int("found", len(comments)))
	return comments, nil
}

func (r *commentRepository) UpdateStatus(ctx context.Context, id uint64, status enums.CommentStatus) error {
	return r.updateFields(ctx, id, map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}, "更新评论状态")
}

func (r *commentRepository) MarkDeleted(ctx context.Context, id uint64, at time.Time) error {
	return r.updateFields(ctx, id, map[string]interface{}{
		"deleted_at": at,
		"updated_at": time.Now(),
	}, "软删除评论")
}

func (r *commentRepository) ClearDeleted(ctx context.Context, id uint64) error {
	return r.updateFields(ctx, id, map[string]interface{}{
		"deleted_at": nil,
		"updated_at": time.Now(),
	}, "恢复评论")
}

// updateFields 按 ID 更新指定字段，未命中任何行时返回 ErrRepoNotFound。
func (r *commentRepository) updateFields(ctx context.Context, id uint64, fields map[string]interface{}, op string) error {
	result := r.db.WithContext(ctx).
		Unscoped().
		Model(&entities.Comment{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		r.logger.Error(op+"数据库出错", zap.Error(result.Error), zap.Uint64("commentID", id))
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Warn(op+"时评论不存在", zap.Uint64("commentID", id))
		return commonerrors.ErrRepoNotFound
	}
	r.logger.Debug(op+"成功", zap.Uint64("commentID", id))
	return nil
}

func (r *commentRepository) List(ctx context.Context, filter CommentFilter) ([]*entities.Comment, int64, error) {
	comments := make([]*entities.Comment, 0)
	dbQuery := filter.Scope.Apply(r.db.WithContext(ctx).Unscoped().Model(&entities.Comment{}))

	// --- 动态构建查询条件 ---
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		dbQuery = dbQuery.Where("(body LIKE ? OR guest_name LIKE ? OR guest_email LIKE ?)", like, like, like)
	}
	if filter.Status != nil {
		dbQuery = dbQuery.Where("status = ?", *filter.Status)
	}
	if filter.PostID != nil {
		dbQuery = dbQuery.Where("post_id = ?", *filter.PostID)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		r.logger.Error("按条件查询评论计数失败", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return comments, 0, nil
	}

	offset := (filter.Page - 1) * filter.PageSize
	if err := dbQuery.Order("id DESC").Limit(filter.PageSize).Offset(offset).Find(&comments).Error; err != nil {
		r.logger.Error("按条件查询评论分页数据失败", zap.Error(err))
		return nil, 0, err
	}
	r.logger.Debug("按条件查询评论成功",
		zap.Int("page", filter.Page),
		zap.Int("pageSize", filter.PageSize),
		zap.Int64("total", total),
		zap.String("scope", string(filter.Scope)))
	return comments, total, nil
}

func (r *commentRepository) ListIDsByScope(ctx context.Context, scope enums.DeletionScope) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := scope.Apply(r.db.WithContext(ctx).Unscoped().Model(&entities.Comment{})).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		r.logger.Error("按删除范围查询评论 ID 失败", zap.Error(err), zap.String("scope", string(scope)))
		return nil, err
	}
	return ids, nil
}

// statusCount 用于接收 GROUP BY 的结果行
type statusCount struct {
	Status enums.CommentStatus
	Count  int64
}

func (r *commentRepository) CountByStatus(ctx context.Context, scope enums.DeletionScope) (map[enums.CommentStatus]int64, error) {
	var rows []statusCount
	err := scope.Apply(r.db.WithContext(ctx).Unscoped().Model(&entities.Comment{})).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("按状态统计评论失败", zap.Error(err), zap.String("scope", string(scope)))
		return nil, err
	}

	counts := make(map[enums.CommentStatus]int64, len(enums.AllCommentStatuses))
	for _, s := range enums.AllCommentStatuses {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *commentRepository) ListDeletedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Comment, error) {
	comments := make([]*entities.Comment, 0)
	err := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Order("id ASC").
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		r.logger.Error("查询待清理评论失败", zap.Error(err), zap.Time("cutoff", cutoff))
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) PurgeByIDs(ctx context.Context, ids []uint64, beforeDelete PurgeHook) ([]*entities.Comment, error) {
	purged := make([]*entities.Comment, 0, len(ids))
	if len(ids) == 0 {
		return purged, nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 锁定仍处于软删除状态的行，并发的恢复操作会等待本事务结束
		if err := tx.Unscoped().
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ? AND deleted_at IS NOT NULL", ids).
			Order("id ASC").
			Find(&purged).Error; err != nil {
			return err
		}
		if len(purged) == 0 {
			return nil
		}

		// 2. 删除前的回调 (归档)
		if beforeDelete != nil {
			if err := beforeDelete(ctx, purged); err != nil {
				return err
			}
		}

		// 3. 只删除第 1 步锁定的行
		lockedIDs := make([]uint64, len(purged))
		for i, c := range purged {
			lockedIDs[i] = c.ID
		}
		return tx.Unscoped().
			Where("id IN ? AND deleted_at IS NOT NULL", lockedIDs).
			Delete(&entities.Comment{}).Error
	})
	if err != nil {
		r.logger.Error("物理删除评论失败", zap.Error(err), zap.Int("idCount", len(ids)))
		return nil, err
	}
	r.logger.Info("物理删除评论完成", zap.Int("requested", len(ids)), zap.Int("purged", len(purged)))
	return purged, nil
}
