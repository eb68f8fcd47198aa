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
	"github.com/Xushengqwer/comment_service/myErrors"
)

// ReportFilter 举报列表的查询条件
type ReportFilter struct {
	Search       string
	Status       *enums.ReportStatus
	Category     *enums.ReportCategory
	Priority     *enums.ReportPriority
	ReporterType *enums.ReporterType
	DateFrom     *time.Time // created_at >= DateFrom
	DateTo       *time.Time // created_at < DateTo
	Page         int
	PageSize     int
}

// ReportResolution 一次举报处理要写入的字段
type ReportResolution struct {
	Outcome    enums.ReportStatus
	Notes      string
	ReviewedBy string
	ReviewedAt time.Time
}

// ReportRepository 举报存储
type ReportRepository interface {
	// Create 写入一条用户举报；同一 ID 重复写入时忽略。
	Create(ctx context.Context, report *entities.CommentReport) error

	// GetByID 未找到返回 commonerrors.ErrRepoNotFound。
	GetByID(ctx context.Context, id uint64) (*entities.CommentReport, error)

	// Resolve 以条件更新的方式处理举报：只有仍处于 pending 的行会被改写。
	// - 举报不存在返回 commonerrors.ErrRepoNotFound
	// - 举报已处理返回 myErrors.ErrAlreadyResolved，已有的处理字段保持不变
	Resolve(ctx context.Context, id uint64, res ReportResolution) (*entities.CommentReport, error)

	// List 按条件分页查询，按创建时间倒序。
	List(ctx context.Context, filter ReportFilter) ([]*entities.CommentReport, int64, error)

	// CountPending 统计待处理的举报数量。
	CountPending(ctx context.Context) (int64, error)
}

type reportRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewReportRepository(db *gorm.DB, logger *zap.Logger) ReportRepository {
	return &reportRepository{db: db, logger: logger}
}

func (r *reportRepository) Create(ctx context.Context, report *entities.CommentReport) error {
	if report.Status == "" {
		report.Status = enums.ReportPending
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(report).Error
	if err != nil {
		r.logger.Error("写入举报失败", zap.Error(err), zap.Uint64("reportID", report.ID))
		return err
	}
	r.logger.Debug("写入举报成功", zap.Uint64("reportID", report.ID), zap.Uint64("commentID", report.CommentID))
	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, id uint64) (*entities.CommentReport, error) {
	var report entities.CommentReport
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("尝试获取不存在的举报", zap.Uint64("reportID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取举报失败", zap.Error(err), zap.Uint64("reportID", id))
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) Resolve(ctx context.Context, id uint64, res ReportResolution) (*entities.CommentReport, error) {
	// 1. 条件更新：WHERE status = 'pending' 保证处理字段只会被写一次
	result := r.db.WithContext(ctx).
		Model(&entities.CommentReport{}).
		Where("id = ? AND status = ?", id, enums.ReportPending).
		Updates(map[string]interface{}{
			"status":           res.Outcome,
			"resolution_notes": res.Notes,
			"reviewed_by":      res.ReviewedBy,
			"reviewed_at":      res.ReviewedAt,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		r.logger.Error("处理举报数据库出错", zap.Error(result.Error), zap.Uint64("reportID", id))
		return nil, result.Error
	}

	// 2. 读取当前行：命中时返回新值；未命中时区分"不存在"与"已处理"
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("举报已处理，拒绝重复处理",
			zap.Uint64("reportID", id),
			zap.String("currentStatus", string(current.Status)))
		return current, myErrors.ErrAlreadyResolved
	}
	r.logger.Debug("处理举报成功", zap.Uint64("reportID", id), zap.String("outcome", string(res.Outcome)))
	return current, nil
}

func (r *reportRepository) List(ctx context.Context, filter ReportFilter) ([]*entities.CommentReport, int64, error) {
	reports := make([]*entities.CommentReport, 0)
	dbQuery := r.db.WithContext(ctx).Model(&entities.CommentReport{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		dbQuery = dbQuery.Where("(reason LIKE ? OR description LIKE ?)", like, like)
	}
	if filter.Status != nil {
		dbQuery = dbQuery.Where("status = ?", *filter.Status)
	}
	if filter.Category != nil {
		dbQuery = dbQuery.Where("category = ?", *filter.Category)
	}
	if filter.Priority != nil {
		dbQuery = dbQuery.Where("priority = ?", *filter.Priority)
	}
	if filter.ReporterType != nil {
		if *filter.ReporterType == enums.ReporterUser {
			dbQuery = dbQuery.Where("reporter_user_id IS NOT NULL")
		} else {
			dbQuery = dbQuery.Where("reporter_user_id IS NULL")
		}
	}
	if filter.DateFrom != nil {
		dbQuery = dbQuery.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		dbQuery = dbQuery.Where("created_at < ?", *filter.DateTo)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		r.logger.Error("按条件查询举报计数失败", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return reports, 0, nil
	}

	offset := (filter.Page - 1) * filter.PageSize
	if err := dbQuery.Order("created_at DESC, id DESC").Limit(filter.PageSize).Offset(offset).Find(&reports).Error; err != nil {
		r.logger.Error("按条件查询举报分页数据失败", zap.Error(err))
		return nil, 0, err
	}
	r.logger.Debug("按条件查询举报成功", zap.Int("page", filter.Page), zap.Int64("total", total))
	return reports, total, nil
}

func (r *reportRepository) CountPending(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entities.CommentReport{}).
		Where("status = ?", enums.ReportPending).
		Count(&total).Error
	if err != nil {
		r.logger.Error("统计待处理举报失败", zap.Error(err))
		return 0, err
	}
	return total, nil
}
