package mysql

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/comment_service/models/entities"
	"github.com/Xushengqwer/comment_service/models/enums"
)

// ModerationLogRepository 审核审计日志存储，只追加不修改
type ModerationLogRepository interface {
	Create(ctx context.Context, log *entities.ModerationLog) error
	// ListByEntity 查询某个实体的审核轨迹，按时间倒序分页。
	ListByEntity(ctx context.Context, entityType enums.EntityType, entityID uint64, page, pageSize int) ([]*entities.ModerationLog, int64, error)
}

type moderationLogRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewModerationLogRepository(db *gorm.DB, logger *zap.Logger) ModerationLogRepository {
	return &moderationLogRepository{db: db, logger: logger}
}

func (r *moderationLogRepository) Create(ctx context.Context, log *entities.ModerationLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		r.logger.Error("写入审核日志失败",
			zap.Error(err),
			zap.String("entityType", string(log.EntityType)),
			zap.Uint64("entityID", log.EntityID),
			zap.String("action", string(log.Action)))
		return err
	}
	return nil
}

func (r *moderationLogRepository) ListByEntity(ctx context.Context, entityType enums.EntityType, entityID uint64, page, pageSize int) ([]*entities.ModerationLog, int64, error) {
	logs := make([]*entities.ModerationLog, 0)
	dbQuery := r.db.WithContext(ctx).Model(&entities.ModerationLog{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID)

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		r.logger.Error("统计审核日志失败", zap.Error(err), zap.Uint64("entityID", entityID))
		return nil, 0, err
	}
	if total == 0 {
		return logs, 0, nil
	}
	if err := dbQuery.Order("id DESC").Limit(pageSize).Offset((page - 1) * pageSize).Find(&logs).Error; err != nil {
		r.logger.Error("查询审核日志失败", zap.Error(err), zap.Uint64("entityID", entityID))
		return nil, 0, err
	}
	return logs, total, nil
}
