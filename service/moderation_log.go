package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Xushengqwer/comment_service/config"
	"github.com/Xushengqwer/comment_service/models/dto"
	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/models/vo"
	"github.com/Xushengqwer/comment_service/repo/mysql"
)

// ModerationLogService 审核轨迹查询
type ModerationLogService interface {
	List(ctx context.Context, req *dto.ListModerationLogsRequest) (*vo.ModerationLogListVO, error)
}

type moderationLogService struct {
	logRepo mysql.ModerationLogRepository
	cfg     config.ModerationConfig
	logger  *zap.Logger
}

func NewModerationLogService(logRepo mysql.ModerationLogRepository, cfg config.ModerationConfig, logger *zap.Logger) ModerationLogService {
	return &moderationLogService{logRepo: logRepo, cfg: cfg, logger: logger}
}

func (s *moderationLogService) List(ctx context.Context, req *dto.ListModerationLogsRequest) (*vo.ModerationLogListVO, error) {
	entityType, err := enums.ParseEntityType(req.EntityType)
	if err != nil {
		return nil, err
	}
	page, pageSize := normalizePage(s.cfg, req.Page, req.PageSize)
	logs, total, err := s.logRepo.ListByEntity(ctx, entityType, req.EntityID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("查询审核日志失败: %w", err)
	}
	s.logger.Debug("查询审核日志成功", zap.Uint64("entityID", req.EntityID), zap.Int64("total", total))
	return &vo.ModerationLogListVO{
		Logs:     vo.NewModerationLogVOs(logs),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
