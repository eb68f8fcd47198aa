package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/comment_service/config"
	"github.com/Xushengqwer/comment_service/constant"
	"github.com/Xushengqwer/comment_service/models/entities"
	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/models/vo"
	"github.com/Xushengqwer/comment_service/repo/mysql"
)

// ArchiveStore 清理前保存评论快照的位置，由 dependencies 中的 COS 实现提供
type ArchiveStore interface {
	PutArchive(ctx context.Context, objectKey string, body []byte) (string, error)
}

// StatsRefresher 清理后重新计算统计缓存
type StatsRefresher interface {
	RefreshStats(ctx context.Context) error
}

// PurgeDeletedTask 定时物理删除软删除超过保留期的评论。
// 每一批先归档到 COS (如果配置了)，归档成功后才删除；归档失败时本轮停止，数据保持不动。
type PurgeDeletedTask struct {
	commentRepo mysql.CommentRepository
	logRepo     mysql.ModerationLogRepository
	archive     ArchiveStore
	stats       StatsRefresher
	cfg         config.ModerationConfig
	cron        *cron.Cron
	logger      *zap.Logger
	now         func() time.Time
}

// NewPurgeDeletedTask 初始化并启动清理任务。保留天数 <= 0 时不注册 cron 作业。
// archive 可以为 nil，此时评论直接删除不做归档。
func NewPurgeDeletedTask(
	commentRepo mysql.CommentRepository,
	logRepo mysql.ModerationLogRepository,
	archive ArchiveStore,
	stats StatsRefresher,
	cfg config.ModerationConfig,
	logger *zap.Logger,
) (*PurgeDeletedTask, error) {
	task := newPurgeDeletedTask(commentRepo, logRepo, archive, stats, cfg, logger)
	if cfg.PurgeRetentionDays <= 0 {
		logger.Info("未配置软删除保留天数，评论清理任务不启用")
		task.cron.Start()
		return task, nil
	}

	schedule := cfg.PurgeCronSpec
	if schedule == "" {
		schedule = constant.PurgeDeletedCronSpec
	}
	entryID, err := task.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		if _, err := task.RunOnce(ctx); err != nil {
			task.logger.Error("评论清理任务执行失败", zap.Error(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("添加评论清理 cron 作业失败 (schedule: %s): %w", schedule, err)
	}

	task.cron.Start()
	logger.Info("评论清理定时任务已启动",
		zap.String("schedule", schedule),
		zap.Int("retentionDays", cfg.PurgeRetentionDays),
		zap.Bool("archive", archive != nil),
		zap.Uint("cronEntryID", uint(entryID)))
	return task, nil
}

func newPurgeDeletedTask(
	commentRepo mysql.CommentRepository,
	logRepo mysql.ModerationLogRepository,
	archive ArchiveStore,
	stats StatsRefresher,
	cfg config.ModerationConfig,
	logger *zap.Logger,
) *PurgeDeletedTask {
	return &PurgeDeletedTask{
		commentRepo: commentRepo,
		logRepo:     logRepo,
		archive:     archive,
		stats:       stats,
		cfg:         cfg,
		cron:        cron.New(),
		logger:      logger,
		now:         time.Now,
	}
}

// RunOnce 执行一轮清理，返回物理删除的评论数量。
func (t *PurgeDeletedTask) RunOnce(ctx context.Context) (int64, error) {
	if t.cfg.PurgeRetentionDays <= 0 {
		return 0, nil
	}
	batchSize := t.cfg.PurgeBatchSize
	if batchSize <= 0 {
		batchSize = constant.DefaultPurgeBatchSize
	}
	now := t.now()
	cutoff := now.AddDate(0, 0, -t.cfg.PurgeRetentionDays)
	t.logger.Info("评论清理任务开始执行", zap.Time("cutoff", cutoff))

	var total int64
	for {
		// 1. 取一批超过保留期的评论
		batch, err := t.commentRepo.ListDeletedBefore(ctx, cutoff, batchSize)
		if err != nil {
			return total, fmt.Errorf("查询待清理评论失败: %w", err)
		}
		if len(batch) == 0 {
			break
		}

		// 2. 在删除事务内归档实际被锁定的评论，归档失败则整批回滚
		ids := make([]uint64, len(batch))
		for i, c := range batch {
			ids[i] = c.ID
		}
		var archiveURL string
		purged, err := t.commentRepo.PurgeByIDs(ctx, ids, func(ctx context.Context, doomed []*entities.Comment) error {
			url, archiveErr := t.archiveBatch(ctx, now, doomed)
			archiveURL = url
			return archiveErr
		})
		if err != nil {
			return total, fmt.Errorf("清理评论失败: %w", err)
		}
		total += int64(len(purged))

		// 3. 只为真正删除的评论写审计
		for _, c := range purged {
			t.recordPurge(ctx, c, archiveURL)
		}

		// 本批不满或者一行都没删掉 (期间全部被恢复) 时结束，避免空转
		if len(batch) < batchSize || len(purged) == 0 {
			break
		}
	}

	if total > 0 && t.stats != nil {
		if err := t.stats.RefreshStats(ctx); err != nil {
			t.logger.Warn("清理后刷新统计缓存失败", zap.Error(err))
		}
	}
	t.logger.Info("评论清理任务执行完毕", zap.Int64("purged", total))
	return total, nil
}

func (t *PurgeDeletedTask) archiveBatch(ctx context.Context, now time.Time, batch []*entities.Comment) (string, error) {
	if t.archive == nil {
		return "", nil
	}
	body, err := json.Marshal(vo.NewCommentVOs(batch))
	if err != nil {
		return "", fmt.Errorf("序列化归档内容失败: %w", err)
	}
	key := fmt.Sprintf("%s/comments-%d-%d.json", now.UTC().Format("2006/01/02"), batch[0].ID, batch[len(batch)-1].ID)
	url, err := t.archive.PutArchive(ctx, key, body)
	if err != nil {
		return "", fmt.Errorf("归档待清理评论失败，本轮不删除: %w", err)
	}
	return url, nil
}

func (t *PurgeDeletedTask) recordPurge(ctx context.Context, c *entities.Comment, archiveURL string) {
	log := &entities.ModerationLog{
		EntityType: enums.EntityComment,
		EntityID:   c.ID,
		Action:     enums.ActionPurge,
		FromState:  string(c.Status),
		Actor:      constant.ActorPurgeTask,
		Deleted:    true,
		Note:       archiveURL,
	}
	if err := t.logRepo.Create(ctx, log); err != nil {
		t.logger.Error("写入清理审计日志失败", zap.Uint64("commentID", c.ID), zap.Error(err))
	}
}

// Stop 停止调度，返回的 context 在正在执行的任务结束后关闭
func (t *PurgeDeletedTask) Stop() context.Context {
	t.logger.Info("正在停止评论清理定时任务...")
	return t.cron.Stop()
}
