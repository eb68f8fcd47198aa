package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/comment_service/constant"
)

// StatsRefreshTask 定时重新计算各删除范围的评论统计并写入 Redis，
// 让管理后台的统计接口大部分时候命中缓存。
type StatsRefreshTask struct {
	stats  StatsRefresher
	cron   *cron.Cron
	logger *zap.Logger
}

func NewStatsRefreshTask(stats StatsRefresher, schedule string, logger *zap.Logger) (*StatsRefreshTask, error) {
	if schedule == "" {
		schedule = constant.StatsRefreshCronSpec
	}
	task := &StatsRefreshTask{stats: stats, cron: cron.New(), logger: logger}

	entryID, err := task.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		task.run(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("添加统计刷新 cron 作业失败 (schedule: %s): %w", schedule, err)
	}

	task.cron.Start()
	logger.Info("统计缓存刷新定时任务已启动", zap.String("schedule", schedule), zap.Uint("cronEntryID", uint(entryID)))
	return task, nil
}

func (t *StatsRefreshTask) run(ctx context.Context) {
	start := time.Now()
	if err := t.stats.RefreshStats(ctx); err != nil {
		t.logger.Error("刷新统计缓存失败", zap.Error(err))
		return
	}
	t.logger.Debug("统计缓存已刷新", zap.Duration("duration", time.Since(start)))
}

func (t *StatsRefreshTask) Stop() context.Context {
	t.logger.Info("正在停止统计缓存刷新定时任务...")
	return t.cron.Stop()
}
