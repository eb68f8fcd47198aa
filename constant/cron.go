package constant

// 定时任务的默认 cron 表达式 (robfig/cron v3 默认五段式，分钟级精度)
const (
	// PurgeDeletedCronSpec 每天凌晨 3 点清理软删除超过保留期的评论。
	PurgeDeletedCronSpec = "0 3 * * *"

	// StatsRefreshCronSpec 每 5 分钟刷新一次审核统计缓存。
	StatsRefreshCronSpec = "*/5 * * * *"
)

// DefaultPurgeBatchSize 清理任务单批处理的评论数量。
const DefaultPurgeBatchSize = 500
