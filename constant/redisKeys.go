package constant

import "time"

// Redis Key 相关常量
const (
	// CommentStatsKeyPrefix 是审核统计缓存的 Key 前缀，后缀为删除范围 (active/deleted/all)。
	// 示例 Key: "comment_moderation_stats:active"
	// Redis 类型: Hash，Field 为评论状态 (pending/approved/rejected/spam)，Value 为数量
	CommentStatsKeyPrefix = "comment_moderation_stats:"

	// CommentStatsDefaultTTL 是统计缓存的默认过期时间。
	CommentStatsDefaultTTL = 10 * time.Minute
)
