package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/comment_service/constant"
	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/myErrors"
)

// StatsCache 审核统计缓存。
// - 每个删除范围一个 Hash: Field 为评论状态，Value 为数量。
// - 写操作成功后整体失效，由定时任务或下一次读请求回源重建。
type StatsCache interface {
	// Get 读取某个删除范围的统计，未命中返回 myErrors.ErrCacheMiss。
	Get(ctx context.Context, scope enums.DeletionScope) (map[enums.CommentStatus]int64, error)

	// Set 覆盖写入某个删除范围的统计并设置过期时间。
	Set(ctx context.Context, scope enums.DeletionScope, counts map[enums.CommentStatus]int64, ttl time.Duration) error

	// Invalidate 删除所有删除范围的统计缓存。
	Invalidate(ctx context.Context) error
}

type statsCache struct {
	redisClient *redis.Client
	logger      *zap.Logger
}

// NewStatsCache 是 statsCache 的构造函数。
func NewStatsCache(redisClient *redis.Client, logger *zap.Logger) StatsCache {
	return &statsCache{redisClient: redisClient, logger: logger}
}

func statsKey(scope enums.DeletionScope) string {
	return constant.CommentStatsKeyPrefix + string(scope)
}

func (c *statsCache) Get(ctx context.Context, scope enums.DeletionScope) (map[enums.CommentStatus]int64, error) {
	key := statsKey(scope)
	// 1. HGETALL 在 Key 不存在时返回空 map 而不是 redis.Nil
	raw, err := c.redisClient.HGetAll(ctx, key).Result()
	if err != nil {
		c.logger.Error("从 Redis 读取审核统计失败", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("读取审核统计(key: %s)失败: %w", key, err)
	}
	if len(raw) == 0 {
		return nil, myErrors.ErrCacheMiss
	}

	// 2. 解析各状态数量；缓存里缺少的状态计为 0
	counts := make(map[enums.CommentStatus]int64, len(enums.AllCommentStatuses))
	for _, s := range enums.AllCommentStatuses {
		v, ok := raw[string(s)]
		if !ok {
			counts[s] = 0
			continue
		}
		n, parseErr := strconv.ParseInt(v, 10, 64)
		if parseErr != nil {
			// 数据损坏时按未命中处理，交给调用方回源
			c.logger.Warn("审核统计缓存数据格式错误", zap.String("key", key), zap.String("field", string(s)), zap.String("value", v))
			return nil, myErrors.ErrCacheMiss
		}
		counts[s] = n
	}
	return counts, nil
}

func (c *statsCache) Set(ctx context.Context, scope enums.DeletionScope, counts map[enums.CommentStatus]int64, ttl time.Duration) error {
	key := statsKey(scope)
	fields := make(map[string]interface{}, len(enums.AllCommentStatuses))
	for _, s := range enums.AllCommentStatuses {
		fields[string(s)] = counts[s]
	}

	// 使用事务管道保证 DEL + HSET + EXPIRE 原子执行，避免残留旧字段
	_, err := c.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		c.logger.Error("写入审核统计缓存失败", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("写入审核统计(key: %s)失败: %w", key, err)
	}
	c.logger.Debug("写入审核统计缓存成功", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (c *statsCache) Invalidate(ctx context.Context) error {
	keys := make([]string, 0, len(enums.AllDeletionScopes))
	for _, scope := range enums.AllDeletionScopes {
		keys = append(keys, statsKey(scope))
	}
	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		c.logger.Error("清除审核统计缓存失败", zap.Error(err))
		return fmt.Errorf("清除审核统计缓存失败: %w", err)
	}
	return nil
}
