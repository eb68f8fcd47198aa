package config

import (
	"time"

	"github.com/Xushengqwer/comment_service/constant"
)

// ModerationConfig 包含审核业务相关的可调参数
type ModerationConfig struct {
	// DefaultPageSize 列表接口的默认每页条数，<=0 时使用 constant.DefaultPageSize。
	DefaultPageSize int `mapstructure:"defaultPageSize" json:"defaultPageSize" yaml:"defaultPageSize"`
	// MaxPageSize 每页条数上限，<=0 时使用 constant.MaxPageSize。
	MaxPageSize int `mapstructure:"maxPageSize" json:"maxPageSize" yaml:"maxPageSize"`

	// PurgeRetentionDays 软删除评论保留的天数，超过后由清理任务归档并物理删除。
	// 为 0 表示不启用清理任务。
	PurgeRetentionDays int `mapstructure:"purgeRetentionDays" json:"purgeRetentionDays" yaml:"purgeRetentionDays"`
	// PurgeCronSpec 清理任务的 cron 表达式，为空时使用 constant.PurgeDeletedCronSpec。
	PurgeCronSpec string `mapstructure:"purgeCronSpec" json:"purgeCronSpec" yaml:"purgeCronSpec"`
	// PurgeBatchSize 单次清理最多处理的评论数量。
	PurgeBatchSize int `mapstructure:"purgeBatchSize" json:"purgeBatchSize" yaml:"purgeBatchSize"`

	// StatsCronSpec 统计缓存刷新任务的 cron 表达式，为空时使用 constant.StatsRefreshCronSpec。
	StatsCronSpec string `mapstructure:"statsCronSpec" json:"statsCronSpec" yaml:"statsCronSpec"`
	// StatsTTLSeconds 统计缓存的过期时间 (秒)。
	StatsTTLSeconds int `mapstructure:"statsTTLSeconds" json:"statsTTLSeconds" yaml:"statsTTLSeconds"`
}

// PageSizeBounds 返回生效的默认页大小与上限。
func (c ModerationConfig) PageSizeBounds() (def, max int) {
	def, max = c.DefaultPageSize, c.MaxPageSize
	if max <= 0 {
		max = constant.MaxPageSize
	}
	if def <= 0 {
		def = constant.DefaultPageSize
	}
	if def > max {
		def = max
	}
	return def, max
}

// StatsTTL 返回统计缓存的过期时间。
func (c ModerationConfig) StatsTTL() time.Duration {
	if c.StatsTTLSeconds <= 0 {
		return constant.CommentStatsDefaultTTL
	}
	return time.Duration(c.StatsTTLSeconds) * time.Second
}

// CSRFConfig 定义写接口的双重提交 Cookie 防伪校验
type CSRFConfig struct {
	Enabled    bool   `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	CookieName string `mapstructure:"cookieName" json:"cookieName" yaml:"cookieName"` // 默认 csrf_token
	HeaderName string `mapstructure:"headerName" json:"headerName" yaml:"headerName"` // 默认 X-CSRF-Token
}

// SentryConfig Sentry 错误上报配置，DSN 为空时不启用
type SentryConfig struct {
	DSN              string  `mapstructure:"dsn" json:"-" yaml:"dsn"`
	Environment      string  `mapstructure:"environment" json:"environment" yaml:"environment"`
	TracesSampleRate float64 `mapstructure:"tracesSampleRate" json:"tracesSampleRate" yaml:"tracesSampleRate"`
}
