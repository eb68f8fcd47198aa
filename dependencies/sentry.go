package dependencies

import (
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/comment_service/config"
	"github.com/Xushengqwer/comment_service/constant"
)

// InitSentry 初始化 Sentry。DSN 为空时不启用，返回的 flush 为空操作。
// 未初始化时 sentry.CaptureException 不会上报任何内容，调用方无需判断。
func InitSentry(cfg *appConfig.SentryConfig, logger *core.ZapLogger) (flush func(), err error) {
	if cfg.DSN == "" {
		logger.Info("未配置 Sentry DSN，错误上报已禁用")
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          constant.ServiceName + "@" + constant.ServiceVersion,
		EnableTracing:    cfg.TracesSampleRate > 0,
		TracesSampleRate: cfg.TracesSampleRate,
	}); err != nil {
		return nil, fmt.Errorf("初始化 Sentry 失败: %w", err)
	}

	logger.Info("Sentry 已初始化", zap.String("environment", cfg.Environment))
	return func() { sentry.Flush(2 * time.Second) }, nil
}
