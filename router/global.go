package router

import (
	"net/http"
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appConfig "github.com/Xushengqwer/comment_service/config"
	"github.com/Xushengqwer/comment_service/constant"
	"github.com/Xushengqwer/comment_service/controller"
	"github.com/Xushengqwer/comment_service/middleware"
)

// SetupRouter 配置 Gin 引擎、中间件和路由。
// 返回的是 http.Handler：最外层包了一层 MethodOverride，必须在 gin 匹配路由之前改写请求方法。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.CommentConfig,
	commentAdminController *controller.CommentAdminController,
	reportAdminController *controller.ReportAdminController,
	moderationLogController *controller.ModerationLogController,
) http.Handler {
	logger.Info("开始设置 Gin 路由...")

	router := gin.New()

	// 1. OTel Middleware (最先，处理追踪上下文和 Span)
	router.Use(otelgin.Middleware(constant.ServiceName))

	// 2. Sentry：只在配置了 DSN 时启用
	if cfg.SentryConfig.DSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	// 3. Panic Recovery
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))

	// 4. Request Logger
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}

	// 5. Request Timeout (配置单位为秒)
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))

	// 6. User Context (网关注入的用户信息)
	router.Use(commonMiddleware.UserContextMiddleware())

	// 7. CSRF：GET 下发令牌，写请求校验
	router.Use(middleware.CSRFProtect(cfg.CSRFConfig))

	logger.Debug("已注册全局中间件")

	// --- API 分组：读接口 / 写接口 (写接口需要调用方身份) ---
	admin := router.Group("/api/v1/comment/admin")
	writes := admin.Group("")
	writes.Use(middleware.RequireIdentity())

	commentAdminController.RegisterRoutes(admin, writes)
	reportAdminController.RegisterRoutes(admin, writes)
	moderationLogController.RegisterRoutes(admin)
	logger.Info("所有控制器路由已注册到 /api/v1/comment/admin 分组")

	// --- Swagger UI ---
	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))
	logger.Info("Swagger UI endpoint registered at /swagger/*any")

	// --- 健康检查 ---
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return middleware.MethodOverride(router)
}
