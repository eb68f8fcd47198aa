package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/Xushengqwer/comment_service/docs"

	appConfig "github.com/Xushengqwer/comment_service/config"
	"github.com/Xushengqwer/comment_service/constant"
	"github.com/Xushengqwer/comment_service/controller"
	"github.com/Xushengqwer/comment_service/dependencies"
	"github.com/Xushengqwer/comment_service/middleware"
	"github.com/Xushengqwer/comment_service/mq/consumer"
	"github.com/Xushengqwer/comment_service/mq/producer"
	"github.com/Xushengqwer/comment_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/comment_service/repo/redis"
	"github.com/Xushengqwer/comment_service/router"
	"github.com/Xushengqwer/comment_service/service"
	"github.com/Xushengqwer/comment_service/tasks"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"

	"go.uber.org/zap"
)

// @title           Comment Moderation Service API
// @version         1.0
// @description     评论审核服务：评论状态流转、软删除与恢复、批量审核、举报处理、审核轨迹。

// @host      localhost:8083
// @BasePath  /
// @schemes http https
func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.CommentConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	baseLogger := logger.Logger()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider
	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := sharedTracing.InitTracerProvider(constant.ServiceName, constant.ServiceVersion, cfg.TracerConfig)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			}
		}()
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
	}

	// 4. Sentry
	sentryFlush, err := dependencies.InitSentry(&cfg.SentryConfig, logger)
	if err != nil {
		logger.Fatal("初始化 Sentry 失败", zap.Error(err))
	}
	defer sentryFlush()

	// 5. 绑定校验器上的自定义标签
	if err := middleware.RegisterValidators(); err != nil {
		logger.Fatal("注册自定义校验标签失败", zap.Error(err))
	}

	// --- 6. 初始化核心依赖 ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(dbErr))
	}
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(redisErr))
	}

	var archive tasks.ArchiveStore
	if cfg.COSConfig.Enabled() {
		store, cosErr := dependencies.InitCOS(&cfg.COSConfig, logger)
		if cosErr != nil {
			logger.Fatal("初始化 COS 归档存储失败", zap.Error(cosErr))
		}
		archive = store
	} else {
		logger.Warn("未配置 COS，清理任务将直接删除评论而不归档")
	}

	var publisher service.EventPublisher
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, baseLogger)
		publisher = kafkaProducer
		logger.Info("Kafka 生产者已初始化")
	} else {
		publisher = producer.NewNopProducer(baseLogger)
		logger.Warn("未配置 Kafka brokers，审核事件将不会发送")
	}

	// --- 7. Repositories ---
	commentRepo := mysql.NewCommentRepository(db, baseLogger)
	reportRepo := mysql.NewReportRepository(db, baseLogger)
	logRepo := mysql.NewModerationLogRepository(db, baseLogger)
	statsCache := redisrepo.NewStatsCache(rdb, baseLogger)

	// --- 8. Services ---
	moderationService := service.NewCommentModerationService(commentRepo, logRepo, statsCache, publisher, cfg.ModerationConfig, baseLogger)
	reportService := service.NewReportService(reportRepo, logRepo, publisher, cfg.ModerationConfig, baseLogger)
	logService := service.NewModerationLogService(logRepo, cfg.ModerationConfig, baseLogger)

	// --- 9. Controllers ---
	commentAdminController := controller.NewCommentAdminController(moderationService)
	reportAdminController := controller.NewReportAdminController(reportService)
	moderationLogController := controller.NewModerationLogController(logService)

	// --- 10. Kafka 消费者 ---
	var consumers []*consumer.Consumer
	var consumerWg sync.WaitGroup
	consumerCtx, consumerCancel := context.WithCancel(context.Background())

	if len(cfg.KafkaConfig.Brokers) > 0 {
		groupID := cfg.KafkaConfig.ConsumerGroupID
		if groupID == "" {
			groupID = "comment_service_group"
			logger.Warn("Kafka ConsumerGroupID 未配置，使用默认值", zap.String("groupID", groupID))
		}

		handlers := []struct {
			topic   string
			handler consumer.MessageHandler
		}{
			{cfg.KafkaConfig.Topics.CommentCreated, consumer.NewCommentCreatedHandler(baseLogger, moderationService)},
			{cfg.KafkaConfig.Topics.ReportSubmitted, consumer.NewReportSubmittedHandler(baseLogger, reportService)},
			{cfg.KafkaConfig.Topics.AutoModerationResult, consumer.NewAutoModerationHandler(baseLogger, moderationService)},
		}
		for _, h := range handlers {
			if h.topic == "" {
				continue
			}
			c, err := consumer.NewConsumer(&cfg.KafkaConfig, groupID, h.topic, h.handler, baseLogger)
			if err != nil {
				logger.Fatal("初始化 Kafka 消费者失败", zap.String("topic", h.topic), zap.Error(err))
			}
			consumers = append(consumers, c)
		}

		logger.Info(fmt.Sprintf("准备启动 %d 个 Kafka 消费者...", len(consumers)))
		for _, c := range consumers {
			consumerWg.Add(1)
			go func(cons *consumer.Consumer) {
				defer consumerWg.Done()
				cons.Start(consumerCtx)
			}(c)
		}
	} else {
		logger.Warn("Kafka Brokers 未配置，跳过所有 Kafka 消费者初始化。")
	}

	// --- 11. 定时任务 ---
	purgeTask, err := tasks.NewPurgeDeletedTask(commentRepo, logRepo, archive, moderationService, cfg.ModerationConfig, baseLogger)
	if err != nil {
		logger.Fatal("初始化评论清理任务失败", zap.Error(err))
	}
	statsTask, err := tasks.NewStatsRefreshTask(moderationService, cfg.ModerationConfig.StatsCronSpec, baseLogger)
	if err != nil {
		logger.Fatal("初始化统计刷新任务失败", zap.Error(err))
	}

	// --- 12. HTTP 服务器 ---
	handler := router.SetupRouter(logger, &cfg, commentAdminController, reportAdminController, moderationLogController)
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: handler,
	}
	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
	}()

	// --- 13. 优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// a. HTTP 服务器
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	}

	// b. Kafka 消费者
	consumerCancel()
	consumerWg.Wait()
	for _, c := range consumers {
		if err := c.Close(); err != nil {
			logger.Error("关闭某个 Kafka 消费者时出错", zap.Error(err))
		}
	}

	// c. 定时任务：等待正在执行的任务结束或超时
	for name, stopCtx := range map[string]context.Context{"评论清理": purgeTask.Stop(), "统计刷新": statsTask.Stop()} {
		select {
		case <-stopCtx.Done():
			logger.Info("定时任务已停止", zap.String("task", name))
		case <-shutdownCtx.Done():
			logger.Error("等待定时任务停止超时", zap.String("task", name), zap.Error(shutdownCtx.Err()))
		}
	}

	// d. Kafka 生产者：最后关闭，确保关停期间完成的操作的事件已发送
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		}
	}
	if err := rdb.Close(); err != nil {
		logger.Error("关闭 Redis 客户端失败", zap.Error(err))
	}

	logger.Info("服务已成功关闭")
}
